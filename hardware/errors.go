// SPDX-License-Identifier: EPL-2.0

package hardware

import "errors"

var (
	ErrNoFrequencies       = errors.New("profile has no available frequencies")
	ErrInvalidDutyCycle    = errors.New("max duty cycle must be positive")
	ErrInvalidPlaybackRate = errors.New("playback rate must be positive")
)
