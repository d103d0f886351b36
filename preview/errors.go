// SPDX-License-Identifier: EPL-2.0

package preview

import "errors"

var (
	ErrInvalidSampleRate = errors.New("render sample rate must be positive")
	ErrUnknownBucket     = errors.New("event bucket outside profile frequency table")
)
