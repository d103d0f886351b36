// SPDX-License-Identifier: EPL-2.0

package spectral

import "errors"

var (
	ErrEmptySignal = errors.New("signal has no samples")
	ErrInvalidRate = errors.New("sample and playback rates must be positive")
)
