// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrEmptyWaveform = errors.New("waveform has no samples")
	ErrNoChannels    = errors.New("waveform has no channels")
)
