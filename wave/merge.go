// SPDX-License-Identifier: EPL-2.0

package wave

// Merge collapses all channels into a single non-negative signal: for each
// sample index it takes the loudest channel, then clamps the result at zero.
//
// The negative half of the waveform is discarded outright, not folded over.
// A PWM tone generator can only shape the positive envelope of a signal, so
// the positive peak across channels is the only amplitude information the
// rest of the pipeline needs.
//
// Taking the maximum makes the result independent of channel order.
func (w *Waveform) Merge() ([]float32, error) {
	if len(w.Channels) == 0 {
		return nil, ErrNoChannels
	}
	if w.Samples() == 0 {
		return nil, ErrEmptyWaveform
	}

	merged := make([]float32, w.Samples())

	for i := range merged {
		peak := w.Channels[0][i]
		for _, ch := range w.Channels[1:] {
			if ch[i] > peak {
				peak = ch[i]
			}
		}
		if peak < 0 {
			peak = 0
		}
		merged[i] = peak
	}

	return merged, nil
}
