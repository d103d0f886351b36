// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"fmt"
	"io"

	"github.com/ik5/pwmtones/audio"
)

// Waveform is a complete, decoded recording held in memory: one sample slice
// per channel, all the same length, plus the rate they were sampled at.
// It is the input to the conversion pipeline and is never modified after
// construction.
type Waveform struct {
	// Channels holds one slice of samples per channel, in [-1, 1].
	Channels [][]float32

	// SampleRate of every channel, in Hz.
	SampleRate int
}

// Samples returns the number of samples per channel.
func (w *Waveform) Samples() int {
	if len(w.Channels) == 0 {
		return 0
	}
	return len(w.Channels[0])
}

// Duration returns the length of the recording in seconds.
func (w *Waveform) Duration() float64 {
	if w.SampleRate <= 0 {
		return 0
	}
	return float64(w.Samples()) / float64(w.SampleRate)
}

// FromSource drains a streaming source into a Waveform, deinterleaving the
// samples into per-channel slices. The source is read to EOF but not closed;
// closing stays with the caller that opened it.
func FromSource(src audio.Source) (*Waveform, error) {
	channels := src.Channels()
	if channels <= 0 {
		return nil, ErrNoChannels
	}

	perChannel := make([][]float32, channels)
	for c := range perChannel {
		perChannel[c] = []float32{}
	}

	// Read in whole frames so deinterleaving never splits one
	bufFrames := 4096
	buf := make([]float32, bufFrames*channels)

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			frames := n / channels
			for f := 0; f < frames; f++ {
				for c := 0; c < channels; c++ {
					perChannel[c] = append(perChannel[c], buf[f*channels+c])
				}
			}
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
	}

	if len(perChannel[0]) == 0 {
		return nil, ErrEmptyWaveform
	}

	return &Waveform{
		Channels:   perChannel,
		SampleRate: src.SampleRate(),
	}, nil
}
