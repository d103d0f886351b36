// SPDX-License-Identifier: EPL-2.0

package preview

import (
	"fmt"
	"io"
	"math"

	"github.com/ik5/pwmtones/formats/wav"
	"github.com/ik5/pwmtones/hardware"
	"github.com/ik5/pwmtones/tone"
)

// amplitude of the rendered pulse wave, leaving headroom below int16 max.
const amplitude = 26000

// Render synthesizes a compressed event sequence into 16-bit PCM the way the
// device would play it: a pulse wave at the bucket's PWM frequency, with the
// duty-cycle level as pulse width. Events with level 0 render as silence.
//
// The result is only an audition aid. It will not match the original
// recording, it matches what the microcontroller will sound like.
func Render(events []tone.Event, profile hardware.Profile, sampleRate int) ([]int16, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	var pcm []int16

	for i, ev := range events {
		if ev.Bucket < 0 || ev.Bucket >= len(profile.Frequencies) {
			return nil, fmt.Errorf("event %d: bucket %d: %w", i, ev.Bucket, ErrUnknownBucket)
		}

		// Duration is in 100 ns ticks
		seconds := float64(ev.Duration) / 1e7
		samples := int(math.Round(seconds * float64(sampleRate)))

		freq := profile.Frequencies[ev.Bucket]
		duty := float64(ev.Level) / 255

		for s := 0; s < samples; s++ {
			ts := float64(s) / float64(sampleRate)
			phase := ts * freq
			if phase-math.Floor(phase) < duty {
				pcm = append(pcm, amplitude)
			} else {
				pcm = append(pcm, 0)
			}
		}
	}

	return pcm, nil
}

// WriteWAV renders events and writes them as a mono 16-bit PCM WAV file.
func WriteWAV(w io.Writer, events []tone.Event, profile hardware.Profile, sampleRate int) error {
	pcm, err := Render(events, profile, sampleRate)
	if err != nil {
		return err
	}

	if err := wav.WriteWAV16(w, sampleRate, pcm); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
