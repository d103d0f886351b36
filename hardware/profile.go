// SPDX-License-Identifier: EPL-2.0

package hardware

import "math"

// Profile describes the tone-generation limits of a target device.
//
// Frequencies holds the PWM frequencies the device can produce, in Hz,
// ordered from highest to lowest. The quantizer maps frequency bucket 0 to
// Frequencies[0], so keeping the slice descending makes bucket 0 the highest
// band the device can play.
type Profile struct {
	// Frequencies the device PWM timer can generate, highest first.
	Frequencies []float64

	// MaxDutyCycle is the highest usable duty-cycle register value.
	// Full duty cycle produces a flat line (no sound), so this is the
	// hardware maximum minus one.
	MaxDutyCycle int

	// PlaybackRate is the rate, in Hz, at which the device steps through
	// tone windows during playback.
	PlaybackRate int
}

// Validate reports whether the profile can drive a conversion. It is called
// before any processing starts; a conversion never begins with an invalid
// profile.
func (p Profile) Validate() error {
	if len(p.Frequencies) == 0 {
		return ErrNoFrequencies
	}
	if p.MaxDutyCycle <= 0 {
		return ErrInvalidDutyCycle
	}
	if p.PlaybackRate <= 0 {
		return ErrInvalidPlaybackRate
	}

	return nil
}

// Buckets returns the number of frequency buckets the profile provides.
func (p Profile) Buckets() int { return len(p.Frequencies) }

// BaseDuration returns the nominal duration of a single analysis window in
// hardware timer ticks. One tick is 100 ns, so a 10 kHz playback rate gives
// 1000 ticks per window.
func (p Profile) BaseDuration() uint32 {
	return uint32(math.Round(ticksPerSecond / float64(p.PlaybackRate)))
}

const ticksPerSecond = 1e7

// ATmega328P returns the profile for the ATmega328P microcontroller.
//
// In fast PWM mode the achievable frequencies are f_clk_io/(n*256) with
// n one of the timer prescale factors; the usable ones at a 16 MHz clock
// are 8, 32, 64, 128, 256 and 1024, giving six frequencies from about
// 7.8 kHz down to about 61 Hz.
func ATmega328P() Profile {
	prescales := []float64{8, 32, 64, 128, 256, 1024}

	freqs := make([]float64, len(prescales))
	for i, n := range prescales {
		freqs[i] = 16e6 / (n * 256)
	}

	return Profile{
		Frequencies:  freqs,
		MaxDutyCycle: 255 - 1,
		PlaybackRate: 10_000,
	}
}
