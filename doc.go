// SPDX-License-Identifier: EPL-2.0

// Package pwmtones converts audio recordings into compact tone sequences for
// microcontrollers that can only play a handful of PWM frequencies.
//
// A device like the ATmega328P cannot play PCM audio. What it can do is
// drive a speaker with a PWM timer at a few fixed frequencies and vary the
// duty cycle. This package reduces a full recording to exactly that: an
// ordered list of (duration, frequency bucket, duty level) events small
// enough to compile into firmware.
//
// # Pipeline
//
// The conversion is a batch of pure stages, each consuming the previous
// stage's output:
//
//  1. Channel reduction: merge all channels into the positive envelope
//     (wave.Merge)
//  2. Spectral analysis: dominant frequency and magnitude per playback
//     window (spectral.Analyze)
//  3. Frequency quantization: snap frequencies to the hardware's buckets
//     (tone.QuantizeFrequencies)
//  4. Loudness normalization: log-compress magnitudes into duty-cycle
//     values (tone.NormalizeLoudness)
//  5. Run-length compression: merge windows into tone events
//     (tone.Compress)
//
// # Quick Start
//
// The simplest path is Convert, straight from a decoded source:
//
//	decoder := wav.Decoder{}
//	file, _ := os.Open("song.wav")
//	src, _ := decoder.Decode(file)
//
//	events, err := pwmtones.Convert(src, hardware.ATmega328P())
//	if err != nil {
//	    // Handle error
//	}
//
//	out, _ := os.Create("result.txt")
//	export.WriteCSource(out, events)
//
// # Supported Formats
//
// The formats subpackages decode the common containers:
//   - WAV (PCM 16-bit) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF (PCM 16-bit) via formats/aiff
//
// All decoders return an audio.Source; anything implementing that interface
// can feed Convert.
//
// # Hardware Profiles
//
// The target device is described by a hardware.Profile: its achievable PWM
// frequencies, the usable duty-cycle ceiling, and the playback rate its
// timer steps at. hardware.ATmega328P() is the built-in profile; supporting
// another device is a new constructor, not a pipeline change.
//
// # Options
//
// Convert takes options for the knobs that do not belong in the profile:
//
//	events, err := pwmtones.Convert(src, profile,
//	    pwmtones.FlattenVolume(),          // on/off loudness only
//	    pwmtones.Workers(4),               // bound analysis parallelism
//	    pwmtones.Progress(logProgress),    // report analyzed windows
//	)
//
// # Auditioning
//
// The preview subpackage renders an event list back into a WAV file so a
// conversion can be heard before it is flashed onto hardware.
//
// See the individual subpackages for more detailed documentation.
package pwmtones
