// SPDX-License-Identifier: EPL-2.0

package pwmtones

import (
	"fmt"

	"github.com/ik5/pwmtones/audio"
	"github.com/ik5/pwmtones/hardware"
	"github.com/ik5/pwmtones/spectral"
	"github.com/ik5/pwmtones/tone"
	"github.com/ik5/pwmtones/wave"
)

type settings struct {
	flatten  bool
	workers  int
	progress func(done, total int)
}

// Option adjusts a conversion.
type Option func(*settings)

// FlattenVolume collapses loudness to on/off: every audible window plays at
// full volume. Rhythm and melody survive, dynamics do not. Useful for
// devices whose PWM levels distort at intermediate duty cycles.
func FlattenVolume() Option {
	return func(s *settings) {
		s.flatten = true
	}
}

// Workers bounds the goroutines used for spectral analysis. The default
// uses every CPU.
func Workers(n int) Option {
	return func(s *settings) {
		s.workers = n
	}
}

// Progress registers a callback reporting analyzed windows out of the
// total. The callback may be invoked from multiple goroutines.
func Progress(fn func(done, total int)) Option {
	return func(s *settings) {
		s.progress = fn
	}
}

// Convert runs the full pipeline on a streaming source: collect the
// waveform, merge channels into the positive envelope, find each playback
// window's dominant frequency, quantize frequency and loudness to what the
// profile's hardware can produce, and run-length compress the result into
// tone events.
//
// The source is drained but not closed. The profile is validated before any
// audio is read; an invalid profile never produces partial output.
//
// Example:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	events, err := pwmtones.Convert(src, hardware.ATmega328P(),
//	    pwmtones.FlattenVolume())
//	if err != nil {
//	    // Handle error
//	}
//	// events is ready for export.WriteCSource
func Convert(src audio.Source, profile hardware.Profile, opts ...Option) ([]tone.Event, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	waveform, err := wave.FromSource(src)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ConvertWaveform(waveform, profile, opts...)
}

// ConvertWaveform is Convert for callers that already hold decoded PCM.
func ConvertWaveform(waveform *wave.Waveform, profile hardware.Profile, opts ...Option) ([]tone.Event, error) {
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	cfg := settings{}
	for _, opt := range opts {
		opt(&cfg)
	}

	merged, err := waveform.Merge()
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	analyzerOpts := []spectral.Option{}
	if cfg.workers > 0 {
		analyzerOpts = append(analyzerOpts, spectral.WithWorkers(cfg.workers))
	}
	if cfg.progress != nil {
		analyzerOpts = append(analyzerOpts, spectral.WithProgress(cfg.progress))
	}

	frames, err := spectral.Analyze(merged, waveform.SampleRate, profile.PlaybackRate, analyzerOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	buckets := tone.QuantizeFrequencies(frames, profile.Buckets())
	levels := tone.NormalizeLoudness(frames, profile.MaxDutyCycle, cfg.flatten)

	events, err := tone.Compress(profile.BaseDuration(), buckets, levels)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return events, nil
}
