// SPDX-License-Identifier: EPL-2.0

package spectral

import (
	"math"
	"math/cmplx"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/mjibson/go-dsp/fft"
)

// Frame is the spectral summary of one analysis window: the frequency bin
// with the largest magnitude in the window's Fourier transform, and that
// magnitude.
//
// Frequency is signed. Bins in the upper half of the transform map to
// negative frequencies (aliases), and degenerate windows report 0.
type Frame struct {
	Frequency float64
	Magnitude float64
}

type config struct {
	workers  int
	progress func(done, total int)
}

// Option adjusts how Analyze runs. Options never change the numeric result,
// only scheduling and reporting.
type Option func(*config)

// WithWorkers sets the number of goroutines analyzing windows. Values below
// one fall back to the default of runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// WithProgress registers a callback invoked after each window completes,
// with the number of finished windows and the total. Windows are analyzed
// concurrently, so fn must be safe to call from multiple goroutines.
func WithProgress(fn func(done, total int)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// Analyze splits signal into round(duration*playbackRate) windows and
// returns one Frame per window, in window order.
//
// Each window covers sampleRate/playbackRate source samples. That width is
// generally fractional, so the windows themselves differ in length by at
// most one sample, while the frequency axis of every transform is derived
// from the rounded design width rather than the window's actual length.
// Windows are independent of each other and are fanned out across a worker
// pool; the returned slice is always in window order.
func Analyze(signal []float32, sampleRate, playbackRate int, opts ...Option) ([]Frame, error) {
	if len(signal) == 0 {
		return nil, ErrEmptySignal
	}
	if sampleRate <= 0 || playbackRate <= 0 {
		return nil, ErrInvalidRate
	}

	cfg := config{workers: runtime.NumCPU()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.workers < 1 {
		cfg.workers = runtime.NumCPU()
	}

	duration := float64(len(signal)) / float64(sampleRate)

	windows := int(math.Round(duration * float64(playbackRate)))
	if windows < 1 {
		windows = 1
	}

	// Frequency-axis bin count comes from the design window width, not from
	// any window's actual sample count
	bins := int(math.Round(float64(sampleRate) / float64(playbackRate)))
	if bins < 1 {
		bins = 1
	}

	frames := make([]Frame, windows)

	workers := cfg.workers
	if workers > windows {
		workers = windows
	}

	jobs := make(chan int, windows)

	var wg sync.WaitGroup
	var done atomic.Int64

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for x := range jobs {
				start, end := windowBounds(len(signal), windows, x)
				frames[x] = analyzeWindow(signal[start:end], sampleRate, bins)

				if cfg.progress != nil {
					cfg.progress(int(done.Add(1)), windows)
				}
			}
		}()
	}

	for x := 0; x < windows; x++ {
		jobs <- x
	}
	close(jobs)

	wg.Wait()

	return frames, nil
}

// windowBounds returns the half-open sample range of window x when n samples
// are split into count windows as equally as possible. The first n%count
// windows carry one extra sample, so no two windows differ by more than one.
func windowBounds(n, count, x int) (start, end int) {
	base := n / count
	extra := n % count

	if x < extra {
		start = x * (base + 1)
		return start, start + base + 1
	}

	start = extra*(base+1) + (x-extra)*base
	return start, start + base
}

// analyzeWindow picks the dominant frequency and its magnitude out of one
// window's transform.
func analyzeWindow(window []float32, sampleRate, bins int) Frame {
	if len(window) == 0 {
		// More windows than samples: the window holds nothing, report silence
		return Frame{}
	}
	if len(window) == 1 {
		// Transform of a single sample is the sample itself
		return Frame{Frequency: 0, Magnitude: math.Abs(float64(window[0]))}
	}

	samples := make([]float64, len(window))
	for i, v := range window {
		samples[i] = float64(v)
	}

	spectrum := fft.FFTReal(samples)

	peak := 0
	peakMag := 0.0
	for i, bin := range spectrum {
		if mag := cmplx.Abs(bin); mag > peakMag {
			peakMag = mag
			peak = i
		}
	}

	return Frame{
		Frequency: binFrequency(peak, bins, sampleRate),
		Magnitude: peakMag,
	}
}

// binFrequency converts transform bin k to Hz on an n-bin axis sampled at
// sampleRate. The lower half of the axis is positive, the upper half wraps
// to negative aliases.
func binFrequency(k, n, sampleRate int) float64 {
	if n <= 0 {
		return 0
	}

	if k < (n+1)/2 {
		return float64(k) * float64(sampleRate) / float64(n)
	}
	return float64(k-n) * float64(sampleRate) / float64(n)
}
