// SPDX-License-Identifier: EPL-2.0

// Package spectral finds the dominant frequency of every playback window in
// a merged signal.
//
// The signal is divided into one window per playback sample: a recording of
// d seconds analyzed for a 10 kHz playback rate yields round(d*10000)
// windows. Each window gets a discrete Fourier transform (via go-dsp) and is
// summarized by its strongest bin:
//
//	frames, err := spectral.Analyze(signal, 44100, 10000)
//	// frames[x].Frequency, frames[x].Magnitude
//
// # Window Geometry
//
// A window nominally spans sampleRate/playbackRate source samples, which is
// rarely a whole number (44100/10000 = 4.41). The windows therefore differ
// in actual length by at most one sample, while the bin-to-Hz conversion
// always uses the rounded nominal width so every window shares one frequency
// axis.
//
// # Concurrency
//
// Windows are independent, so Analyze fans them out over a worker pool and
// writes each result into its own slot of the output slice. WithWorkers
// bounds the pool; WithProgress observes completion for long recordings.
// Results are in window order regardless of scheduling.
package spectral
