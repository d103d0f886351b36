// SPDX-License-Identifier: EPL-2.0

// Package wave holds decoded recordings in memory and reduces them to a
// single analysis signal.
//
// The conversion pipeline is a batch computation: it needs the complete
// recording up front, not a stream. FromSource drains any audio.Source into
// a Waveform with one sample slice per channel:
//
//	src, _ := wav.Decoder{}.Decode(file)
//	waveform, err := wave.FromSource(src)
//
// # Channel Reduction
//
// Spectral analysis works on one signal, so multi-channel recordings are
// merged first. Merge takes the per-sample maximum across channels and
// clamps negative values to zero, keeping only the positive envelope:
//
//	signal, err := waveform.Merge()
//
// Every value in the merged signal is >= 0. Note this is not a mono
// downmix: averaging channels the way a mixer would loses the peak
// amplitude information the loudness stage depends on.
package wave
