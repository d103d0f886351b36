// SPDX-License-Identifier: EPL-2.0

// Package tone turns spectral frames into the compact event stream a
// microcontroller plays back.
//
// Three independent steps, all pure functions over the per-window frames:
//
//   - QuantizeFrequencies snaps each window's dominant frequency onto one of
//     the hardware's frequency slots, using geometrically spaced buckets over
//     the recording's own frequency range.
//   - NormalizeLoudness log-compresses the magnitudes and rescales them to
//     the hardware duty-cycle range, optionally flattening to on/off.
//   - Compress run-length encodes the resulting (bucket, level) stream into
//     Events.
//
// # Bucket Convention
//
// Bucket 0 is the highest frequency band and the last bucket the lowest,
// matching hardware.Profile's descending frequency table. The bucket index
// doubles as the equality key for run-length compression: two windows merge
// only when both bucket and level match.
//
// # Losslessness
//
// The quantization steps are lossy, the compression is not. Expand inverts
// Compress exactly, and the summed event durations always equal the window
// count times the base duration.
package tone
