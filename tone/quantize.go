// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"gonum.org/v1/gonum/floats"

	"github.com/ik5/pwmtones/spectral"
)

// QuantizeFrequencies maps each frame's dominant frequency onto one of
// buckets hardware frequency slots.
//
// Bucket edges are spaced geometrically between the lowest and highest
// dominant frequency seen across the whole recording, so the buckets track
// pitch perception rather than linear frequency. The first edge is forced to
// zero so silent and degenerate windows land in the lowest band, and the
// edges are scanned from highest to lowest: bucket 0 is the highest
// frequency range, bucket buckets-1 the lowest. Every returned index is in
// [0, buckets-1].
//
// A recording whose windows all report the same dominant frequency has no
// range to divide; every window then maps to bucket 0.
func QuantizeFrequencies(frames []spectral.Frame, buckets int) []int {
	indexes := make([]int, len(frames))
	if len(frames) == 0 {
		return indexes
	}
	if buckets < 2 {
		return indexes
	}

	freqs := make([]float64, len(frames))
	for i, f := range frames {
		freqs[i] = f.Frequency
	}

	low := floats.Min(freqs) + 1
	high := floats.Max(freqs)

	// Geometric spacing needs a positive span. Negative aliases can drag the
	// minimum below zero; anchor the span at 1 Hz and let the zero edge catch
	// everything beneath it.
	if low <= 0 {
		low = 1
	}
	if low >= high {
		// Constant or non-positive frequency range, nothing to divide
		return indexes
	}

	edges := make([]float64, buckets)
	floats.LogSpan(edges, low, high)
	// Pin the endpoints: the bottom edge catches silence and negative
	// aliases, the top edge must sit exactly on the observed maximum
	edges[0] = 0
	edges[buckets-1] = high

	for i, f := range freqs {
		indexes[i] = bucketOf(f, edges)
	}

	return indexes
}

// bucketOf scans the ascending edges from the top down and returns the index
// of the first edge f reaches. Frequencies below every edge (negative
// aliases) fall in the last bucket with the zero edge.
func bucketOf(f float64, edges []float64) int {
	for j := range edges {
		if f >= edges[len(edges)-1-j] {
			return j
		}
	}
	return len(edges) - 1
}
