// SPDX-License-Identifier: EPL-2.0

package tone

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/ik5/pwmtones/spectral"
)

// flattenLevel is the single "on" loudness in flattened output. It is the
// full 8-bit range, one past the usable duty-cycle maximum.
const flattenLevel = 255

// NormalizeLoudness maps each frame's magnitude to a duty-cycle value in
// [0, maxDuty].
//
// Raw transform magnitudes span several orders of magnitude, so they are
// first compressed with log(m+1); the +1 keeps silent windows at exactly
// zero. The compressed values are then rescaled linearly so the loudest
// window hits maxDuty, truncating to integers. A completely silent recording
// has nothing to scale against and comes out all zero.
//
// With flatten set, the dynamics are collapsed to on/off: windows that
// normalized to zero stay zero, every other window becomes 255. Rhythm and
// melody survive, volume changes do not.
func NormalizeLoudness(frames []spectral.Frame, maxDuty int, flatten bool) []int {
	levels := make([]int, len(frames))
	if len(frames) == 0 {
		return levels
	}

	compressed := make([]float64, len(frames))
	for i, f := range frames {
		compressed[i] = math.Log(f.Magnitude + 1)
	}

	peak := floats.Max(compressed)
	if peak > 0 {
		for i, c := range compressed {
			levels[i] = int(c / peak * float64(maxDuty))
		}
	}

	if flatten {
		for i, lv := range levels {
			if lv > 0 {
				levels[i] = flattenLevel
			}
		}
	}

	return levels
}
