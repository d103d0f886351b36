// SPDX-License-Identifier: EPL-2.0

package tone

// Event is one playable tone: hold the PWM generator at one frequency bucket
// and duty-cycle level for a duration.
//
// Duration is counted in hardware timer ticks of 100 ns and is always a
// whole multiple of the profile's base window duration. Bucket indexes the
// profile's frequency table (0 is the highest band) and fits a 4-bit field;
// Level is the duty-cycle value and fits an 8-bit field.
type Event struct {
	Duration uint32
	Bucket   int
	Level    int
}
