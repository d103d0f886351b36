// SPDX-License-Identifier: EPL-2.0

package tone

// Compress merges consecutive windows that share a (bucket, level) pair into
// single events. Each event's duration is base times the run length, so the
// total duration of the output always equals base times the window count:
// compression changes the event count, never the playing time.
//
// buckets and levels are the parallel per-window sequences from the
// quantizer and the normalizer; they must be the same length.
func Compress(base uint32, buckets, levels []int) ([]Event, error) {
	if len(buckets) != len(levels) {
		return nil, ErrLengthMismatch
	}
	if len(buckets) == 0 {
		return nil, nil
	}

	events := []Event{}

	runStart := 0
	for i := 1; i < len(buckets); i++ {
		if buckets[i] != buckets[runStart] || levels[i] != levels[runStart] {
			events = append(events, Event{
				Duration: base * uint32(i-runStart),
				Bucket:   buckets[runStart],
				Level:    levels[runStart],
			})
			runStart = i
		}
	}

	// The last run always closes at the end of the recording
	events = append(events, Event{
		Duration: base * uint32(len(buckets)-runStart),
		Bucket:   buckets[runStart],
		Level:    levels[runStart],
	})

	return events, nil
}

// Expand is the inverse of Compress: it replays each event as
// Duration/base windows of its (bucket, level) pair. Compress followed by
// Expand reproduces the input sequences exactly.
func Expand(events []Event, base uint32) (buckets, levels []int) {
	if base == 0 {
		return nil, nil
	}

	for _, ev := range events {
		n := int(ev.Duration / base)
		for i := 0; i < n; i++ {
			buckets = append(buckets, ev.Bucket)
			levels = append(levels, ev.Level)
		}
	}

	return buckets, levels
}
