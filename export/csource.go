// SPDX-License-Identifier: EPL-2.0

package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ik5/pwmtones/tone"
)

// WriteCSource renders events as a C array literal ready to be compiled into
// firmware:
//
//	int soundDataLen = 4;
//	int soundData[][3] = {
//	    {0x00002710,0x2,0xFF},{0x000003E8,0x0,0x7F},{0x00000BB8,0x5,0x00},
//	    {0x00001388,0x1,0x40}
//	};
//
// Each row is {duration, frequency bucket, duty level} in hex, three rows
// per line. Durations are 32-bit, buckets must fit 4 bits and levels 8 bits;
// events outside those ranges are rejected before anything is written.
func WriteCSource(w io.Writer, events []tone.Event) error {
	if len(events) == 0 {
		return ErrNoEvents
	}

	for i, ev := range events {
		if ev.Bucket < 0 || ev.Bucket > 15 {
			return fmt.Errorf("event %d: bucket %d: %w", i, ev.Bucket, ErrBucketRange)
		}
		if ev.Level < 0 || ev.Level > 255 {
			return fmt.Errorf("event %d: level %d: %w", i, ev.Level, ErrLevelRange)
		}
	}

	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "int soundDataLen = %d;\n", len(events))
	fmt.Fprint(bw, "int soundData[][3] = {\n    ")

	for i, ev := range events[:len(events)-1] {
		fmt.Fprintf(bw, "{0x%08X,0x%01X,0x%02X},", ev.Duration, ev.Bucket, ev.Level)
		if (i+1)%3 == 0 {
			fmt.Fprint(bw, "\n    ")
		}
	}

	last := events[len(events)-1]
	fmt.Fprintf(bw, "{0x%08X,0x%01X,0x%02X}\n};", last.Duration, last.Bucket, last.Level)

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}
