// SPDX-License-Identifier: EPL-2.0

package export

import "errors"

var (
	ErrNoEvents    = errors.New("no events to export")
	ErrBucketRange = errors.New("frequency bucket exceeds 4-bit field")
	ErrLevelRange  = errors.New("loudness level exceeds 8-bit field")
)
