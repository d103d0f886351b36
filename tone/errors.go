// SPDX-License-Identifier: EPL-2.0

package tone

import "errors"

var (
	ErrLengthMismatch = errors.New("bucket and level sequences differ in length")
)
