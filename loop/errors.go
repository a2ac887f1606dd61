// SPDX-License-Identifier: EPL-2.0

package loop

import "errors"

// ErrEmptyBuffer is returned by Store.Load for a buffer without frames.
var ErrEmptyBuffer = errors.New("loop: buffer has no frames")
