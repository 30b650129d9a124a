// SPDX-License-Identifier: MIT

package generator

import "errors"

// ErrBadSize indicates a negative vector count or a dimension below one.
var ErrBadSize = errors.New("generator: invalid size")
