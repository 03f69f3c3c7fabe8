// SPDX-License-Identifier: MIT

package geom

import "errors"

// ErrZeroVector indicates a direction vector of zero length where a
// direction is required (e.g., a wedge arm passed to NewBisector).
var ErrZeroVector = errors.New("geom: zero-length vector")
