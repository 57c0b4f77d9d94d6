// SPDX-License-Identifier: MIT

package transform

import (
	"errors"
	"fmt"
)

// ErrBadFrustum indicates perspective parameters that cannot form a
// projection: a non-positive aspect ratio, equal near and far planes, or a
// field of view whose half-angle tangent is zero.
var ErrBadFrustum = errors.New("transform: invalid frustum")

const opPerspective = "LeftHandedPerspective"

// transformErrorf wraps err with an operation tag. Use only when err != nil.
func transformErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
