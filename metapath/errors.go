// SPDX-License-Identifier: MIT

package metapath

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedMetapath marks a metapath whose repeat structure has no
	// exact multiplication strategy.
	ErrUnsupportedMetapath = errors.New("metapath: unsupported metapath")

	// ErrTooManyOverlappingRepeats is returned when more than two repeated
	// metanode types overlap.
	ErrTooManyOverlappingRepeats = fmt.Errorf("%w: only two overlapping repeats are supported", ErrUnsupportedMetapath)

	// ErrMetapathTooComplex is returned for overlapping repeats spanning more
	// than five metanodes.
	ErrMetapathTooComplex = fmt.Errorf("%w: overlapping repeats longer than five metanodes are not supported", ErrUnsupportedMetapath)
)
