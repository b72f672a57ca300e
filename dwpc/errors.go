// SPDX-License-Identifier: MIT

package dwpc

import "errors"

var (
	// ErrUnknownNode indicates a diffusion weight keyed by an identifier that
	// is not a node of the metapath's source metanode.
	ErrUnknownNode = errors.New("dwpc: unknown source node")

	// ErrNilSource indicates a nil Source or metapath argument.
	ErrNilSource = errors.New("dwpc: source or metapath is nil")
)
