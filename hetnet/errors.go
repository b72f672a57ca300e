// SPDX-License-Identifier: MIT

package hetnet

import "errors"

// Sentinel errors for schema parsing and graph mutation.
// Every message is prefixed with "hetnet:" for easy grepping; callers match
// with errors.Is.
var (
	// ErrUnknownMetanode indicates a metanode name or abbreviation not present
	// in the metagraph.
	ErrUnknownMetanode = errors.New("hetnet: unknown metanode")

	// ErrUnknownMetaedge indicates an edge kind/direction/endpoint combination
	// not present in the metagraph.
	ErrUnknownMetaedge = errors.New("hetnet: unknown metaedge")

	// ErrBadAbbreviation indicates a metapath abbreviation that does not
	// tokenize into alternating metanode / metaedge symbols.
	ErrBadAbbreviation = errors.New("hetnet: malformed metapath abbreviation")

	// ErrDisconnectedMetaPath indicates consecutive metaedges whose target and
	// source metanodes differ.
	ErrDisconnectedMetaPath = errors.New("hetnet: metaedges do not chain")

	// ErrEmptyMetaPath indicates a metapath with no metaedges.
	ErrEmptyMetaPath = errors.New("hetnet: metapath has no edges")

	// ErrDuplicateAbbrev indicates two metanodes sharing an abbreviation.
	ErrDuplicateAbbrev = errors.New("hetnet: duplicate abbreviation")

	// ErrBadDirection indicates a direction other than both/forward/backward,
	// or a directed kind between two different metanodes.
	ErrBadDirection = errors.New("hetnet: invalid edge direction")

	// ErrEmptyIdentifier indicates a node with an empty identifier.
	ErrEmptyIdentifier = errors.New("hetnet: node identifier is empty")

	// ErrDuplicateNode indicates a second node with the same (metanode, identifier).
	ErrDuplicateNode = errors.New("hetnet: duplicate node")

	// ErrNodeNotFound indicates an edge endpoint that was never added.
	ErrNodeNotFound = errors.New("hetnet: node not found")

	// ErrDuplicateEdge indicates a parallel edge on the same metaedge.
	ErrDuplicateEdge = errors.New("hetnet: duplicate edge")

	// ErrNilGraph indicates a nil *Graph argument.
	ErrNilGraph = errors.New("hetnet: graph is nil")
)
