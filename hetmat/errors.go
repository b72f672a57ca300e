// SPDX-License-Identifier: MIT

package hetmat

import "errors"

// Sentinel errors. Every message is prefixed with "hetmat:"; callers match
// with errors.Is.
var (
	// ErrMatrixNotFound indicates that no file exists for a matrix in any of
	// the requested formats.
	ErrMatrixNotFound = errors.New("hetmat: matrix file not found")

	// ErrUnknownFormat indicates a format that cannot be inferred from a path
	// or is not supported.
	ErrUnknownFormat = errors.New("hetmat: unknown matrix format")

	// ErrExists indicates an attempt to overwrite a write-once file or
	// directory.
	ErrExists = errors.New("hetmat: already exists")

	// ErrNotHetMat indicates a directory without metagraph.json.
	ErrNotHetMat = errors.New("hetmat: not a hetmat directory")

	// ErrMalformedFile indicates a TSV file that does not match its format.
	ErrMalformedFile = errors.New("hetmat: malformed file")

	// ErrNoMetaGraph indicates use of a HetMat whose metagraph was never
	// written.
	ErrNoMetaGraph = errors.New("hetmat: metagraph not set")
)
