// Package fbxerr defines the sentinel error taxonomy for fbxkit. Parse
// failures wrap one of these with fmt.Errorf("...: %w", sentinel) so callers
// can test with errors.Is; recoverable anomalies are additionally recorded on
// a diagnostic.Sink rather than aborting the read.
package fbxerr

import "errors"

var (
	// BadMagic is returned when the header or footer magic bytes do not match.
	BadMagic = errors.New("fbx: bad magic")
	// UnsupportedVersion is returned when the file version exceeds the configured maximum.
	UnsupportedVersion = errors.New("fbx: unsupported version")
	// Truncated is returned when the stream ends before the expected number of bytes.
	Truncated = errors.New("fbx: truncated stream")
	// BadPropertyTag is returned for an unrecognized property tag byte.
	BadPropertyTag = errors.New("fbx: bad property tag")
	// DecompressMismatch is returned when an inflated array's length differs from its header.
	DecompressMismatch = errors.New("fbx: decompressed length mismatch")
	// SizeInvariantViolated is returned when a node's computed size disagrees with its declared end_offset.
	SizeInvariantViolated = errors.New("fbx: size invariant violated")
	// BadConnection is a warning-class error: a connection references an unknown object id.
	BadConnection = errors.New("fbx: connection references unknown object id")
	// TypeMismatch is a warning-class error: a typed accessor was requested on a property of a different tag.
	TypeMismatch = errors.New("fbx: property type mismatch")
	// CountMismatch is a hard failure: deformation vertex counts are inconsistent.
	CountMismatch = errors.New("fbx: vertex count mismatch")
)
