package meshio

import "errors"

var (
	// ErrInvalidVertex is returned when a "v" line carries fewer than three
	// fields or one of its first three fields is not a parseable float.
	ErrInvalidVertex = errors.New("meshio: invalid vertex record")

	// ErrInvalidFace is returned when a three-index "f" line has an index
	// that fails to parse or is not positive. Face lines with other than
	// three indices are skipped, not reported.
	ErrInvalidFace = errors.New("meshio: invalid face record")
)
