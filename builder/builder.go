// File: builder.go
// Role: deterministic edge scripts (Script, EdgeInserter, Apply) and
//       sentinel errors shared by the topology constructors.

package builder

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors returned by the constructors.
var (
	// ErrTooFewVertices indicates a size below the topology's minimum.
	ErrTooFewVertices = errors.New("builder: too few vertices")

	// ErrTooFewPaths indicates a theta graph with fewer than two paths.
	ErrTooFewPaths = errors.New("builder: theta needs at least two paths")

	// ErrBadLength indicates a non-positive path length.
	ErrBadLength = errors.New("builder: path length must be positive")
)

// Script is a deterministic edge-insertion sequence: same script, same
// replay order, same resulting structure.
type Script [][2]string

// EdgeInserter consumes a script one edge at a time. Both bctree.Tree and
// spqr.Forest satisfy it.
type EdgeInserter interface {
	InsertEdge(from, to string) (string, error)
}

// Apply replays the script into dst, stopping at the first error.
func Apply(dst EdgeInserter, s Script) error {
	for i, e := range s {
		if _, err := dst.InsertEdge(e[0], e[1]); err != nil {
			return fmt.Errorf("builder: Apply step %d (%s-%s): %w", i, e[0], e[1], err)
		}
	}

	return nil
}

// v formats the canonical vertex ID for index i: "v0", "v1", ...
func v(i int) string {
	return "v" + strconv.Itoa(i)
}
