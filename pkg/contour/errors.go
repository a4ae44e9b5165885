package contour

import "fmt"

// InvariantError reports the one failure class the engine recognizes: the
// ring walk found a broken next link or an inconsistent ring leader. Per
// spec.md 7, this must not occur for any valid raster - it is an
// assertion failure, surfaced as a returned error rather than a panic,
// naming the offending segment's endpoints, direction, and the
// declared-vs-expected ring leader.
type InvariantError struct {
	Start, End    Point
	Direction     Direction
	DeclaredIndex int
	ExpectedIndex int
	Reason        string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf(
		"contour: invariant violation: segment <%v -> %v> dir=%s: %s (declared ring leader #%d, expected #%d)",
		e.Start, e.End, e.Direction, e.Reason, e.DeclaredIndex, e.ExpectedIndex,
	)
}
