package cfg

import (
	"rastercontour/pkg/contour"
)

// DefaultSimplifyTolerance is the Visvalingam-Whyatt triangle-area
// threshold cmd/contourtool passes to simplify.Contour - raise it for
// coarser, smaller output rings. The simplify package has no default of
// its own and always takes the tolerance as an argument.
var DefaultSimplifyTolerance = 10.0

// DefaultPixelOrigin is the Params.PixelOrigin cmd/contourtool passes to
// contour.Find. contour.Find does not read it: a Params whose PixelOrigin
// is left unset uses contour.OriginCenter.
var DefaultPixelOrigin = contour.OriginCenter

// DefaultJoinStraightSegments is the Params.JoinStraightSegments
// cmd/contourtool passes to contour.Find, merging consecutive collinear
// segments into a single ring edge. contour.Find does not read it: a
// Params whose JoinStraightSegments is left unset does not merge.
var DefaultJoinStraightSegments = true
