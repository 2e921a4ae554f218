package geom

// IsLeft returns a signed scalar placing p2 relative to the directed edge
// p0->p1: positive when strictly left, negative when strictly right, zero
// when collinear.
func IsLeft(p0, p1, p2 Point) float64 {
	return (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
}

// PointInPolygon classifies pt against poly with the winding number
// algorithm (http://geomalgorithms.com/a03-_inclusion.html#wn_PnPoly).
//
// Every ring contributes to a single winding count and a non-zero count
// after any ring short-circuits to "inside". Hole rings are therefore never
// subtracted: a point inside a hole still reports inside. Callers relying on
// proper hole semantics must not use this function.
//
// Points exactly on a boundary edge fall to the strict-inequality
// tie-breaks below; whether they test inside depends on the edge direction.
func PointInPolygon(pt Point, poly Polygon) bool {
	wn := 0
	for _, ring := range poly {
		// walk consecutive edges; the final vertex is expected to repeat
		// the first, so there is no wrap-around edge
		for i := 0; i+1 < len(ring); i++ {
			if ring[i].Y <= pt.Y {
				if ring[i+1].Y > pt.Y { // upward crossing
					if IsLeft(ring[i], ring[i+1], pt) > 0 {
						wn++
					}
				}
			} else {
				if ring[i+1].Y <= pt.Y { // downward crossing
					if IsLeft(ring[i], ring[i+1], pt) < 0 {
						wn--
					}
				}
			}
		}
		if wn != 0 {
			return true
		}
	}
	return false
}
