package geom

import "math"

// TileExtent is the number of tile-local units along one tile edge.
const TileExtent = 8192

// TileID identifies a tile in the standard z/x/y web-mercator scheme.
// It fixes the reprojection from tile-local units to longitude/latitude.
type TileID struct {
	Z uint8
	X uint32
	Y uint32
}

// ToLonLat reprojects a tile-local point into geographic coordinates.
func (id TileID) ToLonLat(p Point) Point {
	size := TileExtent * math.Exp2(float64(id.Z))
	x0 := TileExtent * float64(id.X)
	y0 := TileExtent * float64(id.Y)
	y2 := 180 - (p.Y+y0)*360/size
	return Point{
		X: (p.X+x0)*360/size - 180,
		Y: 360/math.Pi*math.Atan(math.Exp(y2*math.Pi/180)) - 90,
	}
}

// FromLonLat is the inverse of ToLonLat: it projects a geographic point
// into this tile's local units. Points outside the tile produce coordinates
// outside [0, TileExtent).
func (id TileID) FromLonLat(p Point) Point {
	size := TileExtent * math.Exp2(float64(id.Z))
	x0 := TileExtent * float64(id.X)
	y0 := TileExtent * float64(id.Y)
	y2 := 180 / math.Pi * math.Log(math.Tan((p.Y+90)*math.Pi/360))
	return Point{
		X: (p.X+180)*size/360 - x0,
		Y: (180-y2)*size/360 - y0,
	}
}

// TileAt returns the tile containing the geographic point p at zoom z.
// Longitude is clamped into the valid tile range at the antimeridian.
func TileAt(p Point, z uint8) TileID {
	n := math.Exp2(float64(z))
	x := math.Floor((p.X + 180) / 360 * n)
	y2 := 180 / math.Pi * math.Log(math.Tan((p.Y+90)*math.Pi/360))
	y := math.Floor((180 - y2) / 360 * n)
	clamp := func(v float64) uint32 {
		if v < 0 {
			return 0
		}
		if v > n-1 {
			return uint32(n - 1)
		}
		return uint32(v)
	}
	return TileID{Z: z, X: clamp(x), Y: clamp(y)}
}

// FeatureType is the geometry kind a tile feature declares for itself.
type FeatureType int

const (
	FeatureTypeUnknown FeatureType = iota
	FeatureTypePoint
	FeatureTypeLineString
	FeatureTypePolygon
)

func (t FeatureType) String() string {
	switch t {
	case FeatureTypePoint:
		return "Point"
	case FeatureTypeLineString:
		return "LineString"
	case FeatureTypePolygon:
		return "Polygon"
	}
	return "Unknown"
}

// Feature is a read-only view of one rendered feature's tile-local
// geometry. Implementations are owned by the caller and never retained.
type Feature interface {
	Type() FeatureType
	// Geometry returns the raw coordinate runs: one run per point cluster,
	// line, or ring depending on Type.
	Geometry() [][]Point
}

// TileFeature is the trivial in-memory Feature used by the tools and tests.
type TileFeature struct {
	Kind FeatureType
	Runs [][]Point
}

func (f TileFeature) Type() FeatureType   { return f.Kind }
func (f TileFeature) Geometry() [][]Point { return f.Runs }

// NewPointFeature wraps tile-local points as a point-kind feature.
func NewPointFeature(pts ...Point) TileFeature {
	return TileFeature{Kind: FeatureTypePoint, Runs: [][]Point{pts}}
}

// ConvertGeometry reprojects a feature's tile-local coordinate runs through
// id and shapes them into the Geometry variant matching the feature's
// declared kind. A point feature with a single coordinate becomes a Point;
// with several, a MultiPoint. Unknown kinds yield a nil Geometry.
func ConvertGeometry(f Feature, id TileID) Geometry {
	runs := f.Geometry()
	switch f.Type() {
	case FeatureTypePoint:
		var pts []Point
		for _, run := range runs {
			for _, p := range run {
				pts = append(pts, id.ToLonLat(p))
			}
		}
		if len(pts) == 1 {
			return pts[0]
		}
		return MultiPoint(pts)
	case FeatureTypeLineString:
		if len(runs) == 1 {
			return LineString(projectRun(runs[0], id))
		}
		m := make(MultiLineString, 0, len(runs))
		for _, run := range runs {
			m = append(m, projectRun(run, id))
		}
		return m
	case FeatureTypePolygon:
		poly := make(Polygon, 0, len(runs))
		for _, run := range runs {
			poly = append(poly, Ring(projectRun(run, id)))
		}
		return poly
	}
	return nil
}

func projectRun(run []Point, id TileID) []Point {
	out := make([]Point, 0, len(run))
	for _, p := range run {
		out = append(out, id.ToLonLat(p))
	}
	return out
}
