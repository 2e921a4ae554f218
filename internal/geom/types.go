package geom

// Point is an (x, y) coordinate pair. In geographic space x is longitude
// and y is latitude; in tile space both are tile-local units.
type Point struct {
	X float64
	Y float64
}

// Ring is one boundary curve of a polygon. Rings are expected to be closed
// (first and last vertex equal); nothing here enforces it.
type Ring []Point

// Polygon is a sequence of rings: outer boundary first, holes after,
// per the GeoJSON convention. Validity is not checked.
type Polygon []Ring

// Geometry is the closed set of geometry variants a feature can carry.
// Dispatch is by type switch; variants a caller does not handle are
// unsupported, not an error.
type Geometry interface {
	geometry()
}

type MultiPoint []Point

type LineString []Point

type MultiLineString [][]Point

type MultiPolygon []Polygon

type GeometryCollection []Geometry

func (Point) geometry()              {}
func (MultiPoint) geometry()         {}
func (LineString) geometry()         {}
func (MultiLineString) geometry()    {}
func (Polygon) geometry()            {}
func (MultiPolygon) geometry()       {}
func (GeometryCollection) geometry() {}

// BBox is an axis-aligned bounding box in the same space as its points.
type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows the box to cover p; n is the number of points already
// covered, so the first point snaps the box instead of merging with zero.
func (b *BBox) Extend(p Point, n int) {
	if n == 0 {
		*b = BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
		return
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
}

// Valid reports whether the box spans a non-degenerate area.
func (b BBox) Valid() bool {
	return b.MaxX > b.MinX && b.MaxY > b.MinY
}
