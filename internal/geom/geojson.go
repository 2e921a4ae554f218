package geom

import (
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/pkg/errors"
)

// PolygonFromGeoJSON extracts the ring structure of a GeoJSON Polygon
// geometry. The second return is false when g is not a Polygon or a ring
// coordinate is malformed (fewer than two ordinates).
func PolygonFromGeoJSON(g *geojson.Geometry) (Polygon, bool) {
	if g == nil || !g.IsPolygon() {
		return nil, false
	}
	poly := make(Polygon, 0, len(g.Polygon))
	for _, ring := range g.Polygon {
		r := make(Ring, 0, len(ring))
		for _, c := range ring {
			if len(c) < 2 {
				return nil, false
			}
			r = append(r, Point{X: c[0], Y: c[1]})
		}
		poly = append(poly, r)
	}
	return poly, true
}

// Candidate is one test feature for the containment tools: a geographic
// point plus whatever label its source carried.
type Candidate struct {
	Point Point
	Name  string
}

// LoadFeaturePoints reads Point and MultiPoint features from a GeoJSON
// file: a FeatureCollection, a single Feature, or a bare geometry.
// Non-point geometries in the file are skipped.
func LoadFeaturePoints(path string) ([]Candidate, BBox, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, BBox{}, errors.Wrapf(err, "read %s", path)
	}
	var out []Candidate
	var bbox BBox
	add := func(c []float64, name string) {
		if len(c) < 2 {
			return
		}
		p := Point{X: c[0], Y: c[1]}
		bbox.Extend(p, len(out))
		out = append(out, Candidate{Point: p, Name: name})
	}
	addGeometry := func(g *geojson.Geometry, name string) {
		if g == nil {
			return
		}
		switch {
		case g.IsPoint():
			add(g.Point, name)
		case g.IsMultiPoint():
			for _, c := range g.MultiPoint {
				add(c, name)
			}
		}
	}

	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil && len(fc.Features) > 0 {
		for _, f := range fc.Features {
			addGeometry(f.Geometry, featureName(f))
		}
	} else if f, err := geojson.UnmarshalFeature(data); err == nil && f.Geometry != nil {
		addGeometry(f.Geometry, featureName(f))
	} else {
		g, err := geojson.UnmarshalGeometry(data)
		if err != nil {
			return nil, BBox{}, errors.Wrapf(err, "decode %s", path)
		}
		addGeometry(g, "")
	}
	if len(out) == 0 {
		return nil, BBox{}, errors.Errorf("%s: no point features found", path)
	}
	return out, bbox, nil
}

func featureName(f *geojson.Feature) string {
	for _, key := range []string{"name", "id", "title"} {
		if s, err := f.PropertyString(key); err == nil && s != "" {
			return s
		}
	}
	return ""
}
