package expr

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	"github.com/tidwall/gjson"

	"mapexpr/internal/geom"
)

const operatorWithin = "within"

// Within is the containment predicate of the style expression language:
// it holds a reference GeoJSON polygon and reports whether a feature's
// geometry lies inside it. The node is immutable after parsing, so
// concurrent Evaluate calls are safe.
type Within struct {
	source *geojson.Geometry
}

// pointsWithinPolygon adapts the feature's geometry to the point-in-polygon
// test. Point delegates directly; MultiPoint requires every point inside
// (an empty collection is outside); all other variants are unsupported and
// test outside. A non-Polygon source also tests outside.
func pointsWithinPolygon(f geom.Feature, id geom.TileID, source *geojson.Geometry) bool {
	polygon, ok := geom.PolygonFromGeoJSON(source)
	if !ok {
		return false
	}
	switch g := geom.ConvertGeometry(f, id).(type) {
	case geom.Point:
		return geom.PointInPolygon(g, polygon)
	case geom.MultiPoint:
		result := false
		for _, p := range g {
			result = geom.PointInPolygon(p, polygon)
			if !result {
				return false
			}
		}
		return result
	default:
		return false
	}
}

// parsePolygonValue validates and converts the expression's polygon
// argument. The serialized form carries the GeoJSON as a string, so string
// values are unwrapped before the object check.
func parsePolygonValue(value gjson.Result, ctx *ParsingContext) (*geojson.Geometry, error) {
	if value.Type == gjson.String {
		value = gjson.Parse(value.String())
	}
	if value.IsObject() {
		if t := value.Get("type"); t.Exists() && t.String() == "Polygon" {
			g, err := geojson.UnmarshalGeometry([]byte(value.Raw))
			if err != nil {
				return nil, ctx.Error(err.Error())
			}
			return g, nil
		}
	}
	return nil, ctx.Error("'Within' expression requires valid geojson source that contains polygon geometry type.")
}

// ParseWithin constructs a Within node from the configuration value
// ["within", <polygon geojson>]. All failures are recorded in ctx and
// returned; no node is constructed on any failure.
func ParseWithin(value gjson.Result, ctx *ParsingContext) (*Within, error) {
	if !value.IsArray() {
		return nil, ctx.Error("'Within' expression requires an array with the operator and one argument.")
	}
	args := value.Array()
	if len(args) != 2 {
		return nil, ctx.Error(fmt.Sprintf(
			"'Within' expression requires exactly one argument, but found %d instead.", len(args)-1))
	}
	source, err := parsePolygonValue(args[1], ctx)
	if err != nil {
		return nil, err
	}
	return &Within{source: source}, nil
}

// Evaluate reports whether the feature in ctx lies within the stored
// polygon. A missing feature or tile id yields false silently; a feature
// of any kind other than Point yields false with one warning through the
// observer. Evaluate never fails.
func (w *Within) Evaluate(ctx EvaluationContext) bool {
	if ctx.Feature == nil || ctx.Canonical == nil {
		return false
	}
	if ctx.Feature.Type() == geom.FeatureTypePoint {
		return pointsWithinPolygon(ctx.Feature, *ctx.Canonical, w.source)
	}
	ctx.warn("Within expression currently only support 'Point' geometry type")
	return false
}

// Serialize produces the configuration form [operator, geojson-string].
// The output is semantically equivalent to the parsed input, not
// byte-identical.
func (w *Within) Serialize() []any {
	data, err := w.source.MarshalJSON()
	if err != nil {
		return []any{operatorWithin}
	}
	return []any{operatorWithin, string(data)}
}

// Operator returns the expression's operator tag.
func (w *Within) Operator() string { return operatorWithin }

// GeoJSON exposes the stored polygon source for read-only use.
func (w *Within) GeoJSON() *geojson.Geometry { return w.source }
