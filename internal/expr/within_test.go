package expr

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"mapexpr/internal/geom"
)

const squareExpr = `["within", {"type": "Polygon",
	"coordinates": [[[0, 0], [4, 0], [4, 4], [0, 4], [0, 0]]]}]`

func parseWithin(t *testing.T, src string) (*Within, *ParsingContext, error) {
	t.Helper()
	ctx := &ParsingContext{}
	node, err := ParseWithin(gjson.Parse(src), ctx)
	return node, ctx, err
}

// countingObserver records warnings for assertion.
type countingObserver struct {
	msgs []string
}

func (o *countingObserver) Warn(msg string) { o.msgs = append(o.msgs, msg) }

// pointCtx builds an evaluation context for one geographic point at zoom 0.
func pointCtx(p geom.Point, obs Observer) EvaluationContext {
	id := geom.TileAt(p, 0)
	f := geom.NewPointFeature(id.FromLonLat(p))
	return EvaluationContext{Feature: f, Canonical: &id, Observer: obs}
}

func TestParseWithin(t *testing.T) {
	node, ctx, err := parseWithin(t, squareExpr)
	require.NoError(t, err)
	require.NotNil(t, node)
	require.Empty(t, ctx.Errors())
	require.Equal(t, "within", node.Operator())
	require.True(t, node.GeoJSON().IsPolygon())
}

func TestParseWithinWrongGeometryType(t *testing.T) {
	node, ctx, err := parseWithin(t,
		`["within", {"type": "LineString", "coordinates": [[0, 0], [1, 1]]}]`)
	require.Nil(t, node)
	require.EqualError(t, err,
		"'Within' expression requires valid geojson source that contains polygon geometry type.")
	require.Len(t, ctx.Errors(), 1)
}

func TestParseWithinMissingType(t *testing.T) {
	node, _, err := parseWithin(t, `["within", {"coordinates": []}]`)
	require.Nil(t, node)
	require.EqualError(t, err,
		"'Within' expression requires valid geojson source that contains polygon geometry type.")
}

func TestParseWithinArity(t *testing.T) {
	node, _, err := parseWithin(t,
		`["within", {"type": "Polygon", "coordinates": []}, {"type": "Polygon", "coordinates": []}]`)
	require.Nil(t, node)
	require.EqualError(t, err,
		"'Within' expression requires exactly one argument, but found 2 instead.")

	node, _, err = parseWithin(t, `["within"]`)
	require.Nil(t, node)
	require.EqualError(t, err,
		"'Within' expression requires exactly one argument, but found 0 instead.")
}

func TestParseWithinNotArray(t *testing.T) {
	node, ctx, err := parseWithin(t, `{"type": "Polygon", "coordinates": []}`)
	require.Nil(t, node)
	require.Error(t, err)
	require.NotEmpty(t, ctx.Errors())
}

func TestParseWithinConversionError(t *testing.T) {
	// schema check passes, the geojson decoder fails on the coordinates
	node, _, err := parseWithin(t, `["within", {"type": "Polygon", "coordinates": "oops"}]`)
	require.Nil(t, node)
	require.Error(t, err)
	require.NotContains(t, err.Error(), "requires valid geojson source",
		"converter message passes through verbatim")
}

func TestEvaluatePoint(t *testing.T) {
	node, _, err := parseWithin(t, squareExpr)
	require.NoError(t, err)

	require.True(t, node.Evaluate(pointCtx(geom.Point{X: 2, Y: 2}, nil)))
	require.False(t, node.Evaluate(pointCtx(geom.Point{X: 5, Y: 5}, nil)))
	require.False(t, node.Evaluate(pointCtx(geom.Point{X: -10, Y: 2}, nil)))
}

func TestEvaluateMultiPoint(t *testing.T) {
	node, _, err := parseWithin(t, squareExpr)
	require.NoError(t, err)

	id := geom.TileID{Z: 0, X: 0, Y: 0}
	local := func(p geom.Point) geom.Point { return id.FromLonLat(p) }

	allIn := geom.NewPointFeature(local(geom.Point{X: 1, Y: 1}), local(geom.Point{X: 3, Y: 3}))
	require.True(t, node.Evaluate(EvaluationContext{Feature: allIn, Canonical: &id}))

	oneOut := geom.NewPointFeature(local(geom.Point{X: 1, Y: 1}), local(geom.Point{X: 9, Y: 9}))
	require.False(t, node.Evaluate(EvaluationContext{Feature: oneOut, Canonical: &id}))

	empty := geom.NewPointFeature()
	require.False(t, node.Evaluate(EvaluationContext{Feature: empty, Canonical: &id}),
		"empty multi-point is outside")
}

func TestEvaluateMissingContext(t *testing.T) {
	node, _, err := parseWithin(t, squareExpr)
	require.NoError(t, err)

	obs := &countingObserver{}
	id := geom.TileID{Z: 0, X: 0, Y: 0}

	require.False(t, node.Evaluate(EvaluationContext{Canonical: &id, Observer: obs}))
	f := geom.NewPointFeature(geom.Point{X: 1, Y: 1})
	require.False(t, node.Evaluate(EvaluationContext{Feature: f, Observer: obs}))
	require.Empty(t, obs.msgs, "missing context is silent")
}

func TestEvaluateUnsupportedGeometry(t *testing.T) {
	node, _, err := parseWithin(t, squareExpr)
	require.NoError(t, err)

	obs := &countingObserver{}
	id := geom.TileID{Z: 0, X: 0, Y: 0}
	line := geom.TileFeature{Kind: geom.FeatureTypeLineString, Runs: [][]geom.Point{{{X: 0, Y: 0}, {X: 10, Y: 10}}}}

	require.False(t, node.Evaluate(EvaluationContext{Feature: line, Canonical: &id, Observer: obs}))
	require.Equal(t, []string{"Within expression currently only support 'Point' geometry type"}, obs.msgs)
}

func TestSerialize(t *testing.T) {
	node, _, err := parseWithin(t, squareExpr)
	require.NoError(t, err)

	out := node.Serialize()
	require.Len(t, out, 2)
	require.Equal(t, "within", out[0])
	src, ok := out[1].(string)
	require.True(t, ok)
	require.Equal(t, "Polygon", gjson.Get(src, "type").String())
}

func TestSerializeRoundTrip(t *testing.T) {
	node, _, err := parseWithin(t, squareExpr)
	require.NoError(t, err)

	data, err := json.Marshal(node.Serialize())
	require.NoError(t, err)
	reparsed, _, err := parseWithin(t, string(data))
	require.NoError(t, err)

	for _, p := range []geom.Point{{X: 2, Y: 2}, {X: 5, Y: 5}, {X: 0, Y: 2}, {X: 4, Y: 2}} {
		ctx := pointCtx(p, nil)
		require.Equal(t, node.Evaluate(ctx), reparsed.Evaluate(ctx), "point %+v", p)
	}
	require.Equal(t, node.Evaluate(EvaluationContext{}), reparsed.Evaluate(EvaluationContext{}))
}
