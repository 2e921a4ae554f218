package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTileAt(t *testing.T) {
	require.Equal(t, TileID{Z: 0, X: 0, Y: 0}, TileAt(Point{0, 0}, 0))
	require.Equal(t, TileID{Z: 1, X: 0, Y: 0}, TileAt(Point{-90, 45}, 1))
	require.Equal(t, TileID{Z: 1, X: 1, Y: 1}, TileAt(Point{90, -45}, 1))
	// clamped at the poles/antimeridian
	require.Equal(t, uint32(0), TileAt(Point{-180, 85}, 4).X)
	require.Equal(t, uint32(15), TileAt(Point{179.9999, 0}, 4).X)
}

func TestTileCenterZ0(t *testing.T) {
	id := TileID{Z: 0, X: 0, Y: 0}
	center := id.ToLonLat(Point{TileExtent / 2, TileExtent / 2})
	require.InDelta(t, 0, center.X, 1e-9)
	require.InDelta(t, 0, center.Y, 1e-9)
}

func TestTileRoundTrip(t *testing.T) {
	pts := []Point{
		{0, 0},
		{13.4, 52.5},     // Berlin
		{-122.42, 37.77}, // San Francisco
		{151.2, -33.87},  // Sydney
		{-0.12, 51.5},    // London
	}
	for _, z := range []uint8{0, 1, 4, 8, 14} {
		for _, p := range pts {
			id := TileAt(p, z)
			local := id.FromLonLat(p)
			require.GreaterOrEqual(t, local.X, 0.0)
			require.Less(t, local.X, float64(TileExtent)+1e-6)
			back := id.ToLonLat(local)
			require.InDelta(t, p.X, back.X, 1e-6, "lon at z=%d", z)
			require.InDelta(t, p.Y, back.Y, 1e-6, "lat at z=%d", z)
		}
	}
}

func TestConvertGeometryPoint(t *testing.T) {
	id := TileID{Z: 0, X: 0, Y: 0}
	center := Point{TileExtent / 2, TileExtent / 2}

	g := ConvertGeometry(NewPointFeature(center), id)
	p, ok := g.(Point)
	require.True(t, ok, "single coordinate converts to Point, got %T", g)
	require.InDelta(t, 0, p.X, 1e-9)

	g = ConvertGeometry(NewPointFeature(center, Point{0, center.Y}), id)
	mp, ok := g.(MultiPoint)
	require.True(t, ok, "several coordinates convert to MultiPoint, got %T", g)
	require.Len(t, mp, 2)
	require.InDelta(t, -180, mp[1].X, 1e-9)
}

func TestConvertGeometryOtherKinds(t *testing.T) {
	id := TileID{Z: 0, X: 0, Y: 0}
	run := []Point{{0, 0}, {100, 100}}

	g := ConvertGeometry(TileFeature{Kind: FeatureTypeLineString, Runs: [][]Point{run}}, id)
	_, ok := g.(LineString)
	require.True(t, ok, "got %T", g)

	g = ConvertGeometry(TileFeature{Kind: FeatureTypeLineString, Runs: [][]Point{run, run}}, id)
	_, ok = g.(MultiLineString)
	require.True(t, ok, "got %T", g)

	g = ConvertGeometry(TileFeature{Kind: FeatureTypePolygon, Runs: [][]Point{run}}, id)
	_, ok = g.(Polygon)
	require.True(t, ok, "got %T", g)

	require.Nil(t, ConvertGeometry(TileFeature{Kind: FeatureTypeUnknown}, id))
}

func TestFeatureTypeString(t *testing.T) {
	require.Equal(t, "Point", FeatureTypePoint.String())
	require.Equal(t, "Unknown", FeatureTypeUnknown.String())
}
