package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseWKTPoints(t *testing.T) {
	cands, bbox, err := ParseWKTPoints("POINT(13.4 52.5)")
	require.NoError(t, err)
	require.Len(t, cands, 1)
	require.Equal(t, Point{13.4, 52.5}, cands[0].Point)
	require.False(t, bbox.Valid(), "single point spans no area")

	cands, _, err = ParseWKTPoints("MULTIPOINT(1 1, 2 2, 3 3)")
	require.NoError(t, err)
	require.Len(t, cands, 3)

	cands, _, err = ParseWKTPoints("MULTIPOINT((1 1), (2 2))")
	require.NoError(t, err)
	require.Len(t, cands, 2)
	require.Equal(t, Point{2, 2}, cands[1].Point)
}

func TestParseWKTPointsRejects(t *testing.T) {
	_, _, err := ParseWKTPoints("")
	require.Error(t, err)

	_, _, err = ParseWKTPoints("POLYGON((0 0, 1 0, 1 1, 0 0))")
	require.ErrorContains(t, err, "only POINT and MULTIPOINT")

	_, _, err = ParseWKTPoints("CIRCLE(0 0, 5)")
	require.ErrorContains(t, err, "unsupported wkt type")

	_, _, err = ParseWKTPoints("POINT()")
	require.ErrorContains(t, err, "no coordinates")
}

func TestLoadCandidatesCSV(t *testing.T) {
	p := writeFile(t, "pts.csv", "name,latitude,longitude\nhq,52.5,13.4\nbad,x,y\nannex,52.6,13.5\n")
	cands, _, err := LoadCandidates(p)
	require.NoError(t, err)
	require.Len(t, cands, 2, "unparseable rows are skipped")
	require.Equal(t, "hq", cands[0].Name)
	require.Equal(t, Point{13.4, 52.5}, cands[0].Point)
}

func TestLoadCandidatesCSVNoColumns(t *testing.T) {
	p := writeFile(t, "pts.csv", "a,b\n1,2\n")
	_, _, err := LoadCandidates(p)
	require.ErrorContains(t, err, "columns not found")
}

func TestLoadCandidatesKML(t *testing.T) {
	p := writeFile(t, "pts.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2">
  <Document>
    <Placemark><name>hq</name><Point><coordinates>13.4,52.5,0</coordinates></Point></Placemark>
    <Placemark><name>no point</name></Placemark>
  </Document>
</kml>`)
	cands, _, err := LoadCandidates(p)
	require.NoError(t, err)
	require.Len(t, cands, 1)
	require.Equal(t, "hq", cands[0].Name)
	require.Equal(t, Point{13.4, 52.5}, cands[0].Point)
}

func TestLoadCandidatesWKT(t *testing.T) {
	p := writeFile(t, "pts.wkt", "MULTIPOINT(0 0, 1 1)")
	cands, _, err := LoadCandidates(p)
	require.NoError(t, err)
	require.Len(t, cands, 2)
}

func TestLoadCandidatesUnsupported(t *testing.T) {
	_, _, err := LoadCandidates("data.shp")
	require.ErrorContains(t, err, "unsupported file type")
}
