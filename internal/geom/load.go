package geom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// LoadCandidates reads candidate points from path, dispatching on the file
// extension: .geojson/.json, .csv, .kml, or .wkt.
func LoadCandidates(path string) ([]Candidate, BBox, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return LoadFeaturePoints(path)
	case ".csv":
		return LoadCSV(path)
	case ".kml":
		return LoadKML(path)
	case ".wkt":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, BBox{}, errors.Wrapf(err, "read %s", path)
		}
		return ParseWKTPoints(string(data))
	}
	return nil, BBox{}, errors.Errorf("unsupported file type: %s", filepath.Ext(path))
}
