package geom

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadCSV reads candidate points from a CSV with latitude/longitude columns.
// Column detection: lat|latitude|y and lon|lng|long|longitude|x, plus an
// optional name|label|id column for the candidate label (case-insensitive).
func LoadCSV(path string) ([]Candidate, BBox, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, BBox{}, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return nil, BBox{}, errors.Wrapf(err, "read %s", path)
	}
	if len(recs) == 0 {
		return nil, BBox{}, errors.New("empty csv")
	}
	idxLat, idxLon, idxName := -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "lat", "latitude", "y":
			if idxLat == -1 {
				idxLat = i
			}
		case "lon", "lng", "long", "longitude", "x":
			if idxLon == -1 {
				idxLon = i
			}
		case "name", "label", "id":
			if idxName == -1 {
				idxName = i
			}
		}
	}
	if idxLat == -1 || idxLon == -1 {
		return nil, BBox{}, errors.New("csv: latitude/longitude columns not found")
	}
	var out []Candidate
	var bbox BBox
	for _, row := range recs[1:] {
		if idxLon >= len(row) || idxLat >= len(row) {
			continue
		}
		lon, err1 := strconv.ParseFloat(strings.TrimSpace(row[idxLon]), 64)
		lat, err2 := strconv.ParseFloat(strings.TrimSpace(row[idxLat]), 64)
		if err1 != nil || err2 != nil {
			continue
		}
		c := Candidate{Point: Point{X: lon, Y: lat}}
		if idxName != -1 && idxName < len(row) {
			c.Name = strings.TrimSpace(row[idxName])
		}
		bbox.Extend(c.Point, len(out))
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, BBox{}, errors.New("csv: no valid points parsed")
	}
	return out, bbox, nil
}
