package geom

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseWKTPoints parses POINT and MULTIPOINT WKT into candidate features.
// Both MULTIPOINT forms are accepted: (1 2, 3 4) and ((1 2), (3 4)).
// Other WKT types are rejected; the containment tools only take point
// candidates.
func ParseWKTPoints(wkt string) ([]Candidate, BBox, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return nil, BBox{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	switch {
	case strings.HasPrefix(up, "MULTIPOINT"), strings.HasPrefix(up, "POINT"):
	case strings.HasPrefix(up, "LINESTRING"), strings.HasPrefix(up, "POLYGON"),
		strings.HasPrefix(up, "MULTILINESTRING"), strings.HasPrefix(up, "MULTIPOLYGON"):
		return nil, BBox{}, errors.New("wkt: only POINT and MULTIPOINT are supported")
	default:
		return nil, BBox{}, errors.New("unsupported wkt type")
	}
	i := strings.Index(s, "(")
	j := strings.LastIndex(s, ")")
	if i < 0 || j <= i {
		return nil, BBox{}, errors.New("wkt: invalid coordinate block")
	}
	var out []Candidate
	var bbox BBox
	for _, tup := range strings.Split(s[i+1:j], ",") {
		tup = strings.Trim(strings.TrimSpace(tup), "()")
		parts := strings.Fields(tup)
		if len(parts) < 2 {
			continue
		}
		x, err1 := strconv.ParseFloat(parts[0], 64)
		y, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		p := Point{X: x, Y: y}
		bbox.Extend(p, len(out))
		out = append(out, Candidate{Point: p})
	}
	if len(out) == 0 {
		return nil, BBox{}, errors.New("wkt: no coordinates parsed")
	}
	return out, bbox, nil
}
