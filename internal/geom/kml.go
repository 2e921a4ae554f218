package geom

import (
	"encoding/xml"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// LoadKML extracts candidate points from a KML file (Placemark > Point >
// coordinates). KML coordinates are "lon,lat[,alt]"; altitude is ignored.
// The placemark name, when present, labels the candidate.
func LoadKML(path string) ([]Candidate, BBox, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, BBox{}, errors.Wrapf(err, "read %s", path)
	}

	type kmlPoint struct {
		Coordinates string `xml:"coordinates"`
	}
	type kmlPlacemark struct {
		Name  string    `xml:"name"`
		Point *kmlPoint `xml:"Point"`
	}
	type kmlDoc struct {
		Placemarks []kmlPlacemark `xml:"Placemark"`
		Document   struct {
			Placemarks []kmlPlacemark `xml:"Placemark"`
		} `xml:"Document"`
	}

	var doc kmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, BBox{}, errors.Wrapf(err, "decode %s", path)
	}
	placemarks := append(doc.Placemarks, doc.Document.Placemarks...)
	var out []Candidate
	var bbox BBox
	for _, pm := range placemarks {
		if pm.Point == nil {
			continue
		}
		// coordinates may contain multiple tuples separated by spaces
		for _, tuple := range strings.Fields(pm.Point.Coordinates) {
			vals := strings.Split(tuple, ",")
			if len(vals) < 2 {
				continue
			}
			lon, err1 := strconv.ParseFloat(strings.TrimSpace(vals[0]), 64)
			lat, err2 := strconv.ParseFloat(strings.TrimSpace(vals[1]), 64)
			if err1 != nil || err2 != nil {
				continue
			}
			c := Candidate{Point: Point{X: lon, Y: lat}, Name: pm.Name}
			bbox.Extend(c.Point, len(out))
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil, BBox{}, errors.New("kml: no points found")
	}
	return out, bbox, nil
}
