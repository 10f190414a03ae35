package place

import (
	"context"
	"strconv"
	"strings"

	"github.com/jonas-p/go-shp"
	"github.com/rotisserie/eris"
)

// ShapefileLoader implements PlaceSourceLoader over a GeoNames admin1
// shapefile, grounded on the teacher's CBSA TIGER/Line loader: open with
// go-shp, resolve field indices by name once, then walk every feature.
// Unlike the teacher's loader, which writes a PostGIS geometry column,
// this collapses each feature's polygon to its vertex-average centroid —
// the only spatial value Place carries (Lat/Lon), since there is no
// geometry column in this module's snapshot format.
type ShapefileLoader struct {
	// CountryField, Admin1CodeField, and Admin1NameField name the
	// shapefile attribute columns carrying the ISO-2 country, the
	// GeoNames admin1 code, and the admin1 display name. GeoNames'
	// own ADM1 shapefile export uses "ISO", "ADM1_CODE", and "ADM1NAME".
	CountryField    string
	Admin1CodeField string
	Admin1NameField string
}

// NewShapefileLoader constructs a ShapefileLoader with GeoNames' default
// ADM1 shapefile field names.
func NewShapefileLoader() *ShapefileLoader {
	return &ShapefileLoader{
		CountryField:    "ISO",
		Admin1CodeField: "ADM1_CODE",
		Admin1NameField: "ADM1NAME",
	}
}

// LoadShapefile parses shpPath and returns one Place per admin1 feature,
// with Lat/Lon set from each feature's polygon centroid.
func (l *ShapefileLoader) LoadShapefile(ctx context.Context, shpPath string) ([]Place, error) {
	reader, err := shp.Open(shpPath)
	if err != nil {
		return nil, eris.Wrap(err, "place: open shapefile")
	}
	defer func() { _ = reader.Close() }()

	countryIdx := fieldIndex(reader, l.CountryField)
	codeIdx := fieldIndex(reader, l.Admin1CodeField)
	nameIdx := fieldIndex(reader, l.Admin1NameField)
	if countryIdx < 0 || codeIdx < 0 || nameIdx < 0 {
		return nil, eris.Errorf("place: required shapefile fields (%s, %s, %s) not found",
			l.CountryField, l.Admin1CodeField, l.Admin1NameField)
	}

	var out []Place
	for reader.Next() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		_, shape := reader.Shape()
		if shape == nil {
			continue
		}

		country := strings.ToUpper(strings.TrimSpace(reader.Attribute(countryIdx)))
		code := strings.TrimSpace(reader.Attribute(codeIdx))
		name := strings.TrimSpace(reader.Attribute(nameIdx))
		if country == "" || code == "" || name == "" {
			continue
		}

		lat, lon, ok := centroid(shape)
		if !ok {
			continue
		}

		p := Place{
			Country:    country,
			Admin1Code: code,
			Admin1:     name,
			Lat:        strconv.FormatFloat(lat, 'f', 6, 64),
			Lon:        strconv.FormatFloat(lon, 'f', 6, 64),
		}
		p.Hydrate()
		out = append(out, p)
	}

	return out, nil
}

func fieldIndex(reader *shp.Reader, name string) int {
	for i, f := range reader.Fields() {
		if strings.EqualFold(strings.TrimRight(f.String(), "\x00"), name) {
			return i
		}
	}
	return -1
}

// centroid averages a polygon's vertices as a cheap approximation of its
// true area centroid — adequate for a display coordinate, not for
// distance calculations.
func centroid(s shp.Shape) (lat, lon float64, ok bool) {
	poly, isPolygon := s.(*shp.Polygon)
	if !isPolygon || len(poly.Points) == 0 {
		return 0, 0, false
	}

	var sumX, sumY float64
	for _, pt := range poly.Points {
		sumX += pt.X
		sumY += pt.Y
	}
	n := float64(len(poly.Points))
	return sumY / n, sumX / n, true
}
