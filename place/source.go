package place

import "context"

// PlaceSourceLoader builds a Place snapshot from a GeoNames admin1
// shapefile, as an alternative to the CSV path for a build pipeline that
// wants to derive admin1 records, with a centroid coordinate, from source
// geometry; boundaries themselves are not kept. Grounded on the teacher's internal/geo shapefile loader
// (github.com/jonas-p/go-shp); not wired into the synchronous resolve
// path — loading a shapefile belongs to the external build pipeline
// (internal/buildsource), which produces the CSV internal/snapshot then
// reads at resolve time.
type PlaceSourceLoader interface {
	// LoadShapefile parses shpPath and returns one Place per admin1
	// feature, with Lat/Lon set from each feature's polygon centroid.
	LoadShapefile(ctx context.Context, shpPath string) ([]Place, error)
}
