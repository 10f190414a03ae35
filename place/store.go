package place

import (
	"github.com/sells-group/entityidentity/internal/snapshot"
)

// NewStore builds the snapshot store for the place domain, hydrating
// derived columns (name_norm, place_key, place_id) once at load time,
// before the table is published for concurrent read.
func NewStore(dataPath string) *snapshot.Store[Place] {
	return snapshot.NewStore[Place](snapshot.Source{
		Name:           "places",
		ExplicitPath:   dataPath,
		EnvVar:         "PLACES_DB_PATH",
		ModuleDataDir:  "data/places",
		PackageDataDir: "place/data",
		DevTablesDir:   "tables/places",
		Filenames:      []string{"places.parquet", "places.csv"},
	}, snapshot.WithPostLoad(hydrateAll))
}

func hydrateAll(rows []Place) {
	for i := range rows {
		rows[i].Hydrate()
	}
}
