package metal

import (
	"github.com/sells-group/entityidentity/internal/snapshot"
)

// NewStore builds the snapshot store for the metal domain, hydrating
// derived columns (name_norm, metal_key, metal_id) once at load time,
// before the table is published for concurrent read.
func NewStore(dataPath string) *snapshot.Store[Metal] {
	return snapshot.NewStore[Metal](snapshot.Source{
		Name:           "metals",
		ExplicitPath:   dataPath,
		EnvVar:         "METALS_DB_PATH",
		ModuleDataDir:  "data/metals",
		PackageDataDir: "metal/data",
		DevTablesDir:   "tables/metals",
		Filenames:      []string{"metals.parquet", "metals.csv"},
	}, snapshot.WithPostLoad(hydrateAll))
}

func hydrateAll(rows []Metal) {
	for i := range rows {
		rows[i].Hydrate()
	}
}
