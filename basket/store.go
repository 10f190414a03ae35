package basket

import (
	"github.com/sells-group/entityidentity/internal/snapshot"
)

// NewStore builds the snapshot store for the basket domain, hydrating
// derived columns (name_norm) once at load time, before the table is
// published for concurrent read.
func NewStore(dataPath string) *snapshot.Store[Basket] {
	return snapshot.NewStore[Basket](snapshot.Source{
		Name:           "baskets",
		ExplicitPath:   dataPath,
		EnvVar:         "BASKETS_DB_PATH",
		ModuleDataDir:  "data/baskets",
		PackageDataDir: "basket/data",
		DevTablesDir:   "tables/baskets",
		Filenames:      []string{"baskets.parquet", "baskets.csv"},
	}, snapshot.WithPostLoad(hydrateAll))
}

func hydrateAll(rows []Basket) {
	for i := range rows {
		rows[i].Hydrate()
	}
}
