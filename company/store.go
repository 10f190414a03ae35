package company

import (
	"github.com/sells-group/entityidentity/internal/snapshot"
)

// NewStore builds the snapshot store for the company domain, hydrating
// derived columns (name_norm, company_id, company_key) once at load time,
// before the table is published for concurrent read. dataPath, if
// non-empty, is tried before COMPANIES_DB_PATH and the package/dev data
// directories.
func NewStore(dataPath string) *snapshot.Store[Company] {
	return snapshot.NewStore[Company](snapshot.Source{
		Name:           "companies",
		ExplicitPath:   dataPath,
		EnvVar:         "COMPANIES_DB_PATH",
		ModuleDataDir:  "data/companies",
		PackageDataDir: "company/data",
		DevTablesDir:   "tables/companies",
		Filenames:      []string{"companies.parquet", "companies.csv"},
	}, snapshot.WithPostLoad(hydrateAll))
}

func hydrateAll(rows []Company) {
	for i := range rows {
		rows[i].Hydrate()
	}
}
