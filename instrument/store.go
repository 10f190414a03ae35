package instrument

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/entityidentity/internal/snapshot"
	"github.com/sells-group/entityidentity/metal"
)

// NewStore builds the snapshot store for the instrument domain, hydrating
// derived columns (name_norm, ticker_norm, instrument_id) and performing
// the best-effort material_id/cluster_id crosswalk against metalStore once
// at load time, before the table is published for concurrent read. The
// crosswalk runs inside the singleflight critical section via
// snapshot.WithPostLoad, so it never races a concurrent reader.
func NewStore(dataPath string, metalStore *snapshot.Store[metal.Metal]) *snapshot.Store[Instrument] {
	return snapshot.NewStore[Instrument](snapshot.Source{
		Name:           "instruments",
		ExplicitPath:   dataPath,
		EnvVar:         "INSTRUMENTS_DB_PATH",
		ModuleDataDir:  "data/instruments",
		PackageDataDir: "instrument/data",
		DevTablesDir:   "tables/instruments",
		Filenames:      []string{"instruments.parquet", "instruments.csv"},
	}, snapshot.WithPostLoad(func(rows []Instrument) {
		for i := range rows {
			rows[i].Hydrate()
		}

		metals, err := metalStore.Get(context.Background())
		if err != nil {
			zap.L().Warn("instrument: metal crosswalk skipped, metal snapshot unavailable",
				zap.Error(eris.Wrap(err, "load metal snapshot")))
			return
		}
		CrosswalkMetals(rows, metals.Rows)
	}))
}
