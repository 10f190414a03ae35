package metal

// Cluster is a supply-chain grouping of metals that move together
// commercially (co-products, substitutes, or shared processing routes).
// Instruments inherit a metal's ClusterID at crosswalk time rather than
// joining against this table at query time (Non-goals: "no cross-entity
// joins performed automatically").
type Cluster struct {
	ID          string
	Name        string
	Description string
}

// clusters is the embedded supply-chain cluster table.
var clusters = []Cluster{
	{ID: "pgm_complex", Name: "Platinum Group Metals Complex", Description: "Platinum, palladium, rhodium, and the minor PGMs co-mined from the same ore bodies."},
	{ID: "porphyry_copper_chain", Name: "Porphyry Copper Chain", Description: "Copper with its typical porphyry co-products: molybdenum, gold, silver."},
	{ID: "battery_metals_complex", Name: "Battery Metals Complex", Description: "Lithium, cobalt, nickel, manganese, and graphite feeding battery cathode/anode chemistries."},
	{ID: "ferroalloy_complex", Name: "Ferroalloy Complex", Description: "Chromium, manganese, silicon, and tungsten ferroalloys used as steelmaking additives."},
	{ID: "rare_earth_complex", Name: "Rare Earth Complex", Description: "The light and heavy rare earth elements typically co-extracted from a single deposit."},
}

var clusterByID = func() map[string]Cluster {
	m := make(map[string]Cluster, len(clusters))
	for _, c := range clusters {
		m[c.ID] = c
	}
	return m
}()

// ClusterByID looks up a cluster by its id.
func ClusterByID(id string) (Cluster, bool) {
	c, ok := clusterByID[id]
	return c, ok
}

// Clusters returns the full embedded cluster table.
func Clusters() []Cluster {
	out := make([]Cluster, len(clusters))
	copy(out, clusters)
	return out
}
