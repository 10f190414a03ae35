package instrument

import (
	"strings"

	"github.com/sells-group/entityidentity/metal"
)

// CrosswalkMetals best-effort links each instrument to the metal it prices,
// matching normalized ticker/instrument-name against a metal's symbol,
// commercial code, or normalized name. A miss leaves MaterialID/ClusterID
// empty; per spec, a missing crosswalk is not an error.
func CrosswalkMetals(instruments []Instrument, metals []metal.Metal) {
	bySymbol := make(map[string]metal.Metal, len(metals))
	byCode := make(map[string]metal.Metal, len(metals))
	byName := make(map[string]metal.Metal, len(metals))
	for _, m := range metals {
		if m.Symbol != "" {
			bySymbol[strings.ToLower(m.Symbol)] = m
		}
		if m.Code != "" {
			byCode[strings.ToLower(m.Code)] = m
		}
		if m.NameNorm != "" {
			byName[m.NameNorm] = m
		}
	}

	for i := range instruments {
		ins := &instruments[i]
		if ins.MaterialID != "" {
			continue
		}
		for _, key := range candidateKeys(*ins) {
			if m, ok := bySymbol[key]; ok {
				ins.MaterialID, ins.ClusterID = m.MetalID, m.ClusterID
				break
			}
			if m, ok := byCode[key]; ok {
				ins.MaterialID, ins.ClusterID = m.MetalID, m.ClusterID
				break
			}
			if m, ok := byName[key]; ok {
				ins.MaterialID, ins.ClusterID = m.MetalID, m.ClusterID
				break
			}
		}
	}
}

func candidateKeys(ins Instrument) []string {
	keys := make([]string, 0, 3)
	if ins.TickerNorm != "" {
		keys = append(keys, strings.ToLower(ins.TickerNorm))
	}
	if ins.Ticker != "" {
		keys = append(keys, strings.ToLower(ins.Ticker))
	}
	if ins.NameNorm != "" {
		keys = append(keys, ins.NameNorm)
	}
	return keys
}
