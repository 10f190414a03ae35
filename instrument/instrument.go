// Package instrument resolves price-instrument ticker references —
// Fastmarkets, LME, CME, Bloomberg, and Argus codes — to canonical
// records, with a best-effort crosswalk to the metal they price.
package instrument

import (
	"github.com/sells-group/entityidentity/internal/idgen"
	"github.com/sells-group/entityidentity/internal/normalize"
)

// Provider identifies the price-reporting agency or exchange a ticker
// belongs to.
type Provider string

const (
	ProviderFastmarkets Provider = "Fastmarkets"
	ProviderLME         Provider = "LME"
	ProviderCME         Provider = "CME"
	ProviderBloomberg   Provider = "Bloomberg"
	ProviderArgus       Provider = "Argus"
)

// Instrument is the canonical record for a resolved price instrument.
// Crosswalk is best-effort: MaterialID/ClusterID may be empty.
type Instrument struct {
	InstrumentID   string   `csv:"instrument_id"`
	Provider       Provider `csv:"provider"`
	Ticker         string   `csv:"ticker"` // asset_id
	TickerNorm     string   `csv:"ticker_norm"`
	InstrumentName string   `csv:"instrument_name"`
	NameNorm       string   `csv:"name_norm"`
	Currency       string   `csv:"currency"`
	Unit           string   `csv:"unit"`
	Basis          string   `csv:"basis"`
	MaterialID     string   `csv:"material_id"`
	ClusterID      string   `csv:"cluster_id"`
}

// PrimaryName satisfies fuzzy.Candidate.
func (i Instrument) PrimaryName() string { return i.NameNorm }

// AliasNames satisfies fuzzy.Candidate. Instruments carry no alias columns;
// the ticker itself (normalized) stands in as the sole alternate form.
func (i Instrument) AliasNames() []string {
	if i.TickerNorm == "" {
		return nil
	}
	return []string{i.TickerNorm}
}

// Hydrate fills derived columns when absent from the snapshot file:
// name_norm, ticker_norm, and the instrument_id. The material_id/cluster_id
// crosswalk is performed separately by the snapshot store's post-load hook
// (CrosswalkMetals), since it needs the metal table.
func (i *Instrument) Hydrate() {
	if i.NameNorm == "" {
		i.NameNorm = normalize.MatchNormalize(normalize.DomainInstrumentName, i.InstrumentName)
	}
	if i.TickerNorm == "" {
		i.TickerNorm = normalize.MatchNormalize(normalize.DomainInstrumentTicker, i.Ticker)
	}
	if i.InstrumentID == "" {
		i.InstrumentID = idgen.Instrument(normalize.MatchNormalize(normalize.DomainInstrumentTicker, string(i.Provider)), i.TickerNorm)
	}
}

// ToMap projects the record into a loose key-value form.
func (i Instrument) ToMap() map[string]any {
	m := map[string]any{
		"instrument_id":   i.InstrumentID,
		"provider":        string(i.Provider),
		"ticker":          i.Ticker,
		"instrument_name": i.InstrumentName,
		"currency":        i.Currency,
		"unit":            i.Unit,
	}
	if i.Basis != "" {
		m["basis"] = i.Basis
	}
	if i.MaterialID != "" {
		m["material_id"] = i.MaterialID
	}
	if i.ClusterID != "" {
		m["cluster_id"] = i.ClusterID
	}
	return m
}
