// Package buildsource specifies, as interfaces only, the external
// collaborators a snapshot-build pipeline would need: registry fetchers,
// an LLM sector classifier, an object-store downloader, and a free-text
// mention extractor. None are implemented here — populating a snapshot
// from GLEIF, Wikidata, GeoNames, or an LLM is out of scope (spec.md §1
// Non-goals); this module only resolves against snapshots already on
// disk. The shapes below preserve the teacher's client conventions
// (context-first methods, eris-wrapped errors) so a real implementation
// slots in without changing any resolver-facing contract.
package buildsource

import (
	"context"
	"time"

	"github.com/sells-group/entityidentity/company"
	"github.com/sells-group/entityidentity/place"
)

// CompanyRegistryFetcher retrieves golden company records from an
// upstream registry (GLEIF, Wikidata, or an exchange listing service).
// Source priority (GLEIF > Wikidata > exchange) is resolved by the build
// pipeline, not by the fetcher itself.
type CompanyRegistryFetcher interface {
	// FetchByLEI returns the single record for a Legal Entity Identifier.
	FetchByLEI(ctx context.Context, lei string) (company.Company, error)
	// FetchBySource returns every record currently published by source,
	// for a full rebuild of that source's slice of the snapshot.
	FetchBySource(ctx context.Context, source company.Source) ([]company.Company, error)
}

// PlaceRegistryFetcher retrieves GeoNames admin1 records, pairing with
// place.PlaceSourceLoader for shapefile-backed builds.
type PlaceRegistryFetcher interface {
	FetchCountry(ctx context.Context, countryISO2 string) ([]place.Place, error)
}

// SectorClassifier assigns an industry sector to a company using an LLM,
// invoked only by the build pipeline's llm_tiebreak decision path (never
// by the synchronous resolver core itself).
type SectorClassifier interface {
	ClassifySector(ctx context.Context, companyName, description string) (sector string, confidence float64, err error)
}

// ObjectStoreDownloader fetches a snapshot file from object storage (S3,
// GCS) into a local path before internal/snapshot.Store loads it.
type ObjectStoreDownloader interface {
	Download(ctx context.Context, bucket, key, destPath string) error
}

// MentionExtractor finds free-text company mentions beyond what a
// domain's in-core extract_* regex pass recognizes — e.g. an NLP-based
// named-entity recognizer. Distinct from company.ExtractCompanies, which
// is a synchronous, dependency-free regex pass over known names.
type MentionExtractor interface {
	ExtractMentions(ctx context.Context, text string) ([]Mention, error)
}

// Mention is a single free-text company reference located by a
// MentionExtractor, with its character offsets in the source text.
type Mention struct {
	Text  string
	Start int
	End   int
}

// EntityConfigLoader loads per-environment build configuration (snapshot
// source URIs, fetch schedules, rate limits) from a remote config store,
// as an alternative to internal/config.Load's local file/env precedence.
type EntityConfigLoader interface {
	LoadConfig(ctx context.Context, environment string) (BuildConfig, error)
}

// BuildConfig is the subset of build-pipeline settings an
// EntityConfigLoader produces.
type BuildConfig struct {
	Environment    string
	RefreshPeriod  time.Duration
	SourceURIs     map[string]string
}
