// Package basin3d synthesizes earth-science observations from heterogeneous
// data providers into a single canonical vocabulary and result stream.
//
// # Architecture
//
// The module is organized as a small set of collaborating layers:
//
//	┌─────────────────────────────────────┐
//	│          Synthesizer                │  Query validation, provider
//	│  (synthesis package)                │  dispatch, stream merging
//	└─────────────────────────────────────┘
//	           ↓ translates via
//	┌─────────────────────────────────────┐
//	│          Translator                 │  Canonical ↔ provider
//	│  (translator package)               │  vocabulary conversion
//	└─────────────────────────────────────┘
//	           ↓ looks up in
//	┌─────────────────────────────────────┐
//	│          Catalog                    │  Per-provider attribute
//	│  (catalog package)                  │  mapping tables
//	└─────────────────────────────────────┘
//
// Providers implement the capability interface in the provider package and are
// registered explicitly with a Synthesizer. All network and file I/O lives
// behind that interface; the core never fetches anything itself.
//
// # Vocabulary Translation
//
// Every provider ships a mapping table associating its native vocabulary terms
// with canonical terms (vocabulary package). Lookups never fail: a term with no
// mapping resolves to the NOT_SUPPORTED sentinel and produces a diagnostic
// message rather than an error. A single provider term may expand into several
// canonical attribute types at once (compound mappings), e.g. a measurement
// code that implies both an observed property and a sampling medium.
//
// # Result Streaming
//
// Query results are lazy iter.Seq streams. Providers are drained sequentially
// in registration order (or in parallel with output re-serialized to
// registration order), so results are deterministic. A provider failure ends
// that provider's contribution and is reported as a message; other providers
// are unaffected.
//
// # Quick Start
//
//	cat := catalog.New()
//	// load mapping tables for each provider ...
//	syn, err := synthesis.New(cat, []provider.Provider{providerA, providerB})
//	if err != nil { ... }
//	resp, err := syn.MonitoringFeatures(ctx, &schema.MonitoringFeatureQuery{
//		FeatureType: vocabulary.FeatureTypePoint,
//	})
//	if err != nil { ... }
//	for mf := range resp.Results {
//		fmt.Println(mf.ID, mf.Name)
//	}
//	for _, m := range resp.Messages.All() {
//		fmt.Println(m.Level, m.Text)
//	}
package basin3d
