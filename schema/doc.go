// Package schema defines the validated query request types and the synthesis
// message envelope shared by the catalog, translator, and synthesis packages.
//
// # Queries
//
// Each synthesis operation has its own query type with exactly the filters it
// recognizes: MonitoringFeatureQuery and MeasurementTimeseriesTVPQuery. Every
// filter is type- and format-checked by Validate before any provider is
// contacted. Queries built from loosely-typed parameter maps (for example HTTP
// query strings) go through BuildMonitoringFeatureQuery or
// BuildMeasurementTimeseriesTVPQuery, which reject unrecognized filter names
// outright rather than silently ignoring them.
//
// A query value is reused as the provider-facing query after translation: the
// translator clones it, rewrites canonical vocabulary to provider vocabulary
// in place, and marks the clone translated. MarkTranslated/TranslationValid
// carry that state.
//
// # Messages
//
// SynthesisMessage is a non-fatal diagnostic (level, text, originating
// provider). MessageList is an append-only, concurrency-safe accumulator that
// can be read both during and after stream consumption; providers fetched in
// parallel append to it without coordination beyond the list's own mutex.
package schema
