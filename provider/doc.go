// Package provider defines the capability contract every external data
// provider implements, plus the raw record types providers emit.
//
// # Contract
//
// A provider is registered explicitly with a Synthesizer; there is no implicit
// scanning or discovery. Each provider declares:
//
//   - FeatureTypes: the canonical feature-type tags it can produce.
//   - SupportedFilters: the optional query filters it honors. The synthesizer
//     consults this before forwarding a filter and reports unsupported filters
//     as messages instead of forwarding them into undefined behavior.
//   - ListMonitoringFeatures / GetObservations: finite, non-restartable lazy
//     sequences of raw records, produced against an already-translated query
//     (filters are in the provider's own vocabulary).
//
// All network and file I/O belongs to the provider; the synthesis core only
// drains the sequences. The sequence form is iter.Seq2[T, error]: a provider
// yields records until exhausted or until it yields a non-nil error, which
// terminates its contribution. Providers must release held resources (open
// connections, file handles) via defers inside the sequence function so that
// early abandonment by the consumer still cleans up.
//
// Raw records carry provider-native identifiers and vocabulary terms; the
// translator package converts them into canonical, attribute-annotated
// objects.
package provider
