// Package translator rewrites queries and records between canonical and
// provider vocabularies using the catalog's mapping tables.
//
// # Query direction
//
// TranslateMonitoringFeatureQuery and TranslateObservationQuery clone the
// caller's query and rewrite it for one provider: prefixed identifiers are
// stripped to provider-native form (identifiers belonging to other providers
// are dropped with a message), and mapped vocabulary filters are rewritten
// through reverse catalog lookups. Attribute types bound together by a
// provider's compound mappings translate jointly: the cartesian product of
// the specified canonical terms forms compound patterns, unspecified members
// contribute a ".*" wildcard part, and the matched provider terms land on the
// group's first attribute while the remaining members are cleared.
//
// A translated query is marked valid only when every filter the caller
// specified retained at least one usable provider term. Callers skip
// providers whose translation came back invalid.
//
// # Result direction
//
// TranslateFeature and TranslateObservation turn provider-native records into
// canonical models: identifiers gain the provider prefix, vocabulary terms
// resolve through forward lookups, and a compound observed-property mapping
// also yields the sampling medium. Unmapped terms are kept and tagged
// NOT_SUPPORTED rather than dropped. Raw measurement values that do not parse
// as numbers (detection-limit-censored literals like "<0.01") are dropped
// from the series with an accumulated message.
package translator
