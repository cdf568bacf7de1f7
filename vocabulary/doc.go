// Package vocabulary defines the canonical, provider-independent vocabulary
// that all synthesized data is expressed in.
//
// # Design
//
// Every external data provider speaks its own vocabulary: measurement codes,
// quality flags, statistic abbreviations. The catalog package maps those native
// terms onto the canonical terms defined here. This package owns:
//
//   - Attribute types: the categories of vocabulary that get mapped
//     (OBSERVED_PROPERTY, AGGREGATION_DURATION, STATISTIC, RESULT_QUALITY,
//     SAMPLING_MEDIUM).
//   - Controlled term sets: the closed set of canonical terms for each
//     attribute type except OBSERVED_PROPERTY, which is an open set defined by
//     the observed-property variable vocabulary loaded into the catalog.
//   - Feature types: the canonical tags for monitoring features (REGION
//     through POINT).
//   - The NOT_SUPPORTED sentinel: a first-class canonical term meaning "no
//     mapping exists". Lookups never return an absence; they return this.
//
// # Compound Vocabularies
//
// A single provider term may carry information for several attribute types at
// once. Such mappings use compound vocabulary strings joined with the ':'
// delimiter, e.g. attribute type "OBSERVED_PROPERTY:SAMPLING_MEDIUM" with
// canonical vocabulary "RDC:WATER" both keyed to one provider code. The
// SplitCompound and JoinCompound helpers handle the delimiter consistently.
package vocabulary
