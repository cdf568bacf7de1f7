// Package catalog owns the per-provider vocabulary mapping tables and the
// canonical observed-property variable vocabulary, and serves forward,
// reverse, and compound lookups over them.
//
// # Loading
//
// The variable vocabulary loads first (LoadVariables / LoadVariablesCSV);
// mapping rows referencing an unknown observed property are skipped. Each
// provider's mapping table then loads from rows of (attribute type, canonical
// vocabulary, provider vocabulary, provider description). A malformed row is
// logged and skipped, never fatal; a provider ending up with zero usable rows
// is a fatal configuration error because that provider cannot translate
// anything.
//
// Tables are immutable after load. Reloading a provider builds the complete
// replacement table off to the side and swaps it in atomically, so concurrent
// readers never observe a half-loaded table.
//
// # Lookups
//
// Forward (provider term to canonical) always returns exactly one
// AttributeMapping: a real mapping or the NOT_SUPPORTED sentinel with a
// descriptive message. Reverse (canonical term to provider terms) is
// multi-valued because several provider terms can map to one canonical term.
// Compound resolves a provider term that carries several canonical attribute
// types at once into its ordered (attribute type, canonical term) parts.
//
// FindMappings is the general search used by the translator for compound
// vocabulary combinations, supporting ".*" wildcard parts in canonical
// compound patterns.
package catalog
