package catalog

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/BASIN-3D/basin3d/metric"
	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/types"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// Catalog holds the canonical observed-property variable vocabulary and one
// mapping table per registered provider. All methods are safe for concurrent
// use; tables are replaced atomically on reload.
type Catalog struct {
	mu sync.RWMutex

	logger  *slog.Logger
	metrics *metric.Metrics

	variables map[string]vocabulary.ObservedPropertyVariable
	varOrder  []string

	tables    map[string]*providerTable
	providers []string
}

// providerTable is the immutable mapping table for one provider. It is built
// completely before being installed in the Catalog.
type providerTable struct {
	ds   provider.DataSource
	rows []types.AttributeMapping

	// byProviderVocab indexes rows by the provider term for forward and
	// compound lookups. Row order within a slice follows load order.
	byProviderVocab map[string][]int
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithLogger sets the logger used for skipped-row and duplicate warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) { c.logger = logger }
}

// WithMetrics wires lookup counters and table-size gauges into a registry.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(c *Catalog) { c.metrics = registry.CoreMetrics() }
}

// New returns an empty Catalog. Load the variable vocabulary before any
// provider mapping tables.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		logger:    slog.Default(),
		variables: make(map[string]vocabulary.ObservedPropertyVariable),
		tables:    make(map[string]*providerTable),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialized reports whether at least one provider mapping table has been
// loaded.
func (c *Catalog) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.tables) > 0
}

// DataSource returns the registered data source for a provider id.
func (c *Catalog) DataSource(providerID string) (provider.DataSource, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	t, ok := c.tables[providerID]
	if !ok {
		return provider.DataSource{}, false
	}
	return t.ds, true
}

// Providers returns the registered data sources in registration order.
func (c *Catalog) Providers() []provider.DataSource {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]provider.DataSource, 0, len(c.providers))
	for _, id := range c.providers {
		out = append(out, c.tables[id].ds)
	}
	return out
}

// ObservedProperty returns the canonical variable for a vocabulary term.
func (c *Catalog) ObservedProperty(vocab string) (vocabulary.ObservedPropertyVariable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.variables[vocab]
	return v, ok
}

// ObservedProperties returns canonical variables in load order. With no
// arguments it returns the full vocabulary; otherwise it returns the named
// variables, skipping unknown names.
func (c *Catalog) ObservedProperties(vocabs ...string) []vocabulary.ObservedPropertyVariable {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(vocabs) == 0 {
		out := make([]vocabulary.ObservedPropertyVariable, 0, len(c.varOrder))
		for _, v := range c.varOrder {
			out = append(out, c.variables[v])
		}
		return out
	}

	out := make([]vocabulary.ObservedPropertyVariable, 0, len(vocabs))
	for _, v := range vocabs {
		opv, ok := c.variables[v]
		if !ok {
			c.logger.Warn("unknown observed property requested", "vocab", v)
			continue
		}
		out = append(out, opv)
	}
	return out
}

// Forward resolves a provider term to its canonical mapping. attrType narrows
// the match to mapping rows carrying that attribute type; rows with compound
// attribute types match when any part equals attrType. The result is always a
// single mapping: the first matching row in load order, or the NOT_SUPPORTED
// sentinel carrying a descriptive message when no row, provider, or term
// matches.
func (c *Catalog) Forward(providerID string, attrType vocabulary.AttributeType, providerVocab string) types.AttributeMapping {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[providerID]
	if !ok {
		c.recordLookup(attrType, "sentinel")
		return types.NewNotSupportedMapping(provider.DataSource{ID: providerID}, attrType,
			providerVocab, fmt.Sprintf("no mapping table is loaded for datasource %q", providerID))
	}
	for _, i := range t.byProviderVocab[providerVocab] {
		row := t.rows[i]
		if attrTypeMatches(row.AttrType, attrType) {
			c.recordLookup(attrType, "hit")
			return row
		}
	}
	c.recordLookup(attrType, "sentinel")
	return types.NewNotSupportedMapping(t.ds, attrType, providerVocab,
		fmt.Sprintf("no mapping was found for attribute %q term %q in datasource %q",
			attrType, providerVocab, providerID))
}

// Reverse resolves a canonical term to the provider terms mapping to it.
// Compound rows match when the canonical part at the attribute type's
// position equals canonicalVocab. The result preserves load order and is nil
// when nothing matches.
func (c *Catalog) Reverse(providerID string, attrType vocabulary.AttributeType, canonicalVocab string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[providerID]
	if !ok {
		return nil
	}
	var out []string
	for _, row := range t.rows {
		if canonicalMatches(row, attrType, canonicalVocab) {
			out = append(out, row.ProviderVocab)
		}
	}
	return out
}

// CompoundEntry is one (attribute type, canonical term) part of a resolved
// compound provider term.
type CompoundEntry struct {
	AttrType       vocabulary.AttributeType
	CanonicalVocab string
}

// Compound resolves a provider term to the ordered canonical parts it
// carries. A term mapped by a non-compound row yields one entry. The second
// result is false when the provider or term is unknown.
func (c *Catalog) Compound(providerID, providerVocab string) ([]CompoundEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[providerID]
	if !ok {
		return nil, false
	}
	idx := t.byProviderVocab[providerVocab]
	if len(idx) == 0 {
		return nil, false
	}
	row := t.rows[idx[0]]
	attrParts := vocabulary.SplitCompound(row.AttrType)
	vocabParts := vocabulary.SplitCompound(row.CanonicalVocab)
	if len(attrParts) != len(vocabParts) {
		return nil, false
	}
	out := make([]CompoundEntry, len(attrParts))
	for i := range attrParts {
		out[i] = CompoundEntry{
			AttrType:       vocabulary.AttributeType(attrParts[i]),
			CanonicalVocab: vocabParts[i],
		}
	}
	return out, true
}

// CompoundAttrTypes returns the distinct compound attribute type strings
// present in a provider's table, in load order. The translator uses these to
// decide which query fields translate together.
func (c *Catalog) CompoundAttrTypes(providerID string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[providerID]
	if !ok {
		return nil
	}
	seen := make(map[string]bool)
	var out []string
	for _, row := range t.rows {
		at := row.AttrType
		if !vocabulary.IsCompound(at) || seen[at] {
			continue
		}
		seen[at] = true
		out = append(out, at)
	}
	return out
}

// FindMappings searches a provider's mapping rows. attrType narrows to rows
// carrying that attribute type; empty matches all. vocab matches against the
// canonical side when fromCanonical is true, otherwise against the provider
// term. A canonical compound pattern may use ".*" wildcard parts, matching
// rows part for part. An empty providerID searches every provider in
// registration order. Results preserve load order; nil when nothing matches.
func (c *Catalog) FindMappings(providerID string, attrType vocabulary.AttributeType, vocab string, fromCanonical bool) []types.AttributeMapping {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := []string{providerID}
	if providerID == "" {
		ids = c.providers
	}
	var out []types.AttributeMapping
	for _, id := range ids {
		t, ok := c.tables[id]
		if !ok {
			continue
		}
		for _, row := range t.rows {
			if attrType != "" && !attrTypeMatches(row.AttrType, attrType) {
				continue
			}
			if vocab != "" {
				if fromCanonical {
					if !canonicalPatternMatches(row, attrType, vocab) {
						continue
					}
				} else if row.ProviderVocab != vocab {
					continue
				}
			}
			out = append(out, row)
		}
	}
	return out
}

func (c *Catalog) recordLookup(attrType vocabulary.AttributeType, result string) {
	if c.metrics != nil {
		c.metrics.RecordCatalogLookup(string(attrType), result)
	}
}

// attrTypeMatches reports whether a row's attribute type, possibly compound,
// carries the requested type.
func attrTypeMatches(rowType string, want vocabulary.AttributeType) bool {
	for _, part := range vocabulary.SplitCompound(rowType) {
		if part == string(want) {
			return true
		}
	}
	return false
}

// canonicalMatches reports whether a row's canonical vocabulary carries the
// exact term at the position of the requested attribute type.
func canonicalMatches(row types.AttributeMapping, attrType vocabulary.AttributeType, canonicalVocab string) bool {
	attrParts := vocabulary.SplitCompound(row.AttrType)
	vocabParts := vocabulary.SplitCompound(row.CanonicalVocab)
	if len(attrParts) != len(vocabParts) {
		return false
	}
	for i, part := range attrParts {
		if part == string(attrType) && vocabParts[i] == canonicalVocab {
			return true
		}
	}
	return false
}

// canonicalPatternMatches matches a canonical pattern against a row. A
// compound pattern matches a compound row part for part with ".*" as a
// wildcard part. A simple pattern matches the part at attrType's position,
// or any part when attrType is empty.
func canonicalPatternMatches(row types.AttributeMapping, attrType vocabulary.AttributeType, pattern string) bool {
	vocabParts := vocabulary.SplitCompound(row.CanonicalVocab)
	if vocabulary.IsCompound(pattern) {
		patternParts := vocabulary.SplitCompound(pattern)
		if len(patternParts) != len(vocabParts) {
			return false
		}
		for i, p := range patternParts {
			if p != ".*" && p != vocabParts[i] {
				return false
			}
		}
		return true
	}
	if attrType != "" {
		return canonicalMatches(row, attrType, pattern)
	}
	for _, v := range vocabParts {
		if v == pattern {
			return true
		}
	}
	return false
}
