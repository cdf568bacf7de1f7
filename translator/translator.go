package translator

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BASIN-3D/basin3d/catalog"
	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/schema"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// Translator rewrites queries and records between canonical and provider
// vocabularies. Safe for concurrent use.
type Translator struct {
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for per-record translation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) { t.logger = logger }
}

// New returns a Translator backed by the given catalog.
func New(cat *catalog.Catalog, opts ...Option) *Translator {
	t := &Translator{catalog: cat, logger: slog.Default()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// TranslateMonitoringFeatureQuery rewrites a monitoring feature query for one
// provider. Canonical identifiers are stripped to provider-native form;
// identifiers carrying another provider's prefix are dropped with a message.
// The returned clone is marked translated, and invalid when a specified
// identifier filter lost all of its values.
func (t *Translator) TranslateMonitoringFeatureQuery(ds provider.DataSource, q *schema.MonitoringFeatureQuery, msgs *schema.MessageList) *schema.MonitoringFeatureQuery {
	out := q.Clone()
	valid := true

	if q.ID != "" {
		native, ok := stripPrefix(ds, q.ID)
		if !ok {
			msgs.Warn(ds.ID, fmt.Sprintf("identifier %q does not belong to datasource %s", q.ID, ds.ID))
			valid = false
		}
		out.ID = native
	}
	out.MonitoringFeature = t.stripPrefixes(ds, q.MonitoringFeature, msgs)
	if len(q.MonitoringFeature) > 0 && len(out.MonitoringFeature) == 0 {
		valid = false
	}
	out.ParentFeature = t.stripPrefixes(ds, q.ParentFeature, msgs)
	if len(q.ParentFeature) > 0 && len(out.ParentFeature) == 0 {
		valid = false
	}

	out.MarkTranslated(valid)
	t.logger.Debug("translated monitoring feature query", "datasource", ds.ID, "valid", valid)
	return out
}

// TranslateObservationQuery rewrites an observation query for one provider:
// identifiers are stripped to native form and every mapped vocabulary filter
// is rewritten through reverse catalog lookups, translating compound-mapped
// attribute types jointly. The returned clone is marked translated, and
// invalid when any specified filter retained no usable provider term.
func (t *Translator) TranslateObservationQuery(ds provider.DataSource, q *schema.MeasurementTimeseriesTVPQuery, msgs *schema.MessageList) *schema.MeasurementTimeseriesTVPQuery {
	out := q.Clone()
	valid := true

	out.MonitoringFeature = t.stripPrefixes(ds, q.MonitoringFeature, msgs)
	if len(q.MonitoringFeature) > 0 && len(out.MonitoringFeature) == 0 {
		valid = false
	}

	groups := t.compoundGroups(ds.ID)
	handled := make(map[vocabulary.AttributeType]bool)
	for _, at := range out.MappedFields() {
		if handled[at] {
			continue
		}
		group, compound := groups[at]
		if !compound {
			handled[at] = true
			if terms := out.MappedValues(at); len(terms) > 0 {
				out.SetMappedValues(at, t.reverseTerms(ds, at, terms, msgs))
			}
			continue
		}

		specified := false
		for _, part := range group {
			handled[part] = true
			if len(out.MappedValues(part)) > 0 {
				specified = true
			}
		}
		if !specified {
			continue
		}
		out.SetMappedValues(group[0], t.reverseCompound(ds, group, out, msgs))
		for _, part := range group[1:] {
			out.SetMappedValues(part, nil)
		}
	}

	// Every specified filter must keep at least one usable provider term.
	for _, at := range out.MappedFields() {
		terms := out.MappedValues(at)
		if len(terms) == 0 {
			continue
		}
		usable := removeNotSupported(terms)
		if len(usable) == 0 {
			valid = false
		}
		out.SetMappedValues(at, usable)
	}

	out.MarkTranslated(valid)
	t.logger.Debug("translated observation query", "datasource", ds.ID, "valid", valid)
	return out
}

// reverseTerms translates one non-compound filter's canonical terms to
// provider terms. A canonical term with no mapping contributes the
// NOT_SUPPORTED placeholder and a message.
func (t *Translator) reverseTerms(ds provider.DataSource, at vocabulary.AttributeType, terms []string, msgs *schema.MessageList) []string {
	var out []string
	seen := make(map[string]bool)
	for _, term := range terms {
		mapped := t.catalog.Reverse(ds.ID, at, term)
		if len(mapped) == 0 {
			msgs.Warn(ds.ID, fmt.Sprintf("%s %q is not supported by datasource %s", at, term, ds.ID))
			out = append(out, vocabulary.NoMappingText)
			continue
		}
		for _, m := range mapped {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	return out
}

// reverseCompound translates a compound-mapped attribute group jointly. The
// cartesian product of the specified canonical terms forms compound patterns;
// unspecified members contribute a ".*" wildcard part. Patterns matching no
// mapping contribute the NOT_SUPPORTED placeholder and a message.
func (t *Translator) reverseCompound(ds provider.DataSource, group []vocabulary.AttributeType, q *schema.MeasurementTimeseriesTVPQuery, msgs *schema.MessageList) []string {
	sets := make([][]string, len(group))
	for i, part := range group {
		if terms := q.MappedValues(part); len(terms) > 0 {
			sets[i] = terms
		} else {
			sets[i] = []string{".*"}
		}
	}

	var out []string
	seen := make(map[string]bool)
	for _, combo := range cartesian(sets) {
		pattern := vocabulary.JoinCompound(combo)
		mappings := t.catalog.FindMappings(ds.ID, group[0], pattern, true)
		if len(mappings) == 0 {
			msgs.Warn(ds.ID, fmt.Sprintf("%s %q is not supported by datasource %s",
				vocabulary.JoinCompound(attrTypeStrings(group)), pattern, ds.ID))
			out = append(out, vocabulary.NoMappingText)
			continue
		}
		for _, m := range mappings {
			if !seen[m.ProviderVocab] {
				seen[m.ProviderVocab] = true
				out = append(out, m.ProviderVocab)
			}
		}
	}
	return out
}

// compoundGroups indexes a provider's compound attribute types by member, in
// the part order the mapping table declares.
func (t *Translator) compoundGroups(providerID string) map[vocabulary.AttributeType][]vocabulary.AttributeType {
	groups := make(map[vocabulary.AttributeType][]vocabulary.AttributeType)
	for _, compound := range t.catalog.CompoundAttrTypes(providerID) {
		parts := vocabulary.SplitCompound(compound)
		group := make([]vocabulary.AttributeType, len(parts))
		for i, p := range parts {
			group[i] = vocabulary.AttributeType(p)
		}
		for _, p := range group {
			groups[p] = group
		}
	}
	return groups
}

// stripPrefixes strips the provider prefix from each identifier, dropping
// identifiers that belong to other providers with a message.
func (t *Translator) stripPrefixes(ds provider.DataSource, ids []string, msgs *schema.MessageList) []string {
	var out []string
	for _, id := range ids {
		native, ok := stripPrefix(ds, id)
		if !ok {
			msgs.Warn(ds.ID, fmt.Sprintf("identifier %q does not belong to datasource %s", id, ds.ID))
			continue
		}
		out = append(out, native)
	}
	return out
}

// stripPrefix removes the provider's identifier prefix from one canonical
// identifier. The bool result is false when the identifier carries a
// different prefix or none.
func stripPrefix(ds provider.DataSource, id string) (string, bool) {
	native, ok := strings.CutPrefix(id, ds.IDPrefix+"-")
	if !ok || native == "" {
		return "", false
	}
	return native, true
}

// cartesian returns the cartesian product of the value sets, preserving set
// order within each position.
func cartesian(sets [][]string) [][]string {
	if len(sets) == 0 {
		return nil
	}
	out := [][]string{nil}
	for _, set := range sets {
		var next [][]string
		for _, prefix := range out {
			for _, v := range set {
				combo := make([]string, len(prefix), len(prefix)+1)
				copy(combo, prefix)
				next = append(next, append(combo, v))
			}
		}
		out = next
	}
	return out
}

func attrTypeStrings(group []vocabulary.AttributeType) []string {
	out := make([]string, len(group))
	for i, at := range group {
		out[i] = string(at)
	}
	return out
}

func removeNotSupported(terms []string) []string {
	var out []string
	for _, term := range terms {
		if term != vocabulary.NoMappingText {
			out = append(out, term)
		}
	}
	return out
}
