package synthesis

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/BASIN-3D/basin3d/catalog"
	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/health"
	"github.com/BASIN-3D/basin3d/metric"
	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/schema"
	"github.com/BASIN-3D/basin3d/translator"
	"github.com/BASIN-3D/basin3d/types"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// Synthesizer federates queries across registered providers, translating
// filters out and records back through the catalog. Safe for concurrent use.
type Synthesizer struct {
	catalog    *catalog.Catalog
	translator *translator.Translator
	providers  []provider.Provider
	byID       map[string]provider.Provider
	logger     *slog.Logger
	metrics    *metric.Metrics
	parallel   bool
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithLogger sets the logger for dispatch diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) { s.logger = logger }
}

// WithMetrics wires the synthesizer's operational metrics into a registry.
func WithMetrics(registry *metric.MetricsRegistry) Option {
	return func(s *Synthesizer) { s.metrics = registry.CoreMetrics() }
}

// WithParallelDispatch fetches from all eligible providers concurrently
// instead of one at a time. Results are still delivered in registration
// order, so the first record arrives only after the first provider finishes.
func WithParallelDispatch() Option {
	return func(s *Synthesizer) { s.parallel = true }
}

// New builds a Synthesizer over a loaded catalog and a set of providers.
// Provider ids must be unique and non-empty; a duplicate or empty id is a
// fatal configuration error.
func New(cat *catalog.Catalog, providers []provider.Provider, opts ...Option) (*Synthesizer, error) {
	s := &Synthesizer{
		catalog:    cat,
		translator: translator.New(cat),
		byID:       make(map[string]provider.Provider, len(providers)),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	// Rebuild the translator so it shares the configured logger.
	s.translator = translator.New(cat, translator.WithLogger(s.logger))

	for _, p := range providers {
		ds := p.DataSource()
		if ds.ID == "" {
			return nil, errors.WrapFatal(errors.ErrInvalidConfig, "Synthesizer", "New",
				"provider with empty datasource id")
		}
		if _, dup := s.byID[ds.ID]; dup {
			return nil, errors.WrapFatal(
				fmt.Errorf("%w: %s", errors.ErrDuplicateProvider, ds.ID),
				"Synthesizer", "New", "provider registration")
		}
		s.byID[ds.ID] = p
		s.providers = append(s.providers, p)
	}
	if s.metrics != nil {
		s.metrics.SetRegisteredSources(len(s.providers))
	}
	return s, nil
}

// DataSources returns the registered providers' data sources in registration
// order.
func (s *Synthesizer) DataSources() []provider.DataSource {
	out := make([]provider.DataSource, 0, len(s.providers))
	for _, p := range s.providers {
		out = append(out, p.DataSource())
	}
	return out
}

// ObservedProperties returns the canonical observed property vocabulary, or
// the named subset of it.
func (s *Synthesizer) ObservedProperties(vocabs ...string) []vocabulary.ObservedPropertyVariable {
	return s.catalog.ObservedProperties(vocabs...)
}

// AttributeMappings searches the loaded mapping tables. datasource narrows to
// one provider ("" searches all); attrType narrows to one attribute type
// (""); vocab matches the canonical side when fromCanonical is true,
// otherwise the provider term. It returns an invalid-classified error for an
// unregistered datasource or an unknown attribute type.
func (s *Synthesizer) AttributeMappings(datasource, attrType, vocab string, fromCanonical bool) ([]types.AttributeMapping, error) {
	if datasource != "" {
		if _, ok := s.byID[datasource]; !ok {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%w: %s", errors.ErrUnknownProvider, datasource),
				"Synthesizer", "AttributeMappings", "datasource check")
		}
	}
	var at vocabulary.AttributeType
	if attrType != "" {
		parsed, ok := vocabulary.ParseAttributeType(attrType)
		if !ok {
			return nil, errors.WrapInvalid(
				fmt.Errorf("%q is not an attribute type", attrType),
				"Synthesizer", "AttributeMappings", "attribute type check")
		}
		at = parsed
	}
	return s.catalog.FindMappings(datasource, at, vocab, fromCanonical), nil
}

// Health reports the synthesizer's readiness: unhealthy without loaded
// mapping tables, degraded without registered providers.
func (s *Synthesizer) Health() health.Status {
	if !s.catalog.Initialized() {
		return health.NewUnhealthy("synthesizer", "no mapping tables loaded")
	}
	if len(s.providers) == 0 {
		return health.NewDegraded("synthesizer", "no providers registered")
	}
	return health.NewHealthy("synthesizer", fmt.Sprintf("%d datasources registered", len(s.providers)))
}

// eligibleProviders filters registered providers by the query's datasource
// filter, preserving registration order. Unknown datasource ids accumulate a
// message.
func (s *Synthesizer) eligibleProviders(datasources []string, msgs *schema.MessageList) []provider.Provider {
	if len(datasources) == 0 {
		return s.providers
	}
	for _, id := range datasources {
		if _, ok := s.byID[id]; !ok {
			msgs.Warn(id, fmt.Sprintf("datasource %q is not registered", id))
		}
	}
	var out []provider.Provider
	for _, p := range s.providers {
		if slices.Contains(datasources, p.DataSource().ID) {
			out = append(out, p)
		}
	}
	return out
}

// supportsFilter reports whether a provider declares support for an optional
// filter.
func supportsFilter(p provider.Provider, name string) bool {
	return slices.Contains(p.SupportedFilters(), name)
}

func (s *Synthesizer) skip(ds provider.DataSource, reason, text string, msgs *schema.MessageList) {
	msgs.Warn(ds.ID, text)
	s.logger.Debug("skipping datasource", "datasource", ds.ID, "reason", reason)
	if s.metrics != nil {
		s.metrics.RecordProviderSkipped(ds.ID, reason)
	}
}

// recordMessages counts accumulated messages by level once a stream ends.
func (s *Synthesizer) recordMessages(msgs *schema.MessageList) {
	if s.metrics == nil {
		return
	}
	for _, m := range msgs.All() {
		s.metrics.RecordMessage(string(m.Level))
	}
}
