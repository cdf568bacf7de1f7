package types

import (
	"fmt"

	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// AttributeMapping is one resolved association between a provider vocabulary
// term and canonical vocabulary, as loaded from a provider's mapping table.
//
// AttrType and CanonicalVocab may be compound: a mapping with AttrType
// "OBSERVED_PROPERTY:SAMPLING_MEDIUM" and CanonicalVocab "RDC:WATER" says one
// provider code simultaneously carries the observed property RDC and the
// sampling medium WATER. The part order is significant and identical between
// the two fields.
type AttributeMapping struct {
	// AttrType is the attribute type, possibly compound.
	AttrType string
	// CanonicalVocab is the canonical vocabulary, possibly compound, or the
	// NOT_SUPPORTED sentinel.
	CanonicalVocab string
	// CanonicalDesc holds one human-readable description per compound part
	// (an observed property full name, or the canonical term itself for
	// closed term sets). For sentinel mappings it carries the lookup failure
	// description.
	CanonicalDesc []string
	// ProviderVocab is the provider's native vocabulary term.
	ProviderVocab string
	// ProviderDesc is the provider's human-readable description of the term.
	ProviderDesc string
	// DataSource identifies the provider this mapping belongs to.
	DataSource provider.DataSource
}

// NotSupported reports whether this is a sentinel mapping.
func (m AttributeMapping) NotSupported() bool {
	return m.CanonicalVocab == vocabulary.NoMappingText
}

// String returns "attr_type: canonical_vocab <- provider_vocab".
func (m AttributeMapping) String() string {
	return fmt.Sprintf("%s: %s <- %s", m.AttrType, m.CanonicalVocab, m.ProviderVocab)
}

// NewNotSupportedMapping builds the sentinel mapping returned when no catalog
// entry exists for a provider vocabulary term.
func NewNotSupportedMapping(ds provider.DataSource, attrType vocabulary.AttributeType, providerVocab, desc string) AttributeMapping {
	return AttributeMapping{
		AttrType:       attrType.String(),
		CanonicalVocab: vocabulary.NoMappingText,
		ProviderVocab:  providerVocab,
		ProviderDesc:   desc,
		DataSource:     ds,
	}
}

// MappedAttribute is a single-attribute view of an AttributeMapping. The
// underlying mapping may be compound; MappedAttribute pins one attribute type
// so callers can read the canonical term for exactly that type.
type MappedAttribute struct {
	AttrType vocabulary.AttributeType
	Mapping  AttributeMapping
}

// CanonicalVocab returns the canonical term for this attribute type, pulling
// the matching part out of a compound mapping. Sentinel mappings and part
// mismatches return NOT_SUPPORTED.
func (a MappedAttribute) CanonicalVocab() string {
	if a.Mapping.NotSupported() {
		return vocabulary.NoMappingText
	}
	attrParts := vocabulary.SplitCompound(a.Mapping.AttrType)
	vocabParts := vocabulary.SplitCompound(a.Mapping.CanonicalVocab)
	for i, part := range attrParts {
		if part == a.AttrType.String() && i < len(vocabParts) {
			return vocabParts[i]
		}
	}
	return vocabulary.NoMappingText
}

// CanonicalDesc returns the description for this attribute type's part of the
// mapping, or empty when the mapping carries none.
func (a MappedAttribute) CanonicalDesc() string {
	attrParts := vocabulary.SplitCompound(a.Mapping.AttrType)
	for i, part := range attrParts {
		if part == a.AttrType.String() && i < len(a.Mapping.CanonicalDesc) {
			return a.Mapping.CanonicalDesc[i]
		}
	}
	return ""
}

// ProviderVocab returns the provider's native term.
func (a MappedAttribute) ProviderVocab() string {
	return a.Mapping.ProviderVocab
}

// NotSupported reports whether the attribute resolved to the sentinel.
func (a MappedAttribute) NotSupported() bool {
	return a.CanonicalVocab() == vocabulary.NoMappingText
}
