package vocabulary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAttributeType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected AttributeType
		ok       bool
	}{
		{
			name:     "exact match",
			input:    "STATISTIC",
			expected: AttributeStatistic,
			ok:       true,
		},
		{
			name:     "lowercase normalized",
			input:    "observed_property",
			expected: AttributeObservedProperty,
			ok:       true,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  RESULT_QUALITY ",
			expected: AttributeResultQuality,
			ok:       true,
		},
		{
			name:  "unknown type rejected",
			input: "TEMPERATURE",
			ok:    false,
		},
		{
			name:  "compound type rejected",
			input: "OBSERVED_PROPERTY:SAMPLING_MEDIUM",
			ok:    false,
		},
		{
			name:  "empty string rejected",
			input: "",
			ok:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, ok := ParseAttributeType(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, at)
			}
		})
	}
}

func TestCompoundHelpers(t *testing.T) {
	assert.True(t, IsCompound("OBSERVED_PROPERTY:SAMPLING_MEDIUM"))
	assert.False(t, IsCompound("STATISTIC"))

	parts := SplitCompound("RDC:WATER")
	assert.Equal(t, []string{"RDC", "WATER"}, parts)

	assert.Equal(t, "RDC:WATER", JoinCompound(parts))
	assert.Equal(t, []string{"RDC"}, SplitCompound("RDC"))
}

func TestTermsForIncludesSentinel(t *testing.T) {
	for _, at := range []AttributeType{
		AttributeAggregationDuration,
		AttributeStatistic,
		AttributeResultQuality,
		AttributeSamplingMedium,
	} {
		assert.Contains(t, TermsFor(at), NoMappingText, "attribute type %s", at)
	}

	// OBSERVED_PROPERTY is an open set
	assert.Nil(t, TermsFor(AttributeObservedProperty))
}

func TestValidTerm(t *testing.T) {
	assert.True(t, ValidTerm(AttributeStatistic, "MEAN"))
	assert.True(t, ValidTerm(AttributeStatistic, NoMappingText))
	assert.False(t, ValidTerm(AttributeStatistic, "MEDIAN"))

	// open set: any non-empty observed property is accepted here
	assert.True(t, ValidTerm(AttributeObservedProperty, "RDC"))
	assert.False(t, ValidTerm(AttributeObservedProperty, ""))
}

func TestParseFeatureType(t *testing.T) {
	ft, ok := ParseFeatureType("point")
	assert.True(t, ok)
	assert.Equal(t, FeatureTypePoint, ft)

	ft, ok = ParseFeatureType("Horizontal_Path")
	assert.True(t, ok)
	assert.Equal(t, FeatureTypeHorizontalPath, ft)

	_, ok = ParseFeatureType("GALAXY")
	assert.False(t, ok)
}

func TestParseCategories(t *testing.T) {
	assert.Equal(t, []string{"Hydrology", "Subsurface"}, ParseCategories("Hydrology, Subsurface"))
	assert.Nil(t, ParseCategories("   "))
	assert.Nil(t, ParseCategories(""))
}
