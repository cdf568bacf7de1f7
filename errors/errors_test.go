package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorClassString(t *testing.T) {
	assert.Equal(t, "transient", ErrorTransient.String())
	assert.Equal(t, "invalid", ErrorInvalid.String())
	assert.Equal(t, "fatal", ErrorFatal.String())
	assert.Equal(t, "unknown", ErrorClass(99).String())
}

func TestClassificationOfStandardErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected ErrorClass
	}{
		{name: "unrecognized filter is fatal", err: ErrUnknownFilter, expected: ErrorFatal},
		{name: "missing required filter is fatal", err: ErrMissingFilter, expected: ErrorFatal},
		{name: "duplicate provider is fatal", err: ErrDuplicateProvider, expected: ErrorFatal},
		{name: "empty mapping table is fatal", err: ErrEmptyMappingTable, expected: ErrorFatal},
		{name: "malformed row is invalid", err: ErrMalformedRow, expected: ErrorInvalid},
		{name: "mapping not found is invalid", err: ErrMappingNotFound, expected: ErrorInvalid},
		{name: "value parse is invalid", err: ErrValueParse, expected: ErrorInvalid},
		{name: "provider fetch is transient", err: ErrProviderFetch, expected: ErrorTransient},
		{name: "unknown error defaults to transient", err: stderrors.New("boom"), expected: ErrorTransient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.err))
		})
	}
}

func TestWrapPreservesChain(t *testing.T) {
	err := Wrap(ErrMappingNotFound, "Catalog", "Forward", "vocabulary lookup")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, ErrMappingNotFound))
	assert.Contains(t, err.Error(), "Catalog.Forward: vocabulary lookup failed")

	assert.NoError(t, Wrap(nil, "Catalog", "Forward", "anything"))
}

func TestWrapFatalClassifies(t *testing.T) {
	err := WrapFatal(ErrInvalidConfig, "Synthesizer", "New", "provider registration")
	require.Error(t, err)

	var ce *ClassifiedError
	require.True(t, stderrors.As(err, &ce))
	assert.Equal(t, ErrorFatal, ce.Class)
	assert.Equal(t, "Synthesizer", ce.Component)
	assert.True(t, IsFatal(err))
	assert.False(t, IsInvalid(err))
}

func TestWrapInvalidClassifies(t *testing.T) {
	err := WrapInvalid(ErrMalformedRow, "Catalog", "Load", "row parsing")
	require.Error(t, err)
	assert.True(t, IsInvalid(err))
	assert.False(t, IsFatal(err))
	assert.True(t, stderrors.Is(err, ErrMalformedRow))
}

func TestWrapTransientClassifies(t *testing.T) {
	err := WrapTransient(stderrors.New("connection reset"), "Synthesizer", "MonitoringFeatures", "provider fetch")
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	assert.Equal(t, ErrorTransient, Classify(err))
}

func TestNilChecks(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsInvalid(nil))
	assert.False(t, IsTransient(nil))
}
