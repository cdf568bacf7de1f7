package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

const testManifest = `version: "1.0"
vocabulary:
  variables_file: observed_properties.csv
datasources:
  - id: USGS
    name: US Geological Survey
    location: https://waterservices.usgs.gov/
    mapping_file: usgs_mapping.csv
    credentials:
      token: ${USGS_TOKEN}
  - id: Alpha
    id_prefix: A
    mapping_file: alpha_mapping.csv
`

func testEnv(vars map[string]string) LoaderOption {
	return WithEnvLookup(func(name string) (string, bool) {
		v, ok := vars[name]
		return v, ok
	})
}

func TestLoad(t *testing.T) {
	loader := NewLoader(testEnv(map[string]string{"USGS_TOKEN": "sekrit"}))
	cfg, err := loader.Load([]byte(testManifest))
	require.NoError(t, err)

	require.Len(t, cfg.Datasources, 2)
	assert.Equal(t, "USGS", cfg.Datasources[0].ID)
	assert.Equal(t, "USGS", cfg.Datasources[0].IDPrefix, "id_prefix defaults to id")
	assert.Equal(t, "sekrit", cfg.Datasources[0].Credentials["token"])
	assert.Equal(t, "A", cfg.Datasources[1].IDPrefix)

	ds := cfg.Datasources[0].DataSource()
	assert.Equal(t, "US Geological Survey", ds.Name)
	assert.Equal(t, "sekrit", ds.Credentials["token"])
}

func TestLoadMissingEnvVarIsFatal(t *testing.T) {
	loader := NewLoader(testEnv(nil))
	_, err := loader.Load([]byte(testManifest))
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrMissingConfig)
	assert.True(t, errors.IsFatal(err))
	assert.Contains(t, err.Error(), "USGS_TOKEN")
}

func TestLoadSchemaViolations(t *testing.T) {
	loader := NewLoader(testEnv(nil))

	tests := []struct {
		name     string
		manifest string
	}{
		{"missing datasources", "version: \"1.0\"\nvocabulary:\n  variables_file: v.csv\n"},
		{"empty datasources", "version: \"1.0\"\nvocabulary:\n  variables_file: v.csv\ndatasources: []\n"},
		{"datasource without mapping file", "version: \"1.0\"\nvocabulary:\n  variables_file: v.csv\ndatasources:\n  - id: X\n"},
		{"unknown top-level key", "version: \"1.0\"\nbogus: true\nvocabulary:\n  variables_file: v.csv\ndatasources:\n  - id: X\n    mapping_file: m.csv\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Load([]byte(tt.manifest))
			require.Error(t, err)
			assert.True(t, errors.IsFatal(err))
		})
	}
}

func TestValidateDuplicateDatasource(t *testing.T) {
	cfg := &Config{
		Version:    "1.0",
		Vocabulary: VocabularyConfig{VariablesFile: "v.csv"},
		Datasources: []DatasourceConfig{
			{ID: "X", MappingFile: "a.csv"},
			{ID: "X", MappingFile: "b.csv"},
		},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrInvalidConfig)
	assert.Contains(t, err.Error(), `duplicate datasource id "X"`)
}

func TestSafeConfig(t *testing.T) {
	valid := &Config{
		Version:     "1.0",
		Vocabulary:  VocabularyConfig{VariablesFile: "v.csv"},
		Datasources: []DatasourceConfig{{ID: "X", MappingFile: "m.csv"}},
	}
	sc := NewSafeConfig(valid)
	assert.Equal(t, "X", sc.Get().Datasources[0].ID)

	require.Error(t, sc.Update(&Config{Version: "2.0"}))
	assert.Equal(t, valid, sc.Get(), "failed update leaves the config unchanged")
}

func TestLoadFileAndBuildCatalog(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"manifest.yaml": "version: \"1.0\"\nvocabulary:\n  variables_file: observed_properties.csv\ndatasources:\n  - id: Alpha\n    id_prefix: A\n    mapping_file: alpha_mapping.csv\n",
		"observed_properties.csv": "canonical_vocab,description,categories,units\n" +
			"RDC,River Discharge,\"Hydrogeology,Discharge\",m3/s\n",
		"alpha_mapping.csv": "attr_type,canonical_vocab,provider_vocab,provider_desc\n" +
			"OBSERVED_PROPERTY:SAMPLING_MEDIUM,RDC:WATER,00060,discharge\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}

	cfg, err := NewLoader().LoadFile(filepath.Join(dir, "manifest.yaml"))
	require.NoError(t, err)

	cat, sources, err := BuildCatalog(cfg)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	assert.Equal(t, "Alpha", sources[0].ID)
	assert.True(t, cat.Initialized())

	m := cat.Forward("Alpha", vocabulary.AttributeObservedProperty, "00060")
	assert.Equal(t, "RDC:WATER", m.CanonicalVocab)
}

func TestBuildCatalogMissingFile(t *testing.T) {
	cfg := &Config{
		Version:     "1.0",
		Vocabulary:  VocabularyConfig{VariablesFile: "does-not-exist.csv"},
		Datasources: []DatasourceConfig{{ID: "X", MappingFile: "m.csv"}},
	}
	_, _, err := BuildCatalog(cfg)
	require.Error(t, err)
	assert.True(t, errors.IsFatal(err))
}
