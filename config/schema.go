package config

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"

	"github.com/BASIN-3D/basin3d/errors"
)

// manifestSchema is the structural contract for the manifest, checked before
// the document is decoded into Config.
const manifestSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "vocabulary", "datasources"],
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string"},
    "vocabulary": {
      "type": "object",
      "required": ["variables_file"],
      "additionalProperties": false,
      "properties": {
        "variables_file": {"type": "string", "minLength": 1}
      }
    },
    "datasources": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "mapping_file"],
        "additionalProperties": false,
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "id_prefix": {"type": "string"},
          "name": {"type": "string"},
          "location": {"type": "string"},
          "mapping_file": {"type": "string", "minLength": 1},
          "credentials": {
            "type": "object",
            "additionalProperties": {"type": "string"}
          }
        }
      }
    }
  }
}`

// validateSchema checks the raw manifest document against manifestSchema.
func validateSchema(raw []byte) error {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return errors.WrapFatal(err, "Loader", "Load", "parse manifest YAML")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(manifestSchema),
		gojsonschema.NewGoLoader(doc),
	)
	if err != nil {
		return errors.WrapFatal(err, "Loader", "Load", "schema validation")
	}
	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			details = append(details, e.String())
		}
		return errors.WrapFatal(
			fmt.Errorf("%w: %s", errors.ErrInvalidConfig, strings.Join(details, "; ")),
			"Loader", "Load", "schema validation")
	}
	return nil
}
