// Package config loads and validates the synthesis manifest: the YAML file
// declaring the canonical variable vocabulary and the data sources with their
// mapping tables.
//
// A manifest looks like:
//
//	version: "1.0"
//	vocabulary:
//	  variables_file: observed_properties.csv
//	datasources:
//	  - id: USGS
//	    name: US Geological Survey
//	    location: https://waterservices.usgs.gov/
//	    mapping_file: usgs_mapping.csv
//	    credentials:
//	      token: ${USGS_TOKEN}
//
// ${VAR} references expand from the environment before parsing, so
// credentials stay out of the manifest file. The parsed document is checked
// against a JSON schema first, then semantically validated (unique
// datasource ids, required fields). File paths resolve relative to the
// manifest's directory.
//
// BuildCatalog turns a validated Config into a loaded catalog.Catalog, ready
// to hand to synthesis.New.
package config
