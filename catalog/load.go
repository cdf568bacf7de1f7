package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/BASIN-3D/basin3d/errors"
	"github.com/BASIN-3D/basin3d/provider"
	"github.com/BASIN-3D/basin3d/types"
	"github.com/BASIN-3D/basin3d/vocabulary"
)

// MappingRow is one raw provider mapping table row before validation.
type MappingRow struct {
	AttrType       string
	CanonicalVocab string
	ProviderVocab  string
	ProviderDesc   string
}

// Expected CSV headers, in order.
var (
	mappingHeader  = []string{"attr_type", "canonical_vocab", "provider_vocab", "provider_desc"}
	variableHeader = []string{"canonical_vocab", "description", "categories", "units"}
)

// LoadVariables installs canonical observed-property variables. A duplicate
// vocabulary term or a row with an empty term is logged and skipped. Loading
// an empty set is fatal.
func (c *Catalog) LoadVariables(vars []vocabulary.ObservedPropertyVariable) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	loaded := 0
	for _, v := range vars {
		if v.Vocab == "" {
			c.logger.Warn("skipping observed property variable with empty vocabulary term")
			continue
		}
		if _, dup := c.variables[v.Vocab]; dup {
			c.logger.Warn("skipping duplicate observed property variable", "vocab", v.Vocab)
			continue
		}
		c.variables[v.Vocab] = v
		c.varOrder = append(c.varOrder, v.Vocab)
		loaded++
	}
	if loaded == 0 {
		return errors.WrapFatal(errors.ErrEmptyMappingTable, "catalog", "LoadVariables",
			"no usable observed property variables were loaded")
	}
	return nil
}

// LoadVariablesCSV reads the canonical variable vocabulary from CSV with
// header "canonical_vocab,description,categories,units".
func (c *Catalog) LoadVariablesCSV(r io.Reader) error {
	records, err := readCSV(r, variableHeader)
	if err != nil {
		return errors.WrapFatal(err, "catalog", "LoadVariablesCSV", "read variable vocabulary")
	}
	vars := make([]vocabulary.ObservedPropertyVariable, 0, len(records))
	for n, rec := range records {
		if len(rec) != len(variableHeader) {
			c.logger.Warn("skipping variable row with wrong field count",
				"row", n+1, "fields", len(rec))
			continue
		}
		vars = append(vars, vocabulary.ObservedPropertyVariable{
			Vocab:      strings.TrimSpace(rec[0]),
			FullName:   strings.TrimSpace(rec[1]),
			Categories: vocabulary.ParseCategories(rec[2]),
			Units:      strings.TrimSpace(rec[3]),
		})
	}
	return c.LoadVariables(vars)
}

// Load builds and installs the mapping table for one provider. Rows that fail
// validation are logged and skipped; a duplicate (attribute type, provider
// term) key keeps the first row. The table replaces any previously loaded
// table for the same provider atomically. Ending up with zero usable rows is
// fatal.
func (c *Catalog) Load(ds provider.DataSource, rows []MappingRow) error {
	if ds.ID == "" {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "catalog", "Load",
			"datasource id must not be empty")
	}

	t := &providerTable{
		ds:              ds,
		byProviderVocab: make(map[string][]int),
	}
	seen := make(map[string]bool)

	c.mu.Lock()
	defer c.mu.Unlock()

	for n, row := range rows {
		m, err := c.buildMapping(ds, row)
		if err != nil {
			c.logger.Warn("skipping mapping row", "datasource", ds.ID, "row", n+1, "error", err)
			continue
		}
		key := m.AttrType + "\x00" + m.ProviderVocab
		if seen[key] {
			c.logger.Warn("skipping duplicate mapping row",
				"datasource", ds.ID, "row", n+1,
				"attr_type", m.AttrType, "provider_vocab", m.ProviderVocab)
			continue
		}
		seen[key] = true
		t.byProviderVocab[m.ProviderVocab] = append(t.byProviderVocab[m.ProviderVocab], len(t.rows))
		t.rows = append(t.rows, m)
	}

	if len(t.rows) == 0 {
		return errors.WrapFatal(errors.ErrEmptyMappingTable, "catalog", "Load",
			fmt.Sprintf("no usable mapping rows for datasource %q", ds.ID))
	}

	if _, reload := c.tables[ds.ID]; !reload {
		c.providers = append(c.providers, ds.ID)
	}
	c.tables[ds.ID] = t
	if c.metrics != nil {
		c.metrics.SetCatalogTableRows(ds.ID, len(t.rows))
	}
	return nil
}

// LoadCSV reads one provider's mapping table from CSV with header
// "attr_type,canonical_vocab,provider_vocab,provider_desc". A data row with
// the wrong number of fields is logged and skipped, like any other malformed
// row.
func (c *Catalog) LoadCSV(ds provider.DataSource, r io.Reader) error {
	records, err := readCSV(r, mappingHeader)
	if err != nil {
		return errors.WrapFatal(err, "catalog", "LoadCSV",
			fmt.Sprintf("read mapping table for datasource %q", ds.ID))
	}
	rows := make([]MappingRow, 0, len(records))
	for n, rec := range records {
		if len(rec) != len(mappingHeader) {
			c.logger.Warn("skipping mapping row with wrong field count",
				"datasource", ds.ID, "row", n+1, "fields", len(rec))
			continue
		}
		rows = append(rows, MappingRow{
			AttrType:       strings.TrimSpace(rec[0]),
			CanonicalVocab: strings.TrimSpace(rec[1]),
			ProviderVocab:  strings.TrimSpace(rec[2]),
			ProviderDesc:   strings.TrimSpace(rec[3]),
		})
	}
	return c.Load(ds, rows)
}

// buildMapping validates one raw row against the attribute vocabulary and
// the loaded variable store. Callers must hold c.mu.
func (c *Catalog) buildMapping(ds provider.DataSource, row MappingRow) (types.AttributeMapping, error) {
	if row.AttrType == "" || row.CanonicalVocab == "" || row.ProviderVocab == "" {
		return types.AttributeMapping{}, errors.Wrap(errors.ErrMalformedRow,
			"catalog", "buildMapping", "attr_type, canonical_vocab and provider_vocab are required")
	}

	attrParts := vocabulary.SplitCompound(row.AttrType)
	vocabParts := vocabulary.SplitCompound(row.CanonicalVocab)
	if len(attrParts) != len(vocabParts) {
		return types.AttributeMapping{}, errors.Wrap(errors.ErrMalformedRow,
			"catalog", "buildMapping",
			fmt.Sprintf("attribute type %q and vocabulary %q have mismatched parts",
				row.AttrType, row.CanonicalVocab))
	}

	desc := make([]string, len(attrParts))
	for i, part := range attrParts {
		at, ok := vocabulary.ParseAttributeType(part)
		if !ok {
			return types.AttributeMapping{}, errors.Wrap(errors.ErrMalformedRow,
				"catalog", "buildMapping", fmt.Sprintf("unknown attribute type %q", part))
		}
		term := vocabParts[i]
		if at == vocabulary.AttributeObservedProperty {
			v, ok := c.variables[term]
			if !ok {
				return types.AttributeMapping{}, errors.Wrap(errors.ErrMalformedRow,
					"catalog", "buildMapping",
					fmt.Sprintf("observed property %q is not in the variable vocabulary", term))
			}
			desc[i] = v.FullName
			continue
		}
		if !vocabulary.ValidTerm(at, term) {
			return types.AttributeMapping{}, errors.Wrap(errors.ErrMalformedRow,
				"catalog", "buildMapping",
				fmt.Sprintf("%q is not a valid %s term", term, at))
		}
		desc[i] = term
	}

	return types.AttributeMapping{
		AttrType:       row.AttrType,
		CanonicalVocab: row.CanonicalVocab,
		CanonicalDesc:  desc,
		ProviderVocab:  row.ProviderVocab,
		ProviderDesc:   row.ProviderDesc,
		DataSource:     ds,
	}, nil
}

// readCSV reads all records after verifying the header. Data rows come back
// with whatever field count they carry; callers skip the malformed ones.
func readCSV(r io.Reader, header []string) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	// Field-count mismatches are per-row defects; callers skip those rows
	// instead of failing the whole load.
	cr.FieldsPerRecord = -1

	got, err := cr.Read()
	if err == io.EOF {
		return nil, errors.New("mapping file is empty")
	}
	if err != nil {
		return nil, err
	}
	if len(got) != len(header) {
		return nil, fmt.Errorf("expected header %q, got %q", strings.Join(header, ","), strings.Join(got, ","))
	}
	for i, h := range header {
		if strings.TrimSpace(got[i]) != h {
			return nil, fmt.Errorf("expected header %q, got %q", strings.Join(header, ","), strings.Join(got, ","))
		}
	}
	return cr.ReadAll()
}
