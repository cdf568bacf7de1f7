package vocabulary

import "strings"

// ObservedPropertyVariable is one entry in the canonical observed-property
// vocabulary: the variable or aspect being measured, independent of any
// provider. The canonical unit is the unit synthesized observations are
// expected to report in.
type ObservedPropertyVariable struct {
	// Vocab is the canonical identifier, e.g. "RDC" for river discharge.
	Vocab string
	// FullName is the human-readable name, e.g. "River Discharge".
	FullName string
	// Categories are coarse-to-fine classification tags, e.g.
	// ["Hydrology", "Subsurface"].
	Categories []string
	// Units is the canonical unit of measurement, e.g. "m3/s".
	Units string
}

// String returns "Vocab -- FullName".
func (v ObservedPropertyVariable) String() string {
	return v.Vocab + " -- " + v.FullName
}

// ParseCategories splits a comma-separated category string into trimmed tags.
// Empty input yields nil.
func ParseCategories(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	categories := make([]string, 0, len(parts))
	for _, p := range parts {
		categories = append(categories, strings.TrimSpace(p))
	}
	return categories
}
