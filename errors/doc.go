// Package errors provides standardized error handling for the synthesis core.
//
// # Overview
//
// The package implements a three-class error classification system: Fatal
// (configuration or validation failures that abort before any provider is
// contacted), Invalid (malformed input, skipped locally), and Transient
// (provider-side failures that degrade to diagnostic messages).
//
// The propagation policy follows the synthesis error taxonomy: fatal errors
// surface directly to the caller; everything else is recovered where it occurs
// and reported through the synthesis message list, never by truncating valid
// results from unaffected providers.
//
// # Error Classification
//
//   - Fatal: unrecognized query filters, duplicate provider registration, a
//     provider left with an empty mapping table after catalog load.
//   - Invalid: a malformed mapping row, an unparsable measurement value, a
//     vocabulary term with no mapping. These never abort processing.
//   - Transient: a provider fetch failure. The provider's contribution ends;
//     other providers are unaffected.
//
// The classification integrates with Go's standard error handling, supporting
// errors.Is(), errors.As(), and wrapping chains.
//
// # Quick Start
//
// Return standard error variables for known conditions:
//
//	if _, ok := registry[p.ID]; ok {
//	    return errors.ErrDuplicateProvider
//	}
//
// Wrap errors with component context:
//
//	if err := cat.Load(ds, rows); err != nil {
//	    return errors.Wrap(err, "Catalog", "Load", "mapping table load")
//	}
//
// Check classification at recovery boundaries:
//
//	if errors.IsFatal(err) {
//	    return err // abort before I/O
//	}
package errors
