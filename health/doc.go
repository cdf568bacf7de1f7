// Package health provides health status reporting for the synthesis core
// and its registered data sources.
//
// A Status describes one component as healthy, degraded, or unhealthy, with
// optional sub-statuses for composition. Status messages are sanitized:
// URLs and credential-looking fragments are redacted so provider locations
// and secrets never leak into health endpoints.
//
// A Monitor aggregates statuses from multiple components and reports an
// overall state: unhealthy if any component is unhealthy, degraded if any is
// degraded, healthy otherwise.
package health
