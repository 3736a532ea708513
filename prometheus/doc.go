// Package prometheus provides a Prometheus adapter for
// github.com/abczzz13/routetable.
//
// The package exposes routetable options that install a Prometheus-backed
// Metrics implementation on a table, using either the default registerer or
// a caller-provided registerer.
package prometheus
