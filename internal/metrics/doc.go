// Package metrics collects process memory readings and the Prometheus
// metrics of strategy runs.
package metrics
