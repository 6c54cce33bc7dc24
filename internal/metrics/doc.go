// Package metrics records emission and lint metrics.
//
// Components receive a Recorder and default to NoopRecorder, so call sites
// never check for nil. When a textfile path is configured the CLI swaps in a
// PrometheusRecorder and writes its registry in the text exposition format for
// the node-exporter textfile collector:
//
//	rec := metrics.NewPrometheusRecorder(nil)
//	gen := generator.New(cfg, generator.WithRecorder(rec))
//	...
//	_ = rec.WriteTextfile("/var/lib/node_exporter/docsite.prom")
package metrics
