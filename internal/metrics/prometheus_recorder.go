package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

const namespace = "docsite"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	reg           *prom.Registry
	emitTotal     *prom.CounterVec
	emitDuration  *prom.HistogramVec
	lintIssues    *prom.GaugeVec
	sidebarItems  prom.Gauge
	sidebarGroups prom.Gauge
}

// NewPrometheusRecorder constructs and registers the metrics on reg, or on a
// fresh registry when reg is nil.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		reg: reg,
		emitTotal: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "emit_total",
			Help:      "Emission runs by target and result",
		}, []string{"target", "result"}),
		emitDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "emit_duration_seconds",
			Help:      "Duration of emission runs",
			Buckets:   prom.DefBuckets,
		}, []string{"target"}),
		lintIssues: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "lint_issues",
			Help:      "Lint issues of the last run by severity",
		}, []string{"severity"}),
		sidebarItems: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sidebar_items",
			Help:      "Sidebar links in the last emitted site",
		}),
		sidebarGroups: prom.NewGauge(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "sidebar_groups",
			Help:      "Sidebar groups in the last emitted site",
		}),
	}
	reg.MustRegister(pr.emitTotal, pr.emitDuration, pr.lintIssues, pr.sidebarItems, pr.sidebarGroups)
	return pr
}

func (p *PrometheusRecorder) ObserveEmit(target string, d time.Duration, result ResultLabel) {
	p.emitTotal.WithLabelValues(target, string(result)).Inc()
	p.emitDuration.WithLabelValues(target).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetLintIssues(severity string, n int) {
	p.lintIssues.WithLabelValues(severity).Set(float64(n))
}

func (p *PrometheusRecorder) SetSidebarEntries(groups, items int) {
	p.sidebarGroups.Set(float64(groups))
	p.sidebarItems.Set(float64(items))
}

// Gatherer exposes the underlying registry.
func (p *PrometheusRecorder) Gatherer() prom.Gatherer { return p.reg }

// WriteTextfile writes the registry in text exposition format. The file is
// replaced atomically so the node-exporter never reads a partial file.
func (p *PrometheusRecorder) WriteTextfile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prom.WriteToTextfile(path, p.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
