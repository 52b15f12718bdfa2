// Package signal 实现进程内信号分发核心
package signal

import "github.com/prometheus/client_golang/prometheus"

// ============================================================================
// 指标采集
// ============================================================================

// metricsRecorder 信号指标
//
// 通过 Hub 的 WithMetrics 选项启用。nil 接收者上所有方法都是
// 空操作，未启用指标时没有额外开销。
type metricsRecorder struct {
	firings  *prometheus.CounterVec
	failures *prometheus.CounterVec
}

// newMetricsRecorder 创建并注册信号指标
func newMetricsRecorder(reg prometheus.Registerer) *metricsRecorder {
	m := &metricsRecorder{
		firings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "announce",
			Subsystem: "signal",
			Name:      "firings_total",
			Help:      "Total number of signal firings.",
		}, []string{"signal"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "announce",
			Subsystem: "signal",
			Name:      "handler_failures_total",
			Help:      "Total number of handler failures during dispatch.",
		}, []string{"signal"}),
	}
	reg.MustRegister(m.firings, m.failures)
	return m
}

// observeFiring 记录一次触发
func (m *metricsRecorder) observeFiring(name string) {
	if m == nil {
		return
	}
	m.firings.WithLabelValues(name).Inc()
}

// observeFailures 记录一轮分发中的失败个数
func (m *metricsRecorder) observeFailures(name string, n int) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(name).Add(float64(n))
}
