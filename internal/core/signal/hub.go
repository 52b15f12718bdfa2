// Package signal 实现进程内信号分发核心
package signal

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

// ============================================================================
// Hub 实现
// ============================================================================

// Hub 命名信号目录
//
// 显式持有一组命名信号，生命周期与持有者绑定，用于替代进程级
// 的全局信号声明。Hub 关闭时释放全部信号上的全部注册。
type Hub struct {
	mu      sync.Mutex
	signals map[string]*Signal
	order   []string // 创建顺序，Names 按此返回
	closed  bool

	metrics *metricsRecorder
}

// hubSettings Hub 设置
type hubSettings struct {
	registerer prometheus.Registerer
}

// Option Hub 选项函数类型
type Option func(*hubSettings)

// WithMetrics 启用 prometheus 指标采集
//
// Hub 下所有信号的触发与失败计数都会注册到给定的 Registerer。
func WithMetrics(reg prometheus.Registerer) Option {
	return func(s *hubSettings) {
		s.registerer = reg
	}
}

// NewHub 创建新的信号目录
func NewHub(opts ...Option) *Hub {
	settings := &hubSettings{}
	for _, opt := range opts {
		opt(settings)
	}

	h := &Hub{
		signals: make(map[string]*Signal),
	}
	if settings.registerer != nil {
		h.metrics = newMetricsRecorder(settings.registerer)
	}
	return h
}

// Define 声明带响应者的信号
//
// name 为空时取 responder 的限定函数名。名称已绑定响应者时返回
// ErrAlreadyDefined；名称存在但未绑定响应者时补齐绑定。
func (h *Hub) Define(name string, responder pkgif.Handler) (pkgif.Signal, error) {
	if name == "" && responder != nil {
		name = pkgif.HandlerName(responder)
	}
	if name == "" {
		return nil, ErrEmptyName
	}

	s, err := h.getOrCreate(name)
	if err != nil {
		return nil, err
	}
	if responder != nil {
		if err := s.setResponder(responder); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Signal 返回命名信号，不存在时惰性创建（无响应者）
func (h *Hub) Signal(name string) (pkgif.Signal, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	return h.getOrCreate(name)
}

// Names 返回所有已注册的信号名（按创建顺序）
func (h *Hub) Names() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, len(h.order))
	copy(names, h.order)
	return names
}

// Close 关闭 Hub
//
// 释放全部信号上的全部注册；之后的 Define / Signal 返回
// ErrHubClosed。Close 是幂等的。
func (h *Hub) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	signals := make([]*Signal, 0, len(h.signals))
	for _, s := range h.signals {
		signals = append(signals, s)
	}
	h.mu.Unlock()

	for _, s := range signals {
		s.clear()
	}
	logger.Debug("hub closed", "signals", len(signals))
	return nil
}

// getOrCreate 返回命名信号，必要时创建
func (h *Hub) getOrCreate(name string) (*Signal, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, ErrHubClosed
	}
	s, ok := h.signals[name]
	if !ok {
		s = newSignal(name, nil, h.metrics)
		h.signals[name] = s
		h.order = append(h.order, name)
	}
	return s, nil
}
