// Package signal 实现进程内信号分发核心
package signal

import (
	"fmt"
	"sync"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
	"github.com/dep2p/go-announce/pkg/lib/log"
)

var logger = log.Logger("core/signal")

// ============================================================================
// Signal 实现
// ============================================================================

// Signal 信号
//
// 包装一个可选的响应者（被包装的可调用对象）。Fire 时先调用
// 响应者，再按注册顺序把 (signal, args...) 同步分发给全部存活的
// 处理函数。
type Signal struct {
	name string

	mu            sync.Mutex
	responder     pkgif.Handler
	responderName string
	reg           handlerRegistry

	metrics *metricsRecorder // 可选，经由 Hub 注入
}

// Define 声明信号
//
// name 为空时取 responder 的限定函数名作为信号标识。
// responder 可以为 nil，此时信号只做分发。
func Define(name string, responder pkgif.Handler) *Signal {
	return newSignal(deriveName(name, responder), responder, nil)
}

// newSignal 构造信号
func newSignal(name string, responder pkgif.Handler, m *metricsRecorder) *Signal {
	s := &Signal{
		name:    name,
		metrics: m,
	}
	if responder != nil {
		s.responder = responder
		s.responderName = pkgif.HandlerName(responder)
	}
	return s
}

// deriveName 推导信号标识
func deriveName(name string, responder pkgif.Handler) string {
	if name != "" {
		return name
	}
	if responder != nil {
		return pkgif.HandlerName(responder)
	}
	return "anonymous"
}

// Name 返回信号标识
func (s *Signal) Name() string {
	return s.name
}

func (s *Signal) String() string {
	return fmt.Sprintf("<Signal name:%q>", s.name)
}

// Connect 注册处理函数
//
// 按处理函数标识幂等：同一标识重复注册是静默空操作，返回已有的
// Connection。标识默认取处理函数的代码指针，可用 WithKey 覆盖；
// 显示名默认取限定函数名，可用 WithName 覆盖。
func (s *Signal) Connect(h pkgif.Handler, opts ...pkgif.ConnectOpt) (pkgif.Connection, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	settings := applyConnectOpts(h, opts)

	e := &entry{
		key:     settings.Key,
		name:    settings.Name,
		handler: h,
	}

	s.mu.Lock()
	cur, added := s.reg.add(e)
	s.mu.Unlock()

	if added {
		logger.Debug("connect", "signal", s.name, "handler", cur.name)
	}
	return &connection{entry: cur}, nil
}

// Disconnect 取消注册
//
// 处理函数未注册、已取消或已失效时返回 ErrNotConnected。
// 选项必须与 Connect 时传入的一致。
func (s *Signal) Disconnect(h pkgif.Handler, opts ...pkgif.ConnectOpt) error {
	if h == nil {
		return ErrNilHandler
	}
	settings := applyConnectOpts(h, opts)

	s.mu.Lock()
	err := s.reg.remove(settings.Key)
	s.mu.Unlock()

	if err != nil {
		return err
	}
	logger.Debug("disconnect", "signal", s.name, "handler", settings.Name)
	return nil
}

// Fire 触发信号
//
// 先调用响应者（如果有），然后按注册顺序分发给全部存活的处理
// 函数。任何处理函数失败（返回错误或 panic）都不会中断分发；
// 整轮结束后如有失败，以 DispatchError 聚合返回，逐一指明失败的
// 处理函数。
//
// 分发在调用方 goroutine 上同步进行，Fire 返回前所有处理函数都
// 已执行完毕。处理函数内再次触发信号（包括触发自身）会在同一
// 调用栈上递归，核心不做递归保护，由调用方自行负责。
func (s *Signal) Fire(args ...any) error {
	// 在锁内取快照，在锁外分发：处理函数自身阻塞不会卡住
	// 同一信号上的 Connect / Disconnect
	s.mu.Lock()
	responder, responderName := s.responder, s.responderName
	entries := s.reg.live()
	s.mu.Unlock()

	s.metrics.observeFiring(s.name)

	var failures []HandlerFailure
	if responder != nil {
		if err := s.invoke(responder, args); err != nil {
			failures = append(failures, HandlerFailure{Handler: responderName, Err: err})
		}
	}
	for _, e := range entries {
		// 快照之后才失效的条目不再调用
		if !e.alive() {
			continue
		}
		if err := s.invoke(e.handler, args); err != nil {
			failures = append(failures, HandlerFailure{Handler: e.name, Err: err})
		}
	}

	if len(failures) > 0 {
		s.metrics.observeFailures(s.name, len(failures))
		logger.Warn("dispatch failures", "signal", s.name, "failed", len(failures))
		return &DispatchError{Signal: s.name, Failures: failures}
	}
	return nil
}

// invoke 调用单个处理函数，panic 转换为错误
func (s *Signal) invoke(h pkgif.Handler, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()
	return h(s, args...)
}

// setResponder 绑定响应者
//
// 已绑定时返回 ErrAlreadyDefined。
func (s *Signal) setResponder(responder pkgif.Handler) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.responder != nil {
		return ErrAlreadyDefined
	}
	s.responder = responder
	s.responderName = pkgif.HandlerName(responder)
	return nil
}

// clear 释放响应者与全部注册
func (s *Signal) clear() {
	s.mu.Lock()
	s.responder = nil
	s.responderName = ""
	s.reg.clear()
	s.mu.Unlock()
}

// applyConnectOpts 应用连接选项并补齐默认标识
func applyConnectOpts(h pkgif.Handler, opts []pkgif.ConnectOpt) *connectSettings {
	settings := &connectSettings{}
	for _, opt := range opts {
		opt(settings)
	}
	if settings.Key == nil {
		settings.Key = pkgif.HandlerKey(h)
	}
	if settings.Name == "" {
		settings.Name = pkgif.HandlerName(h)
	}
	return settings
}

// ============================================================================
// Connection 实现
// ============================================================================

// connection 注册句柄
type connection struct {
	entry *entry
}

// Release 释放注册
//
// 释放后条目不再被调用，并在下一次分发或取消注册的遍历中被
// 惰性清除；对同一标识的 Disconnect 此后返回 ErrNotConnected。
// Release 是幂等的，可以多次调用。
func (c *connection) Release() {
	c.entry.expired.Store(true)
}

// Alive 返回注册是否仍然有效
func (c *connection) Alive() bool {
	return c.entry.alive()
}
