// Package signaltest 提供信号测试观察工具
package signaltest

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"go.uber.org/multierr"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
	"github.com/dep2p/go-announce/pkg/lib/log"
)

var logger = log.Logger("signaltest")

// ============================================================================
// FiringRecord
// ============================================================================

// FiringRecord 一次触发的记录
type FiringRecord struct {
	// Signal 触发的信号标识
	Signal string
	// Args 触发参数（副本）
	Args []any
	// Seq 全局递增序号，跨全部被观察的信号共享
	Seq uint64
	// At 记录时间
	At time.Time
}

// ============================================================================
// Recorder 实现
// ============================================================================

// Recorder 信号记录器
//
// 给一个或多个信号挂载探针；探针只是注册表里普通的一条注册，
// 每次被观察的信号触发时追加一条 FiringRecord。测试结束时必须
// 调用 Teardown 卸载探针（defer 或 t.Cleanup），避免探针漂到
// 后续测试里。
type Recorder struct {
	id  string
	clk clock.Clock

	mu      sync.Mutex
	seq     uint64
	records []FiringRecord
	watched map[pkgif.Signal]struct{}
}

// probeKey 探针标识
//
// 探针处理函数是方法值，代码指针在不同 Recorder 之间相同，
// 因此用 Recorder 本身作为注册标识。
type probeKey struct {
	rec *Recorder
}

// recorderSettings Recorder 设置
type recorderSettings struct {
	clk clock.Clock
}

// Option Recorder 选项函数类型
type Option func(*recorderSettings)

// WithClock 指定时钟
//
// 测试中可传入 clock.NewMock() 获得确定的记录时间。
func WithClock(clk clock.Clock) Option {
	return func(s *recorderSettings) {
		s.clk = clk
	}
}

// NewRecorder 创建新的记录器
func NewRecorder(opts ...Option) *Recorder {
	settings := &recorderSettings{
		clk: clock.New(),
	}
	for _, opt := range opts {
		opt(settings)
	}

	return &Recorder{
		id:      uuid.New().String(),
		clk:     settings.clk,
		watched: make(map[pkgif.Signal]struct{}),
	}
}

// Observe 创建记录器并观察给定信号
//
// Teardown 自动注册到 t.Cleanup，无论测试结果如何都会执行。
func Observe(t testing.TB, sigs ...pkgif.Signal) *Recorder {
	t.Helper()
	r := NewRecorder()
	t.Cleanup(r.Teardown)
	for _, sig := range sigs {
		if err := r.Watch(sig); err != nil {
			t.Fatalf("watch %q: %v", sig.Name(), err)
		}
	}
	return r
}

// ID 返回记录器标识
func (r *Recorder) ID() string {
	return r.id
}

// Watch 观察信号
//
// 对同一信号重复调用是幂等的；可以观察多个不同的信号，
// 所有触发都追加进同一份按序号排列的日志。
func (r *Recorder) Watch(sig pkgif.Signal) error {
	if sig == nil {
		return ErrNilSignal
	}

	r.mu.Lock()
	if _, ok := r.watched[sig]; ok {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	if _, err := sig.Connect(r.observe, pkgif.WithKey(probeKey{rec: r})); err != nil {
		return err
	}

	r.mu.Lock()
	r.watched[sig] = struct{}{}
	r.mu.Unlock()

	logger.Debug("watch", "recorder", r.id, "signal", sig.Name())
	return nil
}

// Teardown 卸载全部探针
//
// 日志保留，探针全部断开；幂等，可以多次调用。
func (r *Recorder) Teardown() {
	r.mu.Lock()
	watched := r.watched
	r.watched = make(map[pkgif.Signal]struct{})
	r.mu.Unlock()

	var err error
	for sig := range watched {
		multierr.AppendInto(&err, sig.Disconnect(r.observe, pkgif.WithKey(probeKey{rec: r})))
	}
	if err != nil {
		// 探针可能已随 Hub 关闭被释放，记录即可
		logger.Warn("teardown", "recorder", r.id, "err", err)
	}
}

// Records 返回触发日志快照
func (r *Recorder) Records() []FiringRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]FiringRecord, len(r.records))
	copy(out, r.records)
	return out
}

// Reset 清空触发日志
//
// 探针保持挂载，序号继续递增。
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

// observe 探针处理函数，追加一条触发记录
func (r *Recorder) observe(sig pkgif.Signal, args ...any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.records = append(r.records, FiringRecord{
		Signal: sig.Name(),
		Args:   append([]any(nil), args...),
		Seq:    r.seq,
		At:     r.clk.Now(),
	})
	return nil
}
