package signaltest

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	core "github.com/dep2p/go-announce/internal/core/signal"
	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

// ============================================================================
// Recorder 测试
// ============================================================================

// TestRecorder_Watch 测试观察信号
func TestRecorder_Watch(t *testing.T) {
	sig := core.Define("onReady", nil)

	rec := NewRecorder()
	defer rec.Teardown()
	require.NoError(t, rec.Watch(sig))

	require.NoError(t, sig.Fire("hello"))

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, "onReady", records[0].Signal)
	assert.Equal(t, []any{"hello"}, records[0].Args)
	assert.Equal(t, uint64(1), records[0].Seq)
}

// TestRecorder_WatchIdempotent 测试重复观察同一信号
func TestRecorder_WatchIdempotent(t *testing.T) {
	sig := core.Define("onReady", nil)

	rec := NewRecorder()
	defer rec.Teardown()
	require.NoError(t, rec.Watch(sig))
	require.NoError(t, rec.Watch(sig))

	sig.Fire()
	assert.Len(t, rec.Records(), 1, "double watch must not double-record")
}

// TestRecorder_WatchNil 测试观察 nil 信号
func TestRecorder_WatchNil(t *testing.T) {
	rec := NewRecorder()
	defer rec.Teardown()

	assert.ErrorIs(t, rec.Watch(nil), ErrNilSignal)
}

// TestRecorder_SharedSequence 测试序号跨信号共享
func TestRecorder_SharedSequence(t *testing.T) {
	sigA := core.Define("a", nil)
	sigB := core.Define("b", nil)

	rec := NewRecorder()
	defer rec.Teardown()
	require.NoError(t, rec.Watch(sigA))
	require.NoError(t, rec.Watch(sigB))

	sigA.Fire()
	sigB.Fire()
	sigA.Fire()

	records := rec.Records()
	require.Len(t, records, 3)
	for i, r := range records {
		assert.Equal(t, uint64(i+1), r.Seq, "sequence must be strictly increasing")
	}
	assert.Equal(t, "a", records[0].Signal)
	assert.Equal(t, "b", records[1].Signal)
	assert.Equal(t, "a", records[2].Signal)
}

// TestRecorder_Teardown 测试卸载探针
func TestRecorder_Teardown(t *testing.T) {
	sig := core.Define("onReady", nil)

	rec := NewRecorder()
	require.NoError(t, rec.Watch(sig))

	sig.Fire()
	rec.Teardown()

	// 卸载后的触发不再记录，日志保留
	sig.Fire()
	assert.Len(t, rec.Records(), 1)

	// 幂等
	rec.Teardown()

	t.Log("✅ Teardown 测试通过")
}

// TestRecorder_Reset 测试清空日志
func TestRecorder_Reset(t *testing.T) {
	sig := core.Define("onReady", nil)

	rec := NewRecorder()
	defer rec.Teardown()
	require.NoError(t, rec.Watch(sig))

	sig.Fire()
	rec.Reset()
	assert.Empty(t, rec.Records())

	// 探针保持挂载，序号继续递增
	sig.Fire()
	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, uint64(2), records[0].Seq)
}

// TestRecorder_WithClock 测试注入时钟
func TestRecorder_WithClock(t *testing.T) {
	sig := core.Define("onReady", nil)

	mock := clock.NewMock()
	mock.Set(time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC))

	rec := NewRecorder(WithClock(mock))
	defer rec.Teardown()
	require.NoError(t, rec.Watch(sig))

	sig.Fire()
	mock.Add(time.Second)
	sig.Fire()

	records := rec.Records()
	require.Len(t, records, 2)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC), records[0].At)
	assert.Equal(t, time.Date(2024, 6, 1, 12, 0, 1, 0, time.UTC), records[1].At)
}

// TestRecorder_TwoRecordersOneSignal 测试多个记录器观察同一信号
func TestRecorder_TwoRecordersOneSignal(t *testing.T) {
	sig := core.Define("onReady", nil)

	rec1 := NewRecorder()
	defer rec1.Teardown()
	rec2 := NewRecorder()
	defer rec2.Teardown()

	require.NoError(t, rec1.Watch(sig))
	require.NoError(t, rec2.Watch(sig))
	require.NotEqual(t, rec1.ID(), rec2.ID())

	sig.Fire()

	assert.Len(t, rec1.Records(), 1)
	assert.Len(t, rec2.Records(), 1)
}

// TestRecorder_Observe 测试 Observe 便利入口
func TestRecorder_Observe(t *testing.T) {
	sigA := core.Define("a", nil)
	sigB := core.Define("b", nil)

	rec := Observe(t, sigA, sigB)

	sigA.Fire()
	sigB.Fire()

	assert.Len(t, rec.Records(), 2)
	// Teardown 已挂在 t.Cleanup，测试结束自动执行
}

// TestRecorder_ProbeIsOrdinaryHandler 测试探针与普通注册共存且不干扰顺序
func TestRecorder_ProbeIsOrdinaryHandler(t *testing.T) {
	sig := core.Define("onReady", nil)

	var order []string
	sig.Connect(func(s pkgif.Signal, args ...any) error {
		order = append(order, "before")
		return nil
	}, pkgif.WithKey("before"))

	rec := Observe(t, sig)

	sig.Connect(func(s pkgif.Signal, args ...any) error {
		order = append(order, "after")
		return nil
	}, pkgif.WithKey("after"))

	sig.Fire()

	require.Len(t, rec.Records(), 1)
	assert.Equal(t, []string{"before", "after"}, order)
}
