package signal

import (
	"errors"
	"testing"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

// ============================================================================
// 场景集成测试
// ============================================================================

// TestIntegration_ReadyScenario 测试典型的就绪通知场景
//
// 声明 onReady，注册把 "ready" 追加进列表的处理函数，
// 触发一次后列表等于 ["ready"] 且无错误。
func TestIntegration_ReadyScenario(t *testing.T) {
	onReady := Define("onReady", nil)

	var seen []string
	logReady := func(s pkgif.Signal, args ...any) error {
		seen = append(seen, "ready")
		return nil
	}

	if _, err := onReady.Connect(logReady); err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	if err := onReady.Fire(); err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != "ready" {
		t.Errorf("seen = %v, want [ready]", seen)
	}
}

// TestIntegration_OneHandlerManySignals 测试一个处理函数观察多个信号
func TestIntegration_OneHandlerManySignals(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	sigA, _ := hub.Signal("a")
	sigB, _ := hub.Signal("b")

	var fired []string
	observer := func(s pkgif.Signal, args ...any) error {
		fired = append(fired, s.Name())
		return nil
	}

	sigA.Connect(observer)
	sigB.Connect(observer)

	sigA.Fire()
	sigB.Fire()
	sigA.Fire()

	if len(fired) != 3 || fired[0] != "a" || fired[1] != "b" || fired[2] != "a" {
		t.Errorf("fired = %v, want [a b a]", fired)
	}
}

// TestIntegration_ReentrantFire 测试处理函数内再触发信号
//
// 递归在同一调用栈上进行，核心不做递归保护；这里验证
// 处理函数触发另一个信号以及有界地触发自身都能正常工作。
func TestIntegration_ReentrantFire(t *testing.T) {
	hub := NewHub()
	defer hub.Close()

	first, _ := hub.Signal("first")
	second, _ := hub.Signal("second")

	var order []string
	first.Connect(func(s pkgif.Signal, args ...any) error {
		order = append(order, "first")
		return second.Fire()
	})
	second.Connect(func(s pkgif.Signal, args ...any) error {
		order = append(order, "second")
		return nil
	})

	if err := first.Fire(); err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

// TestIntegration_ReentrantSelfFire 测试处理函数有界触发自身信号
func TestIntegration_ReentrantSelfFire(t *testing.T) {
	sig := Define("countdown", nil)

	calls := 0
	sig.Connect(func(s pkgif.Signal, args ...any) error {
		calls++
		n := args[0].(int)
		if n > 0 {
			return sig.Fire(n - 1)
		}
		return nil
	})

	if err := sig.Fire(3); err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	if calls != 4 {
		t.Errorf("handler called %d times, want 4", calls)
	}
}

// TestIntegration_DisconnectDuringDispatch 测试分发期间取消注册
//
// 分发对快照进行：本轮开始前取到的存活条目里，尚未执行到的
// 条目若在分发期间失效则被跳过。
func TestIntegration_DisconnectDuringDispatch(t *testing.T) {
	sig := Define("test", nil)

	secondCalled := false
	second := func(s pkgif.Signal, args ...any) error {
		secondCalled = true
		return nil
	}

	sig.Connect(func(s pkgif.Signal, args ...any) error {
		// 在第一个处理函数里取消第二个
		return sig.Disconnect(second)
	}, WithKey("first"))
	sig.Connect(second)

	if err := sig.Fire(); err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	if secondCalled {
		t.Error("handler called after being disconnected mid-dispatch")
	}
}

// TestIntegration_ErrorChain 测试错误链完整性
func TestIntegration_ErrorChain(t *testing.T) {
	sig := Define("test", nil)

	sentinel := errors.New("sentinel")
	sig.Connect(func(s pkgif.Signal, args ...any) error {
		return sentinel
	})
	sig.Connect(func(s pkgif.Signal, args ...any) error {
		return nil
	}, WithKey("ok"))

	err := sig.Fire()

	var derr *DispatchError
	if !errors.As(err, &derr) {
		t.Fatalf("Fire() = %v, want *DispatchError", err)
	}
	if !errors.Is(err, sentinel) {
		t.Error("errors.Is through DispatchError failed")
	}
}
