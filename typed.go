package announce

import (
	"fmt"

	core "github.com/dep2p/go-announce/internal/core/signal"
	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              类型化信号
// ════════════════════════════════════════════════════════════════════════════

// TypedHandler 带类型载荷的处理函数
type TypedHandler[T any] func(sig Signal, v T) error

// Typed 带类型载荷的信号包装
//
// 每个信号定义一个具体的处理函数契约类型，用编译期类型安全
// 换掉任意参数的动态分发。载荷动态类型不符时按该处理函数的
// 失败处理，不会 panic，也不影响其余处理函数。
type Typed[T any] struct {
	sig Signal
}

// DefineTyped 声明带类型载荷的信号
//
// name 为空时取 responder 的限定函数名。responder 可以为 nil。
func DefineTyped[T any](name string, responder TypedHandler[T]) *Typed[T] {
	if name == "" && responder != nil {
		name = pkgif.HandlerName(responder)
	}
	t := &Typed[T]{}
	var wrapped Handler
	if responder != nil {
		wrapped = t.wrap(responder)
	}
	t.sig = core.Define(name, wrapped)
	return t
}

// Name 返回信号标识
func (t *Typed[T]) Name() string {
	return t.sig.Name()
}

// Signal 返回底层信号
//
// 用于需要非类型化接口的场合，比如交给 signaltest.Recorder 观察。
func (t *Typed[T]) Signal() Signal {
	return t.sig
}

// Connect 注册带类型处理函数
//
// 幂等语义与 Signal.Connect 一致，标识默认取处理函数本体的
// 代码指针。
func (t *Typed[T]) Connect(h TypedHandler[T], opts ...ConnectOpt) (Connection, error) {
	if h == nil {
		return nil, ErrNilHandler
	}
	opts = append(typedDefaults(h), opts...)
	return t.sig.Connect(t.wrap(h), opts...)
}

// Disconnect 取消注册
//
// 处理函数未注册或已失效时返回 ErrNotConnected。
func (t *Typed[T]) Disconnect(h TypedHandler[T], opts ...ConnectOpt) error {
	if h == nil {
		return ErrNilHandler
	}
	opts = append(typedDefaults(h), opts...)
	return t.sig.Disconnect(t.wrap(h), opts...)
}

// Fire 触发信号，载荷为 v
func (t *Typed[T]) Fire(v T) error {
	return t.sig.Fire(v)
}

// wrap 把带类型处理函数适配成通用处理函数
func (t *Typed[T]) wrap(h TypedHandler[T]) Handler {
	return func(sig Signal, args ...any) error {
		v, err := payload[T](sig.Name(), args)
		if err != nil {
			return err
		}
		return h(sig, v)
	}
}

// typedDefaults 从处理函数本体推导标识与显示名
//
// wrap 生成的闭包共享代码指针，不能作为默认标识。
func typedDefaults[T any](h TypedHandler[T]) []ConnectOpt {
	return []ConnectOpt{
		pkgif.WithKey(pkgif.HandlerKey(h)),
		pkgif.WithName(pkgif.HandlerName(h)),
	}
}

// payload 提取并校验载荷
func payload[T any](sig string, args []any) (T, error) {
	var zero T
	if len(args) != 1 {
		return zero, fmt.Errorf("signal %q: expected 1 payload argument, got %d", sig, len(args))
	}
	v, ok := args[0].(T)
	if !ok {
		return zero, fmt.Errorf("signal %q: payload type %T, want %T", sig, args[0], zero)
	}
	return v, nil
}
