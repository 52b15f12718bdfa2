package announce

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"

	core "github.com/dep2p/go-announce/internal/core/signal"
	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

// ════════════════════════════════════════════════════════════════════════════
//                              版本信息
// ════════════════════════════════════════════════════════════════════════════

// Version 当前版本
const Version = "v0.1.0"

// ════════════════════════════════════════════════════════════════════════════
//                              类型别名
// ════════════════════════════════════════════════════════════════════════════

type (
	// Signal 信号接口
	Signal = pkgif.Signal

	// Connection 注册句柄接口
	Connection = pkgif.Connection

	// Handler 信号处理函数
	Handler = pkgif.Handler

	// SignalHub 命名信号目录接口
	SignalHub = pkgif.SignalHub

	// ConnectOpt 连接选项函数类型
	ConnectOpt = pkgif.ConnectOpt

	// ConnectSettings 连接设置
	ConnectSettings = pkgif.ConnectSettings

	// DispatchError 一轮分发中收集到的全部失败
	DispatchError = core.DispatchError

	// HandlerFailure 单个处理函数的失败记录
	HandlerFailure = core.HandlerFailure

	// HubOption Hub 选项函数类型
	HubOption = core.Option
)

// ════════════════════════════════════════════════════════════════════════════
//                              构造入口
// ════════════════════════════════════════════════════════════════════════════

// Define 声明信号
//
// name 为空时取 responder 的限定函数名作为信号标识。
// responder 可以为 nil，此时信号只做分发。
func Define(name string, responder Handler) Signal {
	return core.Define(name, responder)
}

// NewHub 创建命名信号目录
//
// Hub 显式持有一组命名信号，生命周期与持有者绑定；
// 关闭时释放全部注册。
func NewHub(opts ...HubOption) SignalHub {
	return core.NewHub(opts...)
}

// Module 返回 Fx 模块，提供 SignalHub 并绑定生命周期
func Module(opts ...HubOption) fx.Option {
	return core.Module(opts...)
}

// ════════════════════════════════════════════════════════════════════════════
//                              选项
// ════════════════════════════════════════════════════════════════════════════

// WithKey 显式指定处理函数标识
func WithKey(key any) ConnectOpt {
	return pkgif.WithKey(key)
}

// WithName 显式指定处理函数显示名
func WithName(name string) ConnectOpt {
	return pkgif.WithName(name)
}

// WithMetrics 启用 prometheus 指标采集
func WithMetrics(reg prometheus.Registerer) HubOption {
	return core.WithMetrics(reg)
}
