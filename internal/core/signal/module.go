// Package signal 实现进程内信号分发核心
package signal

import (
	"context"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
	"go.uber.org/fx"
)

// ============================================================================
// Fx 模块
// ============================================================================

// Result Fx 模块输出结果
type Result struct {
	fx.Out

	Hub pkgif.SignalHub
}

// Module 返回 Fx 模块
func Module(opts ...Option) fx.Option {
	return fx.Module("signal",
		fx.Provide(func() Result {
			return ProvideHub(opts...)
		}),
		fx.Invoke(registerLifecycle),
	)
}

// ProvideHub 提供 SignalHub 实例
func ProvideHub(opts ...Option) Result {
	return Result{
		Hub: NewHub(opts...),
	}
}

// lifecycleInput 生命周期输入参数
type lifecycleInput struct {
	fx.In

	LC  fx.Lifecycle
	Hub pkgif.SignalHub
}

// registerLifecycle 注册生命周期
func registerLifecycle(input lifecycleInput) {
	input.LC.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			// Hub 启动（当前无需特殊启动逻辑）
			return nil
		},
		OnStop: func(_ context.Context) error {
			// 释放全部信号上的全部注册
			return input.Hub.Close()
		},
	})
}

// ============================================================================
// 模块元信息
// ============================================================================

const (
	// Version 模块版本
	Version = "1.0.0"
	// Name 模块名称
	Name = "signal"
	// Description 模块描述
	Description = "信号模块，提供同步有序的进程内发布/订阅机制"
)
