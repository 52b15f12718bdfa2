// Package signal 实现进程内信号分发核心
//
// 提供同步、有序的发布/订阅机制，支持：
//   - 按注册顺序分发
//   - 按标识去重（幂等 Connect）
//   - 注册句柄（Release 后惰性清除）
//   - 失败聚合（部分失败不中断分发）
//   - 命名信号目录（Hub）
//
// # 快速开始
//
//	// 声明信号
//	onReady := signal.Define("onReady", nil)
//
//	// 注册处理函数
//	conn, _ := onReady.Connect(func(sig pkgif.Signal, args ...any) error {
//	    // 处理触发
//	    return nil
//	})
//	defer conn.Release()
//
//	// 触发信号
//	onReady.Fire()
//
// # Fx 模块
//
//	import "go.uber.org/fx"
//
//	app := fx.New(
//	    signal.Module(),
//	    fx.Invoke(func(hub pkgif.SignalHub) {
//	        sig, _ := hub.Signal("onReady")
//	        // ...
//	    }),
//	)
//
// # 并发模型
//
// 分发严格同步：Fire 在调用方 goroutine 上阻塞，直到全部存活
// 处理函数执行完毕。每个信号一把互斥锁保护注册表；分发在锁外
// 对快照进行，处理函数自身阻塞不会卡住同一信号上的 Connect /
// Disconnect。处理函数内再次触发信号（包括触发自身）在同一调用
// 栈上递归，核心不做递归保护，由调用方自行负责。
//
// 跨 goroutine 的分发顺序不在保证范围内。
//
// # 依赖关系
//
//   - 依赖：pkg/interfaces, pkg/lib/log
//   - 被依赖：根包 announce, pkg/signaltest（经由接口）
package signal
