// Package announce 提供进程内信号（事件）分发库
//
// go-announce 是一个同步、有序的进程内发布/订阅库：声明一个包装
// 可调用对象的命名信号，任意观察者注册兴趣，信号触发时按注册
// 顺序同步送达全部存活的处理函数，并附带一套用于测试中验证信号
// 行为的观察工具。
//
// # 核心概念
//
// go-announce 围绕三个核心概念构建：
//
//   - Signal: 命名分发点，包装一个可选的响应者
//   - Connection: 注册句柄，"观察而非持有"关系的具体化
//   - Recorder: 测试观察者，记录触发供断言查询
//
// # 快速开始
//
//	import "github.com/dep2p/go-announce"
//
//	// 1. 声明信号
//	onReady := announce.Define("onReady", nil)
//
//	// 2. 注册处理函数
//	conn, _ := onReady.Connect(func(sig announce.Signal, args ...any) error {
//	    fmt.Println("ready:", args)
//	    return nil
//	})
//	defer conn.Release()
//
//	// 3. 触发信号
//	if err := onReady.Fire("hello"); err != nil {
//	    // 一个或多个处理函数失败，err 是 *DispatchError
//	    log.Print(err)
//	}
//
// # 分发语义
//
//   - 同步：Fire 阻塞直到全部处理函数执行完毕
//   - 有序：按注册顺序送达；删除后重新注册排到末尾
//   - 幂等注册：同一标识重复 Connect 是空操作
//   - 失败聚合：处理函数失败不会中断分发，整轮结束后以
//     DispatchError 统一返回
//   - 重复 Disconnect 返回 ErrNotConnected，暴露记账错误
//
// # 测试观察
//
//	rec := signaltest.Observe(t, sigA, sigB)
//	// ... 触发 ...
//	signaltest.AssertFired(t, rec, sigA, signaltest.WithArgs("hello"))
//	signaltest.AssertOrdering(t, rec, sigA, sigB, sigA)
//
// # 边界
//
// 不是分布式消息总线：无持久化、无跨进程传输、无重试语义，
// 跨 goroutine 的分发顺序不在保证范围内。需要跨线程使用时，
// 每个信号内部的互斥锁只保证注册表不被写坏，处理函数的执行
// 顺序由调用方自行同步。
package announce
