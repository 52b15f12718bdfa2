// Package signaltest 提供信号测试观察工具
//
// Recorder 给一个或多个信号挂载探针，把每次触发按全局递增序号
// 追加进同一份只增日志；断言函数在日志上做只读查询，用于验证
// 信号"触发过 / 未触发过 / 按相对顺序触发"。
//
// # 快速开始
//
//	func TestReady(t *testing.T) {
//	    onReady := announce.Define("onReady", nil)
//
//	    rec := signaltest.Observe(t, onReady) // Teardown 自动挂在 t.Cleanup
//
//	    onReady.Fire("ready")
//
//	    signaltest.AssertFired(t, rec, onReady, signaltest.WithArgs("ready"))
//	}
//
// 断言有两套形式：Fired / NotFired / Ordering 返回 *AssertionError，
// 可在任何测试框架下消费；AssertFired / AssertNotFired /
// AssertOrdering 是 testing.TB 适配，失败即 t.Fatal。
//
// 序号跨全部被观察的信号共享，因此 Ordering 可以断言多个信号
// 之间的相对触发顺序。
package signaltest
