// Package interfaces 定义 go-announce 公共接口
//
// 本包只包含接口、选项与设置类型，不包含任何实现。
// 实现位于 internal/core/signal，通过根包 announce 或 Fx 模块获取。
//
// # 接口一览
//
//   - Signal: 信号，支持 Connect / Disconnect / Fire
//   - Connection: 注册句柄，Release 后注册失效
//   - SignalHub: 命名信号目录，显式持有一组信号
//
// # 依赖关系
//
//   - 依赖：无（纯契约层）
//   - 被依赖：internal/core/signal, pkg/signaltest, 根包 announce
package interfaces
