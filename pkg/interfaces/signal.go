// Package interfaces 定义 go-announce 公共接口
//
// 本文件定义 Signal 接口，提供信号声明、连接与触发能力。
package interfaces

// Handler 信号处理函数
//
// 第一个参数是本次触发的信号，便于同一个处理函数观察多个信号；
// 其余参数为触发方透传的载荷。返回非 nil 错误表示处理失败，
// 失败会被收集进 DispatchError，在整轮分发结束后返回给触发方，
// 不会阻止其余处理函数收到本次触发。
type Handler func(sig Signal, args ...any) error

// Signal 定义信号接口
//
// 信号包装一个可选的响应者（被包装的可调用对象）。触发时先调用
// 响应者，再按注册顺序把 (signal, args...) 同步分发给全部存活的
// 处理函数。
type Signal interface {
	// Name 返回信号标识（限定名，用于错误信息与测试断言）
	Name() string

	// Connect 注册处理函数
	//
	// 按处理函数标识幂等：重复注册同一标识是静默空操作，
	// 返回已有的 Connection。
	Connect(h Handler, opts ...ConnectOpt) (Connection, error)

	// Disconnect 取消注册
	//
	// 处理函数未注册、已取消或已失效时返回 ErrNotConnected。
	// 选项必须与 Connect 时传入的一致，否则标识对不上。
	Disconnect(h Handler, opts ...ConnectOpt) error

	// Fire 触发信号，在调用方 goroutine 上同步分发
	//
	// 任何处理函数失败都不会中断分发；整轮结束后如有失败，
	// 以 DispatchError 聚合返回。
	Fire(args ...any) error
}

// Connection 定义注册句柄接口
//
// 注册句柄是"观察而非持有"关系的具体化：处理函数的生命周期由
// 其属主决定，属主销毁前调用 Release 即可让注册失效。失效条目
// 不会再被调用，并在下一次分发或取消注册的遍历中被惰性清除。
type Connection interface {
	// Release 释放注册，幂等
	Release()

	// Alive 返回注册是否仍然有效
	Alive() bool
}

// SignalHub 定义信号目录接口
//
// Hub 显式持有一组命名信号，生命周期与持有者绑定，
// 用于替代进程级的全局信号声明。
type SignalHub interface {
	// Define 声明带响应者的信号
	//
	// 名称已绑定响应者时返回 ErrAlreadyDefined。
	Define(name string, responder Handler) (Signal, error)

	// Signal 返回命名信号，不存在时惰性创建（无响应者）
	Signal(name string) (Signal, error)

	// Names 返回所有已注册的信号名（按创建顺序）
	Names() []string

	// Close 关闭 Hub 并释放全部信号上的全部注册
	Close() error
}

// ConnectOpt 连接选项函数类型
type ConnectOpt func(*ConnectSettings)

// ConnectSettings 连接设置（导出以供实现使用）
type ConnectSettings struct {
	// Key 处理函数标识，必须可比较
	Key any
	// Name 处理函数显示名，用于错误信息与日志
	Name string
}

// WithKey 显式指定处理函数标识
//
// Go 的函数值不可比较，默认标识取处理函数的代码指针。同一函数
// 字面量生成的不同闭包共享代码指针，需要区分时用 WithKey 指定
// 一个可比较的键。Disconnect 时必须传入同样的键。
func WithKey(key any) ConnectOpt {
	return func(s *ConnectSettings) {
		s.Key = key
	}
}

// WithName 显式指定处理函数显示名
//
// 默认显示名取处理函数的限定函数名，对匿名闭包可读性较差，
// 可用本选项覆盖。
func WithName(name string) ConnectOpt {
	return func(s *ConnectSettings) {
		s.Name = name
	}
}
