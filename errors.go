package announce

import core "github.com/dep2p/go-announce/internal/core/signal"

// 公共错误定义
var (
	// ────────────────────────────────────────────────────────────────────────
	// 注册相关错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrNotConnected 处理函数未注册或已失效
	ErrNotConnected = core.ErrNotConnected

	// ErrNilHandler 处理函数为 nil
	ErrNilHandler = core.ErrNilHandler

	// ────────────────────────────────────────────────────────────────────────
	// Hub 相关错误
	// ────────────────────────────────────────────────────────────────────────

	// ErrEmptyName 信号名为空且无法从响应者推导
	ErrEmptyName = core.ErrEmptyName

	// ErrAlreadyDefined 信号名已绑定响应者
	ErrAlreadyDefined = core.ErrAlreadyDefined

	// ErrHubClosed Hub 已关闭
	ErrHubClosed = core.ErrHubClosed
)
