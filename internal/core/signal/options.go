// Package signal 实现进程内信号分发核心
package signal

import pkgif "github.com/dep2p/go-announce/pkg/interfaces"

// ============================================================================
// 本地选项函数
// ============================================================================

// WithKey 显式指定处理函数标识
//
// 这是一个便利函数，与 pkg/interfaces.WithKey 等效
func WithKey(key any) pkgif.ConnectOpt {
	return pkgif.WithKey(key)
}

// WithName 显式指定处理函数显示名
//
// 这是一个便利函数，与 pkg/interfaces.WithName 等效
func WithName(name string) pkgif.ConnectOpt {
	return pkgif.WithName(name)
}
