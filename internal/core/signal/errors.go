// Package signal 实现进程内信号分发核心
package signal

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
)

// ============================================================================
// 错误定义
// ============================================================================

var (
	// ErrNotConnected 处理函数未注册或已失效
	//
	// Disconnect 遇到未注册的处理函数时始终返回本错误，
	// 用于暴露调用方的重复取消注册等记账问题，不做静默吞掉。
	ErrNotConnected = errors.New("handler not connected")

	// ErrNilHandler 处理函数为 nil
	ErrNilHandler = errors.New("nil handler")

	// ErrEmptyName 信号名为空且无法从响应者推导
	ErrEmptyName = errors.New("empty signal name")

	// ErrAlreadyDefined 信号名已绑定响应者
	ErrAlreadyDefined = errors.New("signal already defined")

	// ErrHubClosed Hub 已关闭
	ErrHubClosed = errors.New("signal hub closed")
)

// ============================================================================
// DispatchError
// ============================================================================

// HandlerFailure 单个处理函数的失败记录
type HandlerFailure struct {
	// Handler 处理函数标识
	Handler string
	// Err 底层错误（处理函数返回的错误或 panic 转换的错误）
	Err error
}

// DispatchError 一轮分发中收集到的全部失败
//
// 只在全部存活处理函数都被调用之后返回：部分失败不会阻止
// 其余处理函数收到本次触发。
type DispatchError struct {
	// Signal 触发的信号标识
	Signal string
	// Failures 按分发顺序排列的失败记录
	Failures []HandlerFailure
}

// Error 实现 error 接口
func (e *DispatchError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Handler
	}
	return fmt.Sprintf("signal %q: %d handler(s) failed: %s",
		e.Signal, len(e.Failures), strings.Join(names, ", "))
}

// Unwrap 返回聚合的底层错误，支持 errors.Is / errors.As
func (e *DispatchError) Unwrap() error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f.Err
	}
	return multierr.Combine(errs...)
}
