// Package interfaces 定义 go-announce 公共接口
//
// 本文件定义处理函数标识的默认推导规则。
package interfaces

import (
	"fmt"
	"reflect"
	"runtime"
)

// HandlerKey 返回处理函数的默认标识（代码指针）
//
// 对具名函数和方法表达式，代码指针即唯一标识；同一函数字面量
// 生成的不同闭包共享代码指针，需要区分时应改用 WithKey。
func HandlerKey(fn any) any {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fn
	}
	return v.Pointer()
}

// HandlerName 返回处理函数的限定名
//
// 用于错误信息、日志与测试断言中的处理函数标识。
func HandlerName(fn any) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Sprintf("%T", fn)
	}
	if f := runtime.FuncForPC(v.Pointer()); f != nil {
		return f.Name()
	}
	return "unknown"
}
