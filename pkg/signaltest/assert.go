// Package signaltest 提供信号测试观察工具
package signaltest

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

// ErrNilSignal 信号为 nil
var ErrNilSignal = errors.New("nil signal")

// ============================================================================
// AssertionError
// ============================================================================

// AssertionError 断言失败
//
// 携带期望与实际观察到的记录的文字描述。
type AssertionError struct {
	msg string
}

// Error 实现 error 接口
func (e *AssertionError) Error() string {
	return e.msg
}

func assertionFailed(format string, args ...any) *AssertionError {
	return &AssertionError{msg: fmt.Sprintf(format, args...)}
}

// ============================================================================
// Matcher
// ============================================================================

// Matcher 触发参数匹配器
type Matcher func(args []any) bool

// WithArgs 按参数逐元素深度相等匹配
func WithArgs(want ...any) Matcher {
	return func(args []any) bool {
		if len(args) != len(want) {
			return false
		}
		for i := range want {
			if !reflect.DeepEqual(args[i], want[i]) {
				return false
			}
		}
		return true
	}
}

// MatchArgs 自定义谓词匹配
func MatchArgs(fn func(args []any) bool) Matcher {
	return Matcher(fn)
}

// matches 返回记录是否通过全部匹配器
func matches(rec FiringRecord, ms []Matcher) bool {
	for _, m := range ms {
		if !m(rec.Args) {
			return false
		}
	}
	return true
}

// ============================================================================
// 断言查询
// ============================================================================

// Fired 断言信号至少触发过一次
//
// 可选的匹配器按参数内容收窄。成功时返回第一条匹配的记录，
// 失败时返回 *AssertionError。
func Fired(r *Recorder, sig pkgif.Signal, ms ...Matcher) (*FiringRecord, error) {
	recs := r.Records()
	for i := range recs {
		if recs[i].Signal == sig.Name() && matches(recs[i], ms) {
			return &recs[i], nil
		}
	}
	return nil, assertionFailed(
		"signal %q unexpectedly not fired\nobserved records:\n%s",
		sig.Name(), formatRecords(recs))
}

// NotFired 断言信号没有触发过
//
// 可选的匹配器按参数内容收窄；有任何一条匹配的记录即失败。
func NotFired(r *Recorder, sig pkgif.Signal, ms ...Matcher) error {
	recs := r.Records()
	for i := range recs {
		if recs[i].Signal == sig.Name() && matches(recs[i], ms) {
			return assertionFailed(
				"signal %q unexpectedly fired\nmatching record:\n%s",
				sig.Name(), formatRecord(recs[i]))
		}
	}
	return nil
}

// Ordering 断言信号按给定的相对顺序触发
//
// 给定的信号序列必须作为日志的子序列出现（按日志顺序、允许
// 不连续）。验证的是相对顺序而非绝对顺序。
func Ordering(r *Recorder, sigs ...pkgif.Signal) error {
	recs := r.Records()
	next := 0
	for _, rec := range recs {
		if next < len(sigs) && rec.Signal == sigs[next].Name() {
			next++
		}
	}
	if next == len(sigs) {
		return nil
	}
	names := make([]string, len(sigs))
	for i, sig := range sigs {
		names[i] = sig.Name()
	}
	return assertionFailed(
		"expected firing order not observed\nexpected subsequence: %s\nmatched %d of %d\nobserved records:\n%s",
		strings.Join(names, " -> "), next, len(sigs), formatRecords(recs))
}

// ============================================================================
// testing.TB 适配
// ============================================================================

// AssertFired 是 Fired 的 testing 适配，失败即 t.Fatal
func AssertFired(t testing.TB, r *Recorder, sig pkgif.Signal, ms ...Matcher) *FiringRecord {
	t.Helper()
	rec, err := Fired(r, sig, ms...)
	if err != nil {
		t.Fatal(err)
	}
	return rec
}

// AssertNotFired 是 NotFired 的 testing 适配，失败即 t.Fatal
func AssertNotFired(t testing.TB, r *Recorder, sig pkgif.Signal, ms ...Matcher) {
	t.Helper()
	if err := NotFired(r, sig, ms...); err != nil {
		t.Fatal(err)
	}
}

// AssertOrdering 是 Ordering 的 testing 适配，失败即 t.Fatal
func AssertOrdering(t testing.TB, r *Recorder, sigs ...pkgif.Signal) {
	t.Helper()
	if err := Ordering(r, sigs...); err != nil {
		t.Fatal(err)
	}
}

// ============================================================================
// 格式化
// ============================================================================

// formatRecord 格式化单条记录
func formatRecord(rec FiringRecord) string {
	return fmt.Sprintf("\tseq=%d signal=%q args=%v", rec.Seq, rec.Signal, rec.Args)
}

// formatRecords 格式化记录列表
func formatRecords(recs []FiringRecord) string {
	if len(recs) == 0 {
		return "\t(no records)"
	}
	lines := make([]string, len(recs))
	for i, rec := range recs {
		lines[i] = formatRecord(rec)
	}
	return strings.Join(lines, "\n")
}
