// Package signal 实现进程内信号分发核心
package signal

import (
	"sync/atomic"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

// ============================================================================
// entry 实现
// ============================================================================

// entry 一条注册记录
type entry struct {
	key     any           // 处理函数标识，可比较
	name    string        // 处理函数显示名，用于错误信息与日志
	handler pkgif.Handler // 处理函数本体
	expired atomic.Bool   // 失效标记，Release 或 remove 后置位
}

// alive 返回条目是否仍然有效
func (e *entry) alive() bool {
	return !e.expired.Load()
}

// ============================================================================
// handlerRegistry 实现
// ============================================================================

// handlerRegistry 按注册顺序维护去重且感知存活状态的处理函数集合
//
// 注册顺序在 add/remove 往复中对仍然在册的条目保持不变；
// 删除后重新注册会追加到末尾。不做并发保护，由所属 Signal 的
// 互斥锁串行化全部变更。
type handlerRegistry struct {
	entries []*entry
}

// add 追加注册
//
// 同一标识已有存活条目时不追加，返回已有条目和 false。
// 注册表规模预期很小，线性查重即可。
func (r *handlerRegistry) add(e *entry) (*entry, bool) {
	for _, cur := range r.entries {
		if cur.alive() && cur.key == e.key {
			return cur, false
		}
	}
	r.entries = append(r.entries, e)
	return e, true
}

// remove 按标识删除
//
// 标识没有对应的存活条目时返回 ErrNotConnected。
// 遍历的同时顺手清除失效条目（摊还式清理）。
func (r *handlerRegistry) remove(key any) error {
	kept := r.entries[:0]
	found := false
	for _, cur := range r.entries {
		if !cur.alive() {
			continue
		}
		if !found && cur.key == key {
			found = true
			// 置位失效标记，让在外的 Connection 同步看到
			cur.expired.Store(true)
			continue
		}
		kept = append(kept, cur)
	}
	r.truncate(kept)
	if !found {
		return ErrNotConnected
	}
	return nil
}

// live 返回存活条目快照
//
// 遍历的同时把失效条目从底层集合中清除，快照是独立副本，
// 可在锁外安全使用。
func (r *handlerRegistry) live() []*entry {
	kept := r.entries[:0]
	for _, cur := range r.entries {
		if cur.alive() {
			kept = append(kept, cur)
		}
	}
	r.truncate(kept)
	out := make([]*entry, len(kept))
	copy(out, kept)
	return out
}

// clear 释放全部条目
func (r *handlerRegistry) clear() {
	for _, cur := range r.entries {
		cur.expired.Store(true)
	}
	r.entries = nil
}

// size 返回当前条目数（含未清除的失效条目）
func (r *handlerRegistry) size() int {
	return len(r.entries)
}

// truncate 收缩底层集合并清空尾部引用
func (r *handlerRegistry) truncate(kept []*entry) {
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = kept
}
