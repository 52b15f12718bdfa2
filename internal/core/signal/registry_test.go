package signal

import (
	"errors"
	"testing"

	pkgif "github.com/dep2p/go-announce/pkg/interfaces"
)

func noop(sig pkgif.Signal, args ...any) error { return nil }

func newEntry(key any) *entry {
	return &entry{key: key, name: "noop", handler: noop}
}

// ============================================================================
// 注册表测试
// ============================================================================

// TestRegistry_Add 测试追加注册
func TestRegistry_Add(t *testing.T) {
	var r handlerRegistry

	e1, added := r.add(newEntry("a"))
	if !added || e1 == nil {
		t.Fatal("add() did not append new entry")
	}
	if r.size() != 1 {
		t.Errorf("size() = %d, want 1", r.size())
	}
}

// TestRegistry_AddDuplicate 测试同一标识不重复追加
func TestRegistry_AddDuplicate(t *testing.T) {
	var r handlerRegistry

	first, _ := r.add(newEntry("a"))
	second, added := r.add(newEntry("a"))

	if added {
		t.Error("add() appended duplicate key")
	}
	if second != first {
		t.Error("add() did not return existing entry")
	}
	if r.size() != 1 {
		t.Errorf("size() = %d, want 1", r.size())
	}
}

// TestRegistry_AddAfterExpire 测试失效条目不阻止重新注册
func TestRegistry_AddAfterExpire(t *testing.T) {
	var r handlerRegistry

	first, _ := r.add(newEntry("a"))
	first.expired.Store(true)

	second, added := r.add(newEntry("a"))
	if !added {
		t.Error("add() treated expired entry as live duplicate")
	}
	if second == first {
		t.Error("add() returned expired entry")
	}
}

// TestRegistry_Remove 测试按标识删除
func TestRegistry_Remove(t *testing.T) {
	var r handlerRegistry

	e, _ := r.add(newEntry("a"))
	if err := r.remove("a"); err != nil {
		t.Fatalf("remove() failed: %v", err)
	}
	if e.alive() {
		t.Error("removed entry still alive")
	}
	if r.size() != 0 {
		t.Errorf("size() = %d, want 0", r.size())
	}

	if err := r.remove("a"); !errors.Is(err, ErrNotConnected) {
		t.Errorf("remove() absent key = %v, want ErrNotConnected", err)
	}
}

// TestRegistry_RemovePreservesOrder 测试删除不打乱剩余顺序
func TestRegistry_RemovePreservesOrder(t *testing.T) {
	var r handlerRegistry

	r.add(newEntry("a"))
	r.add(newEntry("b"))
	r.add(newEntry("c"))
	r.remove("b")

	live := r.live()
	if len(live) != 2 || live[0].key != "a" || live[1].key != "c" {
		t.Errorf("live order = %v, want [a c]", keysOf(live))
	}
}

// TestRegistry_LivePurgesExpired 测试遍历顺手清除失效条目
func TestRegistry_LivePurgesExpired(t *testing.T) {
	var r handlerRegistry

	r.add(newEntry("a"))
	e, _ := r.add(newEntry("b"))
	r.add(newEntry("c"))

	e.expired.Store(true)
	live := r.live()

	if len(live) != 2 || live[0].key != "a" || live[1].key != "c" {
		t.Errorf("live order = %v, want [a c]", keysOf(live))
	}
	// 失效条目已从底层集合清除
	if r.size() != 2 {
		t.Errorf("size() after purge = %d, want 2", r.size())
	}
}

// TestRegistry_Clear 测试释放全部条目
func TestRegistry_Clear(t *testing.T) {
	var r handlerRegistry

	e1, _ := r.add(newEntry("a"))
	e2, _ := r.add(newEntry("b"))
	r.clear()

	if e1.alive() || e2.alive() {
		t.Error("entries alive after clear()")
	}
	if r.size() != 0 {
		t.Errorf("size() = %d, want 0", r.size())
	}
}

func keysOf(entries []*entry) []any {
	keys := make([]any, len(entries))
	for i, e := range entries {
		keys[i] = e.key
	}
	return keys
}
