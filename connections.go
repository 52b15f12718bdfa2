package announce

import "sync"

// Connections 注册句柄集合
//
// 便于组件把自己名下的全部注册聚在一起，销毁时一次释放，
// 避免注册漂到组件生命周期之外。
//
//	var conns announce.Connections
//	conns.Track(onReady.Connect(h1))
//	conns.Track(onClose.Connect(h2))
//	defer conns.ReleaseAll()
type Connections struct {
	mu    sync.Mutex
	conns []Connection
}

// Track 收纳一次 Connect 的结果
//
// 透传 Connect 的返回值，便于内联使用；err 非 nil 时不收纳。
func (c *Connections) Track(conn Connection, err error) (Connection, error) {
	if err != nil || conn == nil {
		return conn, err
	}
	c.mu.Lock()
	c.conns = append(c.conns, conn)
	c.mu.Unlock()
	return conn, nil
}

// Add 收纳一个注册句柄
func (c *Connections) Add(conn Connection) {
	if conn == nil {
		return
	}
	c.mu.Lock()
	c.conns = append(c.conns, conn)
	c.mu.Unlock()
}

// ReleaseAll 释放全部收纳的注册
//
// 幂等，可以多次调用。
func (c *Connections) ReleaseAll() {
	c.mu.Lock()
	conns := c.conns
	c.conns = nil
	c.mu.Unlock()

	for _, conn := range conns {
		conn.Release()
	}
}
