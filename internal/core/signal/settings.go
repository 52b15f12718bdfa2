// Package signal 实现进程内信号分发核心
package signal

import pkgif "github.com/dep2p/go-announce/pkg/interfaces"

// connectSettings 是 pkg/interfaces.ConnectSettings 的别名
type connectSettings = pkgif.ConnectSettings
