//go:build unix

package launcher

import "syscall"

// detachAttr puts the child in its own session so it outlives the manager
// and does not receive signals aimed at the manager's process group.
func detachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
