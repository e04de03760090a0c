//go:build !unix

package launcher

import "syscall"

func detachAttr() *syscall.SysProcAttr {
	return nil
}
