//go:build !unix

package dmx

import "syscall"

func enableBroadcast(_, _ string, _ syscall.RawConn) error {
	return nil
}
