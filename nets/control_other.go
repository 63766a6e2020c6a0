//go:build !linux

package nets

import "syscall"

func reuseControl(network, address string, conn syscall.RawConn) error {
	return nil
}
