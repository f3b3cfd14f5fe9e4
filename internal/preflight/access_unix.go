//go:build unix

package preflight

import "golang.org/x/sys/unix"

func access(path string, needWrite bool) error {
	mode := uint32(unix.R_OK | unix.X_OK)
	if needWrite {
		mode |= unix.W_OK
	}
	return unix.Access(path, mode)
}
