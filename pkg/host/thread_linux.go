//go:build linux

package host

import "golang.org/x/sys/unix"

func currentThreadID() (int64, error) {
	return int64(unix.Gettid()), nil
}
