//go:build !linux && !darwin

package host

func currentThreadID() (int64, error) {
	return 0, ErrThreadIdentity
}
