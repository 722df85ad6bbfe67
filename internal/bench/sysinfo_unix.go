//go:build linux || darwin || freebsd

package bench

import "golang.org/x/sys/unix"

func kernelRelease() string {
	var uts unix.Utsname

	err := unix.Uname(&uts)
	if err != nil {
		return ""
	}

	return unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
}
