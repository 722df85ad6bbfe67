//go:build !linux && !darwin && !freebsd

package bench

func kernelRelease() string {
	return ""
}
