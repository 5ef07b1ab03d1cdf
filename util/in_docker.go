package util

import "os"

// IsRunningInDocker reports whether the process runs inside a container,
// going by the /.dockerenv marker file
func IsRunningInDocker() bool {
	_, err := os.Stat("/.dockerenv")
	return err == nil
}
