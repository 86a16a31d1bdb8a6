package zipcfg

import (
	"os"
	"runtime"
)

// TempDir resolves a scratch directory for callers: TMPDIR, then TMP, then
// TEMP, then "/tmp" on POSIX, or the platform temp-path API on Windows.
func TempDir() string {
	if runtime.GOOS == "windows" {
		return os.TempDir()
	}

	for _, k := range []string{"TMPDIR", "TMP", "TEMP"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}

	return "/tmp"
}
