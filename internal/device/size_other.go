//go:build !linux && !darwin

package device

import (
	"io"
	"os"
)

// deviceSize returns the size of a device or image file in bytes, or 0 when
// it cannot be determined.
func deviceSize(path string) int64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	if end, err := f.Seek(0, io.SeekEnd); err == nil {
		return end
	}
	return 0
}
