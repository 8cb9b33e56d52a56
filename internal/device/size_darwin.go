//go:build darwin

package device

import (
	"io"
	"os"
	"syscall"
	"unsafe"
)

// _IOR('d', 24, uint32) and _IOR('d', 25, uint64) from <sys/disk.h>.
const (
	dkiocGetBlockSize  = 0x40046418
	dkiocGetBlockCount = 0x40086419
)

// deviceSize returns the size of a block device or image file in bytes, or 0
// when it cannot be determined.
func deviceSize(path string) int64 {
	f, err := os.Open(path)
	if err != nil {
		return 0
	}
	defer f.Close()

	var blockSize uint32
	var blockCount uint64
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), dkiocGetBlockSize, uintptr(unsafe.Pointer(&blockSize)))
	if errno == 0 {
		_, _, errno = syscall.Syscall(syscall.SYS_IOCTL, f.Fd(), dkiocGetBlockCount, uintptr(unsafe.Pointer(&blockCount)))
		if errno == 0 {
			return int64(blockSize) * int64(blockCount)
		}
	}
	// Regular image files don't answer the ioctls.
	if end, err := f.Seek(0, io.SeekEnd); err == nil {
		return end
	}
	return 0
}
