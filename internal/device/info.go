package device

import (
	"context"
	"runtime"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/vahpetr/xboxdisc/internal/sector"
	"github.com/vahpetr/xboxdisc/internal/shell"
)

// Details describes a single device path beyond its bare mode.
type Details struct {
	Path       string
	Mode       sector.Mode
	SizeBytes  int64
	Media      string
	Mounted    bool
	MountPoint string
}

// Describe inspects one caller-specified path. It is read-only and degrades
// the same way ReadMode does: whatever cannot be determined is left zero.
func Describe(ctx context.Context, path string) Details {
	d := Details{
		Path:      path,
		Mode:      sector.ReadMode(path),
		SizeBytes: deviceSize(path),
	}
	d.Mounted, d.MountPoint = mountState(path)
	if runtime.GOOS == "darwin" {
		if info, err := diskutilInfo(ctx, path); err == nil {
			d.Media = info.MediaName
			if d.SizeBytes == 0 {
				d.SizeBytes = info.TotalSize
			}
		}
	}
	return d
}

// mountState reports whether path, or a partition on it, is mounted.
func mountState(path string) (bool, string) {
	parts, err := disk.Partitions(true)
	if err != nil {
		log.Debug().Err(err).Msg("cannot list partitions")
		return false, ""
	}
	for _, p := range parts {
		if p.Device == path || strings.HasPrefix(p.Device, path) {
			return true, p.Mountpoint
		}
	}
	return false, ""
}

func diskutilInfo(ctx context.Context, path string) (diskutilDeviceInfo, error) {
	res, err := shell.Run(ctx, 10*time.Second, "diskutil", "info", "-plist", path)
	if err != nil {
		return diskutilDeviceInfo{}, err
	}
	return parseDiskutilInfo(res.Stdout)
}
