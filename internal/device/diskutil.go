package device

import "howett.net/plist"

// diskutilDeviceInfo is the subset of `diskutil info -plist` output this
// tool cares about.
type diskutilDeviceInfo struct {
	DeviceIdentifier string `plist:"DeviceIdentifier"`
	DeviceNode       string `plist:"DeviceNode"`
	MediaName        string `plist:"MediaName"`
	TotalSize        int64  `plist:"TotalSize"`
	Removable        bool   `plist:"RemovableMedia"`
	WritableMedia    bool   `plist:"WritableMedia"`
}

func parseDiskutilInfo(data []byte) (diskutilDeviceInfo, error) {
	var info diskutilDeviceInfo
	_, err := plist.Unmarshal(data, &info)
	return info, err
}
