// Package platform maps each host OS's disk-listing tool onto a uniform
// candidate-path sequence.
package platform

import "strings"

// Lister describes one OS's way of enumerating block devices: the command to
// run and how to turn its stdout into candidate device paths. Parsers are
// pure and never probe the paths they produce.
type Lister interface {
	// Command returns the disk-listing invocation for this platform.
	Command() (name string, args []string)
	// Parse extracts candidate device paths from the command's stdout, in
	// output order. Malformed lines are skipped, never an error: a bogus
	// path would only fail to open later anyway.
	Parse(output string) []string
}

// ForOS selects the lister for a GOOS value. Anything that is not windows or
// darwin gets the Linux lister.
func ForOS(goos string) Lister {
	switch goos {
	case "windows":
		return WindowsLister{}
	case "darwin":
		return DarwinLister{}
	default:
		return LinuxLister{}
	}
}

// WindowsLister enumerates physical drives through wmic. Output is a header
// row followed by one drive index per line, which becomes a
// \\.\PHYSICALDRIVE{index} path.
type WindowsLister struct{}

func (WindowsLister) Command() (string, []string) {
	return "wmic", []string{"diskdrive", "get", "index"}
}

func (WindowsLister) Parse(output string) []string {
	var paths []string
	for i, line := range splitLines(output) {
		if i == 0 {
			// header row
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		paths = append(paths, `\\.\PHYSICALDRIVE`+fields[0])
	}
	return paths
}

// DarwinLister enumerates disks through diskutil. Any line mentioning /dev/
// names a disk; its first field is the device path verbatim.
type DarwinLister struct{}

func (DarwinLister) Command() (string, []string) {
	return "diskutil", []string{"list"}
}

func (DarwinLister) Parse(output string) []string {
	var paths []string
	for _, line := range splitLines(output) {
		if !strings.Contains(line, "/dev/") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		paths = append(paths, fields[0])
	}
	return paths
}

// LinuxLister enumerates block devices through lsblk. Output is a header row
// followed by one short device name per line, which becomes /dev/{name}.
type LinuxLister struct{}

func (LinuxLister) Command() (string, []string) {
	return "lsblk", nil
}

func (LinuxLister) Parse(output string) []string {
	var paths []string
	for i, line := range splitLines(output) {
		if i == 0 {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		paths = append(paths, "/dev/"+fields[0])
	}
	return paths
}

// splitLines tolerates both CRLF (wmic) and LF line endings.
func splitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
