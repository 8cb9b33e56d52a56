// Package device discovers discs carrying a recognized mode signature.
package device

import (
	"context"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/vahpetr/xboxdisc/internal/platform"
	"github.com/vahpetr/xboxdisc/internal/sector"
	"github.com/vahpetr/xboxdisc/internal/shell"
)

// Device is one recognized disc: a block-device path and the mode its
// signature decoded to at scan time. Nothing is cached; a new scan re-reads
// every device.
type Device struct {
	Path string
	Mode sector.Mode
}

// Runner executes the platform's disk-listing command and returns its
// stdout. Narrow on purpose so tests can feed canned output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) string
}

type shellRunner struct {
	timeout time.Duration
}

func (r shellRunner) Output(ctx context.Context, name string, args ...string) string {
	res, err := shell.Run(ctx, r.timeout, name, args...)
	if err != nil {
		// The listing tool's exit status is deliberately ignored; whatever
		// made it to stdout still gets parsed.
		log.Debug().Err(err).Str("command", name).Msg("disk listing command failed")
	}
	return string(res.Stdout)
}

// Enumerator scans the host for discs with a recognized signature.
type Enumerator struct {
	Lister platform.Lister
	Run    Runner
	Probe  func(path string) sector.Mode
}

// NewEnumerator returns an enumerator wired for the current OS.
func NewEnumerator() *Enumerator {
	return &Enumerator{
		Lister: platform.ForOS(runtime.GOOS),
		Run:    shellRunner{timeout: 30 * time.Second},
		Probe:  sector.ReadMode,
	}
}

// Enumerate lists candidate paths via the platform tool, probes each one,
// and returns only the devices whose signature matched a recognized mode, in
// candidate order. When the whole scan comes up empty it emits a single
// advisory, after the scan so it never interleaves with results.
func (e *Enumerator) Enumerate(ctx context.Context) []Device {
	name, args := e.Lister.Command()
	out := e.Run.Output(ctx, name, args...)

	var devices []Device
	for _, path := range e.Lister.Parse(out) {
		mode := e.Probe(path)
		if mode == sector.ModeUnknown {
			continue
		}
		devices = append(devices, Device{Path: path, Mode: mode})
	}
	if len(devices) == 0 {
		log.Warn().Msg("no recognized disc found; make sure the disc is mounted and run with elevated privileges")
	}
	return devices
}

// First returns the first recognized device, if any.
func (e *Enumerator) First(ctx context.Context) (Device, bool) {
	devices := e.Enumerate(ctx)
	if len(devices) == 0 {
		return Device{}, false
	}
	return devices[0], true
}
