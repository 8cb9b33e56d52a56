// Package sector reads and writes the 2-byte mode signature that Xbox
// firmware discs carry at the end of their first 512-byte sector.
package sector

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
)

// SignatureOffset is the absolute byte offset of the signature on the raw
// device, two bytes before the end of the first 512-byte sector.
const SignatureOffset = 510

// Mode is the firmware mode encoded by a disc's sector signature.
type Mode int

const (
	ModeUnknown Mode = iota
	ModeXbox
	ModePC
)

var (
	sigXbox = [2]byte{0x99, 0xCC}
	sigPC   = [2]byte{0x55, 0xAA}
)

// ErrInvalidMode is returned when a write is requested for a mode that has
// no on-disc signature.
var ErrInvalidMode = errors.New("invalid mode")

func (m Mode) String() string {
	switch m {
	case ModeXbox:
		return "xbox"
	case ModePC:
		return "pc"
	default:
		return "unknown"
	}
}

// Opposite returns the other recognized mode. Unknown has no opposite.
func (m Mode) Opposite() Mode {
	switch m {
	case ModeXbox:
		return ModePC
	case ModePC:
		return ModeXbox
	default:
		return ModeUnknown
	}
}

// ParseMode maps a user-supplied mode name to a writable Mode. Matching is
// case-insensitive; anything other than xbox or pc is rejected.
func ParseMode(s string) (Mode, error) {
	switch {
	case strings.EqualFold(s, "xbox"):
		return ModeXbox, nil
	case strings.EqualFold(s, "pc"):
		return ModePC, nil
	default:
		return ModeUnknown, fmt.Errorf("%w %q: expected xbox or pc", ErrInvalidMode, s)
	}
}

// Decode maps a raw signature pair to its mode. Any pair other than the two
// recognized signatures is Unknown.
func Decode(sig [2]byte) Mode {
	switch sig {
	case sigXbox:
		return ModeXbox
	case sigPC:
		return ModePC
	default:
		return ModeUnknown
	}
}

// Signature returns the on-disc byte pair for a recognized mode.
func Signature(m Mode) ([2]byte, error) {
	switch m {
	case ModeXbox:
		return sigXbox, nil
	case ModePC:
		return sigPC, nil
	default:
		return [2]byte{}, fmt.Errorf("%w: %s has no signature", ErrInvalidMode, m)
	}
}

// ReadMode reads the signature of the device at path and decodes it.
//
// Every failure resolves to ModeUnknown: a device we cannot read is simply
// not a candidate. Permission errors stay silent so that scanning a system
// full of inaccessible devices does not flood stderr; any other I/O error is
// logged as a diagnostic before the device is dismissed.
func ReadMode(path string) Mode {
	f, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrPermission) {
			log.Warn().Err(err).Str("device", path).Msg("cannot open device")
		}
		return ModeUnknown
	}
	defer f.Close()

	var sig [2]byte
	if _, err := f.ReadAt(sig[:], SignatureOffset); err != nil {
		if !errors.Is(err, os.ErrPermission) && !errors.Is(err, io.EOF) {
			log.Warn().Err(err).Str("device", path).Msg("cannot read signature")
		}
		return ModeUnknown
	}
	return Decode(sig)
}

// WriteMode stamps the signature for mode onto the device at path. The mode
// must be ModeXbox or ModePC; the tool never writes any other pattern.
func WriteMode(path string, m Mode) error {
	sig, err := Signature(m)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open %s for writing: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteAt(sig[:], SignatureOffset); err != nil {
		return fmt.Errorf("write signature to %s: %w", path, err)
	}
	return nil
}
