package sector

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		sig  [2]byte
		want Mode
	}{
		{"xbox signature", [2]byte{0x99, 0xCC}, ModeXbox},
		{"pc signature", [2]byte{0x55, 0xAA}, ModePC},
		{"zero bytes", [2]byte{0x00, 0x00}, ModeUnknown},
		{"swapped xbox", [2]byte{0xCC, 0x99}, ModeUnknown},
		{"swapped pc", [2]byte{0xAA, 0x55}, ModeUnknown},
		{"near miss", [2]byte{0x55, 0xAB}, ModeUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.sig); got != tt.want {
				t.Errorf("Decode(% 02X) = %v, want %v", tt.sig, got, tt.want)
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"xbox", ModeXbox, false},
		{"pc", ModePC, false},
		{"XBOX", ModeXbox, false},
		{"Pc", ModePC, false},
		{"unknown", ModeUnknown, true},
		{"badmode", ModeUnknown, true},
		{"", ModeUnknown, true},
	}
	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOpposite(t *testing.T) {
	if got := ModeXbox.Opposite(); got != ModePC {
		t.Errorf("xbox opposite = %v, want pc", got)
	}
	if got := ModePC.Opposite(); got != ModeXbox {
		t.Errorf("pc opposite = %v, want xbox", got)
	}
	if got := ModeUnknown.Opposite(); got != ModeUnknown {
		t.Errorf("unknown opposite = %v, want unknown", got)
	}
}

func writeImage(t *testing.T, size int, sig [2]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "disk.img")
	buf := make([]byte, size)
	if size >= SignatureOffset+2 {
		copy(buf[SignatureOffset:], sig[:])
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	return path
}

func TestReadWriteRoundTrip(t *testing.T) {
	for _, mode := range []Mode{ModeXbox, ModePC} {
		t.Run(mode.String(), func(t *testing.T) {
			path := writeImage(t, 1024, [2]byte{})
			if err := WriteMode(path, mode); err != nil {
				t.Fatalf("WriteMode: %v", err)
			}
			if got := ReadMode(path); got != mode {
				t.Errorf("ReadMode after write = %v, want %v", got, mode)
			}
			// Re-reading without an intervening write must agree.
			if got := ReadMode(path); got != mode {
				t.Errorf("second ReadMode = %v, want %v", got, mode)
			}
		})
	}
}

func TestWriteModeExactBytes(t *testing.T) {
	path := writeImage(t, 512, [2]byte{0x55, 0xAA})
	if err := WriteMode(path, ModeXbox); err != nil {
		t.Fatalf("WriteMode: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if data[510] != 0x99 || data[511] != 0xCC {
		t.Errorf("signature bytes = %02X %02X, want 99 CC", data[510], data[511])
	}
	// Nothing outside the signature changes.
	for i, b := range data[:510] {
		if b != 0 {
			t.Fatalf("byte %d modified to %02X", i, b)
		}
	}
}

func TestWriteModeInvalid(t *testing.T) {
	path := writeImage(t, 512, [2]byte{0x55, 0xAA})
	if err := WriteMode(path, ModeUnknown); err == nil {
		t.Fatal("WriteMode(unknown) succeeded, want error")
	}
	if got := ReadMode(path); got != ModePC {
		t.Errorf("file changed by rejected write: mode now %v", got)
	}
}

func TestReadModeFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if got := ReadMode(filepath.Join(t.TempDir(), "nope.img")); got != ModeUnknown {
			t.Errorf("ReadMode = %v, want unknown", got)
		}
	})
	t.Run("short file", func(t *testing.T) {
		path := writeImage(t, 100, [2]byte{})
		if got := ReadMode(path); got != ModeUnknown {
			t.Errorf("ReadMode = %v, want unknown", got)
		}
	})
}
