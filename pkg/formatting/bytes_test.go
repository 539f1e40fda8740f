package formatting_test

import (
	"testing"

	"github.com/JaimeStill/promptbook/pkg/formatting"
)

func TestParseBytes(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{"4096", 4096, false},
		{"1MB", 1 << 20, false},
		{"512kb", 512 << 10, false},
		{" 2 MB ", 2 << 20, false},
		{"1.5KB", 1536, false},
		{"", 0, true},
		{"MB", 0, true},
		{"-1MB", 0, true},
		{"10XB", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := formatting.ParseBytes(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBytes(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBytes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n         int64
		precision int
		want      string
	}{
		{0, 0, "0 B"},
		{1 << 20, 0, "1 MB"},
		{1536, 1, "1.5 KB"},
		{1 << 10, -3, "1 KB"},
	}

	for _, tt := range tests {
		if got := formatting.FormatBytes(tt.n, tt.precision); got != tt.want {
			t.Errorf("FormatBytes(%d, %d) = %q, want %q", tt.n, tt.precision, got, tt.want)
		}
	}
}

func TestFormatBytesParses(t *testing.T) {
	for _, n := range []int64{1 << 10, 1 << 20, 64 << 20} {
		got, err := formatting.ParseBytes(formatting.FormatBytes(n, 0))
		if err != nil {
			t.Fatalf("ParseBytes(FormatBytes(%d)) error = %v", n, err)
		}
		if got != n {
			t.Errorf("ParseBytes(FormatBytes(%d)) = %d", n, got)
		}
	}
}
