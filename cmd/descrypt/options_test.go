package main

import (
	"errors"
	"testing"

	"github.com/hallowell/descrypt/internal/encryption"
)

func TestParseOptions(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr error
	}{
		{
			name: "encrypt with hex key",
			args: []string{"-e", "0123456789ABCDEF", "ecb", "in.txt", "out.bin"},
			want: options{action: actionEncrypt, key: 0x0123456789ABCDEF, mode: modeECB, input: "in.txt", output: "out.bin"},
		},
		{
			name: "decrypt with ascii key and uppercase mode",
			args: []string{"-D", "password", "CBC", "in.bin", "out.txt"},
			want: options{action: actionDecrypt, key: 0x70617373776F7264, mode: modeCBC, input: "in.bin", output: "out.txt"},
		},
		{
			name:    "wrong argument count",
			args:    []string{"-e", "password", "ecb", "in.txt"},
			wantErr: errUsage,
		},
		{
			name:    "unknown action",
			args:    []string{"-x", "password", "ecb", "in.txt", "out.bin"},
			wantErr: errUnknownAction,
		},
		{
			name:    "malformed key",
			args:    []string{"-e", "short", "ecb", "in.txt", "out.bin"},
			wantErr: encryption.ErrMalformedKey,
		},
		{
			name:    "unrecognized mode",
			args:    []string{"-e", "password", "ctr", "in.txt", "out.bin"},
			wantErr: errUnknownMode,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseOptions(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseOptions() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseOptions() unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("parseOptions() = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
