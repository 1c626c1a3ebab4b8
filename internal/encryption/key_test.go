package encryption

import (
	"errors"
	"testing"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name    string
		arg     string
		want    uint64
		wantErr bool
	}{
		{
			name: "hex digits",
			arg:  "0123456789ABCDEF",
			want: 0x0123456789ABCDEF,
		},
		{
			name: "lowercase hex digits",
			arg:  "fedcba9876543210",
			want: 0xFEDCBA9876543210,
		},
		{
			name: "ascii characters",
			arg:  "password",
			want: 0x70617373776F7264,
		},
		{
			name: "quoted ascii characters",
			arg:  "'password'",
			want: 0x70617373776F7264,
		},
		{
			name: "eight hex-looking characters are treated as ascii",
			arg:  "0a1b2c3d",
			want: 0x3061316232633364,
		},
		{
			name:    "too short",
			arg:     "abc",
			wantErr: true,
		},
		{
			name:    "sixteen characters that are not hex",
			arg:     "sixteen--letters",
			wantErr: true,
		},
		{
			name:    "empty",
			arg:     "",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.arg)
			if tt.wantErr {
				if !errors.Is(err, ErrMalformedKey) {
					t.Fatalf("ParseKey() error = %v, want ErrMalformedKey", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKey() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseKey() = %016X, want %016X", got, tt.want)
			}
		})
	}
}
