package core

import (
	"path/filepath"
	"testing"
)

func TestConfig_DatabaseURL(t *testing.T) {
	cfg := &Config{}
	cfg.Audit.Host = "localhost"
	cfg.Audit.Port = 5432
	cfg.Audit.Name = "testdb"
	cfg.Audit.Username = "testuser"
	cfg.Audit.Password = "testpassword"

	url := cfg.DatabaseURL()
	expected := "host=localhost port=5432 dbname=testdb user=testuser password=testpassword sslmode="
	if url != expected {
		t.Errorf("DatabaseURL() want = %s, got = %s", expected, url)
	}
}

func TestConfig_QualifiedPath(t *testing.T) {
	tests := []struct {
		name     string
		baseDir  string
		filename string
		want     string
	}{
		{
			name:     "no config directory",
			baseDir:  "",
			filename: "descrypt.db",
			want:     "descrypt.db",
		},
		{
			name:     "relative to config directory",
			baseDir:  "/etc/descrypt",
			filename: "descrypt.db",
			want:     filepath.Join("/etc/descrypt", "descrypt.db"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{baseDir: tt.baseDir}
			if got := cfg.QualifiedPath(tt.filename); got != tt.want {
				t.Errorf("QualifiedPath() = %s, want %s", got, tt.want)
			}
		})
	}
}
