package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"CLIPBRIDGE_BACKEND",
		"CLIPBRIDGE_OSC52",
		"CLIPBRIDGE_PRIMARY",
		"CLIPBRIDGE_TRIM",
		"CLIPBRIDGE_TIMEOUT",
		"CLIPBRIDGE_BUFFER_PATH",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadFromPath(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("loadFromPath() returned error: %v", err)
	}

	if cfg.Backend != "" {
		t.Errorf("Expected empty backend, got '%s'", cfg.Backend)
	}
	if cfg.OSC52 != OSC52Auto {
		t.Errorf("Expected osc52 '%s', got '%s'", OSC52Auto, cfg.OSC52)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("Expected timeout %v, got %v", DefaultTimeout, cfg.Timeout)
	}
	if cfg.Primary || cfg.Trim {
		t.Errorf("Expected primary/trim false, got %v/%v", cfg.Primary, cfg.Trim)
	}
}

func TestLoad_FromFile(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `backend: xclip
osc52: always
primary: true
trim: true
timeout: 3s
buffer_path: /tmp/clip.buf
`)

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath() returned error: %v", err)
	}

	if cfg.Backend != "xclip" {
		t.Errorf("Expected backend 'xclip', got '%s'", cfg.Backend)
	}
	if cfg.OSC52 != OSC52Always {
		t.Errorf("Expected osc52 'always', got '%s'", cfg.OSC52)
	}
	if !cfg.Primary {
		t.Error("Expected primary true")
	}
	if !cfg.Trim {
		t.Error("Expected trim true")
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Expected timeout 3s, got %v", cfg.Timeout)
	}
	if cfg.BufferPath != "/tmp/clip.buf" {
		t.Errorf("Expected buffer_path '/tmp/clip.buf', got '%s'", cfg.BufferPath)
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `backend: xclip
osc52: never
`)

	t.Setenv("CLIPBRIDGE_BACKEND", "wl-clipboard")
	t.Setenv("CLIPBRIDGE_OSC52", "always")
	t.Setenv("CLIPBRIDGE_TIMEOUT", "1m")
	t.Setenv("CLIPBRIDGE_TRIM", "true")

	cfg, err := loadFromPath(path)
	if err != nil {
		t.Fatalf("loadFromPath() returned error: %v", err)
	}

	if cfg.Backend != "wl-clipboard" {
		t.Errorf("Expected env override backend 'wl-clipboard', got '%s'", cfg.Backend)
	}
	if cfg.OSC52 != OSC52Always {
		t.Errorf("Expected env override osc52 'always', got '%s'", cfg.OSC52)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Expected timeout 1m, got %v", cfg.Timeout)
	}
	if !cfg.Trim {
		t.Error("Expected trim true from env")
	}
}

func TestLoad_InvalidOSC52(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `osc52: sometimes
`)

	if _, err := loadFromPath(path); err == nil {
		t.Fatal("Expected error for invalid osc52 value, got nil")
	}
}

func TestLoad_MalformedYAML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, "backend: [unclosed\n")

	if _, err := loadFromPath(path); err == nil {
		t.Fatal("Expected error for malformed yaml, got nil")
	}
}

func TestConfig_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
		check   func(*Config) bool
	}{
		{
			name:  "set backend",
			key:   "backend",
			value: "xsel",
			check: func(c *Config) bool { return c.Backend == "xsel" },
		},
		{
			name:  "set osc52",
			key:   "osc52",
			value: "never",
			check: func(c *Config) bool { return c.OSC52 == OSC52Never },
		},
		{
			name:  "set primary",
			key:   "primary",
			value: "true",
			check: func(c *Config) bool { return c.Primary },
		},
		{
			name:  "set timeout",
			key:   "timeout",
			value: "30s",
			check: func(c *Config) bool { return c.Timeout == 30*time.Second },
		},
		{
			name:    "invalid osc52 value",
			key:     "osc52",
			value:   "maybe",
			wantErr: true,
		},
		{
			name:    "invalid primary value",
			key:     "primary",
			value:   "yes please",
			wantErr: true,
		},
		{
			name:    "invalid timeout value",
			key:     "timeout",
			value:   "fast",
			wantErr: true,
		},
		{
			name:    "unknown key",
			key:     "colour",
			value:   "red",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{OSC52: OSC52Auto, Timeout: DefaultTimeout}
			err := cfg.Set(tt.key, tt.value)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Set(%q, %q) expected error, got nil", tt.key, tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("Set(%q, %q) returned error: %v", tt.key, tt.value, err)
			}
			if !tt.check(cfg) {
				t.Errorf("Set(%q, %q) did not apply", tt.key, tt.value)
			}
		})
	}
}
