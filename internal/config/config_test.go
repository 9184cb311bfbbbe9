package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// writeConfig writes content to a temp file and returns its path. The path
// always contains a separator, so Load treats it as a file path.
func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Input.DefaultDir != "." {
		t.Errorf("Input.DefaultDir = %q, want .", cfg.Input.DefaultDir)
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Batch.Workers != 0 {
		t.Errorf("Batch.Workers = %d, want 0", cfg.Batch.Workers)
	}
	if cfg.Tools.Unzip != "unzip" || cfg.Tools.Img2pdf != "img2pdf" {
		t.Errorf("Tools = %+v, want unzip/img2pdf", cfg.Tools)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("full config", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, `
input:
  defaultDir: comics
output:
  defaultDir: pdfs
batch:
  workers: 4
  recursive: true
convert:
  force: true
  noValidate: true
tools:
  unzip: /opt/bin/unzip
  img2pdf: /opt/bin/img2pdf
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Input.DefaultDir != "comics" {
			t.Errorf("Input.DefaultDir = %q, want comics", cfg.Input.DefaultDir)
		}
		if cfg.Output.DefaultDir != "pdfs" {
			t.Errorf("Output.DefaultDir = %q, want pdfs", cfg.Output.DefaultDir)
		}
		if cfg.Batch.Workers != 4 || !cfg.Batch.Recursive {
			t.Errorf("Batch = %+v, want workers 4, recursive", cfg.Batch)
		}
		if !cfg.Convert.Force || !cfg.Convert.NoValidate {
			t.Errorf("Convert = %+v, want force and noValidate", cfg.Convert)
		}
		if cfg.Tools.Unzip != "/opt/bin/unzip" {
			t.Errorf("Tools.Unzip = %q", cfg.Tools.Unzip)
		}
	})

	t.Run("partial config keeps defaults", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "batch:\n  workers: 2\n")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Batch.Workers != 2 {
			t.Errorf("Batch.Workers = %d, want 2", cfg.Batch.Workers)
		}
		if cfg.Input.DefaultDir != "." {
			t.Errorf("Input.DefaultDir = %q, want default .", cfg.Input.DefaultDir)
		}
		if cfg.Tools.Unzip != "unzip" {
			t.Errorf("Tools.Unzip = %q, want default unzip", cfg.Tools.Unzip)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		if _, err := Load(""); !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("err = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "nope.yaml")
		if _, err := Load(missing); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("err = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("missing name in search locations", func(t *testing.T) {
		t.Parallel()

		if _, err := Load("no-such-config-name"); !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("err = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "batch: [not a mapping")
		if _, err := Load(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "bogus: true\n")
		if _, err := Load(path); !errors.Is(err, ErrConfigParse) {
			t.Errorf("err = %v, want ErrConfigParse", err)
		}
	})

	t.Run("negative workers rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "batch:\n  workers: -1\n")
		if _, err := Load(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("err = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("empty tool name rejected", func(t *testing.T) {
		t.Parallel()

		path := writeConfig(t, "tools:\n  unzip: \"\"\n")
		if _, err := Load(path); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("err = %v, want ErrInvalidValue", err)
		}
	})
}
