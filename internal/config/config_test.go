package config

import (
	"os"
	"strings"
	"testing"
)

// chtemp switches the working directory to a fresh temp dir for the test.
func chtemp(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(origDir)
	})

	return tmp
}

func TestLoad_Defaults(t *testing.T) {
	chtemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Manifest != DefaultManifest {
		t.Errorf("Manifest = %q, want %q", cfg.Manifest, DefaultManifest)
	}
	if cfg.Field != "" || cfg.Format != "" || cfg.Pattern != "" {
		t.Errorf("expected empty field/format/pattern, got %+v", cfg)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	chtemp(t)
	t.Setenv("RELVER_MANIFEST", "/srv/build/Cargo.toml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Manifest != "/srv/build/Cargo.toml" {
		t.Errorf("Manifest = %q, want env override", cfg.Manifest)
	}
}

func TestLoad_EnvTraversalRejected(t *testing.T) {
	chtemp(t)
	t.Setenv("RELVER_MANIFEST", "../../etc/Cargo.toml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for traversal path, got nil")
	}
	if !strings.Contains(err.Error(), "path traversal") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_ConfigFile(t *testing.T) {
	chtemp(t)

	content := "manifest: tools/Cargo.toml\nfield: package.version\nformat: toml\n"
	if err := os.WriteFile(".relver.yaml", []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Manifest != "tools/Cargo.toml" {
		t.Errorf("Manifest = %q, want %q", cfg.Manifest, "tools/Cargo.toml")
	}
	if cfg.Field != "package.version" {
		t.Errorf("Field = %q, want %q", cfg.Field, "package.version")
	}
	if cfg.Format != "toml" {
		t.Errorf("Format = %q, want %q", cfg.Format, "toml")
	}
}

func TestLoad_ConfigFileWithoutManifestFallsBack(t *testing.T) {
	chtemp(t)

	if err := os.WriteFile(".relver.yaml", []byte("field: project.version\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Manifest != DefaultManifest {
		t.Errorf("Manifest = %q, want default %q", cfg.Manifest, DefaultManifest)
	}
	if cfg.Field != "project.version" {
		t.Errorf("Field = %q, want %q", cfg.Field, "project.version")
	}
}

func TestLoad_EnvWinsOverConfigFile(t *testing.T) {
	chtemp(t)
	t.Setenv("RELVER_MANIFEST", "/env/Cargo.toml")

	if err := os.WriteFile(".relver.yaml", []byte("manifest: file/Cargo.toml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Manifest != "/env/Cargo.toml" {
		t.Errorf("Manifest = %q, want env value", cfg.Manifest)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	chtemp(t)

	if err := os.WriteFile(".relver.yaml", []byte("manifest: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestLoad_UnknownKeyRejected(t *testing.T) {
	chtemp(t)

	if err := os.WriteFile(".relver.yaml", []byte("manifes: typo.toml\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load()
	if err == nil {
		t.Fatal("expected strict decode error for unknown key, got nil")
	}
}
