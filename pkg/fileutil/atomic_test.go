package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestAtomicWriteFile(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		perm os.FileMode
	}{
		{"successful write", []byte("version: 1\n"), 0o644},
		{"empty data", []byte{}, 0o644},
		{"binary data", []byte{0x00, 0x01, 0x02, 0xFF}, 0o600},
		{"executable permissions", []byte("#!/bin/sh\necho 114.0.5735.90\n"), 0o755},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewOsFs()
			path := filepath.Join(t.TempDir(), "test-file")

			if err := AtomicWriteFile(fs, path, tt.data, tt.perm); err != nil {
				t.Fatalf("AtomicWriteFile() error = %v", err)
			}

			got, err := afero.ReadFile(fs, path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != string(tt.data) {
				t.Errorf("content = %q, want %q", got, tt.data)
			}

			info, err := fs.Stat(path)
			if err != nil {
				t.Fatalf("stating file: %v", err)
			}
			if gotPerm := info.Mode().Perm(); gotPerm != tt.perm {
				t.Errorf("permissions = %o, want %o", gotPerm, tt.perm)
			}
		})
	}
}

func TestAtomicWriteFile_DirectoryNotExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent", "subdir", "file.txt")

	if err := AtomicWriteFile(afero.NewOsFs(), path, []byte("data"), 0o600); err == nil {
		t.Error("AtomicWriteFile() expected error for nonexistent directory")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading directory: %v", err)
	}
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".tmp" {
			t.Errorf("temp file left behind: %s", entry.Name())
		}
	}
}

func TestAtomicWriteFile_OverwriteExisting(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/etc/wdbin", 0o755); err != nil {
		t.Fatal(err)
	}
	path := "/etc/wdbin/config.yaml"
	if err := afero.WriteFile(fs, path, []byte("original\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := AtomicWriteFile(fs, path, []byte("new content\n"), 0o600); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	got, err := afero.ReadFile(fs, path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}
	if string(got) != "new content\n" {
		t.Errorf("content = %q, want %q", got, "new content\n")
	}

	entries, err := afero.ReadDir(fs, "/etc/wdbin")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}

func TestAtomicWriteYAML(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantYAML string
		wantErr  bool
	}{
		{
			name:     "simple struct",
			value:    struct{ Name string }{Name: "test"},
			wantYAML: "name: test\n",
		},
		{
			name:     "map",
			value:    map[string]string{"preset": "geckodriver"},
			wantYAML: "preset: geckodriver\n",
		},
		{
			name:     "slice",
			value:    []string{"a", "b"},
			wantYAML: "- a\n- b\n",
		},
		{
			name:    "unmarshalable channel",
			value:   make(chan int),
			wantErr: true,
		},
		{
			name:    "unmarshalable func",
			value:   func() {},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := "/cfg/test.yaml"

			err := AtomicWriteYAML(fs, path, tt.value, 0o644)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AtomicWriteYAML() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				if ok, _ := afero.Exists(fs, path); ok {
					t.Error("file should not exist after marshal error")
				}
				return
			}

			got, err := afero.ReadFile(fs, path)
			if err != nil {
				t.Fatalf("reading file: %v", err)
			}
			if string(got) != tt.wantYAML {
				t.Errorf("content = %q, want %q", got, tt.wantYAML)
			}
			if !strings.HasSuffix(string(got), "\n") {
				t.Error("YAML output should have trailing newline")
			}
		})
	}
}
