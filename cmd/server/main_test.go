package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeName(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		expect string
	}{
		{"normal short name", "Alice", "Alice"},
		{"exactly 16 chars", "1234567890123456", "1234567890123456"},
		{"long name truncated", "ThisIsAVeryLongUsername", "ThisIsAVeryLongU"},
		{"control chars stripped", "he\x00ll\x1bo", "hello"},
		{"ansi escape partial", "he\x1b[31mllo", "he[31mllo"},
		{"empty input", "", ""},
		{"pure control chars", "\x00\x01\x02\x1b", ""},
		{"multi-byte runes truncated by byte limit", "日本語のテスト名前", "日本語のテ"},
		{"emoji truncated by byte limit", "🎮Player🎮Name🎮", "🎮Player🎮Na"},
		{"tabs stripped", "hello\tworld", "helloworld"},
		{"newlines stripped", "hello\nworld", "helloworld"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := sanitizeName(tc.input)
			if got != tc.expect {
				t.Errorf("sanitizeName(%q) = %q, want %q", tc.input, got, tc.expect)
			}
		})
	}
}

func TestPickTerm(t *testing.T) {
	cases := []struct {
		name  string
		env   []string
		term  string
		known bool
	}{
		{"xterm-256color", []string{"TERM=xterm-256color"}, "xterm-256color", true},
		{"tmux", []string{"TERM=tmux"}, "tmux", true},
		{"linux", []string{"LANG=C", "TERM=linux"}, "linux", true},
		{"missing", nil, "xterm-256color", true},
		{"unknown term", []string{"TERM=evil-term"}, "xterm-256color", false},
		{"path traversal", []string{"TERM=../../../etc/passwd"}, "xterm-256color", false},
		{"xterm-kitty", []string{"TERM=xterm-kitty"}, "xterm-256color", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			term, known := pickTerm(tc.env)
			if term != tc.term || known != tc.known {
				t.Errorf("pickTerm(%q) = (%q, %v), want (%q, %v)", tc.env, term, known, tc.term, tc.known)
			}
		})
	}
}

func TestLoadOrCreateHostKeyPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	log := slog.New(slog.DiscardHandler)

	first, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("key not written: %v", err)
	}
	second, err := loadOrCreateHostKey(path, log)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !bytes.Equal(first.PublicKey().Marshal(), second.PublicKey().Marshal()) {
		t.Fatal("reloaded key differs from the generated one")
	}
}

func TestLoadOrCreateHostKeyReplacesGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "host_key")
	if err := os.WriteFile(path, []byte("not a key"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := loadOrCreateHostKey(path, slog.New(slog.DiscardHandler)); err != nil {
		t.Fatalf("expected a fresh key, got %v", err)
	}
}
