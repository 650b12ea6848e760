package safety

import (
	"strings"
	"testing"
)

func TestIsValidFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"simple file", "notes.md", true},
		{"no extension", "Makefile", true},
		{"unicode", "заметки.txt", true},
		{"empty", "", false},
		{"too long", strings.Repeat("a", 300), false},
		{"exactly max", strings.Repeat("a", 255), true},
		{"backslash", `a\b`, false},
		{"forward slash", "a/b", false},
		{"colon", "a:b", false},
		{"wildcard", "a*b", false},
		{"question mark", "a?b", false},
		{"quote", `a"b`, false},
		{"angle brackets", "a<b>", false},
		{"pipe", "a|b", false},
		{"control char", "a\x01b", false},
		{"tab", "a\tb", false},
		{"reserved CON", "CON", false},
		{"reserved con lowercase", "con", false},
		{"reserved with extension", "con.txt", false},
		{"reserved COM with digits", "COM42", false},
		{"reserved LPT", "lpt1.log", false},
		{"COM without digits is fine", "COMMON.txt", true},
		{"only dots", "...", false},
		{"single dot", ".", false},
		{"trailing dot", "a..", false},
		{"traversal", `..\x`, false},
		{"dotfile is fine", ".gitignore", true},
		{"drive letter", "C:notes.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidFilename(tt.input); got != tt.want {
				t.Errorf("IsValidFilename(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsPathSafe(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"relative path", "a/b/c.txt", true},
		{"single segment", "notes.md", true},
		{"parent escape", "../evil", false},
		{"nested escape", `a/..\evil`, false},
		{"drive letter", `C:\Windows\evil`, false},
		{"absolute unix", "/etc/passwd", false},
		{"absolute windows", `\Windows`, false},
		{"unc prefix", `\\server\share`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPathSafe(tt.path); got != tt.want {
				t.Errorf("IsPathSafe(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}
