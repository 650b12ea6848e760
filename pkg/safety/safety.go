// Package safety decides whether names and paths coming from untrusted
// clipboard text are allowed to touch the filesystem.
package safety

import (
	"regexp"
	"strings"
	"unicode/utf16"
)

// invalidChars are the characters Windows forbids in a path segment. They are
// rejected on every platform so trees paste identically everywhere.
const invalidChars = `\/:*?"<>|`

// reservedName matches the DOS device names, extension already stripped.
var reservedName = regexp.MustCompile(`(?i)^(CON|PRN|AUX|NUL|COM[0-9]+|LPT[0-9]+)$`)

// MaxNameLen is the longest accepted name, counted in UTF-16 code units.
const MaxNameLen = 255

// IsValidFilename reports whether name is a legal, safe single path segment.
// It rejects reserved device names, path separators, control characters,
// traversal sequences and anything that could be read as an absolute path.
func IsValidFilename(name string) bool {
	if name == "" {
		return false
	}
	if len(utf16.Encode([]rune(name))) > MaxNameLen {
		return false
	}
	if strings.ContainsAny(name, invalidChars) {
		return false
	}
	for _, r := range name {
		if r < 0x20 {
			return false
		}
	}
	base := name
	if i := strings.IndexByte(base, '.'); i >= 0 {
		base = base[:i]
	}
	if reservedName.MatchString(base) {
		return false
	}
	if strings.Trim(name, ".") == "" {
		return false
	}
	if strings.HasSuffix(name, ".") {
		return false
	}
	if strings.Contains(name, "../") || strings.Contains(name, `..\`) {
		return false
	}
	if hasDrivePrefix(name) || strings.HasPrefix(name, "/") || strings.HasPrefix(name, `\`) {
		return false
	}
	return true
}

// IsPathSafe reports whether a destination-relative path stays inside the
// destination root. Unlike IsValidFilename it tolerates separators, since it
// is applied to joined paths in tree mode.
func IsPathSafe(path string) bool {
	if strings.Contains(path, "../") || strings.Contains(path, `..\`) {
		return false
	}
	if hasDrivePrefix(path) {
		return false
	}
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, `\`) {
		return false
	}
	return true
}

func hasDrivePrefix(s string) bool {
	if len(s) < 2 || s[1] != ':' {
		return false
	}
	c := s[0]
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
