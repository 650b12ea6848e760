// clip2file_integration_test.go
package integration_test

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func buildCLI(t *testing.T) string {
	t.Helper()
	buildDir := t.TempDir()
	exePath := filepath.Join(buildDir, "clip2file")
	buildCmd := exec.Command("go", "build", "-o", exePath, "./cmd/clip2file")
	buildCmd.Stdout = os.Stdout
	buildCmd.Stderr = os.Stderr
	if err := buildCmd.Run(); err != nil {
		t.Fatalf("failed to build clip2file: %v", err)
	}
	return exePath
}

func runApply(t *testing.T, exePath, dest, input string, extra ...string) {
	t.Helper()
	// a config path of our own keeps the developer's real config out of the
	// test; the missing file loads as pure defaults
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	args := append([]string{"apply", "--config", cfgPath, "--dest", dest, "--yes"}, extra...)
	proc := exec.Command(exePath, args...)
	proc.Stdin = bytes.NewBufferString(input)
	proc.Stdout = os.Stdout
	proc.Stderr = os.Stderr
	if err := proc.Run(); err != nil {
		t.Fatalf("clip2file apply failed: %v", err)
	}
}

func TestClip2FileIntegration(t *testing.T) {
	exePath := buildCLI(t)

	t.Run("path list", func(t *testing.T) {
		dest := t.TempDir()
		runApply(t, exePath, dest, "a/b/c.txt\na/b/d.txt\na/e.txt\n")

		for _, rel := range []string{"a/b/c.txt", "a/b/d.txt", "a/e.txt"} {
			if _, err := os.Stat(filepath.Join(dest, rel)); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}
	})

	t.Run("glyph tree", func(t *testing.T) {
		dest := t.TempDir()
		input := "├── cmd/\n" +
			"│   └── main.go\n" +
			"└── README.md\n"
		runApply(t, exePath, dest, input)

		for _, rel := range []string{"cmd/main.go", "README.md"} {
			if _, err := os.Stat(filepath.Join(dest, rel)); err != nil {
				t.Errorf("expected %s to exist: %v", rel, err)
			}
		}
	})

	t.Run("content delimited", func(t *testing.T) {
		dest := t.TempDir()
		input := "src/\n" +
			"    hello.py\n" +
			"---START:hello.py---\n" +
			"print('hi')\n" +
			"---END:hello.py---\n"
		runApply(t, exePath, dest, input)

		data, err := os.ReadFile(filepath.Join(dest, "src", "hello.py"))
		if err != nil {
			t.Fatalf("expected src/hello.py: %v", err)
		}
		if string(data) != "print('hi')" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("filename with content", func(t *testing.T) {
		dest := t.TempDir()
		runApply(t, exePath, dest, "// notes.txt\nremember the milk\n")

		data, err := os.ReadFile(filepath.Join(dest, "notes.txt"))
		if err != nil {
			t.Fatalf("expected notes.txt: %v", err)
		}
		if string(data) != "remember the milk\n" {
			t.Errorf("content = %q", data)
		}
	})

	t.Run("unrecognized text is a no-op", func(t *testing.T) {
		dest := t.TempDir()
		runApply(t, exePath, dest, "some prose that is definitely not a filename\n")

		entries, err := os.ReadDir(dest)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("expected empty destination, found %d entries", len(entries))
		}
	})
}
