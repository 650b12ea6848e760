package classify

import (
	"testing"

	"clip2file/pkg/config"
)

func snapshot(mutate func(*config.Config)) *config.Snapshot {
	cfg := config.DefaultConfig()
	cfg.ContentRegexes = nil
	if mutate != nil {
		mutate(cfg)
	}
	return config.NewSnapshot(cfg)
}

func TestClassifyRegexChain(t *testing.T) {
	snap := snapshot(func(c *config.Config) {
		c.ContentRegexes = []string{`^(.*\.[a-zA-Z0-9]+)$`}
	})

	r, ok := Classify(snap, "readme.txt\nHello")
	if !ok {
		t.Fatal("expected regex tier to match")
	}
	if r.Entry.Name != "readme.txt" || r.Entry.Content != "Hello" {
		t.Errorf("got (%q, %q), want (readme.txt, Hello)", r.Entry.Name, r.Entry.Content)
	}
}

func TestClassifyRegexSkipsInvalidPatterns(t *testing.T) {
	snap := snapshot(func(c *config.Config) {
		c.ContentRegexes = []string{`([bad`, `no-group`, `^//\s*(\S+\.txt)$`}
	})

	r, ok := Classify(snap, "// notes.txt")
	if !ok {
		t.Fatal("expected surviving pattern to match")
	}
	if r.Entry.Name != "notes.txt" {
		t.Errorf("Name = %q, want notes.txt", r.Entry.Name)
	}
}

func TestClassifyRegexNeedsFullLineMatch(t *testing.T) {
	snap := snapshot(func(c *config.Config) {
		c.ContentRegexes = []string{`(\w+\.txt)`}
	})

	// unanchored pattern matches a substring only; the tier must not fire,
	// and the word-count fallback handles the line instead
	r, ok := Classify(snap, "see readme.txt")
	if !ok {
		t.Fatal("expected fallback to classify")
	}
	if r.Entry.Name != "see readme.txt" {
		t.Errorf("Name = %q, want the whole line via fallback", r.Entry.Name)
	}
}

func TestClassifyLeadingWord(t *testing.T) {
	snap := snapshot(nil)

	r, ok := Classify(snap, "readme.txt Hello world")
	if !ok {
		t.Fatal("expected leading-word tier to match")
	}
	if r.Entry.Name != "readme.txt" || r.Entry.Content != "Hello world" {
		t.Errorf("got (%q, %q), want (readme.txt, Hello world)", r.Entry.Name, r.Entry.Content)
	}
}

func TestClassifyLeadingWordNeedsSingleLine(t *testing.T) {
	snap := snapshot(nil)

	// multi-line payload skips priority 2; priority 3 rejects the first
	// line because "readme.txt Hello" is not an allowed-extension name
	if _, ok := Classify(snap, "readme.txt Hello\nmore"); ok {
		t.Error("expected no classification for multi-line leading-word payload")
	}
}

func TestClassifyLeadingWordFeatureGate(t *testing.T) {
	snap := snapshot(func(c *config.Config) { c.CreateWithContent = false })

	if _, ok := Classify(snap, "readme.txt Hello"); ok {
		t.Error("content outcome must be rejected with create_with_content off")
	}

	snap = snapshot(func(c *config.Config) { c.CreateEmpty = false })
	if _, ok := Classify(snap, "readme.txt"); ok {
		t.Error("empty outcome must be rejected with create_empty off")
	}
}

func TestClassifyPatternFeatureGateIsTerminal(t *testing.T) {
	snap := snapshot(func(c *config.Config) {
		c.ContentRegexes = []string{`^(.*\.[a-zA-Z0-9]+)$`}
		c.CreateWithContent = false
	})

	// the regex claims the line but its content outcome is disabled; the
	// payload must not fall through to the empty-file fallback
	if r, ok := Classify(snap, "readme.txt\nHello"); ok {
		t.Errorf("gated regex match must end classification, got (%q, %q)",
			r.Entry.Name, r.Entry.Content)
	}

	snap = snapshot(func(c *config.Config) {
		c.ContentRegexes = []string{`^(.*\.[a-zA-Z0-9]+)$`}
		c.CreateEmpty = false
	})
	if _, ok := Classify(snap, "readme.txt"); ok {
		t.Error("gated empty outcome must end classification")
	}
}

func TestClassifyWordCountFallback(t *testing.T) {
	snap := snapshot(nil)

	r, ok := Classify(snap, "readme.txt")
	if !ok {
		t.Fatal("expected fallback to match")
	}
	if r.Entry.Name != "readme.txt" || r.Entry.Content != "" {
		t.Errorf("got (%q, %q), want (readme.txt, empty)", r.Entry.Name, r.Entry.Content)
	}

	r, ok = Classify(snap, "my release notes v2.txt")
	if !ok || r.Entry.Name != "my release notes v2.txt" {
		t.Errorf("multi-word name under the limit should classify, got %v %v", r, ok)
	}

	if _, ok := Classify(snap, "one two three four five six.txt"); ok {
		t.Error("name over the word-count limit must not classify")
	}
	if _, ok := Classify(snap, "binary.exe"); ok {
		t.Error("disallowed extension must not classify")
	}
}

func TestClassifyBothFeaturesDisabled(t *testing.T) {
	snap := snapshot(func(c *config.Config) {
		c.CreateEmpty = false
		c.CreateWithContent = false
	})
	if _, ok := Classify(snap, "readme.txt"); ok {
		t.Error("classifier must be inert with both creation features off")
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// a regex that would also satisfy the lower tiers must win and keep
	// the remainder as content
	snap := snapshot(func(c *config.Config) {
		c.ContentRegexes = []string{`^(.*\.txt)$`}
	})

	r, ok := Classify(snap, "readme.txt")
	if !ok {
		t.Fatal("expected a match")
	}
	if r.Entry.Name != "readme.txt" || r.Entry.Content != "" {
		t.Errorf("regex tier should have produced (readme.txt, empty), got (%q, %q)",
			r.Entry.Name, r.Entry.Content)
	}
}

func TestExpandSameLineList(t *testing.T) {
	snap := snapshot(nil)

	r, ok := Classify(snap, "a.txt b.txt c.txt")
	if !ok {
		t.Fatal("expected classification")
	}
	batch := Expand(snap, r)
	want := []string{"a.txt", "b.txt", "c.txt"}
	assertBatch(t, batch, want)
}

func TestExpandLineByLine(t *testing.T) {
	snap := snapshot(nil)

	r, ok := Classify(snap, "a.txt\nb.txt\n\nc.txt\nnot a file\nd.txt")
	if !ok {
		t.Fatal("expected classification")
	}
	batch := Expand(snap, r)
	// blank lines are skipped, the scan stops at the first invalid line
	assertBatch(t, batch, []string{"a.txt", "b.txt", "c.txt"})
}

func TestExpandSingleton(t *testing.T) {
	snap := snapshot(nil)

	r, ok := Classify(snap, "readme.txt Hello")
	if !ok {
		t.Fatal("expected classification")
	}
	batch := Expand(snap, r)
	assertBatch(t, batch, []string{"readme.txt"})
	if r.Entry.Content != "Hello" {
		t.Errorf("singleton keeps its content, got %q", r.Entry.Content)
	}
}

func TestExpandNextLineList(t *testing.T) {
	snap := snapshot(func(c *config.Config) {
		c.ContentRegexes = []string{`^list:(.+)$`}
	})

	// the classified name comes from the regex; the following line is a
	// space-separated list, which replaces it
	r, ok := Classify(snap, "list:x.txt\na.txt b.txt")
	if !ok {
		t.Fatal("expected classification")
	}
	batch := Expand(snap, r)
	assertBatch(t, batch, []string{"a.txt", "b.txt"})
}

func assertBatch(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("batch = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("batch[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
