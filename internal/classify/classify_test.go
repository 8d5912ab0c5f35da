// SPDX-License-Identifier: MPL-2.0

package classify

import "testing"

func newTestClassifier() *Classifier {
	return New(RuleSet{
		TextExtensions:   []string{".cs", ".md", ".json", ".sln"},
		BinaryExtensions: []string{".png", ".dll"},
		ExcludedDirs:     []string{"bin", "obj", ".git"},
		SkipPatterns:     []string{".designer.", ".min.js", "bundle"},
	})
}

func TestClassify_ByExtension(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	tests := []struct {
		path string
		want Class
	}{
		{"/work/app/Program.cs", ClassText},
		{"/work/app/README.md", ClassText},
		{"/work/app/logo.png", ClassBinary},
		{"/work/app/vendor.dll", ClassBinary},
		{"/work/app/data.sqlite", ClassSkip},
		{"/work/app/Makefile", ClassSkip},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.path); got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestClassify_ExtensionCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	if got := c.Classify("/work/app/Program.CS"); got != ClassText {
		t.Errorf("Classify() = %q, want %q for upper-cased extension", got, ClassText)
	}
	if got := c.Classify("/work/app/LOGO.PNG"); got != ClassBinary {
		t.Errorf("Classify() = %q, want %q for upper-cased extension", got, ClassBinary)
	}
}

func TestClassify_SkipPatternBeatsTextExtension(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	tests := []string{
		"/work/app/Form1.Designer.cs",
		"/work/app/scripts/site.min.js",
		"/work/app/Bundle/helpers.cs",
		"/work/app/jquery.bundle.json",
	}
	for _, path := range tests {
		if got := c.Classify(path); got != ClassSkip {
			t.Errorf("Classify(%q) = %q, want %q (pattern precedence)", path, got, ClassSkip)
		}
	}
}

func TestClassify_SkipPatternBeatsBinaryExtension(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	if got := c.Classify("/work/app/assets/bundle.png"); got != ClassSkip {
		t.Errorf("Classify() = %q, want %q (pattern precedence over binary)", got, ClassSkip)
	}
}

func TestClassify_PatternMatchesDirectorySegment(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	if got := c.Classify("/work/app/bundles/app.cs"); got != ClassSkip {
		t.Errorf("Classify() = %q, want %q when a parent directory matches", got, ClassSkip)
	}
}

func TestClassify_PatternCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	if got := c.Classify(`/work/app/Site.MIN.JS`); got != ClassSkip {
		t.Errorf("Classify() = %q, want %q regardless of case", got, ClassSkip)
	}
}

func TestIsExcludedDir(t *testing.T) {
	t.Parallel()

	c := newTestClassifier()
	tests := []struct {
		name string
		want bool
	}{
		{"bin", true},
		{"BIN", true},
		{"Obj", true},
		{".git", true},
		{"binaries", false},
		{"src", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := c.IsExcludedDir(tt.name); got != tt.want {
			t.Errorf("IsExcludedDir(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNew_EmptyRuleSet(t *testing.T) {
	t.Parallel()

	c := New(RuleSet{})
	if got := c.Classify("/work/app/Program.cs"); got != ClassSkip {
		t.Errorf("Classify() = %q, want %q with no rules configured", got, ClassSkip)
	}
	if c.IsExcludedDir("bin") {
		t.Error("IsExcludedDir() = true with no rules configured")
	}
}
