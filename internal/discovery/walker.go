// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"

	"slndigest/internal/classify"
)

// walker traverses one project directory in depth-first lexical order,
// yielding candidate file paths. Excluded directories are pruned before
// descent, symlinks are never followed, and an unreadable directory costs
// only its own subtree.
type walker struct {
	classifier *classify.Classifier

	// ignorer matches paths against the workspace .gitignore; nil when
	// gitignore support is disabled or no .gitignore exists.
	ignorer *ignore.GitIgnore
	// ignoreRoot anchors ignorer patterns; matching uses paths relative to it.
	ignoreRoot string
}

// newWalker builds a walker over the given rules. When respectGitignore is
// set and the workspace root carries a .gitignore, matching paths are skipped
// during traversal. A present-but-uncompilable .gitignore produces a warning
// diagnostic and traversal proceeds without it.
func newWalker(classifier *classify.Classifier, workspaceRoot string, respectGitignore bool) (*walker, []Diagnostic) {
	w := &walker{classifier: classifier, ignoreRoot: workspaceRoot}
	if !respectGitignore {
		return w, nil
	}

	gitignorePath := filepath.Join(workspaceRoot, ".gitignore")
	if _, err := os.Stat(gitignorePath); err != nil {
		// No .gitignore is common and not a warning
		return w, nil
	}

	gi, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return w, []Diagnostic{NewDiagnosticWithCause(
			SeverityWarning,
			CodeGitignoreLoadFailed,
			fmt.Sprintf("failed to compile %s, continuing without gitignore matching: %v", gitignorePath, err),
			gitignorePath,
			err,
		)}
	}

	w.ignorer = gi
	return w, nil
}

// walk traverses dir and calls visit for every candidate file. Diagnostics
// describe unreadable directories; traversal itself never fails.
func (w *walker) walk(dir string, visit func(absPath string)) []Diagnostic {
	diagnostics := make([]Diagnostic, 0)

	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			diagnostics = append(diagnostics, NewDiagnosticWithCause(
				SeverityWarning,
				CodeDirListFailed,
				fmt.Sprintf("failed to list %s during walk, skipping subtree: %v", path, err),
				path,
				err,
			))
			return nil
		}

		if d.IsDir() {
			// The project directory itself is never pruned; it was reached
			// through a manifest reference, not the walk.
			if path != dir && w.classifier.IsExcludedDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		// Skip symlinks
		if d.Type()&os.ModeSymlink != 0 {
			return nil
		}

		if w.ignorer != nil {
			if rel, relErr := filepath.Rel(w.ignoreRoot, path); relErr == nil && w.ignorer.MatchesPath(rel) {
				return nil
			}
		}

		visit(path)
		return nil
	})

	return diagnostics
}
