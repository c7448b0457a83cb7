package classvariants

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// DiscoverManifests expands glob patterns relative to root into a sorted,
// deduplicated list of manifest paths. Files ignored by the root's
// .gitignore are skipped; a missing .gitignore degrades gracefully.
func DiscoverManifests(root string, patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		fullPattern := filepath.Join(root, pattern)

		// doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}

		files = append(files, matches...)
	}

	gitIgnore := loadGitIgnore(root)

	seen := make(map[string]bool, len(files))
	unique := make([]string, 0, len(files))
	for _, file := range files {
		if seen[file] {
			continue
		}
		seen[file] = true

		// Project .gitignore only governs paths inside the project.
		if gitIgnore != nil {
			if rel, err := filepath.Rel(root, file); err == nil && gitIgnore.MatchesPath(rel) {
				continue
			}
		}

		unique = append(unique, file)
	}

	sort.Strings(unique)
	return unique, nil
}

// loadGitIgnore compiles root/.gitignore, or nil when absent.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return gi
}
