package deck

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

var defaultPatterns = []string{"**/*.{png,jpg,jpeg,gif,webp,bmp}", "**/*.{md,markdown,txt}"}

// discover loads every file under dir matching one of patterns, in path
// order. Matching ignores case, as kindOf does. Hidden directories are
// skipped.
func discover(dir string, patterns []string) ([]Slide, error) {
	paths, err := glob(dir, patterns)
	if err != nil {
		return nil, err
	}
	var slides []Slide
	for _, rel := range paths {
		more, err := loadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return nil, err
		}
		slides = append(slides, more...)
	}
	return slides, nil
}

func glob(dir string, patterns []string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var out []string
	for _, p := range patterns {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(p), doublestar.WithFilesOnly(), doublestar.WithCaseInsensitive())
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", p, err)
		}
		for _, m := range matches {
			if seen[m] || hidden(m) {
				continue
			}
			seen[m] = true
			out = append(out, m)
		}
	}
	sort.Strings(out)
	return out, nil
}

func hidden(rel string) bool {
	for dir := filepath.ToSlash(rel); dir != "." && dir != "/"; dir = filepath.ToSlash(filepath.Dir(dir)) {
		base := filepath.Base(dir)
		if len(base) > 1 && base[0] == '.' {
			return true
		}
	}
	return false
}
