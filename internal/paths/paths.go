// Package paths provides the shared file-path normalization used by every
// producer of a hand-off file list (argv, open events, socket messages).
package paths

import (
	"os"
	"path/filepath"
	"strings"
)

// Normalize expands "~", makes every path absolute, cleans it, and drops
// blanks and duplicates while preserving first-occurrence order. All three
// receipt sources funnel through this so the dispatcher sees one canonical
// shape regardless of origin.
func Normalize(raw []string) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		full := Absolutize(p, "")
		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}
		out = append(out, full)
	}
	return out
}

// Absolutize resolves a single path to absolute form. Relative paths are
// joined against baseDir when given, otherwise against the working directory.
func Absolutize(path, baseDir string) string {
	path = expandHome(path)
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	if baseDir != "" {
		return filepath.Clean(filepath.Join(baseDir, path))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
