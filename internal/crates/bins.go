package crates

import (
	"os"
	"path/filepath"
)

// BinsInstalled reports whether every declared binary exists in binDir.
// An empty bins list reports false: with nothing declared there is
// nothing to verify, so the package cannot be considered verified.
// Existence only; the binaries' contents are not inspected.
func BinsInstalled(binDir string, bins []string) bool {
	if len(bins) == 0 {
		return false
	}

	for _, bin := range bins {
		if _, err := os.Stat(filepath.Join(binDir, bin)); err != nil {
			return false
		}
	}

	return true
}
