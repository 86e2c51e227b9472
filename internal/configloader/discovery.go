package configloader

import (
	"os"
	"path/filepath"
)

// configFileNames are the project config file names searched for, in order
// of preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var configFileNames = []string{
	".webcc.yml",
	".webcc.yaml",
	"webcc.yml",
	"webcc.yaml",
}

// vcsRootMarkers are directories that indicate a VCS root. The upward
// search stops once a marker directory has been examined.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// DiscoverProjectConfig searches upward from workDir for a project config
// file. The search stops after the first directory containing a VCS root
// marker, or at the filesystem root. An empty result means no config file
// was found.
func DiscoverProjectConfig(workDir string) string {
	dir, err := filepath.Abs(workDir)
	if err != nil {
		return ""
	}

	for {
		for _, name := range configFileNames {
			candidate := filepath.Join(dir, name)
			if stat, err := os.Stat(candidate); err == nil && !stat.IsDir() {
				return candidate
			}
		}

		if isVCSRoot(dir) {
			return ""
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
			return true
		}
	}
	return false
}
