package tools

import "os"

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// dirExists reports whether path names an existing directory.
func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// pathExists reports whether path names anything at all.
func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// missingPaths returns the subset of paths that do not exist on disk.
func missingPaths(paths []string) []string {
	var missing []string
	for _, p := range paths {
		if !pathExists(p) {
			missing = append(missing, p)
		}
	}
	return missing
}
