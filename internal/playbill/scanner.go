package playbill

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry represents a play file found in the plays directory
type Entry struct {
	Name string // Display name (file name without extension)
	Path string // Path to the play file
}

// Scan lists the play files in dir, sorted by name.
func Scan(dir string) ([]Entry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read plays directory: %w", err)
	}

	var plays []Entry
	for _, entry := range entries {
		// Skip directories and hidden files
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		if strings.HasSuffix(strings.ToLower(name), ".json") {
			plays = append(plays, Entry{
				Name: strings.TrimSuffix(name, filepath.Ext(name)),
				Path: filepath.Join(dir, name),
			})
		}
	}

	sort.Slice(plays, func(i, j int) bool { return plays[i].Name < plays[j].Name })
	return plays, nil
}

// Resolve turns a configured play location into a single play file. A
// directory resolves to its first play; anything else is returned as is.
func Resolve(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return path, nil
	}

	plays, err := Scan(path)
	if err != nil {
		return "", err
	}
	if len(plays) == 0 {
		return "", fmt.Errorf("no plays found in %s", path)
	}
	return plays[0].Path, nil
}
