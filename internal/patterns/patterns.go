// Package patterns holds the built-in seed plates and loads plates from disk.
package patterns

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"hyperlife/internal/life"
)

// ErrUnknown reports a name that is neither a built-in pattern nor a
// readable file.
var ErrUnknown = errors.New("patterns: unknown pattern")

//go:embed data/*.txt
var files embed.FS

// Names lists the built-in patterns in sorted order.
func Names() []string {
	entries, err := fs.ReadDir(files, "data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// Builtin returns the rows of a built-in pattern.
func Builtin(name string) ([]string, error) {
	data, err := files.ReadFile(path.Join("data", name+".txt"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	return life.ParsePlate(bytes.NewReader(data))
}

// Load resolves name as a built-in pattern first and as a file path second.
func Load(name string) ([]string, error) {
	if rows, err := Builtin(name); err == nil {
		return rows, nil
	}
	f, err := os.Open(name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %q (built-ins: %s)", ErrUnknown, name, strings.Join(Names(), ", "))
		}
		return nil, fmt.Errorf("patterns: %w", err)
	}
	defer f.Close()
	return life.ParsePlate(f)
}
