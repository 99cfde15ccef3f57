package gen

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// PackagePath returns the Go package path for dir, derived from the
// module path in the nearest enclosing go.mod plus any subdirectories
// between the module root and dir. The CLI uses this to figure out the
// import path generated code should declare when the caller points it at
// an output directory rather than typing the package path by hand.
func PackagePath(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}

	var file string
	var subdirs string
	for {
		file = filepath.Join(dir, "go.mod")
		info, err := os.Stat(file)
		if err != nil {
			var rest string
			dir, rest = filepath.Split(dir)
			if dir == "" {
				return "", errors.New("unable to locate a go.mod file")
			}
			dir = filepath.Clean(dir)
			subdirs = path.Join(rest, subdirs)
			continue
		}
		if info.IsDir() {
			return "", fmt.Errorf("unexpected directory: %s", file)
		}
		break
	}

	f, err := os.Open(file)
	if err != nil {
		return "", fmt.Errorf("unable to open %s", file)
	}
	mod, err := io.ReadAll(f)
	f.Close()
	if err != nil {
		return "", err
	}

	modpath := modfile.ModulePath(mod)
	if modpath == "" {
		return "", fmt.Errorf("no module path in %s", file)
	}
	return path.Join(modpath, subdirs), nil
}
