package pack

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoModelEntry reports an archive that contains no 3D model entry.
var ErrNoModelEntry = errors.New("archive has no 3D model entry")

// Archive holds the entries of a 3MF container in their original order.
// Entries other than the model document are carried as opaque bytes and
// written back unchanged.
type Archive struct {
	names []string
	data  map[string][]byte
}

// Read loads the whole archive at path into memory. A file that is not
// a valid ZIP container is a structural error.
func Read(path string) (*Archive, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening 3mf archive %s: %w", path, err)
	}
	defer zr.Close()

	a := &Archive{data: make(map[string][]byte)}

	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening entry %s: %w", f.Name, err)
		}

		b, err := io.ReadAll(rc)
		rc.Close()

		if err != nil {
			return nil, fmt.Errorf("reading entry %s: %w", f.Name, err)
		}

		a.names = append(a.names, f.Name)
		a.data[f.Name] = b
	}

	return a, nil
}

// Names returns the entry names in archive order.
func (a *Archive) Names() []string {
	return a.names
}

// Get returns the bytes of an entry.
func (a *Archive) Get(name string) ([]byte, bool) {
	b, ok := a.data[name]
	return b, ok
}

// Set replaces an entry's contents, appending the entry when new.
func (a *Archive) Set(name string, b []byte) {
	if _, ok := a.data[name]; !ok {
		a.names = append(a.names, name)
	}

	a.data[name] = b
}

// ModelEntry returns the name of the model document: the first entry
// with a .model suffix under a 3D/ path component. The exact path
// varies between producers, so only the convention is matched.
func (a *Archive) ModelEntry() (string, bool) {
	for _, name := range a.names {
		if strings.HasSuffix(name, ".model") && strings.Contains(name, "3D/") {
			return name, true
		}
	}

	return "", false
}

// Write rewrites the archive at path with all entries in their original
// order. The file is assembled in a temporary sibling and renamed over
// the destination, so a failed write never truncates an existing
// archive even when input and output paths coincide.
func (a *Archive) Write(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".lumina3mf-*")
	if err != nil {
		return fmt.Errorf("creating temporary archive: %w", err)
	}

	err = a.writeTo(tmp)

	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}

	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("writing 3mf archive %s: %w", path, err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing 3mf archive %s: %w", path, err)
	}

	return nil
}

func (a *Archive) writeTo(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, name := range a.names {
		ew, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("creating entry %s: %w", name, err)
		}

		if _, err := ew.Write(a.data[name]); err != nil {
			return fmt.Errorf("writing entry %s: %w", name, err)
		}
	}

	return zw.Close()
}
