package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/doclens/doclens/apimodels"
	"github.com/doclens/doclens/internal/ingest"
)

// ErrNotFound is returned when a requested document is not in the folder.
var ErrNotFound = errors.New("document not found")

// Folder serves analyzable documents out of a directory on disk.
type Folder struct {
	dir string
}

func NewFolder(dir string) *Folder {
	return &Folder{dir: dir}
}

// List returns the supported documents in the folder, sorted by name.
func (f *Folder) List() ([]apimodels.DocumentInfo, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, fmt.Errorf("read documents dir: %w", err)
	}

	docs := []apimodels.DocumentInfo{}
	for _, entry := range entries {
		if entry.IsDir() || !ingest.SupportedExt(filepath.Ext(entry.Name())) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		docs = append(docs, apimodels.DocumentInfo{
			Name: entry.Name(),
			Size: info.Size(),
		})
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Name < docs[j].Name })
	return docs, nil
}

// Load reads one document by name and extracts its text. Names are
// restricted to plain file names inside the folder.
func (f *Folder) Load(name string) (*ingest.Document, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return nil, ErrNotFound
	}
	if !ingest.SupportedExt(filepath.Ext(name)) {
		return nil, ErrNotFound
	}

	raw, err := os.ReadFile(filepath.Join(f.dir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("read document: %w", err)
	}
	return ingest.Extract(name, raw)
}
