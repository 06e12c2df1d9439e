package docio

import (
	"archive/zip"
	"bytes"
	"fmt"
)

// ArchiveEntry is one named file inside the response archive.
type ArchiveEntry struct {
	Name string
	Data []byte
}

// BuildArchive packs the given entries into a zip archive and returns its
// bytes.
func BuildArchive(entries []ArchiveEntry) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("creating archive entry %s: %w", e.Name, err)
		}
		if _, err := w.Write(e.Data); err != nil {
			return nil, fmt.Errorf("writing archive entry %s: %w", e.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}
