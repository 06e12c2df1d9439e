package docio

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArchive(t *testing.T) {
	data, err := BuildArchive([]ArchiveEntry{
		{Name: "DN-RHB-2024-001.docx", Data: []byte("doc a")},
		{Name: "DN-RHB-2024-002.docx", Data: []byte("doc b")},
	})
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, zr.File, 2)

	contents := map[string]string{}
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		contents[f.Name] = string(b)
	}

	assert.Equal(t, "doc a", contents["DN-RHB-2024-001.docx"])
	assert.Equal(t, "doc b", contents["DN-RHB-2024-002.docx"])
}

func TestBuildArchive_Empty(t *testing.T) {
	data, err := BuildArchive(nil)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	assert.Empty(t, zr.File)
}
