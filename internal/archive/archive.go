// Package archive serializes the workspace to and from standard zip
// containers. Import is all-or-nothing: the archive is decoded completely
// into memory before the caller touches the live workspace, so a malformed
// archive never leaves the store half-replaced.
package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/studiowebux/minicoder/internal/types"
)

// ErrArchiveDecode wraps every structural failure while reading an archive.
var ErrArchiveDecode = errors.New("could not decode archive")

// DefaultExportName is the file name the TUI writes exports under.
const DefaultExportName = "minicoder-project.zip"

// Export packs every workspace file as a named text entry, in store
// iteration order.
func Export(files []types.VirtualFile) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("add %s to archive: %w", f.Name, err)
		}
		if _, err := w.Write([]byte(f.Content)); err != nil {
			return nil, fmt.Errorf("write %s to archive: %w", f.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// Import decodes every non-directory entry as UTF-8 text and derives each
// file's language from its extension, preserving the archive's own entry
// order. Directory entries are skipped. Entries without an extension import
// as plain text rather than failing; only structural zip errors abort.
func Import(data []byte) ([]types.VirtualFile, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArchiveDecode, err)
	}

	var files []types.VirtualFile
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() || strings.HasSuffix(entry.Name, "/") {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: open %s: %v", ErrArchiveDecode, entry.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: read %s: %v", ErrArchiveDecode, entry.Name, err)
		}
		files = append(files, types.VirtualFile{
			Name:     entry.Name,
			Language: types.LanguageForName(entry.Name),
			Content:  string(content),
		})
	}
	return files, nil
}

// EntryPoint picks the file to activate after an import: index.html when
// present, else the archive's first entry. Returns "" for an empty archive.
func EntryPoint(files []types.VirtualFile) string {
	for _, f := range files {
		if f.Name == types.EntryHTML {
			return f.Name
		}
	}
	if len(files) > 0 {
		return files[0].Name
	}
	return ""
}
