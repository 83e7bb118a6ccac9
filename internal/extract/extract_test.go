package extract

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPlain(t *testing.T) {
	got, err := Text(MimePlain, []byte("John Doe\nSoftware Engineer"))
	require.NoError(t, err)
	assert.Equal(t, "John Doe\nSoftware Engineer", got)
}

func TestTextUnsupportedMime(t *testing.T) {
	_, err := Text("image/png", []byte{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

func TestMimeForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{path: "resume.txt", want: MimePlain},
		{path: "notes.md", want: MimePlain},
		{path: "Resume.PDF", want: MimePDF},
		{path: "dir/1_cv.docx", want: MimeDocx},
		{path: "photo.png", wantErr: true},
		{path: "no_extension", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := MimeForPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFileReadsPlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("plain resume"), 0o644))

	got, err := File(path)
	require.NoError(t, err)
	assert.Equal(t, "plain resume", got)

	_, err = File(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestListResumesOrdersByLeadingNumber(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"10_jane.docx", "2_john.docx", "1_amy.docx",
		"zack.docx", "notes.txt", "skip.png",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "33_subdir"), 0o755))

	paths, err := ListResumes(dir)
	require.NoError(t, err)

	var names []string
	for _, p := range paths {
		names = append(names, filepath.Base(p))
	}
	assert.Equal(t, []string{
		"1_amy.docx", "2_john.docx", "10_jane.docx",
		"notes.txt", "zack.docx",
	}, names, "numbered first in numeric order, the rest by name, unsupported types dropped")
}
