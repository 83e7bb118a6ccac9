// Package extract turns resume and job description documents into plain text.
package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

const (
	MimePlain = "text/plain"
	MimePDF   = "application/pdf"
	MimeDocx  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Text extracts plain text from a document by MIME type.
func Text(mime string, data []byte) (string, error) {
	switch mime {
	case MimePlain:
		return string(data), nil

	case MimePDF:
		return pdfText(data)

	case MimeDocx:
		return docxText(data)

	default:
		return "", fmt.Errorf("unsupported file type: %s", mime)
	}
}

// File reads a local document and extracts its text, picking the MIME type
// from the file extension.
func File(path string) (string, error) {
	mime, err := MimeForPath(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Text(mime, data)
}

func MimeForPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".md":
		return MimePlain, nil
	case ".pdf":
		return MimePDF, nil
	case ".docx":
		return MimeDocx, nil
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// ListResumes returns the resume files in dir ordered by the number their
// name starts with ("2_john.docx" before "10_jane.docx"). Files without a
// leading number sort after the numbered ones, by name. Only supported
// document types are returned.
func ListResumes(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, err := MimeForPath(e.Name()); err != nil {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}

	sort.Slice(paths, func(i, j int) bool {
		ni, oki := leadingNumber(filepath.Base(paths[i]))
		nj, okj := leadingNumber(filepath.Base(paths[j]))
		switch {
		case oki && okj && ni != nj:
			return ni < nj
		case oki != okj:
			return oki
		default:
			return paths[i] < paths[j]
		}
	})
	return paths, nil
}

func leadingNumber(name string) (int, bool) {
	i := 0
	for i < len(name) && name[i] >= '0' && name[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, false
	}
	n := 0
	for _, c := range name[:i] {
		n = n*10 + int(c-'0')
	}
	return n, true
}

func pdfText(data []byte) (string, error) {
	pdfReader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to read pdf: %w", err)
	}
	var textBuilder strings.Builder
	numPages := pdfReader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := pdfReader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, _ := page.GetPlainText(nil)
		textBuilder.WriteString(text)
	}
	return textBuilder.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("failed to parse docx: %w", err)
	}
	defer doc.Close()

	return doc.Editable().GetContent(), nil
}
