package ingest

import (
	"archive/zip"
	"bytes"
	"testing"
)

func TestExtractTXT(t *testing.T) {
	doc, err := Extract("notes.txt", []byte("hello   world\n\n  second line \n"))
	if err != nil {
		t.Fatalf("extract txt: %v", err)
	}
	if doc.Title != "notes" {
		t.Fatalf("expected title %q, got %q", "notes", doc.Title)
	}
	if doc.Text != "hello world\nsecond line" {
		t.Fatalf("unexpected normalized text: %q", doc.Text)
	}
}

func TestExtractDOCX(t *testing.T) {
	raw := buildDOCX(t, `<w:document><w:body><w:p><w:r><w:t>Chapter 1</w:t></w:r></w:p><w:p><w:r><w:t>Hello world.</w:t></w:r></w:p></w:body></w:document>`)
	doc, err := Extract("sample.docx", raw)
	if err != nil {
		t.Fatalf("extract docx: %v", err)
	}
	if doc.Text != "Chapter 1\nHello world." {
		t.Fatalf("unexpected text: %q", doc.Text)
	}
}

func TestExtractDOCXMissingDocumentXML(t *testing.T) {
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	if _, err := Extract("empty.docx", b.Bytes()); err == nil {
		t.Fatal("expected error for docx without document.xml")
	}
}

func TestExtractUnsupported(t *testing.T) {
	if _, err := Extract("image.png", []byte{1, 2, 3}); err == nil {
		t.Fatal("expected unsupported file type error")
	}
}

func TestSupportedExt(t *testing.T) {
	for _, ext := range []string{".txt", ".docx", ".pdf", ".TXT"} {
		if !SupportedExt(ext) {
			t.Fatalf("expected %s to be supported", ext)
		}
	}
	if SupportedExt(".png") {
		t.Fatal("expected .png to be unsupported")
	}
}

func buildDOCX(t *testing.T, bodyXML string) []byte {
	t.Helper()
	var b bytes.Buffer
	zw := zip.NewWriter(&b)
	f, err := zw.Create("word/document.xml")
	if err != nil {
		t.Fatalf("create zip entry: %v", err)
	}
	xml := `<?xml version="1.0" encoding="UTF-8"?>` + bodyXML
	if _, err := f.Write([]byte(xml)); err != nil {
		t.Fatalf("write xml: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return b.Bytes()
}
