package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/bornholm/brief/internal/core/port"
	"github.com/pkg/errors"
)

const (
	contentTypesPart = "[Content_Types].xml"
	rootRelsPart     = "_rels/.rels"
	documentPart     = "word/document.xml"
	documentRelsPart = "word/_rels/document.xml.rels"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
<Default Extension="xml" ContentType="application/xml"/>
<Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const rootRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`

const documentTemplate = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<w:body>%s<w:sectPr/></w:body>
</w:document>`

func TestTextExtractor(t *testing.T) {
	type testCase struct {
		Name         string
		Body         string
		ExpectedText string
	}

	testCases := []testCase{
		{
			Name:         "paragraphs with empty line",
			Body:         `<w:p><w:r><w:t>A</w:t></w:r></w:p><w:p/><w:p><w:r><w:t>B</w:t></w:r></w:p>`,
			ExpectedText: "A\n\nB",
		},
		{
			Name:         "multiple runs",
			Body:         `<w:p><w:r><w:t xml:space="preserve">Hello </w:t></w:r><w:r><w:rPr><w:b/></w:rPr><w:t>world</w:t></w:r></w:p>`,
			ExpectedText: "Hello world",
		},
		{
			Name:         "tabs and breaks",
			Body:         `<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p>`,
			ExpectedText: "a\tb\nc",
		},
		{
			Name:         "text wrapping break",
			Body:         `<w:p><w:r><w:t>a</w:t><w:br w:type="textWrapping"/><w:t>b</w:t></w:r></w:p>`,
			ExpectedText: "a\nb",
		},
		{
			Name:         "page and column breaks carry no text",
			Body:         `<w:p><w:r><w:t>a</w:t><w:br w:type="page"/><w:t>b</w:t><w:br w:type="column"/><w:t>c</w:t></w:r></w:p>`,
			ExpectedText: "abc",
		},
		{
			Name:         "tables ignored",
			Body:         `<w:p><w:r><w:t>before</w:t></w:r></w:p><w:tbl><w:tr><w:tc><w:p><w:r><w:t>cell</w:t></w:r></w:p></w:tc></w:tr></w:tbl><w:p><w:r><w:t>after</w:t></w:r></w:p>`,
			ExpectedText: "before\nafter",
		},
		{
			Name:         "deleted text ignored",
			Body:         `<w:p><w:del><w:r><w:delText>old</w:delText></w:r></w:del><w:r><w:t>new</w:t></w:r></w:p>`,
			ExpectedText: "new",
		},
		{
			Name:         "empty body",
			Body:         ``,
			ExpectedText: "",
		},
	}

	extractor := NewTextExtractor()

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			data := generateDocx(t, tc.Body)

			text, err := extractor.Extract(context.Background(), "letter.docx", bytes.NewReader(data))
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			if e, g := tc.ExpectedText, text; e != g {
				t.Errorf("expected '%q', got '%q'", e, g)
			}
		})
	}
}

func TestTextExtractorUnreadable(t *testing.T) {
	extractor := NewTextExtractor()

	t.Run("not a zip archive", func(t *testing.T) {
		_, err := extractor.Extract(context.Background(), "letter.docx", bytes.NewReader([]byte("not a docx")))
		if !errors.Is(err, port.ErrUnreadable) {
			t.Errorf("expected error '%v', got '%v'", port.ErrUnreadable, err)
		}
	})

	t.Run("missing main part", func(t *testing.T) {
		data := generateArchive(t, map[string]string{
			contentTypesPart: contentTypes,
			rootRelsPart:     rootRels,
		})

		_, err := extractor.Extract(context.Background(), "letter.docx", bytes.NewReader(data))
		if !errors.Is(err, port.ErrUnreadable) {
			t.Errorf("expected error '%v', got '%v'", port.ErrUnreadable, err)
		}
	})

	t.Run("malformed xml", func(t *testing.T) {
		data := generateDocxPart(t, `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body><w:p>`)

		_, err := extractor.Extract(context.Background(), "letter.docx", bytes.NewReader(data))
		if !errors.Is(err, port.ErrUnreadable) {
			t.Errorf("expected error '%v', got '%v'", port.ErrUnreadable, err)
		}
	})
}

func generateDocx(t *testing.T, body string) []byte {
	return generateDocxPart(t, fmt.Sprintf(documentTemplate, body))
}

func generateDocxPart(t *testing.T, document string) []byte {
	return generateArchive(t, map[string]string{
		contentTypesPart: contentTypes,
		rootRelsPart:     rootRels,
		documentPart:     document,
		documentRelsPart: documentRels,
	})
}

func generateArchive(t *testing.T, files map[string]string) []byte {
	var buf bytes.Buffer

	archive := zip.NewWriter(&buf)

	for name, content := range files {
		writer, err := archive.Create(name)
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if _, err := writer.Write([]byte(content)); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}
	}

	if err := archive.Close(); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	return buf.Bytes()
}
