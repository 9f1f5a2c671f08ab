package services

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// TextExtractor converts an uploaded document into plain text.
type TextExtractor interface {
	Extract(data []byte, filename string) (string, error)
	SupportedExtension(filename string) bool
}

type textExtractor struct{}

func NewTextExtractor() TextExtractor {
	return &textExtractor{}
}

func (e *textExtractor) SupportedExtension(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".doc":
		return true
	}
	return false
}

// Extract returns the document's text in reading order. The same bytes
// always produce the same text.
func (e *textExtractor) Extract(data []byte, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !e.SupportedExtension(filename) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}

	if len(data) == 0 {
		return "", ErrEmptyDocument
	}

	var (
		text string
		err  error
	)
	switch ext {
	case ".pdf":
		text, err = extractPDFText(data)
	default:
		text, err = extractDocxText(data)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrUnreadableDocument
	}

	return text, nil
}

func extractPDFText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentDecode, err)
	}

	var textBuilder strings.Builder
	totalPage := reader.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page without a text layer contributes nothing.
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}

		textBuilder.WriteString(text)
		textBuilder.WriteString("\n")
	}

	return textBuilder.String(), nil
}

func extractDocxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDocumentDecode, err)
	}
	defer doc.Close()

	paragraphs := paragraphTexts(doc.Editable().GetContent())
	return strings.Join(paragraphs, "\n"), nil
}

// paragraphTexts walks the WordprocessingML body and collects the text of
// every top-level paragraph whose trimmed content is non-empty. Tables and
// embedded objects are skipped.
func paragraphTexts(content string) []string {
	decoder := xml.NewDecoder(strings.NewReader(content))
	decoder.Strict = false

	var (
		paragraphs []string
		current    strings.Builder
		inPara     bool
		inText     bool
		tableDepth int
	)

	for {
		token, err := decoder.Token()
		if err != nil {
			break
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "tbl":
				tableDepth++
			case "p":
				if tableDepth == 0 {
					inPara = true
					current.Reset()
				}
			case "t":
				inText = inPara
			case "tab":
				if inPara {
					current.WriteString("\t")
				}
			case "br", "cr":
				if inPara {
					current.WriteString("\n")
				}
			}
		case xml.CharData:
			if inText {
				current.Write(t)
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "tbl":
				if tableDepth > 0 {
					tableDepth--
				}
			case "t":
				inText = false
			case "p":
				if inPara {
					if text := strings.TrimSpace(current.String()); text != "" {
						paragraphs = append(paragraphs, text)
					}
					inPara = false
				}
			}
		}
	}

	return paragraphs
}
