package services

import (
	"bytes"
	"log"
	"regexp"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/yuin/goldmark"
)

type ExportServiceInterface interface {
	MarkdownBytes(md string) []byte
	// PDFBytes renders the plan as a PDF. On any render failure it falls
	// back to the raw markdown bytes so the caller always has something to
	// deliver; the second return value reports whether a real PDF was made.
	PDFBytes(title, md string) ([]byte, bool)
	HTML(md string) (string, error)
}

type ExportService struct {
	markdown goldmark.Markdown
}

func NewExportService() ExportServiceInterface {
	return &ExportService{markdown: goldmark.New()}
}

func (e *ExportService) MarkdownBytes(md string) []byte {
	return []byte(md)
}

var markdownPunctRe = regexp.MustCompile("[#_*`>]+")

func (e *ExportService) PDFBytes(title, md string) ([]byte, bool) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	text := markdownPunctRe.ReplaceAllString(md, "")
	for _, paragraph := range strings.Split(text, "\n\n") {
		paragraph = strings.TrimSpace(paragraph)
		if paragraph == "" {
			continue
		}
		pdf.MultiCell(0, 6, paragraph, "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		log.Printf("[WARN] pdf rendering failed, delivering raw markdown: %v", err)
		return []byte(md), false
	}
	return buf.Bytes(), true
}

func (e *ExportService) HTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := e.markdown.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
