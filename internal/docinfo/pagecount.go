package docinfo

import (
	"bytes"

	"github.com/ledongthuc/pdf"
)

// PageCount reports the number of pages in a PDF upload. Best effort: any
// file the PDF reader cannot open counts as 0 pages. Used only as archive
// annotation, never to reject an upload.
func PageCount(data []byte) int {
	if len(data) == 0 {
		return 0
	}

	reader := bytes.NewReader(data)

	pdfReader, err := pdf.NewReader(reader, int64(len(data)))
	if err != nil {
		return 0
	}

	return pdfReader.NumPage()
}

// IsPDF reports whether an upload declares itself as a PDF.
func IsPDF(contentType string) bool {
	return contentType == "application/pdf"
}
