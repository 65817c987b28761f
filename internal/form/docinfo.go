package form

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// DocumentDetails holds lightweight facts about a document buffer,
// independent of its form content.
type DocumentDetails struct {
	Pages int   `json:"pages"`
	Size  int64 `json:"size"`
}

// DocumentInfo probes a PDF buffer for page count and size. It is a
// diagnostic helper for the surfaces around the engine; the parse
// pipeline itself never depends on it.
func DocumentInfo(buf []byte) (*DocumentDetails, error) {
	reader, err := pdf.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}
	return &DocumentDetails{
		Pages: reader.NumPage(),
		Size:  int64(len(buf)),
	}, nil
}
