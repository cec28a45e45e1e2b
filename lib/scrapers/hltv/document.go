package hltv

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"
)

// ParseDocument decodes r to utf-8 according to its content type (falling
// back to sniffing the document) and parses it. an empty body is an empty
// document.
func ParseDocument(r io.Reader, contentType string) (*goquery.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read: %w", ErrMalformedDocument, err)
	}

	enc, _, _ := charset.DetermineEncoding(data, contentType)
	decoded, err := enc.NewDecoder().Bytes(data)
	if err != nil {
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%w: decode: %w", ErrMalformedDocument, err)
		}
		decoded = data
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(decoded))
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrMalformedDocument, err)
	}
	return doc, nil
}
