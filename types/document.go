package types

import "sort"

// DescriptionUnavailable is rendered in place of a description whenever the
// model call for an image failed.
const DescriptionUnavailable = "Erro na geração da descrição"

// DescriptionResult is the outcome of a single description call. A failed
// call keeps its reason for logging but renders as a fixed sentinel so one
// bad image never aborts a batch.
type DescriptionResult struct {
	Text string `json:"text,omitempty"`
	Err  string `json:"error,omitempty"`
}

// Ok wraps a successful description.
func Ok(text string) DescriptionResult {
	return DescriptionResult{Text: text}
}

// Failed records why a description call did not produce text.
func Failed(reason string) DescriptionResult {
	return DescriptionResult{Err: reason}
}

func (r DescriptionResult) Failed() bool {
	return r.Err != ""
}

// Render returns the description text, or the sentinel for failed calls.
func (r DescriptionResult) Render() string {
	if r.Failed() {
		return DescriptionUnavailable
	}
	return r.Text
}

// ImageRecord is one image pulled out of a document. Page is 0-based; Y is
// the vertical offset from the top of the page (0 when the placement could
// not be resolved). Name and Path are filled in when the image is saved.
type ImageRecord struct {
	Name        string            // image_{page}_{index}.{ext}
	Data        []byte            // raw image bytes
	Ext         string            // encoding extension (png, jpg, ...)
	Page        int               // 0-based page index
	Y           float64           // vertical position on the page, from the top
	Path        string            // where the image file was written
	Description DescriptionResult // attached once, after the describe call
}

// DocumentResult is the finalized per-document bundle handed to the
// reporters. Images are ordered non-decreasing by (Page, Y).
type DocumentResult struct {
	DocumentID string        `json:"document_id"`
	Images     []ImageRecord `json:"descriptions"`
}

// SortImages orders records by page index, then vertical position. The sort
// is stable so identical placements keep their extraction order.
func SortImages(records []ImageRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Page != records[j].Page {
			return records[i].Page < records[j].Page
		}
		return records[i].Y < records[j].Y
	})
}
