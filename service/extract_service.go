package service

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/sirupsen/logrus"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
)

var (
	// Scheme-prefixed tokens (http://..., ftp://...) are stripped whole.
	urlPattern        = regexp.MustCompile(`[a-zA-Z][a-zA-Z0-9+.\-]*://\S+`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// ExtractService pulls raw text and raw image bytes with their page
// placements out of a PDF file.
type ExtractService struct{}

func NewExtractService() *ExtractService {
	return &ExtractService{}
}

// ExtractText concatenates the plain text of every page in page order and
// normalizes the result. Pages that fail to extract are skipped with a
// warning; they do not abort the document.
func (s *ExtractService) ExtractText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	var sb strings.Builder
	totalPages := reader.NumPage()
	for i := 1; i <= totalPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"file": path,
				"page": i,
			}).Warnf("failed to extract page text: %v", err)
			continue
		}
		sb.WriteString(text)
		sb.WriteString(" ")
	}

	return NormalizeText(sb.String()), nil
}

// NormalizeText strips URL-like tokens and collapses whitespace runs to a
// single space.
func NormalizeText(text string) string {
	text = urlPattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// ExtractImages resolves every embedded image of the document to raw bytes
// plus its page index and vertical position. A single image failing to
// decode is logged and skipped; the rest of the document is still processed.
func (s *ExtractService) ExtractImages(path string) ([]types.ImageRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening PDF: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()

	dims, err := api.PageDims(f, conf)
	if err != nil {
		return nil, fmt.Errorf("reading page dimensions: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding PDF: %w", err)
	}
	pageImages, err := api.ExtractImagesRaw(f, nil, conf)
	if err != nil {
		return nil, fmt.Errorf("extracting images: %w", err)
	}

	var records []types.ImageRecord
	for _, byObjNr := range pageImages {
		images := sortedImages(byObjNr)
		if len(images) == 0 {
			continue
		}
		pageNr := images[0].PageNr

		pageHeight := 0.0
		if pageNr-1 < len(dims) {
			pageHeight = dims[pageNr-1].Height
		}
		placements := s.pagePlacements(f, conf, path, pageNr)

		for idx, img := range images {
			data, err := io.ReadAll(img)
			if err != nil || len(data) == 0 {
				logrus.WithFields(logrus.Fields{
					"file": path,
					"page": pageNr,
				}).Errorf("failed to read image bytes: %v", err)
				continue
			}

			// Match the image's resource name against the placements found
			// in the page content stream; unplaced images sort first.
			y := 0.0
			if pl, ok := placements[img.Name]; ok {
				y = pageHeight - pl.ty - pl.height
				if y < 0 {
					y = 0
				}
			}

			records = append(records, types.ImageRecord{
				Name: fmt.Sprintf("image_%d_%d.%s", pageNr, idx+1, img.FileType),
				Data: data,
				Ext:  img.FileType,
				Page: pageNr - 1,
				Y:    y,
			})
		}
	}

	return records, nil
}

// sortedImages flattens one page's object-number map into a deterministic
// slice, ordered by object number.
func sortedImages(byObjNr map[int]model.Image) []model.Image {
	objNrs := make([]int, 0, len(byObjNr))
	for objNr := range byObjNr {
		objNrs = append(objNrs, objNr)
	}
	sort.Ints(objNrs)

	images := make([]model.Image, 0, len(objNrs))
	for _, objNr := range objNrs {
		images = append(images, byObjNr[objNr])
	}
	return images
}

// pagePlacements decodes one page's content stream and maps XObject resource
// names to their placement. Failures yield an empty map, which makes every
// image on the page fall back to position 0.
func (s *ExtractService) pagePlacements(f *os.File, conf *model.Configuration, path string, pageNr int) map[string]placement {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return map[string]placement{}
	}
	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file": path,
			"page": pageNr,
		}).Warnf("failed to extract page content: %v", err)
		return map[string]placement{}
	}
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file": path,
			"page": pageNr,
		}).Warnf("failed to extract page content: %v", err)
		return map[string]placement{}
	}
	stream, err := io.ReadAll(r)
	if err != nil {
		return map[string]placement{}
	}
	return parsePlacements(stream)
}

// placement is where a drawn XObject landed on its page: ty is the vertical
// translation of the transformation matrix in effect, height its vertical
// scale (the displayed image height).
type placement struct {
	ty     float64
	height float64
}

// parsePlacements scans a decoded content stream for "a b c d e f cm"
// operators followed by "/Name Do" draws, recording the matrix in effect for
// each drawn XObject name. The first placement of a name wins.
func parsePlacements(stream []byte) map[string]placement {
	fields := strings.Fields(string(stream))
	placements := make(map[string]placement)

	var current placement
	haveMatrix := false

	for i, tok := range fields {
		switch tok {
		case "cm":
			if i < 6 {
				continue
			}
			ty, errTy := strconv.ParseFloat(fields[i-1], 64)
			height, errH := strconv.ParseFloat(fields[i-3], 64)
			if errTy != nil || errH != nil {
				continue
			}
			current = placement{ty: ty, height: height}
			haveMatrix = true
		case "Do":
			if i < 1 || !haveMatrix {
				continue
			}
			name, ok := strings.CutPrefix(fields[i-1], "/")
			if !ok {
				continue
			}
			if _, seen := placements[name]; !seen {
				placements[name] = current
			}
		}
	}
	return placements
}
