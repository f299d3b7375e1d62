package service

import (
	"context"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/report"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/utils"
)

// Extractor is what the pipeline needs from the document extraction layer.
type Extractor interface {
	ExtractText(path string) (string, error)
	ExtractImages(path string) ([]types.ImageRecord, error)
}

// PipelineService drives a document from extraction through description to
// the written artifacts. Everything runs strictly sequentially; external
// call failures stay isolated to their own chunk or image.
type PipelineService struct {
	extract   Extractor
	chunker   *ChunkService
	describer *DescribeService
	outputDir string
}

func NewPipelineService(extract Extractor, chunker *ChunkService, describer *DescribeService, outputDir string) *PipelineService {
	return &PipelineService{
		extract:   extract,
		chunker:   chunker,
		describer: describer,
		outputDir: outputDir,
	}
}

// ProcessDocument runs the batch variant: extract images, describe each one
// without text context, write results.json and report.html. A document with
// zero images is a valid terminal outcome; no artifacts are produced and a
// nil result is returned.
func (p *PipelineService) ProcessDocument(ctx context.Context, pdfPath string) (*types.DocumentResult, error) {
	docID := utils.GetFileNameWithoutExt(pdfPath)
	log := logrus.WithField("document", docID)

	records, err := p.extract.ExtractImages(pdfPath)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		log.Info("no images found in document")
		return nil, nil
	}

	types.SortImages(records)
	records = p.saveImages(docID, records)
	if len(records) == 0 {
		log.Info("no images could be saved for document")
		return nil, nil
	}

	for i := range records {
		records[i].Description = p.describer.DescribeImage(ctx, records[i])
		log.WithField("image", records[i].Name).Info("image processed")
	}

	result := &types.DocumentResult{
		DocumentID: docID,
		Images:     records,
	}

	docDir := filepath.Join(p.outputDir, docID)
	if err := report.WriteJSON(result, docDir); err != nil {
		return nil, err
	}
	if err := report.WriteHTML(result, docDir); err != nil {
		return nil, err
	}

	log.Info("document processing complete")
	return result, nil
}

// ProcessTutorial runs the tutorial variant: chunk the document text,
// regenerate the tutorial after each chunk from the whole accumulated
// context, then describe the sorted images with that context and write the
// CSV and Markdown artifacts.
func (p *PipelineService) ProcessTutorial(ctx context.Context, pdfPath, csvPath, markdownPath string) error {
	docID := utils.GetFileNameWithoutExt(pdfPath)
	log := logrus.WithField("document", docID)

	text, err := p.extract.ExtractText(pdfPath)
	if err != nil {
		return err
	}
	log.Info("text extracted")

	chunks := p.chunker.SplitIntoChunks(text)
	log.WithField("chunks", len(chunks)).Info("text chunked")

	accumulated := ""
	tutorial := ""
	for i, chunk := range chunks {
		if accumulated != "" {
			accumulated += " "
		}
		accumulated += chunk

		// Each iteration regenerates the whole tutorial from everything
		// accumulated so far; a failed call keeps the previous text.
		updated, err := p.describer.GenerateTutorial(ctx, accumulated)
		if err != nil {
			log.WithField("chunk", i+1).Errorf("tutorial generation failed, keeping previous text: %v", err)
			continue
		}
		tutorial = updated
		log.WithField("chunk", i+1).Info("tutorial updated")
	}

	records, err := p.extract.ExtractImages(pdfPath)
	if err != nil {
		return err
	}
	types.SortImages(records)
	records = p.saveImages(docID, records)

	for i := range records {
		records[i].Description = p.describer.DescribeImageWithContext(ctx, records[i], accumulated)
		log.WithField("image", records[i].Name).Info("image processed")
	}

	if err := report.WriteCSV(records, csvPath); err != nil {
		return err
	}
	if err := report.WriteMarkdown(text, records, tutorial, markdownPath); err != nil {
		return err
	}

	log.Info("document processing complete")
	return nil
}

// saveImages writes each record's bytes under <output>/<doc>/images and
// fills in Path. Records that cannot be written are dropped, not fatal.
func (p *PipelineService) saveImages(docID string, records []types.ImageRecord) []types.ImageRecord {
	imageDir := filepath.Join(p.outputDir, docID, "images")
	if err := utils.EnsureDir(imageDir); err != nil {
		logrus.WithField("document", docID).Errorf("failed to create image directory: %v", err)
		return nil
	}

	saved := make([]types.ImageRecord, 0, len(records))
	for _, rec := range records {
		path := filepath.Join(imageDir, rec.Name)
		if err := os.WriteFile(path, rec.Data, 0644); err != nil {
			logrus.WithFields(logrus.Fields{
				"document": docID,
				"image":    rec.Name,
				"page":     rec.Page + 1,
			}).Errorf("failed to save image: %v", err)
			continue
		}
		rec.Path = path
		saved = append(saved, rec)
	}
	return saved
}
