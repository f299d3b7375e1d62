/*
Copyright © 2025 ulisses177
*/
package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/utils"
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Process every PDF in the docs directory",
	Long: `Scans the configured docs directory for .pdf files and runs the image
description pipeline on each one, writing results.json and report.html plus
the extracted images under the output directory. Documents that fail are
logged and skipped; the batch keeps going.`,
	Run: func(cmd *cobra.Command, args []string) {
		pipeline, cfg := loadPipeline(cmd)

		files, err := utils.ListPDFs(cfg.DocsDir)
		if err != nil {
			logrus.Fatalf("Failed to read docs directory: %v", err)
		}
		if len(files) == 0 {
			logrus.Infof("No PDF files found in %s", cfg.DocsDir)
			return
		}

		for _, path := range files {
			logrus.WithField("file", path).Info("processing document")
			if _, err := pipeline.ProcessDocument(context.Background(), path); err != nil {
				logrus.WithField("file", path).Errorf("failed to process document: %v", err)
			}
		}

		logrus.Info("batch processing complete")
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringP("docs", "d", "", "Directory containing the PDF files (overrides DOCS_DIR)")
	batchCmd.Flags().StringP("output", "o", "", "Output root directory (overrides OUTPUT_DIR)")
}
