/*
Copyright © 2025 ulisses177
*/
package cmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Process a single PDF into a tutorial with described images",
	Long: `Runs the tutorial pipeline on one PDF: the document text is chunked and a
tutorial is iteratively regenerated over the accumulated context, then every
image is described using that context. Writes a CSV of descriptions and a
final Markdown document.`,
	Run: func(cmd *cobra.Command, args []string) {
		pipeline, _ := loadPipeline(cmd)

		file, _ := cmd.Flags().GetString("file")
		if file == "" {
			logrus.Fatal("--file is required")
		}
		csvPath, _ := cmd.Flags().GetString("csv")
		mdPath, _ := cmd.Flags().GetString("markdown")

		if err := pipeline.ProcessTutorial(context.Background(), file, csvPath, mdPath); err != nil {
			logrus.Fatalf("Failed to process document: %v", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringP("file", "f", "", "Path to the PDF file to process")
	processCmd.Flags().String("csv", "descricao_imagens.csv", "Path for the image description CSV")
	processCmd.Flags().String("markdown", "documento_final.md", "Path for the final Markdown document")
	processCmd.Flags().StringP("docs", "d", "", "Directory containing the PDF files (overrides DOCS_DIR)")
	processCmd.Flags().StringP("output", "o", "", "Output root directory for extracted images (overrides OUTPUT_DIR)")
}
