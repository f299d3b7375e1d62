/*
Copyright © 2025 ulisses177
*/
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/config"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/service"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "descritor",
	Short: "Extracts images and text from PDFs and describes them with a multimodal model",
	Long: `Descritor de imagens de documentos.

Extracts the images and text of PDF documents, asks a multimodal language
model for a description of each image, and assembles the results into JSON,
HTML, CSV and Markdown artifacts.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

// loadPipeline builds the full pipeline from configuration, applying the
// shared flag overrides. Configuration errors are fatal by design.
func loadPipeline(cmd *cobra.Command) (*service.PipelineService, *config.Config) {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Invalid configuration: %v", err)
	}

	if docs, _ := cmd.Flags().GetString("docs"); docs != "" {
		cfg.DocsDir = docs
	}
	if output, _ := cmd.Flags().GetString("output"); output != "" {
		cfg.OutputDir = output
	}

	ai, err := service.NewAIService(cfg)
	if err != nil {
		logrus.Fatalf("Failed to create AI client: %v", err)
	}

	pipeline := service.NewPipelineService(
		service.NewExtractService(),
		service.NewChunkService(service.WordTokenizer{}, cfg.MaxChunkTokens),
		service.NewDescribeService(ai),
		cfg.OutputDir,
	)
	return pipeline, cfg
}
