package report

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/types"
	"github.com/ulisses177/Descritor-de-imagens-de-documentos/utils"
)

const htmlReportTemplate = `<!DOCTYPE html>
<html>
<head>
    <title>Relatório de Imagens - {{.DocumentID}}</title>
    <style>
        body {
            font-family: Arial, sans-serif;
            margin: 20px;
            background-color: #f5f5f5;
        }
        .header {
            background-color: #333;
            color: white;
            padding: 20px;
            margin-bottom: 20px;
            border-radius: 5px;
        }
        .image-container {
            background-color: white;
            padding: 20px;
            margin-bottom: 20px;
            border-radius: 5px;
            box-shadow: 0 2px 4px rgba(0,0,0,0.1);
        }
        .image-row {
            display: flex;
            margin-bottom: 20px;
        }
        .image-col {
            flex: 1;
            padding: 10px;
        }
        .description-col {
            flex: 2;
            padding: 10px;
        }
        img {
            max-width: 100%;
            height: auto;
            border: 1px solid #ddd;
            border-radius: 4px;
        }
        .description {
            background-color: #f9f9f9;
            padding: 15px;
            border-radius: 4px;
        }
    </style>
</head>
<body>
    <div class="header">
        <h1>Relatório de Imagens - {{.DocumentID}}</h1>
    </div>

    <div class="image-container">
    {{range .Rows}}
        <div class="image-row">
            <div class="image-col">
                <img src="{{.Path}}" alt="{{.Name}}">
                <p><strong>{{.Name}}</strong></p>
            </div>
            <div class="description-col">
                <div class="description">
                    <p>{{.Description}}</p>
                </div>
            </div>
        </div>
    {{end}}
    </div>
</body>
</html>
`

var htmlTemplate = template.Must(template.New("report").Parse(htmlReportTemplate))

type htmlRow struct {
	Name        string
	Path        string
	Description string
}

type htmlData struct {
	DocumentID string
	Rows       []htmlRow
}

// WriteHTML renders a styled standalone report to <docDir>/report.html with
// one row per image, in document order, referencing images by relative path.
func WriteHTML(result *types.DocumentResult, docDir string) error {
	if err := utils.EnsureDir(docDir); err != nil {
		return err
	}

	data := htmlData{
		DocumentID: result.DocumentID,
		Rows:       make([]htmlRow, 0, len(result.Images)),
	}
	for _, img := range result.Images {
		data.Rows = append(data.Rows, htmlRow{
			Name:        img.Name,
			Path:        relativePath(img.Path, docDir),
			Description: img.Description.Render(),
		})
	}

	path := filepath.Join(docDir, "report.html")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := htmlTemplate.Execute(f, data); err != nil {
		return fmt.Errorf("rendering HTML report: %w", err)
	}

	logrus.WithField("path", path).Info("HTML report generated")
	return nil
}
