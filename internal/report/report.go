// Package report renders the printable quote report for a procedure
// simulation and exports it as a ZIP bundle alongside the source images.
package report

import (
	"archive/zip"
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"os"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/mbarros/glowup-cli/internal/catalog"
	"github.com/mbarros/glowup-cli/internal/lineage"
)

//go:embed templates/quote.html.tmpl
var templateFS embed.FS

var quoteTmpl = template.Must(template.ParseFS(templateFS, "templates/quote.html.tmpl"))

// zipMethodZstd is the ZIP compression method ID for Zstandard (APPNOTE 6.3.7).
const zipMethodZstd uint16 = 93

func init() {
	zip.RegisterCompressor(zipMethodZstd, func(w io.Writer) (io.WriteCloser, error) {
		return zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	})
}

// Quote carries everything the report needs: the simulated procedure, the
// before and after images, and the model's description of the result.
type Quote struct {
	Procedure   catalog.Procedure
	Before      *lineage.Asset
	After       *lineage.Asset
	Description string
	GeneratedAt time.Time
}

type quoteView struct {
	Procedure   catalog.Procedure
	BeforeURL   template.URL
	AfterURL    template.URL
	Description string
	Price       string
	Date        string
}

// RenderHTML produces the standalone report page. Images are inlined as
// data URLs so the file has no external references.
func RenderHTML(q Quote) ([]byte, error) {
	if q.Before == nil || q.After == nil {
		return nil, fmt.Errorf("quote report needs both images")
	}

	when := q.GeneratedAt
	if when.IsZero() {
		when = time.Now()
	}

	var buf bytes.Buffer
	err := quoteTmpl.Execute(&buf, quoteView{
		Procedure:   q.Procedure,
		BeforeURL:   dataURL(q.Before),
		AfterURL:    dataURL(q.After),
		Description: q.Description,
		Price:       catalog.FormatPrice(q.Procedure.Price),
		Date:        when.Format("02/01/2006"),
	})
	if err != nil {
		return nil, fmt.Errorf("render quote report: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportBundle writes a ZIP at path containing the rendered report plus
// the before and after images as separate entries. Entries use Zstandard
// compression.
func ExportBundle(q Quote, path string) error {
	html, err := RenderHTML(q)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create bundle: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)

	entries := []struct {
		name string
		data []byte
	}{
		{"relatorio.html", html},
		{"antes" + q.Before.Ext(), q.Before.Data},
		{"resultado-simulado" + q.After.Ext(), q.After.Data},
	}
	for _, e := range entries {
		header := &zip.FileHeader{
			Name:     e.name,
			Method:   zipMethodZstd,
			Modified: time.Now(),
		}
		w, err := zw.CreateHeader(header)
		if err != nil {
			zw.Close()
			return fmt.Errorf("create ZIP entry for %s: %w", e.name, err)
		}
		if _, err := w.Write(e.data); err != nil {
			zw.Close()
			return fmt.Errorf("write ZIP entry for %s: %w", e.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("close ZIP writer: %w", err)
	}
	return nil
}

func dataURL(a *lineage.Asset) template.URL {
	return template.URL("data:" + a.MIMEType + ";base64," + base64.StdEncoding.EncodeToString(a.Data))
}
