package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mbarros/glowup-cli/internal/catalog"
	"github.com/mbarros/glowup-cli/internal/cli"
	"github.com/mbarros/glowup-cli/internal/config"
	"github.com/mbarros/glowup-cli/internal/filehandler"
	"github.com/mbarros/glowup-cli/internal/gemini"
	"github.com/mbarros/glowup-cli/internal/logging"
	"github.com/mbarros/glowup-cli/internal/report"
)

// CLI flags
var (
	imageFlag     string
	procedureFlag string
	outputFlag    string
	bundleFlag    bool
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "aesthetix",
	Short: "Aesthetic procedure simulation on patient photos",
	Long: `Aesthetix simulates cosmetic, skincare, and dental procedures on a
patient photo using AI image editing, then produces a before/after quote
report with the reference price.

Examples:
  aesthetix list
  aesthetix simulate -i paciente.jpg -p Rinoplastia
  aesthetix simulate -i foto.png -p "Sorriso Hollywood" --bundle`,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the available procedures and reference prices",
	Run:   runList,
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate one procedure on a photo and write the quote report",
	Run:   runSimulate,
}

func init() {
	simulateCmd.Flags().StringVarP(&imageFlag, "image", "i", "", "Patient photo (jpg, png, gif, webp, heic)")
	simulateCmd.Flags().StringVarP(&procedureFlag, "procedure", "p", "", "Exact procedure name as shown by 'aesthetix list'")
	simulateCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for results (default: GLOWUP_OUTPUT_DIR or ./glowup-output)")
	simulateCmd.Flags().BoolVar(&bundleFlag, "bundle", false, "Also export a ZIP bundle with the report and both images")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(simulateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runList(cmd *cobra.Command, args []string) {
	logging.Init()

	sections := []struct {
		label string
		kind  catalog.Kind
	}{
		{"Procedimentos Cirúrgicos e Injetáveis", catalog.KindProcedure},
		{"Tratamentos de Pele", catalog.KindSkincare},
		{"Procedimentos Odontológicos", catalog.KindDental},
	}

	for _, section := range sections {
		fmt.Printf("\n%s\n", section.label)
		for _, p := range catalog.ByKind(section.kind) {
			fmt.Printf("  %-28s A partir de %s\n", p.Name, catalog.FormatPrice(p.Price))
		}
	}
	fmt.Println()
}

func runSimulate(cmd *cobra.Command, args []string) {
	logging.Init()
	cfg := config.Load()

	outputDir := outputFlag
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	name := procedureFlag
	if name == "" {
		name = cli.ReadLine("Procedimento", "")
	}
	proc, ok := catalog.ByName(name)
	if !ok {
		log.Fatal().Str("procedure", name).Msg("Unknown procedure, see 'aesthetix list'")
	}

	path := imageFlag
	if path == "" {
		path = cli.ReadLine("Caminho da foto", "")
	}
	before, err := filehandler.LoadImage(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load image")
	}

	logging.NewStartupLogger("aesthetix").
		Config("procedure", proc.Name).
		Config("outputDir", outputDir).
		Config("imageModel", gemini.ImageModelName(cfg.ImageModel)).
		Feature("bundle", bundleFlag).
		Log()

	ctx, gw := cli.InitGateway(cfg)

	fmt.Printf("Simulando %s... aguarde.\n", proc.Name)
	result, err := gw.Simulate(ctx, before, proc.Prompt, proc.Name)
	if err != nil {
		log.Fatal().Err(err).Msg(gemini.UserMessage(err))
	}
	fmt.Printf("✨ %s\n", result.Description)

	savedPath, err := filehandler.SaveImage(result.Image, outputDir)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to save simulated image")
	}
	fmt.Printf("Resultado salvo em %s\n", savedPath)

	quote := report.Quote{
		Procedure:   proc,
		Before:      before,
		After:       result.Image,
		Description: result.Description,
		GeneratedAt: time.Now(),
	}

	html, err := report.RenderHTML(quote)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render quote report")
	}
	reportPath := filepath.Join(outputDir, "relatorio.html")
	if err := os.WriteFile(reportPath, html, 0o644); err != nil {
		log.Fatal().Err(err).Msg("failed to write quote report")
	}
	fmt.Printf("Relatório salvo em %s\n", reportPath)
	fmt.Printf("Investimento Estimado: %s\n", catalog.FormatPrice(proc.Price))

	if bundleFlag {
		bundlePath := filepath.Join(outputDir, "relatorio.zip")
		if err := report.ExportBundle(quote, bundlePath); err != nil {
			log.Fatal().Err(err).Msg("failed to export report bundle")
		}
		fmt.Printf("Pacote salvo em %s\n", bundlePath)
	}
}
