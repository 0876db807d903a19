package main

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mbarros/glowup-cli/internal/cli"
	"github.com/mbarros/glowup-cli/internal/config"
	"github.com/mbarros/glowup-cli/internal/filehandler"
	"github.com/mbarros/glowup-cli/internal/gemini"
	"github.com/mbarros/glowup-cli/internal/lineage"
	"github.com/mbarros/glowup-cli/internal/logging"
	"github.com/mbarros/glowup-cli/internal/session"
)

// CLI flags
var (
	imageFlag   string
	outputFlag  string
	exampleFlag bool
)

// rootCmd is the main Cobra command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "glowup",
	Short: "AI-powered profile photo makeover wizard",
	Long: `Glowup walks a profile photo through a guided makeover: smile, aura,
outfit, pet, and background, each step an AI edit you can apply or skip.
After the journey it can also write a dating bio, rate the photo's vibe,
and suggest icebreakers.

Examples:
  glowup --image ./minha-foto.jpg
  glowup -i foto.png -o ./resultados
  glowup --exemplo   # try it with the bundled example photo
  glowup             # opens the native file picker`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().StringVarP(&imageFlag, "image", "i", "", "Photo to work on (jpg, png, gif, webp, heic)")
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for saved results (default: GLOWUP_OUTPUT_DIR or ./glowup-output)")
	rootCmd.Flags().BoolVar(&exampleFlag, "exemplo", false, "Use the bundled example photo instead of your own")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runMain is the main execution logic called by Cobra.
func runMain(cmd *cobra.Command, args []string) {
	logging.Init()
	cfg := config.Load()

	outputDir := outputFlag
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	logging.NewStartupLogger("glowup").
		Config("outputDir", outputDir).
		Config("imageModel", gemini.ImageModelName(cfg.ImageModel)).
		Config("textModel", gemini.TextModelName(cfg.TextModel)).
		Feature("exampleImage", exampleFlag).
		Log()

	ctx, gw := cli.InitGateway(cfg)

	orch := session.New(gw)
	defer orch.Close()

	w := &wizard{
		ctx:       ctx,
		orch:      orch,
		outputDir: outputDir,
		newImage: func() *lineage.Asset {
			// A restart always picks a fresh photo, ignoring the flags.
			return acquireImage(ctx, "", false)
		},
	}

	img := acquireImage(ctx, imageFlag, exampleFlag)
	if err := orch.UploadImage(img); err != nil {
		log.Fatal().Err(err).Msg("failed to start session")
	}

	w.run()
}

// acquireImage resolves a photo to work on: the example download, the
// given path, or the native file picker, in that order. Exits fatally
// when nothing usable is found.
func acquireImage(ctx context.Context, path string, useExample bool) *lineage.Asset {
	if useExample {
		img, err := filehandler.FetchExampleImage(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("Não foi possível carregar a imagem de exemplo. Tente enviar sua própria foto.")
		}
		return img
	}

	if path == "" {
		picked, err := filehandler.PickImage()
		if err != nil {
			if errors.Is(err, filehandler.ErrPickerCanceled) {
				log.Fatal().Msg("Nenhuma foto selecionada")
			}
			// Headless environments have no dialog; fall back to a typed path.
			log.Debug().Err(err).Msg("File picker unavailable, prompting for a path")
			picked = cli.ReadLine("Caminho da foto", "")
			if picked == "" {
				log.Fatal().Msg("Nenhuma foto selecionada")
			}
		}
		path = picked
	}

	img, err := filehandler.LoadImage(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load image")
	}

	if info, err := filehandler.InspectImage(path); err == nil {
		if summary := info.Summary(); summary != "" {
			log.Info().Str("exif", summary).Msg("Photo metadata")
		}
	} else {
		log.Debug().Err(err).Msg("No usable EXIF metadata")
	}

	return img
}
