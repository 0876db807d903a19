// Command glowup-mcp exposes the makeover session and the procedure
// catalog as MCP tools over stdio, so agent clients can drive the same
// operations the interactive wizard offers.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/mbarros/glowup-cli/internal/catalog"
	"github.com/mbarros/glowup-cli/internal/cli"
	"github.com/mbarros/glowup-cli/internal/config"
	"github.com/mbarros/glowup-cli/internal/filehandler"
	"github.com/mbarros/glowup-cli/internal/gemini"
	"github.com/mbarros/glowup-cli/internal/journey"
	"github.com/mbarros/glowup-cli/internal/logging"
	"github.com/mbarros/glowup-cli/internal/prompt"
	"github.com/mbarros/glowup-cli/internal/session"
)

var outputFlag string

var rootCmd = &cobra.Command{
	Use:   "glowup-mcp",
	Short: "MCP stdio server for the glowup session tools",
	Long: `Glowup-mcp serves the makeover journey, the bonus text chain, and the
procedure catalog as MCP tools over stdio. One session lives for the
lifetime of the process.

Example client configuration:
  {"command": "glowup-mcp", "args": ["-o", "./resultados"]}`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Directory for saved results (default: GLOWUP_OUTPUT_DIR or ./glowup-output)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) {
	logging.Init()
	cfg := config.Load()

	outputDir := outputFlag
	if outputDir == "" {
		outputDir = cfg.OutputDir
	}

	logging.NewStartupLogger("glowup-mcp").
		Config("outputDir", outputDir).
		Config("imageModel", gemini.ImageModelName(cfg.ImageModel)).
		Config("textModel", gemini.TextModelName(cfg.TextModel)).
		Log()

	ctx, gw := cli.InitGateway(cfg)

	orch := session.New(gw)
	defer orch.Close()

	ts := &toolServer{orch: orch, gw: gw, outputDir: outputDir}

	server := mcp.NewServer(&mcp.Implementation{Name: "glowup", Version: "1.0.0"}, nil)
	ts.register(server)

	log.Info().Msg("MCP server listening on stdio")
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal().Err(err).Msg("MCP server terminated")
	}
}

// toolServer binds the MCP tool handlers to one session.
type toolServer struct {
	orch      *session.Orchestrator
	gw        *gemini.Gateway
	outputDir string
}

func (ts *toolServer) register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "upload_image",
		Description: "Start a makeover session with the photo at the given path. Replaces any session in progress.",
	}, ts.uploadImage)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_state",
		Description: "Return the current session state: journey step, image status, bonus results, and any pending error.",
	}, ts.getState)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "run_step",
		Description: "Apply the AI edit of the current journey step. The smile step takes no detail; every other step requires one (outfit style, pet, background scene, or aura instruction).",
	}, ts.runStep)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "skip_step",
		Description: "Advance the journey without editing the photo.",
	}, ts.skipStep)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "revert_to_original",
		Description: "Restore the untouched original photo and restart the journey. Bonus results clear.",
	}, ts.revert)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "reset_session",
		Description: "Discard the session entirely, returning to the pre-upload state.",
	}, ts.reset)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_bio",
		Description: "Generate a dating-profile bio from the current photo.",
	}, ts.generateBio)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_vibe",
		Description: "Rate the current photo's match potential (0-10 plus a summary). Requires a generated bio.",
	}, ts.generateVibe)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "generate_icebreakers",
		Description: "Suggest conversation openers for the current photo. Requires a generated bio.",
	}, ts.generateIcebreakers)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "save_result",
		Description: "Save the current photo to disk and return the saved path.",
	}, ts.saveResult)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_procedures",
		Description: "List the aesthetic procedures available for simulation, with reference prices.",
	}, ts.listProcedures)
	mcp.AddTool(server, &mcp.Tool{
		Name:        "simulate_procedure",
		Description: "Simulate one aesthetic procedure on the photo at the given path and save the result.",
	}, ts.simulateProcedure)
}

// stepMods maps each journey step to the modification it performs.
var stepMods = map[journey.Step]prompt.Modification{
	journey.StepSmile:      prompt.ModSmile,
	journey.StepAura:       prompt.ModAura,
	journey.StepFashion:    prompt.ModFashion,
	journey.StepPet:        prompt.ModPet,
	journey.StepBackground: prompt.ModBackground,
}

type emptyInput struct{}

type uploadInput struct {
	Path string `json:"path" jsonschema:"filesystem path of the photo to start the session with"`
}

type runStepInput struct {
	Detail string `json:"detail,omitempty" jsonschema:"detail for the current step; leave empty for the smile step"`
}

type saveInput struct {
	Dir string `json:"dir,omitempty" jsonschema:"directory to save into; defaults to the configured output directory"`
}

type simulateInput struct {
	Path      string `json:"path" jsonschema:"filesystem path of the patient photo"`
	Procedure string `json:"procedure" jsonschema:"exact procedure name as returned by list_procedures"`
	Dir       string `json:"dir,omitempty" jsonschema:"directory to save into; defaults to the configured output directory"`
}

type stateOutput struct {
	Step              string   `json:"step"`
	HasImage          bool     `json:"hasImage"`
	CurrentIsOriginal bool     `json:"currentIsOriginal"`
	Error             string   `json:"error,omitempty"`
	LastDescription   string   `json:"lastDescription,omitempty"`
	Bio               string   `json:"bio,omitempty"`
	VibeScore         *int     `json:"vibeScore,omitempty"`
	VibeSummary       string   `json:"vibeSummary,omitempty"`
	Icebreakers       []string `json:"icebreakers,omitempty"`
}

func (ts *toolServer) state() stateOutput {
	s := ts.orch.Snapshot()
	out := stateOutput{
		Step:              s.Step.String(),
		HasImage:          s.HasImage,
		CurrentIsOriginal: s.CurrentIsOriginal,
		Error:             s.Err,
		LastDescription:   s.LastDescription,
		Bio:               s.Bonus.Bio,
		Icebreakers:       s.Bonus.Icebreakers,
	}
	if s.Bonus.Vibe != nil {
		score := s.Bonus.Vibe.Score
		out.VibeScore = &score
		out.VibeSummary = s.Bonus.Vibe.Vibe
	}
	return out
}

func (ts *toolServer) uploadImage(ctx context.Context, req *mcp.CallToolRequest, in uploadInput) (*mcp.CallToolResult, stateOutput, error) {
	img, err := filehandler.LoadImage(in.Path)
	if err != nil {
		return nil, stateOutput{}, err
	}
	if err := ts.orch.UploadImage(img); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

func (ts *toolServer) getState(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, stateOutput, error) {
	return nil, ts.state(), nil
}

func (ts *toolServer) runStep(ctx context.Context, req *mcp.CallToolRequest, in runStepInput) (*mcp.CallToolResult, stateOutput, error) {
	mod, ok := stepMods[ts.orch.Snapshot().Step]
	if !ok {
		return nil, stateOutput{}, fmt.Errorf("the journey is complete; use save_result, the bonus tools, or reset_session")
	}
	if err := ts.orch.RunStep(ctx, mod, in.Detail); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

func (ts *toolServer) skipStep(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, stateOutput, error) {
	if err := ts.orch.SkipStep(); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

func (ts *toolServer) revert(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, stateOutput, error) {
	if err := ts.orch.RevertToOriginal(); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

func (ts *toolServer) reset(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, stateOutput, error) {
	if err := ts.orch.ResetSession(); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

func (ts *toolServer) generateBio(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, stateOutput, error) {
	if err := ts.orch.GenerateBio(ctx); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

func (ts *toolServer) generateVibe(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, stateOutput, error) {
	if err := ts.orch.GenerateVibe(ctx); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

func (ts *toolServer) generateIcebreakers(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, stateOutput, error) {
	if err := ts.orch.GenerateIcebreakers(ctx); err != nil {
		return nil, stateOutput{}, err
	}
	return nil, ts.state(), nil
}

type savedOutput struct {
	SavedPath string `json:"savedPath"`
}

func (ts *toolServer) saveResult(ctx context.Context, req *mcp.CallToolRequest, in saveInput) (*mcp.CallToolResult, savedOutput, error) {
	img := ts.orch.CurrentImage()
	if img == nil {
		return nil, savedOutput{}, session.ErrNoImage
	}

	dir := in.Dir
	if dir == "" {
		dir = ts.outputDir
	}

	named := *img
	named.Filename = fmt.Sprintf("perfil-de-sucesso-%d%s", time.Now().UnixMilli(), img.Ext())

	path, err := filehandler.SaveImage(&named, dir)
	if err != nil {
		return nil, savedOutput{}, err
	}
	return nil, savedOutput{SavedPath: path}, nil
}

type procedureInfo struct {
	Name  string `json:"name"`
	Kind  string `json:"kind"`
	Price string `json:"price"`
}

type proceduresOutput struct {
	Procedures []procedureInfo `json:"procedures"`
}

func (ts *toolServer) listProcedures(ctx context.Context, req *mcp.CallToolRequest, in emptyInput) (*mcp.CallToolResult, proceduresOutput, error) {
	var out proceduresOutput
	for _, p := range catalog.Procedures() {
		out.Procedures = append(out.Procedures, procedureInfo{
			Name:  p.Name,
			Kind:  string(p.Kind),
			Price: catalog.FormatPrice(p.Price),
		})
	}
	return nil, out, nil
}

type simulateOutput struct {
	SavedPath   string `json:"savedPath"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

func (ts *toolServer) simulateProcedure(ctx context.Context, req *mcp.CallToolRequest, in simulateInput) (*mcp.CallToolResult, simulateOutput, error) {
	proc, ok := catalog.ByName(in.Procedure)
	if !ok {
		return nil, simulateOutput{}, fmt.Errorf("unknown procedure %q; see list_procedures", in.Procedure)
	}

	img, err := filehandler.LoadImage(in.Path)
	if err != nil {
		return nil, simulateOutput{}, err
	}

	result, err := ts.gw.Simulate(ctx, img, proc.Prompt, proc.Name)
	if err != nil {
		return nil, simulateOutput{}, err
	}

	dir := in.Dir
	if dir == "" {
		dir = ts.outputDir
	}
	path, err := filehandler.SaveImage(result.Image, dir)
	if err != nil {
		return nil, simulateOutput{}, err
	}

	return nil, simulateOutput{
		SavedPath:   path,
		Description: result.Description,
		Price:       catalog.FormatPrice(proc.Price),
	}, nil
}
