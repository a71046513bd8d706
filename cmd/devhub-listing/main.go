package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/v0xg/devhub-listing/internal/ai"
	"github.com/v0xg/devhub-listing/internal/config"
	"github.com/v0xg/devhub-listing/internal/driver"
	"github.com/v0xg/devhub-listing/internal/gifgen"
	"github.com/v0xg/devhub-listing/internal/logging"
	"github.com/v0xg/devhub-listing/internal/pages"
	"github.com/v0xg/devhub-listing/internal/plan"
	"go.uber.org/zap"
)

var (
	configFile string
	output     string
	stepsFile  string
	prompt     string
	record     string
	dryRun     bool

	name         string
	summary      string
	urlEnd       string
	manifestURL  string
	supportEmail string
	supportURL   string
	deviceTypes  map[string]string
	categories   map[string]string
)

func main() {
	// Load .env file if present (silently ignore if not found)
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devhub-listing <edit-url>",
		Short: "Read and edit a marketplace app listing through its developer hub edit page",
		Long: `devhub-listing opens an app's listing edit page in a browser, prints the
listing, applies the requested edits through the basic and support
information forms, saves, and prints the listing again.

Examples:
  devhub-listing https://marketplace.example.org/developers/app/tiny-tetris/edit
  devhub-listing URL --summary "A tiny falling-blocks game" --device-type Mobile=true
  devhub-listing URL --steps edits.yaml --record run.gif
  devhub-listing URL --prompt "drop the Social category and point support at help@tiny.example.com"`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	f := rootCmd.Flags()
	f.StringVar(&configFile, "config", "", "Config file (yaml, json or toml)")
	f.StringVarP(&output, "output", "o", "text", "Listing output format: text, json, yaml")
	f.StringVar(&stepsFile, "steps", "", "JSON or YAML file of edit steps")
	f.StringVar(&prompt, "prompt", "", "Describe the edits in plain language and let an AI provider plan them")
	f.StringVar(&record, "record", "", "Write a GIF of the edit run to this file")
	f.BoolVar(&dryRun, "dry-run", false, "Print the planned steps without applying them")

	f.StringVar(&name, "name", "", "New app name")
	f.StringVar(&summary, "summary", "", "New summary")
	f.StringVar(&urlEnd, "url-end", "", "New URL slug")
	f.StringVar(&manifestURL, "manifest-url", "", "New manifest URL")
	f.StringVar(&supportEmail, "support-email", "", "New support email")
	f.StringVar(&supportURL, "support-url", "", "New support website")
	f.StringToStringVar(&deviceTypes, "device-type", nil, "Device type checkbox state, e.g. Mobile=true (repeatable)")
	f.StringToStringVar(&categories, "category", nil, "Category checkbox state, e.g. Games=false (repeatable)")

	f.String("driver", "rod", "Browser driver: rod, playwright")
	f.Bool("headless", true, "Run the browser headless")
	f.Bool("no-sandbox", false, "Disable the Chromium sandbox")
	f.Int("width", 1280, "Viewport width")
	f.Int("height", 720, "Viewport height")
	f.String("profile", "", "Chrome/Chromium profile directory for authenticated sessions (close browser first)")
	f.Duration("timeout", pages.DefaultTimeout, "How long to wait for forms to open or close")
	f.String("provider", "claude", "AI provider for --prompt: claude, openai")
	f.String("model", "", "Specific model override")
	f.String("log-level", "info", "Log level: debug, info, warn, error")
	f.Int("fps", 2, "GIF frames per second")
	f.Uint("record-width", 800, "GIF width in pixels")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	url := args[0]
	if err := checkFormat(output); err != nil {
		return err
	}
	progress := progressWriter(cmd, output)

	cfg, err := config.Load(config.New(), configFile, cmd.Flags())
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log.Level)
	defer log.Sync()

	steps, err := initialSteps(cmd)
	if err != nil {
		return err
	}

	// Step 1: Open the listing
	fmt.Fprintf(progress, "→ Opening %s with %s... ", url, cfg.Browser.Driver)
	browser, err := driver.Launch(cfg.Browser.Driver, driver.Options{
		Width:      cfg.Browser.Width,
		Height:     cfg.Browser.Height,
		Headless:   cfg.Browser.Headless,
		NoSandbox:  cfg.Browser.NoSandbox,
		Timeout:    cfg.Browser.NavigationTimeout,
		ProfileDir: cfg.Browser.ProfileDir,
	})
	if err != nil {
		fmt.Fprintln(progress, "failed")
		return fmt.Errorf("browser launch failed: %w", err)
	}
	defer browser.Close()

	session := browser.Session()
	listing, err := pages.Open(session, url, pages.Options{
		Timeout:      cfg.Pages.Timeout,
		PollInterval: cfg.Pages.PollInterval,
		Logger:       log,
	})
	if err != nil {
		fmt.Fprintln(progress, "failed")
		return fmt.Errorf("open failed: %w", err)
	}
	fmt.Fprintln(progress, "done")

	before, err := listing.Snapshot()
	if err != nil {
		return fmt.Errorf("read listing: %w", err)
	}

	// Step 2: Plan the edits
	if prompt != "" {
		fmt.Fprintf(progress, "→ Planning edits via %s... ", cfg.AI.Provider)
		provider, err := ai.NewProvider(cfg.AI.Provider, cfg.AI.Model)
		if err != nil {
			fmt.Fprintln(progress, "failed")
			return fmt.Errorf("AI provider init failed: %w", err)
		}
		steps, err = provider.GenerateSteps(context.Background(), before, prompt)
		if err != nil {
			fmt.Fprintln(progress, "failed")
			return fmt.Errorf("step generation failed: %w", err)
		}
		fmt.Fprintf(progress, "done (%d steps)\n", len(steps))
	}

	if len(steps) == 0 || dryRun {
		if len(steps) > 0 {
			fmt.Fprint(progress, plan.Describe(steps))
		}
		return printSnapshot(cmd.OutOrStdout(), before, output)
	}
	fmt.Fprint(progress, plan.Describe(steps))

	// Step 3: Apply them
	var recorder *gifgen.Recorder
	if record != "" {
		recorder = gifgen.NewRecorder(session, cfg.Record.Hold)
		capture(recorder, log)
	}

	fmt.Fprintf(progress, "→ Applying %d steps... ", len(steps))
	after, err := plan.Run(listing, steps, plan.Options{
		Logger: log,
		OnStep: func(i int, step plan.Step, v pages.View) {
			if recorder != nil {
				capture(recorder, log)
			}
		},
	})
	if err != nil {
		fmt.Fprintln(progress, "failed")
		return fmt.Errorf("edit failed: %w", err)
	}
	fmt.Fprintln(progress, "done")

	snap, err := after.Snapshot()
	if err != nil {
		return fmt.Errorf("read saved listing: %w", err)
	}

	// Step 4: Write the recording
	if recorder != nil {
		fmt.Fprintf(progress, "→ Generating GIF (%d frames)... ", len(recorder.Frames()))
		size, err := gifgen.Generate(recorder.Frames(), record, gifgen.Options{
			FPS:      cfg.Record.FPS,
			MaxWidth: cfg.Record.MaxWidth,
		})
		if err != nil {
			fmt.Fprintln(progress, "failed")
			return fmt.Errorf("GIF generation failed: %w", err)
		}
		fmt.Fprintf(progress, "done (%.1f KB)\n", float64(size)/1024)
	}

	if changed := diff(before, snap); len(changed) > 0 {
		fmt.Fprintf(progress, "✓ Saved (%d fields changed)\n", len(changed))
	} else {
		fmt.Fprintln(progress, "✓ Saved (no visible changes)")
	}
	return printSnapshot(cmd.OutOrStdout(), snap, output)
}

func capture(r *gifgen.Recorder, log *zap.Logger) {
	if err := r.Capture(); err != nil {
		log.Warn("frame capture failed", zap.Error(err))
	}
}
