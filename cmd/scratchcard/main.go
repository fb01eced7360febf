// Package main provides the CLI entrypoint for the scratchcard demo, a
// terminal scratch-off card driven by the scratch surface library.
package main

import (
	"fmt"
	"log/slog"
	"os"

	// Decoders for the --image overlay fill.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/spf13/cobra"

	"github.com/gogpu/scratch"
	"github.com/gogpu/scratch/internal/audio"
	"github.com/gogpu/scratch/internal/config"
	"github.com/gogpu/scratch/internal/ui"
)

const (
	defaultBrush     = 4.0
	defaultThreshold = 0.6
	defaultPrize     = "YOU WIN $50"
)

var (
	flagBrush                float64
	flagThreshold            float64
	flagTriggers             []float64
	flagAutoReveal           bool
	flagAutoRevealOnComplete bool
	flagHaptics              bool
	flagSound                bool
	flagGridRows             int
	flagGridCols             int
	flagPrize                string
	flagImage                string
	flagConfig               string
	flagVerbose              bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "scratchcard",
		Short:         "Terminal scratch-off card",
		Long:          "Drag the mouse over the card to scratch the overlay away.\nKeys: r new card, v reveal/restore, q quit.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runCard,
	}

	rootCmd.Flags().Float64Var(&flagBrush, "brush", defaultBrush, "scratch brush diameter in card pixels")
	rootCmd.Flags().Float64Var(&flagThreshold, "threshold", defaultThreshold, "reveal threshold as a progress fraction (0-1)")
	rootCmd.Flags().Float64SliceVar(&flagTriggers, "trigger", nil, "milestone progress fractions (repeatable)")
	rootCmd.Flags().BoolVar(&flagAutoReveal, "auto-reveal", true, "reveal the card when the threshold is reached")
	rootCmd.Flags().BoolVar(&flagAutoRevealOnComplete, "auto-reveal-on-complete", true, "reveal the card at the highest trigger")
	rootCmd.Flags().BoolVar(&flagHaptics, "haptics", true, "play the scratch tick per move sample")
	rootCmd.Flags().BoolVar(&flagSound, "sound", true, "enable audio output")
	rootCmd.Flags().IntVar(&flagGridRows, "grid-rows", 0, "coverage grid rows (0 = default)")
	rootCmd.Flags().IntVar(&flagGridCols, "grid-cols", 0, "coverage grid columns (0 = default)")
	rootCmd.Flags().StringVar(&flagPrize, "prize", defaultPrize, "prize text under the overlay")
	rootCmd.Flags().StringVar(&flagImage, "image", "", "image file to use as the overlay fill")
	rootCmd.Flags().StringVar(&flagConfig, "config", config.DefaultPath(), "config file path")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "log surface internals to stderr")

	return rootCmd
}

func runCard(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.Load(flagConfig)
	if err != nil && cmd.Flags().Changed("config") {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "brush", &flagBrush, fileCfg.Card.Brush)
	applyFloatConfig(cmd, "threshold", &flagThreshold, fileCfg.Card.Threshold)
	applyBoolConfig(cmd, "auto-reveal", &flagAutoReveal, fileCfg.Card.AutoReveal)
	applyBoolConfig(cmd, "auto-reveal-on-complete", &flagAutoRevealOnComplete, fileCfg.Card.AutoRevealOnComplete)
	applyBoolConfig(cmd, "haptics", &flagHaptics, fileCfg.Card.Haptics)
	applyBoolConfig(cmd, "sound", &flagSound, fileCfg.Card.Sound)
	applyIntConfig(cmd, "grid-rows", &flagGridRows, fileCfg.Card.GridRows)
	applyIntConfig(cmd, "grid-cols", &flagGridCols, fileCfg.Card.GridCols)
	applyStringConfig(cmd, "prize", &flagPrize, fileCfg.Card.Prize)
	applyStringConfig(cmd, "image", &flagImage, fileCfg.Card.Image)
	if !cmd.Flags().Changed("trigger") && len(fileCfg.Card.Triggers) > 0 {
		flagTriggers = fileCfg.Card.Triggers
	}

	if flagVerbose {
		scratch.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []scratch.Option{
		scratch.WithBrushDiameter(flagBrush),
		scratch.WithThreshold(flagThreshold),
		scratch.WithAutoReveal(flagAutoReveal),
		scratch.WithAutoRevealOnComplete(flagAutoRevealOnComplete),
		scratch.WithHapticsEnabled(flagHaptics),
		scratch.WithFill(loadFill(flagImage)),
	}
	if len(flagTriggers) > 0 {
		opts = append(opts, scratch.WithTriggers(flagTriggers...))
	}
	if flagGridRows > 0 || flagGridCols > 0 {
		opts = append(opts, scratch.WithGridSize(flagGridRows, flagGridCols))
	}

	engine := audio.NewEngine()
	if flagSound {
		if err := engine.Init(); err != nil {
			// The card works fine silent.
			fmt.Fprintf(os.Stderr, "audio unavailable: %v\n", err)
		}
		defer engine.Close()
		opts = append(opts, scratch.WithHaptics(engine))
	}

	app, err := ui.New(ui.Config{
		Prize:          flagPrize,
		Jingle:         engine.Jingle,
		SurfaceOptions: opts,
	})
	if err != nil {
		return err
	}
	defer app.Close()

	app.Run()
	return nil
}

// loadFill decodes the overlay image if one was given, falling back to the
// stock silver overlay when the path is empty or unreadable.
func loadFill(path string) scratch.Fill {
	fallback := scratch.SolidHex("#c0c0c0")
	if path == "" {
		return fallback
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open overlay image: %v\n", err)
		return fallback
	}
	defer f.Close()
	return scratch.DecodeImageFill(f, fallback)
}

// apply*Config overlay file-config values onto flags the user did not set
// explicitly: flags win, then the file, then the built-in default.

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}
