package main

import (
	"math/rand/v2"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hailam/randfile/internal/adapters/progress"
	"github.com/hailam/randfile/internal/adapters/txt"
	adapterutils "github.com/hailam/randfile/internal/adapters/utils"
	"github.com/hailam/randfile/internal/application"
	"github.com/hailam/randfile/internal/config"
	"github.com/hailam/randfile/internal/ports"
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := newRootCmd(log).Execute(); err != nil {
		log.WithError(err).Error("generation failed")
		os.Exit(1)
	}
}

func newRootCmd(log *logrus.Logger) *cobra.Command {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "randfile",
		Short: "Writes a file of random printable characters of a given size.",
		Long: `randfile writes a file of the requested size (in megabytes) filled with
characters drawn uniformly from letters, digits, punctuation and space.
Data is generated in bounded chunks so memory use stays flat regardless of
the target size. The output is meant as fixture data for I/O and
performance tests.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			if cfg.Verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			// --- Composition Root ---
			opts := txt.Options{
				ChunkSize: cfg.ChunkSize,
				Progress:  newReporter(cfg.Quiet),
			}
			if cfg.Seed != 0 {
				opts.Rand = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
			}
			generator, err := txt.New(opts)
			if err != nil {
				return err
			}
			fileService := application.NewFileService(generator, adapterutils.NewUtilSizeParser(), log)
			// --- End Composition Root ---

			if err := fileService.CreateFileFromSpec(cfg.Output, cfg.Size); err != nil {
				return err
			}
			if !cfg.Quiet {
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Successfully generated %s\n", cfg.Output)
			}
			return nil
		},
	}

	if err := config.AddFlags(rootCmd, v); err != nil {
		log.WithError(err).Fatal("failed to register flags")
	}
	return rootCmd
}

// newReporter animates on a terminal and falls back to a plain status line
// when stderr is redirected.
func newReporter(quiet bool) ports.ProgressReporter {
	switch {
	case quiet:
		return progress.Nop{}
	case progress.IsTerminal(os.Stderr):
		return progress.NewSpinner(os.Stderr)
	default:
		return progress.NewLine(os.Stderr)
	}
}
