package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ensigniasec/wanderwise/internal/brochure"
	"github.com/ensigniasec/wanderwise/internal/catalog"
	"github.com/ensigniasec/wanderwise/internal/clock"
	"github.com/ensigniasec/wanderwise/internal/config"
	"github.com/ensigniasec/wanderwise/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile string
	logFile    string
	verbose    bool
	noSplash   bool
	jsonOutput bool
	animate    bool

	// Loaded in PersistentPreRun.
	cfg     config.Config
	content *catalog.Catalog
	log     *logrus.Entry

	rootCmd = &cobra.Command{
		Use:   "wanderwise",
		Short: "WanderWise travel showcase in your terminal.",
		Long:  `Browse the WanderWise travel showcase: rotating destinations, animated statistics and traveler testimonials. Runs interactively on a terminal and prints a static brochure otherwise.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setup()
		},
		Run: func(cmd *cobra.Command, args []string) {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				log.Debug("stdout is not a terminal, printing brochure")
				brochure.Print(os.Stdout, content)
				return
			}
			runTUI(cmd.Context())
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ~/.config/wanderwise/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file while the interactive view runs")
	rootCmd.Flags().BoolVar(&noSplash, "no-splash", false, "Skip the loading screen")

	for _, c := range []*cobra.Command{destinationsCmd, testimonialsCmd, statsCmd} {
		c.Flags().BoolVar(&jsonOutput, "json", false, "Output the section in JSON format instead of rich text")
		rootCmd.AddCommand(c)
	}
	statsCmd.Flags().BoolVar(&animate, "animate", false, "Stream the counter animation frame by frame")
	rootCmd.AddCommand(printCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func setup() {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	log = logrus.WithField("session", uuid.NewString())

	var err error
	cfg, err = config.Load(configFile)
	if err != nil {
		logrus.Fatal(err)
	}
	content, err = catalog.Load()
	if err != nil {
		logrus.Fatal(err)
	}
	log.WithField("destinations", len(content.Destinations)).Debug("catalog loaded")
}

func runTUI(ctx context.Context) {
	var logOut io.Writer
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			logrus.Fatalf("Unable to open log file: %v", err)
		}
		defer f.Close()
		logOut = f
	}

	opts := tui.Options{
		Config:   cfg,
		Catalog:  content,
		Clock:    clock.Real(),
		Logger:   log,
		NoSplash: noSplash,
	}
	if err := tui.Run(ctx, opts, logOut); err != nil {
		logrus.Fatalf("Interactive mode failed: %v", err)
	}
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		logrus.Fatal(err)
	}
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the whole page as a static brochure",
	Run: func(cmd *cobra.Command, args []string) {
		brochure.Print(os.Stdout, content)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var destinationsCmd = &cobra.Command{
	Use:   "destinations",
	Short: "List the featured destinations",
	Run: func(cmd *cobra.Command, args []string) {
		printSection(brochure.SectionDestinations)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var testimonialsCmd = &cobra.Command{
	Use:   "testimonials",
	Short: "List traveler testimonials",
	Run: func(cmd *cobra.Command, args []string) {
		printSection(brochure.SectionTestimonials)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the statistics panel",
	Long:  "Show the statistics panel at its final values. With --animate the counters run from zero in real time.",
	Run: func(cmd *cobra.Command, args []string) {
		if animate && !jsonOutput {
			if err := animateStats(cmd.Context(), os.Stdout, content, cfg, clock.Real()); err != nil {
				logrus.Fatal(err)
			}
			return
		}
		printSection(brochure.SectionStats)
	},
}

func printSection(name string) {
	if err := brochure.PrintSection(os.Stdout, content, name, jsonOutput); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}
