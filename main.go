package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/emi03-byte/MedAI/atc"
	"github.com/emi03-byte/MedAI/config"
	"github.com/emi03-byte/MedAI/data"
	"github.com/emi03-byte/MedAI/handlers"
	"github.com/emi03-byte/MedAI/health"
	"github.com/emi03-byte/MedAI/logging"
	"github.com/emi03-byte/MedAI/pipeline"
	"github.com/emi03-byte/MedAI/report"
	"github.com/emi03-byte/MedAI/scheduler"
	"github.com/emi03-byte/MedAI/server"
	"github.com/emi03-byte/MedAI/validation"
	"github.com/spf13/cobra"
)

// options holds the flags shared by every subcommand.
type options struct {
	medications string
	diseases    string
	output      string
	verbose     bool
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "atcmap",
		Short:         "Enrich a medication list with the disease codes implied by its ATC codes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(cmd.Context(), opts, out)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.medications, "medications", "", "Medication CSV to enrich (overrides MEDICATIONS_CSV)")
	flags.StringVar(&opts.diseases, "diseases", "", "Disease reference CSV (overrides DISEASES_CSV)")
	flags.StringVar(&opts.output, "output", "", "Enriched CSV to write (overrides OUTPUT_CSV)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Log at info level even in the test environment")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "enrich",
		Short: "Run one enrichment and print a summary (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEnrich(cmd.Context(), opts, out)
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve ATC lookups and regenerate the enriched file on a schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(opts)
		},
	})

	return rootCmd
}

// setup loads the configuration, applies flag overrides and starts logging.
func setup(opts *options) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load configuration:", err)
		return nil, err
	}

	if opts.medications != "" {
		cfg.MedicationsCSV = opts.medications
	}
	if opts.diseases != "" {
		cfg.DiseasesCSV = opts.diseases
	}
	if opts.output != "" {
		cfg.OutputCSV = opts.output
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid configuration:", err)
		return nil, err
	}

	logging.InitLogger(logging.OptionsFromConfig(cfg, opts.verbose))
	return cfg, nil
}

func runEnrich(ctx context.Context, opts *options, out io.Writer) error {
	cfg, err := setup(opts)
	if err != nil {
		return err
	}
	defer logging.Close()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := pipeline.New(cfg, atc.Default())
	res, err := p.Run(ctx)
	if err != nil {
		logging.Error("Enrichment failed", "error", err)
		return err
	}

	summary, err := p.Summarize(res)
	if err != nil {
		logging.Error("Failed to build summary", "error", err)
		return err
	}
	if err := report.Write(out, summary); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nSaved: %s\n", cfg.OutputCSV)
	return nil
}

func runServe(opts *options) error {
	cfg, err := setup(opts)
	if err != nil {
		return err
	}
	defer logging.Close()

	resolver := atc.Default()
	dataContainer := data.NewDataContainer()
	dataContainer.SetServerStartTime(time.Now())

	sched := scheduler.NewScheduler(dataContainer, pipeline.New(cfg, resolver), cfg.RefreshAt)
	if err := sched.Start(); err != nil {
		logging.Error("Failed to start scheduler", "error", err)
		return err
	}
	defer sched.Stop()

	handler := handlers.NewHTTPHandler(dataContainer, validation.NewDataValidator(),
		health.NewHealthChecker(dataContainer, sched), resolver)
	srv := server.NewServer(cfg, handler)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			logging.Error("Server failed", "error", err)
		}
		return err
	case <-quit:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
