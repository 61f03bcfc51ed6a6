package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"contestlens/analyzer/internal/config"
	"contestlens/analyzer/internal/container"
	"contestlens/analyzer/internal/render"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "contest-lens",
		Short: "Codeforces technique-frequency analyzer",
	}

	rootCmd.AddCommand(fetchCmd())
	rootCmd.AddCommand(analyzeCmd())
	rootCmd.AddCommand(summaryCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	return cfg
}

func fetchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Fetch all problems from the Codeforces API into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			cfg := loadConfig()
			app, err := container.New(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			log.Info("Fetching problems from Codeforces API...")
			if _, err := app.Service.FetchAndStore(ctx); err != nil {
				return err
			}

			return printSummary(ctx, app)
		},
	}
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze",
		Short: "Compute per-band technique frequencies and export the analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			cfg := loadConfig()
			app, err := container.NewExisting(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.Service.Analyze(ctx)
			if err != nil {
				return err
			}

			r := render.New(cmd.OutOrStdout())
			for _, band := range report.Bands {
				r.Band(band)
			}
			r.Progression(report.Bands)
			r.Roadmap(report.Roadmap)

			return nil
		},
	}
}

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print a summary of the problem database",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			cfg := loadConfig()
			app, err := container.NewExisting(cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			return printSummary(ctx, app)
		},
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API and static frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalContext()
			defer cancel()

			cfg := loadConfig()
			return container.Server(cfg).Run(ctx)
		},
	}
}

func printSummary(ctx context.Context, app *container.Container) error {
	sum, err := app.Repository.Summarize(ctx)
	if err != nil {
		return err
	}
	dist, err := app.Repository.BandDistribution(ctx, app.Config.Analysis.Bands)
	if err != nil {
		return err
	}
	topTags, err := app.Repository.TopTags(ctx, 15)
	if err != nil {
		return err
	}

	render.New(os.Stdout).Summary(sum, dist, topTags)
	return nil
}
