package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/contactkeval/option-pricer/internal/accuracy"
	"github.com/contactkeval/option-pricer/internal/api"
	"github.com/contactkeval/option-pricer/internal/config"
	"github.com/contactkeval/option-pricer/internal/logger"
	"github.com/contactkeval/option-pricer/internal/pricing"
	"github.com/contactkeval/option-pricer/internal/report"
	"github.com/contactkeval/option-pricer/internal/scenario"
	"github.com/contactkeval/option-pricer/internal/volatility"
)

type rootOptions struct {
	configPath string
	envPath    string
	verbosity  int
	cfg        *config.Config
}

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "option-pricer",
		Short:         "Black-Scholes prices for European vanilla options",
		Long:          `Prices European vanilla calls and puts with the closed-form Black-Scholes formula.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath, opts.envPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("verbosity") {
				cfg.Verbosity = opts.verbosity
			}
			logger.SetVerbosity(cfg.Verbosity)
			opts.cfg = cfg
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), out)
		},
	}
	rootCmd.SetOut(out)

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&opts.envPath, "env-file", ".env", "optional .env file with PRICER_* settings")
	rootCmd.PersistentFlags().IntVarP(&opts.verbosity, "verbosity", "v", 1, "log verbosity: 0=error, 1=info, 2=debug, 3=trace")

	rootCmd.AddCommand(
		newDemoCmd(out),
		newPriceCmd(out, opts),
		newBatchCmd(out, opts),
		newHistVolCmd(out),
		newAccuracyCmd(out),
		newServeCmd(opts),
	)
	return rootCmd
}

func runDemo(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	quotes, err := scenario.PriceAll(ctx, scenario.Defaults())
	if err != nil {
		return err
	}
	report.WriteSummary(out, quotes)
	return nil
}

func newDemoCmd(out io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Print prices of the default and user-defined example contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), out)
		},
	}
}

func newPriceCmd(out io.Writer, opts *rootOptions) *cobra.Command {
	sc := scenario.Default()

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Price a single contract",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := scenario.Price(sc)
			if err != nil {
				return err
			}
			report.WriteTable(out, []scenario.Quote{q}, opts.cfg.Decimals)
			return nil
		},
	}

	cmd.Flags().StringVar(&sc.Name, "name", sc.Name, "label for the contract")
	cmd.Flags().Float64VarP(&sc.Strike, "strike", "k", pricing.DefaultStrike, "strike price K")
	cmd.Flags().Float64VarP(&sc.Rate, "rate", "r", pricing.DefaultRate, "annual risk-free rate r, e.g. 0.05")
	cmd.Flags().Float64VarP(&sc.Maturity, "maturity", "t", pricing.DefaultMaturity, "time to maturity T in years")
	cmd.Flags().Float64VarP(&sc.Spot, "spot", "s", pricing.DefaultSpot, "spot price S of the underlying")
	cmd.Flags().Float64Var(&sc.Volatility, "volatility", pricing.DefaultVolatility, "annual volatility sigma, e.g. 0.2")
	return cmd
}

func newBatchCmd(out io.Writer, opts *rootOptions) *cobra.Command {
	var csvPath, outDir string

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Price the configured scenario list or a CSV of contracts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := opts.cfg
			scenarios := cfg.Scenarios

			if csvPath != "" {
				f, err := os.Open(csvPath)
				if err != nil {
					return fmt.Errorf("opening scenarios: %w", err)
				}
				defer f.Close()

				if scenarios, err = scenario.LoadCSV(f); err != nil {
					return err
				}
			}

			quotes, err := scenario.PriceAll(cmd.Context(), scenarios)
			if err != nil {
				return err
			}
			report.WriteTable(out, quotes, cfg.Decimals)

			if outDir == "" {
				outDir = cfg.OutputDir
			}
			if outDir == "" {
				return nil
			}
			if err := os.MkdirAll(outDir, 0755); err != nil {
				return fmt.Errorf("could not create output dir %s: %w", outDir, err)
			}
			if err := report.WriteJSON(quotes, outDir); err != nil {
				return err
			}
			if err := report.WriteCSV(quotes, outDir); err != nil {
				return err
			}
			logger.Infof("wrote %d quotes to %s", len(quotes), outDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file with name,strike,rate,maturity,spot,volatility columns")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory for quotes.json and quotes.csv")
	return cmd
}

func newHistVolCmd(out io.Writer) *cobra.Command {
	var csvPath string
	var periods float64

	cmd := &cobra.Command{
		Use:   "histvol",
		Short: "Estimate annualized volatility from a CSV of closes",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(csvPath)
			if err != nil {
				return fmt.Errorf("opening closes: %w", err)
			}
			defer f.Close()

			closes, err := volatility.LoadCloses(f)
			if err != nil {
				return err
			}
			vol, err := volatility.Annualized(closes, periods)
			if err != nil {
				return err
			}

			logger.Debugf("estimated volatility from %d closes", len(closes))
			fmt.Fprintf(out, "annualized volatility: %s\n", report.Percent(vol))
			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "CSV file with a close column")
	cmd.Flags().Float64Var(&periods, "periods", volatility.TradingDaysPerYear, "return periods per year")
	cmd.MarkFlagRequired("csv")
	return cmd
}

func newAccuracyCmd(out io.Writer) *cobra.Command {
	var from, to float64
	var steps int

	cmd := &cobra.Command{
		Use:   "accuracy",
		Short: "Compare the pricing CDF with the erf-based normal CDF",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := accuracy.Survey(from, to, steps)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "grid: [%g, %g], %d points\n", r.From, r.To, r.Steps)
			fmt.Fprintf(out, "max abs error:  %.3e at x=%.4f\n", r.MaxAbsError, r.ArgMax)
			fmt.Fprintf(out, "mean abs error: %.3e\n", r.MeanAbsError)
			fmt.Fprintf(out, "p99 abs error:  %.3e\n", r.P99AbsError)
			return nil
		},
	}

	cmd.Flags().Float64Var(&from, "from", -8, "lower end of the grid")
	cmd.Flags().Float64Var(&to, "to", 8, "upper end of the grid")
	cmd.Flags().IntVar(&steps, "steps", 16001, "number of grid points")
	return cmd
}

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve quotes over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = opts.cfg.Addr
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return api.NewServer(opts.cfg.Scenarios).ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address, defaults to the configured addr")
	return cmd
}
