package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/twitterctl/config"
	"github.com/s0up4200/twitterctl/filter"
	"github.com/s0up4200/twitterctl/format"
	"github.com/s0up4200/twitterctl/twitter"
)

var (
	cfgFile     string
	cfg         *config.Config
	logger      zerolog.Logger
	service     *twitter.Service
	filters     *filter.Manager
	printer     *format.Printer
	version     = "dev"
	buildTime   = "unknown"
	outputFlag  string
	showDetails bool
	showEntity  bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "twitterctl",
	Short: "A command line client for the Twitter v1.1 REST API",
	Long: `twitterctl reads and writes tweets through the Twitter v1.1 REST API.

It can look up, post, retweet and delete statuses, read the home, mentions,
retweets-of-me and user timelines, filter them with expressions, and
reverse geocode coordinates into places.`,
	PersistentPreRunE: initializeApp,
	SilenceUsage:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// SetVersion records the build information shown by the version command
func SetVersion(v, built string) {
	version = v
	buildTime = built
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&outputFlag, "output", "o", "", "output format: text, json or yaml (overrides output.format)")
	rootCmd.PersistentFlags().BoolVar(&showDetails, "details", false, "show counts, dates and links in text output (overrides output.details; --details=false hides them)")
	rootCmd.PersistentFlags().BoolVar(&showEntity, "entities", false, "show hashtags, mentions and media in text output (overrides output.entities)")
}

// initializeApp loads the configuration and builds the API service
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	if cmd.Flags().Changed("output") {
		cfg.Output.Format = outputFlag
	}
	outFormat, err := format.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	printer = format.NewPrinter(cmd.OutOrStdout(), outFormat, outputOptions(cmd, cfg.Output))

	httpClient, err := newHTTPClient(cmd.Context(), cfg.Twitter)
	if err != nil {
		return fmt.Errorf("failed to create HTTP client: %w", err)
	}

	client, err := twitter.NewClient(httpClient, logger,
		twitter.WithBaseURL(cfg.Twitter.BaseURL),
		twitter.WithTimeout(cfg.Twitter.Timeout),
		twitter.WithUserAgent("twitterctl/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create Twitter client: %w", err)
	}
	service = twitter.NewService(client)

	filters = filter.NewManager()
	if err := filters.RegisterFilters(cfg.Filter.Presets); err != nil {
		return fmt.Errorf("invalid filter preset: %w", err)
	}

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Str("auth", cfg.Twitter.Auth).
		Str("output", string(outFormat)).
		Msg("Initialized Twitter client")

	return nil
}

// outputOptions takes the config values unless --details or --entities was
// given, in which case the flag wins in either direction
func outputOptions(cmd *cobra.Command, oc config.OutputConfig) format.Options {
	options := format.Options{
		ShowDetails:  oc.Details,
		ShowEntities: oc.Entities,
	}
	if cmd.Flags().Changed("details") {
		options.ShowDetails = showDetails
	}
	if cmd.Flags().Changed("entities") {
		options.ShowEntities = showEntity
	}
	return options
}

// newHTTPClient returns an http.Client authenticating as configured
func newHTTPClient(ctx context.Context, tc config.TwitterConfig) (*http.Client, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	switch tc.Auth {
	case config.AuthApp:
		return twitter.NewAppHTTPClient(ctx, tc.ConsumerKey, tc.ConsumerSecret, tc.TokenURL, tc.Timeout)
	default:
		return twitter.NewUserHTTPClient(ctx, tc.Credentials(), tc.Timeout)
	}
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !isTerminal(os.Stderr),
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
