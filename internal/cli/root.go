package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/config"
	"github.com/llehouerou/marquee/internal/errmsg"
	"github.com/llehouerou/marquee/internal/poster"
	"github.com/llehouerou/marquee/internal/ui/deck"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. main
// calls it with values injected via ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// options holds the global flags and the configuration they resolve to.
type options struct {
	configPath string
	dataPath   string
	noImages   bool
	verbose    bool

	cfg *config.Config
}

// Execute runs the marquee CLI.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "marquee",
		Short:         "Browse event posters in a spring-animated terminal carousel",
		Long:          `marquee shows a stack of event posters. Moving through them slides, scales and flips every poster from one spring-animated index, with a label panel scrolling along.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			level := parseLevel(cfg.LogLevel, opts.verbose)
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts.cfg, cmd.OutOrStdout())
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("marquee %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (TOML), read after the standard locations")
	flags.StringVar(&opts.dataPath, "data", "", "poster data file (TOML), overrides data_file")
	flags.BoolVar(&opts.noImages, "no-images", false, "never load poster images")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newFramesCmd(opts))

	return root
}

// loadConfig reads the configuration and applies the command-line overrides.
func loadConfig(opts *options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, failed(errmsg.OpConfigLoad, err)
	}
	if opts.dataPath != "" {
		cfg.DataFile = opts.dataPath
	}
	if opts.noImages {
		cfg.ImageProtocol = "none"
	}
	return cfg, nil
}

// loadPosters returns the posters from the data file, or the built-in set
// when no data file is configured.
func loadPosters(cfg *config.Config) ([]poster.Item, error) {
	if cfg.DataFile == "" {
		return poster.Defaults(), nil
	}
	items, err := poster.Load(cfg.DataFile)
	if err != nil {
		return nil, failed(errmsg.OpPostersLoad, err)
	}
	return items, nil
}

func springConfig(cfg *config.Config) carousel.SpringConfig {
	s := cfg.GetSpringConfig()
	return carousel.SpringConfig{
		FPS:              s.FPS,
		Frequency:        s.Frequency,
		Damping:          s.Damping,
		RestDisplacement: s.RestDisplacement,
		RestSpeed:        s.RestSpeed,
	}
}

func deckConfig(cfg *config.Config) deck.Config {
	d := cfg.GetDeckConfig()
	return deck.Config{
		PixelsPerCell:  d.PixelsPerCell,
		CardWidthRatio: d.CardWidthRatio,
	}
}
