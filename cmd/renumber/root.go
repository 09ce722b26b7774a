package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/renumber/cmd/renumber/opts"
	"github.com/walteh/renumber/pkg/config"
	"github.com/walteh/renumber/pkg/listing"
	"github.com/walteh/renumber/pkg/log"
	"github.com/walteh/renumber/pkg/pairing"
	"github.com/walteh/renumber/pkg/transfer"
	"gitlab.com/tozd/go/errors"
)

// rootFlags holds the raw command line values
type rootFlags struct {
	configFile string
	copy       bool
	prefix     string
	verbose    bool
	dryRun     bool
	sort       bool
	ignore     []string
	debug      bool
}

// newRootCmd creates the renumber command writing user output to out
func newRootCmd(out io.Writer) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "renumber SOURCE [DESTINATION]",
		Short: "Rename files based on their folder",
		Long: `renumber gives every regular file directly inside SOURCE a numbered name,
PREFIX_N plus the original extension, and moves or copies it into DESTINATION.

PREFIX defaults to the name of SOURCE and DESTINATION defaults to the current
directory. Existing files at a computed destination are overwritten.`,
		Args:          cobra.RangeArgs(1, 2),
		Version:       version(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(setupLogging(cmd.Context(), flags.debug))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			o, err := newRootOpts(ctx, cmd, flags, args)
			if err != nil {
				return err
			}

			return run(ctx, o, out)
		},
	}

	cmd.SetVersionTemplate(versionTemplate)
	cmd.SetOut(out)
	addRootFlags(cmd, flags)

	return cmd
}

// addRootFlags adds the flags to the root command
func addRootFlags(cmd *cobra.Command, flags *rootFlags) {
	cmd.Flags().BoolVarP(&flags.copy, "copy", "c", false, "copy instead of moving")
	cmd.Flags().StringVarP(&flags.prefix, "prefix", "p", "", "file name prefix (default: source folder name)")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "log file actions")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "d", false, "do nothing, only report what would happen")
	cmd.Flags().BoolVar(&flags.sort, "sort", false, "number files in lexicographic order instead of directory order")
	cmd.Flags().StringArrayVar(&flags.ignore, "ignore", nil, "skip files whose name matches this glob (repeatable)")
	cmd.Flags().StringVar(&flags.configFile, "config", "", "config file path (.yaml, .yml, .json or .hcl)")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
}

// setupLogging attaches a stderr zerolog logger to ctx
func setupLogging(ctx context.Context, debug bool) context.Context {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	return logger.WithContext(ctx)
}

// newRootOpts resolves paths, config and flags into the options of one run.
// Nothing here touches the files being renamed.
func newRootOpts(ctx context.Context, cmd *cobra.Command, flags *rootFlags, args []string) (*opts.RootOpts, error) {
	logger := zerolog.Ctx(ctx)

	cfg := &config.Config{}
	if flags.configFile != "" {
		loaded, err := config.Load(ctx, flags.configFile)
		if err != nil {
			return nil, errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("copy") {
		cfg.Copy = flags.copy
	}
	// an explicit --prefix wins even when empty; an empty config prefix means unset
	var prefixOverride *string
	if cfg.Prefix != "" {
		prefixOverride = &cfg.Prefix
	}
	if changed("prefix") {
		cfg.Prefix = flags.prefix
		prefixOverride = &flags.prefix
	}
	if changed("verbose") {
		cfg.Verbose = flags.verbose
	}
	if changed("dry-run") {
		cfg.DryRun = flags.dryRun
	}
	if changed("sort") {
		cfg.Sort = flags.sort
	}
	cfg.Ignore = append(cfg.Ignore, flags.ignore...)

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating options: %w", err)
	}

	source, err := config.ResolveDir(args[0])
	if err != nil {
		return nil, errors.Errorf("failed to canonicalize source path: %w", err)
	}

	destArg := "."
	if len(args) > 1 {
		destArg = args[1]
	}
	destination, err := config.ResolveDir(destArg)
	if err != nil {
		return nil, errors.Errorf("failed to canonicalize destination path: %w", err)
	}

	// the prefix comes from the argument as typed, not the resolved directory
	prefix, err := config.DerivePrefix(prefixOverride, args[0])
	if err != nil {
		return nil, err
	}

	o := &opts.RootOpts{
		Source:      source,
		Destination: destination,
		Prefix:      prefix,
		Listing:     cfg.ListingOptions(),
		Transfer:    transfer.SelectOptions(cfg.Copy, cfg.DryRun, cfg.Verbose),
	}

	logger.Debug().
		Str("source", o.Source).
		Str("destination", o.Destination).
		Str("prefix", o.Prefix).
		Str("mode", o.Transfer.Mode.String()).
		Bool("verbose", o.Transfer.Verbose).
		Bool("sort", o.Listing.Sort).
		Strs("ignore", o.Listing.Ignore).
		Msg("resolved options")

	return o, nil
}

// run lists, pairs and transfers. Only a listing failure is returned;
// per-file failures are reported and counted.
func run(ctx context.Context, o *opts.RootOpts, out io.Writer) error {
	user := log.NewUserLoggerTo(ctx, out)

	files, err := listing.List(ctx, o.Source, o.Listing)
	if err != nil {
		return errors.Errorf("listing source files: %w", err)
	}

	pairs := pairing.Generate(files, o.Destination, o.Prefix)

	exec, err := transfer.NewExecutor(o.Transfer, log.New(out, *zerolog.Ctx(ctx)))
	if err != nil {
		return errors.Errorf("creating executor: %w", err)
	}

	if o.Transfer.Verbose {
		user.LogRunStart(log.RunInfo{
			Source:      o.Source,
			Destination: o.Destination,
			Prefix:      o.Prefix,
			Mode:        o.Transfer.Mode.String(),
			Files:       len(pairs),
		})
	}

	summary := exec.Execute(ctx, pairs)

	user.LogSummary(summary.Succeeded(), summary.Failed(), o.Transfer.Mode == transfer.Simulate)

	return nil
}
