package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rmadrazo97/dreamhome/internal/config"
	"github.com/rmadrazo97/dreamhome/internal/domain"
	"github.com/rmadrazo97/dreamhome/internal/formatting"
	"github.com/rmadrazo97/dreamhome/internal/output"
	"github.com/rmadrazo97/dreamhome/pkg/coerce"
	"github.com/rmadrazo97/dreamhome/pkg/geoutil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	envCatalog  = "PRICEFMT_CATALOG"
	envCurrency = "PRICEFMT_CURRENCY"
)

// errInvalidCoordinates makes `coords` exit non-zero without extra noise.
var errInvalidCoordinates = errors.New("invalid coordinates")

type rootOptions struct {
	verbose bool
	logger  *zap.SugaredLogger
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:           "pricefmt",
		Short:         "Format listing prices for display",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to build logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newFormatCommand(opts),
		newNumberCommand(),
		newCoordsCommand(),
		newSheetCommand(opts),
		newPresetCommand(),
	)
	return root
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.OutputPaths = []string{"stderr"}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

type currencyFlags struct {
	catalog  string
	currency string
}

func (cf *currencyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&cf.catalog, "catalog", os.Getenv(envCatalog), "currency catalog file (YAML or JSON) [$"+envCatalog+"]")
	cmd.Flags().StringVar(&cf.currency, "currency", os.Getenv(envCurrency), "currency code, defaults to the catalog default [$"+envCurrency+"]")
}

// resolve returns nil without error when no catalog was given; the formatter
// then uses its unconverted fallback.
func (cf *currencyFlags) resolve(logger config.Logger) (*domain.CurrencyConfig, error) {
	if cf.catalog == "" {
		logger.Warnf("no currency catalog given, prices are shown unconverted")
		return nil, nil
	}
	parser := config.NewInputParser(logger)
	catalog, err := parser.LoadCatalogFromFile(cf.catalog)
	if err != nil {
		return nil, err
	}
	return parser.ResolveCurrency(catalog, cf.currency)
}

func newFormatCommand(opts *rootOptions) *cobra.Command {
	var (
		cf        currencyFlags
		noSymbol  bool
		strict    bool
		noCompact bool
	)
	cmd := &cobra.Command{
		Use:   "format <price>...",
		Short: "Convert and format prices with a catalog currency",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.resolve(opts.logger)
			if err != nil {
				return err
			}
			var fopts []formatting.Option
			if noCompact {
				fopts = append(fopts, formatting.WithoutCompaction())
			}
			f := formatting.New(fopts...)
			for _, arg := range args {
				if !strict {
					fmt.Fprintln(cmd.OutOrStdout(), f.Format(arg, !noSymbol, cfg))
					continue
				}
				out, err := f.FormatStrict(arg, !noSymbol, cfg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cf.register(cmd)
	cmd.Flags().BoolVar(&noSymbol, "no-symbol", false, "print the amount without the currency symbol")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail on unparseable prices or missing config")
	cmd.Flags().BoolVar(&noCompact, "no-compact", false, "do not abbreviate large amounts to K/M")
	return cmd
}

func newNumberCommand() *cobra.Command {
	var places int
	cmd := &cobra.Command{
		Use:   "number <value>",
		Short: "Print a value with a fixed number of decimals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), coerce.FormatNumber(args[0], places))
			return nil
		},
	}
	cmd.Flags().IntVar(&places, "places", coerce.DefaultDecimalPlaces, "fractional digits")
	return cmd
}

func newCoordsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "coords <lat> <lng>",
		Short: "Check that a latitude/longitude pair is in range",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !geoutil.ValidCoordinates(args[0], args[1]) {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid")
				return errInvalidCoordinates
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}
}

func newSheetCommand(opts *rootOptions) *cobra.Command {
	var (
		cf       currencyFlags
		listings string
		format   string
		outDir   string
	)
	cmd := &cobra.Command{
		Use:   "sheet",
		Short: "Render a price sheet for a listings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := cf.resolve(opts.logger)
			if err != nil {
				return err
			}
			parser := config.NewInputParser(opts.logger)
			items, err := parser.LoadListingsFromFile(listings)
			if err != nil {
				return err
			}
			sheet := output.BuildPriceSheet(items, cfg, nil)

			if outDir != "" {
				f := output.GetFormatterByName(format)
				if f == nil {
					return fmt.Errorf("%w: %q", output.ErrUnsupportedFormat, format)
				}
				name, err := output.WriteFormatted(f, sheet, outDir)
				if err != nil {
					return err
				}
				opts.logger.Infow("price sheet written", "file", name, "rows", len(sheet.Rows))
				return nil
			}

			data, err := output.Render(sheet, format)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cf.register(cmd)
	cmd.Flags().StringVar(&listings, "listings", "", "listings file (YAML or JSON)")
	cmd.Flags().StringVar(&format, "format", "console", "output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().StringVar(&outDir, "out", "", "write to a timestamped file in this directory instead of stdout")
	_ = cmd.MarkFlagRequired("listings")
	return cmd
}

func newPresetCommand() *cobra.Command {
	var (
		locale string
		iso    string
	)
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Print a currency config derived from CLDR locale data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, err := language.Parse(locale)
			if err != nil {
				return fmt.Errorf("invalid locale %q: %w", locale, err)
			}
			cfg, err := config.PresetFor(tag, iso)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return err
			}
			return enc.Close()
		},
	}
	cmd.Flags().StringVar(&locale, "locale", "en", "BCP 47 language tag")
	cmd.Flags().StringVar(&iso, "iso", "USD", "ISO 4217 currency code")
	return cmd
}
