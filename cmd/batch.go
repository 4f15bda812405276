package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"

	"github.com/acpitools/amltohex/internal/aml"
	"github.com/acpitools/amltohex/internal/config"
	"github.com/acpitools/amltohex/internal/ui"
)

// batchCmd represents the batch command.
var batchCmd = &cobra.Command{
	Use:   "batch [manifest]",
	Short: "Convert every AML file listed in a manifest (default " + config.DefaultManifest + ")",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		manifest := config.DefaultManifest
		if len(args) == 1 {
			manifest = args[0]
		}

		cfg, err := config.Load(manifest)
		if err != nil {
			return err
		}

		logger, closeLog, err := newLogger(cmd, cfg.Logging.Level, cfg.Logging.Path)
		if err != nil {
			return err
		}
		defer closeLog()

		return runBatch(logger, cfg)
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

// runBatch converts the tables of cfg one after another. A failing table does not
// stop the others; all failures are returned together. Tables without a DSDT or SSDT
// signature are shown as warnings rather than errors.
func runBatch(logger *slog.Logger, cfg *config.Config) error {
	ui.PrintHeader(fmt.Sprintf("Converting %d table(s)", len(cfg.Tables)))

	var result *multierror.Error
	for _, t := range cfg.Tables {
		opts := convertOptions{
			OutDir:   cfg.OutDirFor(t),
			Identity: cfg.Identity,
		}
		if err := runConvert(logger, t.Input, opts); err != nil {
			if errors.Is(err, aml.ErrInvalidSignature) {
				ui.PrintWarning(t.Input, err.Error())
			} else {
				ui.PrintError(t.Input, err.Error())
			}
			result = multierror.Append(result, fmt.Errorf("%s: %w", t.Input, err))
		}
	}
	return result.ErrorOrNil()
}
