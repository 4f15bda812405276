package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/acpitools/amltohex/internal/aml"
	"github.com/acpitools/amltohex/internal/hexgen"
	"github.com/acpitools/amltohex/internal/ui"
	"github.com/acpitools/amltohex/internal/version"
)

// convertOptions holds the flags of the root command.
type convertOptions struct {
	// OutDir is the output directory. Empty means the input's directory.
	OutDir string
	// Identity overrides the tool identity in the generated header.
	Identity string
}

var rootOpts convertOptions

// rootCmd represents the base command. Called with a single AML file, it converts it.
var rootCmd = &cobra.Command{
	Use:   "amltohex [flags] <InputFile>",
	Short: "Convert an AML file to a .hex file containing the AML bytecode stored in a C array",
	Long: `amltohex converts a DSDT or SSDT AML file to a .hex file containing the AML
bytecode stored in a C array. By default, "Tables/Dsdt.aml" will generate
"Tables/Dsdt.hex". "Tables/Dsdt.hex" will contain a C array named
"dsdt_aml_code" that contains the AML bytecode.`,
	Args:          cobra.ExactArgs(1),
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeLog, err := newLogger(cmd, "", "")
		if err != nil {
			return err
		}
		defer closeLog()

		return runConvert(logger, args[0], rootOpts)
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main(). It exits the process with the resulting code.
func Execute() {
	os.Exit(ClampExitCode(run(os.Args[1:])))
}

// run executes the command tree with args and maps the outcome to an exit code.
func run(args []string) int {
	rootCmd.SetArgs(disambiguateInput(args))
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		return 1
	}
	return 0
}

// ClampExitCode keeps exit codes in the portable 0-127 range; anything else becomes 1.
func ClampExitCode(code int) int {
	if code < 0 || code > 127 {
		return 1
	}
	return code
}

// reportError prints err unless it was already reported. Missing inputs and invalid
// signatures are logged by the validator, so they are only repeated here when the
// log goes to a file. Batch failures are printed per table.
func reportError(err error) {
	var merr *multierror.Error
	switch {
	case errors.As(err, &merr):
		ui.PrintError("Failed", fmt.Sprintf("%d table(s) could not be converted", len(merr.Errors)))
	case errors.Is(err, aml.ErrNotFound):
		if logToFile {
			ui.PrintError("Error", err.Error())
		}
	case errors.Is(err, aml.ErrInvalidSignature):
		if logToFile {
			ui.PrintWarning("Skipped", err.Error())
		}
	default:
		ui.PrintError("Error", err.Error())
	}
}

// disambiguateInput rewrites the positional argument to "./<name>" when it names both
// a subcommand and an existing regular file, so the file is converted.
func disambiguateInput(args []string) []string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if a == "--" {
			return args
		}
		if strings.HasPrefix(a, "-") {
			if !strings.Contains(a, "=") && flagTakesValue(a) {
				i++
			}
			continue
		}
		if !isCommandName(a) {
			return args
		}
		if info, err := os.Stat(a); err != nil || !info.Mode().IsRegular() {
			return args
		}
		out := append([]string(nil), args...)
		out[i] = "." + string(filepath.Separator) + a
		return out
	}
	return args
}

func flagTakesValue(arg string) bool {
	var f *pflag.Flag
	for _, fs := range []*pflag.FlagSet{rootCmd.Flags(), rootCmd.PersistentFlags()} {
		if strings.HasPrefix(arg, "--") {
			f = fs.Lookup(strings.TrimPrefix(arg, "--"))
		} else if len(arg) == 2 {
			f = fs.ShorthandLookup(arg[1:])
		}
		if f != nil {
			return f.NoOptDefVal == ""
		}
	}
	return false
}

// isCommandName reports whether name selects a subcommand, including the help and
// completion commands cobra adds during Execute.
func isCommandName(name string) bool {
	if name == "help" || name == "completion" {
		return true
	}
	for _, c := range rootCmd.Commands() {
		if c.Name() == name || c.HasAlias(name) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.Flags().StringVarP(&rootOpts.OutDir, "out-dir", "o", "", "Output directory where the .hex file will be generated. Default is the input file's directory.")
	rootCmd.Flags().StringVar(&rootOpts.Identity, "identity", "", "Tool identity written into the generated header (default \""+hexgen.DefaultIdentity()+"\")")
	addLoggingFlags(rootCmd.PersistentFlags())
}

// runConvert validates inputPath and converts it to a .hex file.
//
// Parameters:
//   - logger: Receives rejection and progress messages.
//   - inputPath: Path to the AML file.
//   - opts: Output directory and identity overrides.
//
// Returns:
//   - error: aml.ErrNotFound or aml.ErrInvalidSignature (wrapped) for rejected
//     inputs, or any I/O error.
func runConvert(logger *slog.Logger, inputPath string, opts convertOptions) error {
	req, err := aml.NewValidator(logger).Validate(inputPath, opts.OutDir)
	if err != nil {
		return err
	}

	n, err := hexgen.Convert(req.InputPath, req.OutputPath, req.BaseName, hexgen.Options{Identity: opts.Identity})
	if err != nil {
		return err
	}

	logger.Debug("generated hex file", "input", req.InputPath, "output", req.OutputPath, "bytes", n)
	ui.PrintSuccess(req.BaseName, fmt.Sprintf("%s (%d bytes)", req.OutputPath, n))
	return nil
}
