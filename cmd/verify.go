package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acpitools/amltohex/internal/hexgen"
	"github.com/acpitools/amltohex/internal/ui"
)

// verifyCmd represents the verify command.
var verifyCmd = &cobra.Command{
	Use:   "verify <hex-file> <aml-file>",
	Short: "Check that a generated .hex file holds exactly the bytes of an AML file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

// runVerify decodes the array in hexPath and compares it byte by byte with amlPath.
func runVerify(hexPath, amlPath string) error {
	f, err := os.Open(hexPath)
	if err != nil {
		return err
	}
	defer f.Close()

	arr, err := hexgen.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", hexPath, err)
	}

	want, err := os.ReadFile(amlPath)
	if err != nil {
		return err
	}

	n := min(len(arr.Data), len(want))
	for i := 0; i < n; i++ {
		if arr.Data[i] != want[i] {
			return fmt.Errorf("%s differs from %s at offset %d: 0x%02X != 0x%02X", hexPath, amlPath, i, arr.Data[i], want[i])
		}
	}
	if len(arr.Data) != len(want) {
		return fmt.Errorf("%s holds %d bytes, %s has %d", hexPath, len(arr.Data), amlPath, len(want))
	}

	ui.PrintSuccess(arr.Name, fmt.Sprintf("matches %s (%d bytes)", amlPath, len(want)))
	return nil
}
