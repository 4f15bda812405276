package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestPrintLines(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	Out = &buf

	PrintHeader("Converting 2 table(s)")
	PrintSuccess("Dsdt", "Tables/Dsdt.hex (6 bytes)")
	PrintError("Bad.aml", "invalid file type")
	PrintWarning("Ssdt", "skipped")

	out := buf.String()
	for _, want := range []string{
		"\nConverting 2 table(s)\n",
		"  ✔ Dsdt            Tables/Dsdt.hex (6 bytes)\n",
		"  ✘ Bad.aml         invalid file type\n",
		"  ! Ssdt            skipped\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
