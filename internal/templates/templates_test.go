package templates

import (
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	for _, name := range []string{HexHeader, HexFooter, Manifest} {
		content, err := Get(name)
		if err != nil {
			t.Fatalf("Get(%s) failed: %v", name, err)
		}
		if content == "" {
			t.Errorf("template %s is empty", name)
		}
	}

	if _, err := Get("missing.tmpl"); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestParse_Footer(t *testing.T) {
	tmpl, err := Parse(HexFooter, nil)
	if err != nil {
		t.Fatal(err)
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, struct{ MacroName string }{"__DSDT_HEX__"}); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), "};\n#endif // __DSDT_HEX__\n"; got != want {
		t.Errorf("footer = %q, want %q", got, want)
	}
}
