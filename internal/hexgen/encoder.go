// Package hexgen renders AML bytecode as a C byte array wrapped in an
// include guard, and reads such arrays back.
package hexgen

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/acpitools/amltohex/internal/templates"
	"github.com/acpitools/amltohex/internal/version"
)

// BytesPerLine is the number of byte literals written on each line of the array body.
const BytesPerLine = 8

// indent prefixes every line of the array body.
const indent = "  "

const hexDigits = "0123456789ABCDEF"

var (
	headerTmpl = template.Must(templates.Parse(templates.HexHeader, nil))
	footerTmpl = template.Must(templates.Parse(templates.HexFooter, nil))
)

// DefaultIdentity is the tool identity written into generated headers.
func DefaultIdentity() string {
	return "Go tool: amltohex " + version.Version
}

// MacroName returns the include guard macro for baseName, e.g. "Dsdt" -> "__DSDT_HEX__".
func MacroName(baseName string) string {
	return "__" + strings.ToUpper(baseName) + "_HEX__"
}

// ArrayName returns the array identifier for baseName, e.g. "Dsdt" -> "dsdt_aml_code".
func ArrayName(baseName string) string {
	return strings.ToLower(baseName) + "_aml_code"
}

// Document describes the surroundings of the byte array in a generated file.
type Document struct {
	// Identity names the generating tool on the second header line.
	Identity string
	// InputPath is the absolute path of the AML file, echoed in the header.
	InputPath string
	// MacroName is the include guard macro.
	MacroName string
	// ArrayName is the identifier of the byte array.
	ArrayName string
}

// NewDocument builds the Document for baseName.
func NewDocument(identity, inputPath, baseName string) Document {
	return Document{
		Identity:  identity,
		InputPath: inputPath,
		MacroName: MacroName(baseName),
		ArrayName: ArrayName(baseName),
	}
}

// Encode writes the header, one "0xNN, " literal per byte of r in input order,
// and the footer. A line break plus indentation follows every BytesPerLine-th literal,
// and the body always ends with a line break before the closing brace.
//
// A *bufio.Writer is written to directly; any other writer gets its own buffer.
// Returns the number of bytes read from r.
func Encode(w io.Writer, r io.Reader, doc Document) (int64, error) {
	bw, ok := w.(*bufio.Writer)
	if !ok {
		bw = bufio.NewWriter(w)
	}
	if err := headerTmpl.Execute(bw, doc); err != nil {
		return 0, fmt.Errorf("failed to write header: %w", err)
	}

	n, err := encodeBody(bw, bufio.NewReader(r))
	if err != nil {
		return n, err
	}

	if err := footerTmpl.Execute(bw, doc); err != nil {
		return n, fmt.Errorf("failed to write footer: %w", err)
	}
	return n, bw.Flush()
}

func encodeBody(w *bufio.Writer, r io.ByteReader) (int64, error) {
	lit := []byte("0x00, ")
	var cnt int64

	if _, err := w.WriteString(indent); err != nil {
		return 0, err
	}
	for {
		b, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return cnt, fmt.Errorf("failed to read input at offset %d: %w", cnt, err)
		}

		lit[2] = hexDigits[b>>4]
		lit[3] = hexDigits[b&0x0F]
		if _, err := w.Write(lit); err != nil {
			return cnt, err
		}
		cnt++
		if cnt%BytesPerLine == 0 {
			if _, err := w.WriteString("\n" + indent); err != nil {
				return cnt, err
			}
		}
	}
	_, err := w.WriteString("\n")
	return cnt, err
}

// Options controls Convert.
type Options struct {
	// Identity overrides DefaultIdentity when non-empty.
	Identity string
}

// Convert encodes the AML file at inputPath into outputPath, replacing any existing file.
// The output only appears once it is complete; on failure no partial file is left behind.
//
// Parameters:
//   - inputPath: Path to the AML file.
//   - outputPath: Path of the .hex file to generate.
//   - baseName: Base name used to derive the macro and array names.
//   - opts: Additional options.
//
// Returns:
//   - int64: Number of bytes encoded.
//   - error: Any I/O error.
func Convert(inputPath, outputPath, baseName string, opts Options) (int64, error) {
	absInput, err := filepath.Abs(inputPath)
	if err != nil {
		return 0, err
	}

	identity := opts.Identity
	if identity == "" {
		identity = DefaultIdentity()
	}
	doc := NewDocument(identity, absInput, baseName)

	in, err := os.Open(inputPath)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	var n int64
	err = WriteFileAtomic(outputPath, func(w io.Writer) error {
		var encErr error
		n, encErr = Encode(w, in, doc)
		return encErr
	})
	if err != nil {
		return n, fmt.Errorf("failed to generate %s: %w", outputPath, err)
	}
	return n, nil
}
