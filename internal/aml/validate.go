// Package aml checks that an input file looks like an ACPI definition block
// and derives the names used when converting it to a .hex file.
package aml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// SignatureLen is the number of leading bytes inspected for a table signature.
const SignatureLen = 4

// HexExt is the extension of generated files.
const HexExt = ".hex"

var (
	// ErrNotFound is returned when the input path does not exist.
	ErrNotFound = errors.New("input file not found")
	// ErrInvalidSignature is returned when the first bytes of the input
	// carry neither a DSDT nor an SSDT signature.
	ErrInvalidSignature = errors.New("invalid file type")
)

// Signatures lists the table signatures accepted as AML input.
var Signatures = []string{"DSDT", "SSDT"}

// Request is the result of a successful validation. It carries everything the
// encoder needs to produce a HexDocument.
type Request struct {
	// InputPath is the path of the AML file as given by the caller.
	InputPath string
	// OutputPath is <OutDir>/<BaseName>.hex.
	OutputPath string
	// BaseName is the input file name without directory and extension.
	// It is not sanitized; characters that are invalid in C identifiers pass through.
	BaseName string
}

// Validator validates AML inputs and reports rejections to its logger.
type Validator struct {
	logger *slog.Logger
}

// NewValidator returns a Validator that reports through logger.
// A nil logger discards all messages.
func NewValidator(logger *slog.Logger) *Validator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Validator{logger: logger}
}

// Validate checks inputPath and derives the conversion request.
//
// Parameters:
//   - inputPath: Path to the AML file.
//   - outDir: Output directory. If empty, the input's own directory is used.
//     If set and missing, it is created.
//
// Returns:
//   - Request: The derived request.
//   - error: ErrNotFound or ErrInvalidSignature (wrapped) for rejected inputs,
//     or any other I/O error.
func (v *Validator) Validate(inputPath, outDir string) (Request, error) {
	if _, err := os.Stat(inputPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			v.logger.Error("file open failure", "file", inputPath)
			return Request{}, fmt.Errorf("%w: %s", ErrNotFound, inputPath)
		}
		return Request{}, err
	}

	sig, err := readSignature(inputPath)
	if err != nil {
		return Request{}, err
	}
	if !HasSignature(sig) {
		v.logger.Info("Invalid file type. File does not have a valid DSDT or SSDT signature", "file", inputPath)
		return Request{}, fmt.Errorf("%w: %s has no DSDT or SSDT signature", ErrInvalidSignature, inputPath)
	}

	baseName := BaseName(inputPath)

	if outDir == "" {
		outDir = filepath.Dir(inputPath)
	} else if err := os.MkdirAll(outDir, 0755); err != nil {
		return Request{}, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	return Request{
		InputPath:  inputPath,
		OutputPath: filepath.Join(outDir, baseName+HexExt),
		BaseName:   baseName,
	}, nil
}

// readSignature returns at most SignatureLen leading bytes of the file.
func readSignature(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buf := make([]byte, SignatureLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return buf[:n], nil
}

// HasSignature reports whether sig contains one of the accepted signatures.
// The match is a case-sensitive substring match, so a short read simply fails.
func HasSignature(sig []byte) bool {
	for _, s := range Signatures {
		if bytes.Contains(sig, []byte(s)) {
			return true
		}
	}
	return false
}

// BaseName strips the directory and the extension from path.
// Leading dots of the file name are not treated as an extension separator,
// so ".aml" stays ".aml" and "Tables/Dsdt.aml" becomes "Dsdt".
func BaseName(path string) string {
	name := filepath.Base(path)
	trimmed := strings.TrimLeft(name, ".")
	if i := strings.LastIndex(trimmed, "."); i >= 0 {
		return name[:len(name)-len(trimmed)+i]
	}
	return name
}
