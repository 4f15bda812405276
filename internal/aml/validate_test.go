package aml

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func newTestValidator() (*Validator, *bytes.Buffer) {
	var logs bytes.Buffer
	return NewValidator(slog.New(slog.NewTextHandler(&logs, nil))), &logs
}

func TestHasSignature(t *testing.T) {
	tests := []struct {
		sig  []byte
		want bool
	}{
		{[]byte("DSDT"), true},
		{[]byte("SSDT"), true},
		{[]byte("dsdt"), false},
		{[]byte("FACP"), false},
		{[]byte("DSD"), false},
		{[]byte{0, 0, 0, 0}, false},
		{nil, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, HasSignature(tt.sig), "signature %q", tt.sig)
	}
}

func TestBaseName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"Dsdt.aml", "Dsdt"},
		{filepath.Join("Tables", "Dsdt.aml"), "Dsdt"},
		{filepath.Join("a.b", "Ssdt"), "Ssdt"},
		{"Ssdt.cpu.aml", "Ssdt.cpu"},
		{".aml", ".aml"},
		{"..Dsdt.aml", "..Dsdt"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BaseName(tt.path), "path %q", tt.path)
	}
}

func TestValidate_Success(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "Dsdt.aml", []byte("DSDT\x01\x02\x03"))

	v, _ := newTestValidator()
	req, err := v.Validate(input, "")
	require.NoError(t, err)
	assert.Equal(t, Request{
		InputPath:  input,
		OutputPath: filepath.Join(dir, "Dsdt.hex"),
		BaseName:   "Dsdt",
	}, req)
}

func TestValidate_CreatesOutDir(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "Ssdt1.aml", []byte("SSDT"))
	outDir := filepath.Join(dir, "out", "acpi")

	v, _ := newTestValidator()
	req, err := v.Validate(input, outDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "Ssdt1.hex"), req.OutputPath)

	info, err := os.Stat(outDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestValidate_NotFound(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	v, logs := newTestValidator()
	_, err := v.Validate(filepath.Join(dir, "missing.aml"), outDir)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, logs.String(), "level=ERROR")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr), "output directory must not be created")
}

func TestValidate_InvalidSignature(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"zeros", make([]byte, 64)},
		{"other table", []byte("FACP\x00\x00\x00\x00")},
		{"short", []byte("DS")},
		{"empty", nil},
		{"signature after first four bytes", []byte("\x00DSDT")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			input := writeFile(t, dir, "Table.aml", tt.data)

			v, logs := newTestValidator()
			_, err := v.Validate(input, "")
			require.ErrorIs(t, err, ErrInvalidSignature)
			assert.NotErrorIs(t, err, ErrNotFound)
			assert.Contains(t, logs.String(), "level=INFO")

			_, statErr := os.Stat(filepath.Join(dir, "Table.hex"))
			assert.True(t, os.IsNotExist(statErr), "no output expected")
		})
	}
}

func TestNewValidator_NilLogger(t *testing.T) {
	v := NewValidator(nil)
	_, err := v.Validate(filepath.Join(t.TempDir(), "nope.aml"), "")
	assert.ErrorIs(t, err, ErrNotFound)
}
