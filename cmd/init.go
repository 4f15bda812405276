package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/acpitools/amltohex/internal/config"
	"github.com/acpitools/amltohex/internal/templates"
	"github.com/acpitools/amltohex/internal/ui"
)

var (
	initManifest string
	initOutDir   string
)

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [aml-files...]",
	Short: "Write a starter " + config.DefaultManifest + " batch manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInit(initManifest, initOutDir, args)
	},
}

func init() {
	initCmd.Flags().StringVarP(&initManifest, "file", "f", config.DefaultManifest, "Manifest path to create")
	initCmd.Flags().StringVarP(&initOutDir, "out-dir", "o", "", "Default output directory recorded in the manifest")
	rootCmd.AddCommand(initCmd)
}

// runInit creates a manifest at path listing inputs. An existing file is never overwritten.
//
// Parameters:
//   - path: The manifest file to create.
//   - outDir: The default output directory written to the manifest.
//   - inputs: AML files to list. If empty, a placeholder entry is written.
//
// Returns:
//   - error: An error if the file already exists or cannot be written.
func runInit(path, outDir string, inputs []string) error {
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		return fmt.Errorf("%s already exists", path)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	slashed := make([]string, len(inputs))
	for i, in := range inputs {
		slashed[i] = filepath.ToSlash(in)
	}

	data := struct {
		ManifestName string
		OutDir       string
		Inputs       []string
	}{
		ManifestName: filepath.Base(path),
		OutDir:       filepath.ToSlash(outDir),
		Inputs:       slashed,
	}
	if err := generateFileFromTemplate(templates.Manifest, path, data); err != nil {
		return err
	}

	ui.PrintSuccess("Created", path)
	return nil
}

// generateFileFromTemplate creates a file at destPath using the specified template and data.
// The file is created exclusively.
func generateFileFromTemplate(tmplName, destPath string, data interface{}) error {
	t, err := templates.Parse(tmplName, nil)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	if err := t.Execute(f, data); err != nil {
		f.Close()
		os.Remove(destPath)
		return err
	}
	return f.Close()
}
