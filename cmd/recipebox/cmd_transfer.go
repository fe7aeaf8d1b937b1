package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"recipebox/internal/codec"

	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOutput string
	importFormat string
)

// exportCmd writes the list and likes to a file or stdout
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the shopping list and likes",
	Example: `  recipebox export > backup.json
  recipebox export --format yaml -o backup.yaml`,
	Args: cobra.NoArgs,
	RunE: runExport,
}

// importCmd replaces the list and likes from a file
var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Replace the shopping list and likes from an export",
	Long: `Replaces the shopping list and likes with the contents of an export.
The format is taken from the file extension unless --format is given.
Nothing is changed if the file is invalid.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: "+strings.Join(codec.Formats(), ", "))
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	importCmd.Flags().StringVarP(&importFormat, "format", "f", "", "input format (default: from file extension)")
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	if exportOutput == "" {
		return a.session.ExportTo(cmd.OutOrStdout(), exportFormat)
	}
	return writeFile(exportOutput, func(w io.Writer) error {
		return a.session.ExportTo(w, exportFormat)
	})
}

// writeFile creates path and runs write on it
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	return writeAndClose(f, write)
}

// writeAndClose returns the close error when write succeeded
func writeAndClose(wc io.WriteCloser, write func(io.Writer) error) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close output: %w", cerr)
		}
	}()
	return write(wc)
}

func runImport(cmd *cobra.Command, args []string) error {
	format := importFormat
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(args[0]), ".")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()

	a, err := newApp(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	snap, err := a.session.ImportFrom(cmd.Context(), f, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d list items and %d likes\n", len(snap.List), len(snap.Likes))
	return nil
}
