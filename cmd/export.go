package cmd

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/theirongolddev/radar/internal/tracker"
)

var (
	flagExportFormat string
	flagExportOutput string
	flagImportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all habits, goals, and day annotations as JSON or YAML",
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Load a backup written by export (use - for stdin)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

func init() {
	exportCmd.Flags().StringVarP(&flagExportFormat, "format", "f", "", "json or yaml (default from file extension, else json)")
	exportCmd.Flags().StringVarP(&flagExportOutput, "output", "o", "", "Output file (default stdout)")
	importCmd.Flags().StringVarP(&flagImportFormat, "format", "f", "", "json or yaml (default from file extension, else json)")
	rootCmd.AddCommand(exportCmd, importCmd)
}

// backupFormat picks the explicit format, else one implied by the file name.
func backupFormat(explicit, path string) (tracker.Format, error) {
	if explicit != "" {
		return tracker.ParseFormat(explicit)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return tracker.FormatYAML, nil
	}
	return tracker.FormatJSON, nil
}

func runExport(_ *cobra.Command, _ []string) error {
	f, err := backupFormat(flagExportFormat, flagExportOutput)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	b, err := tracker.Export(a.db, a.clock.Now(), a.log)
	if err != nil {
		return err
	}

	if flagExportOutput == "" || flagExportOutput == "-" {
		return tracker.EncodeBackup(os.Stdout, b, f)
	}

	if err := writeBackup(flagExportOutput, b, f); err != nil {
		return err
	}
	if !flagQuiet {
		fmt.Fprintf(os.Stderr, "  Exported %d habits, %d goals, %d days to %s\n",
			len(b.Habits), len(b.Goals), len(b.Days), flagExportOutput)
	}
	return nil
}

// writeBackup encodes b in full before touching path, so a failed write
// never reports success.
func writeBackup(path string, b tracker.Backup, f tracker.Format) error {
	var buf bytes.Buffer
	if err := tracker.EncodeBackup(&buf, b, f); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func runImport(_ *cobra.Command, args []string) error {
	path := args[0]
	f, err := backupFormat(flagImportFormat, path)
	if err != nil {
		return err
	}

	var r io.Reader = os.Stdin
	if path != "-" {
		in, err := os.Open(path) //nolint:gosec // user-supplied backup path
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer in.Close()
		r = in
	}

	b, err := tracker.DecodeBackup(r, f)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if err := tracker.Import(a.db, b, a.log); err != nil {
		return err
	}
	fmt.Printf("  Imported %d habits, %d goals, %d days\n", len(b.Habits), len(b.Goals), len(b.Days))
	return nil
}
