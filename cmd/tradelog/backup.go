package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"tradelog/internal/services"
)

var (
	exportPath string
	importPath string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the journal as a JSON backup document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withServices(func(s journalServices) error {
			backup, err := s.backup.Export(userID)
			if err != nil {
				return err
			}

			if exportPath == "" || exportPath == "-" {
				return writeBackup(cmd.OutOrStdout(), backup)
			}
			return writeBackupFile(exportPath, backup)
		})
	},
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Replace the journal with a JSON backup document",
	Long: `Import deletes every month record and trade the user owns and writes the
document's contents in their place. Derived fields are recomputed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(importPath)
		if err != nil {
			return fmt.Errorf("open %s: %w", importPath, err)
		}
		defer f.Close()

		backup, err := readBackup(f)
		if err != nil {
			return err
		}

		return withServices(func(s journalServices) error {
			summary, err := s.backup.Replace(userID, *backup)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d months and %d trades\n", summary.Months, summary.Trades)
			return nil
		})
	},
}

// writeBackupFile writes backup to path. A failed close is an error, since
// it can leave a truncated document behind.
func writeBackupFile(path string, backup *services.Backup) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()
	return writeBackup(f, backup)
}

func init() {
	rootCmd.AddCommand(exportCmd, importCmd)

	exportCmd.Flags().StringVarP(&exportPath, "output", "o", "-", "output file (- for stdout)")
	importCmd.Flags().StringVarP(&importPath, "file", "f", "", "backup document to import (required)")
	importCmd.MarkFlagRequired("file")
}

func writeBackup(w io.Writer, backup *services.Backup) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(backup)
}

func readBackup(r io.Reader) (*services.Backup, error) {
	var backup services.Backup
	if err := json.NewDecoder(r).Decode(&backup); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	return &backup, nil
}
