package main

import (
	"fmt"
	"os"

	"trivia-api/internal/database"
	"trivia-api/internal/services"
	"trivia-api/internal/transfer"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Write every question to a JSON or CSV file",
		Long: `Write every question, ordered by id, to FILE. The format follows the
file extension (.csv for CSV, anything else for JSON) unless --format is set.`,
		Args: cobra.ExactArgs(1),
		RunE: runExport,
	}
	cmd.Flags().String("format", "", "json or csv (default: from the file extension)")
	return cmd
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import FILE",
		Short: "Add questions from a JSON or CSV file",
		Long: `Add the questions in FILE. Every row is validated first; a single bad
row aborts the import with nothing written.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
	cmd.Flags().String("format", "", "json or csv (default: from the file extension)")
	return cmd
}

func transferFormat(cmd *cobra.Command, path string) string {
	if format, _ := cmd.Flags().GetString("format"); format != "" {
		return format
	}
	return transfer.FormatFromPath(path)
}

func runExport(cmd *cobra.Command, args []string) error {
	path := args[0]

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	questions, err := services.NewQuestionService(a.db).AllQuestions(cmd.Context())
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := transfer.Write(f, transferFormat(cmd, path), questions); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	a.log.Info("questions exported", zap.String("file", path), zap.Int("count", len(questions)))
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	inputs, err := transfer.Read(f, transferFormat(cmd, path))
	if err != nil {
		return err
	}

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := database.AutoMigrate(a.db, a.log); err != nil {
		return err
	}

	count, err := services.NewQuestionService(a.db).ImportQuestions(cmd.Context(), inputs)
	if err != nil {
		return err
	}

	a.log.Info("questions imported", zap.String("file", path), zap.Int("count", count))
	return nil
}
