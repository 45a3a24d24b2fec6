package main

import (
	"trivia-api/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func seedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default categories",
		Long: `Insert the six default categories (Science, Art, Geography, History,
Entertainment, Sports). Existing category ids are left alone.

With --questions the sample question set is added when the questions
table is empty.`,
		RunE: runSeed,
	}
	cmd.Flags().Bool("questions", false, "also insert sample questions into an empty table")
	return cmd
}

func runSeed(cmd *cobra.Command, _ []string) error {
	withQuestions, _ := cmd.Flags().GetBool("questions")

	a, err := bootstrap()
	if err != nil {
		return err
	}
	defer a.close()

	if err := database.AutoMigrate(a.db, a.log); err != nil {
		return err
	}

	ctx := cmd.Context()
	cats, err := database.SeedCategories(ctx, a.db)
	if err != nil {
		return err
	}
	a.log.Info("categories seeded", zap.Int64("inserted", cats))

	if !withQuestions {
		return nil
	}

	qs, err := database.SeedQuestions(ctx, a.db)
	if err != nil {
		return err
	}
	a.log.Info("questions seeded", zap.Int64("inserted", qs))
	return nil
}
