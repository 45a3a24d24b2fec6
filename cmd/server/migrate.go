package main

import (
	"trivia-api/internal/database"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the categories and questions tables",
		RunE: func(_ *cobra.Command, _ []string) error {
			a, err := bootstrap()
			if err != nil {
				return err
			}
			defer a.close()

			return database.AutoMigrate(a.db, a.log)
		},
	}
}
