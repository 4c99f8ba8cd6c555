package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"subfix/internal/journal"
)

func newJournalCommand(ctx *commandContext) *cobra.Command {
	journalCmd := &cobra.Command{
		Use:   "journal",
		Short: "Inspect the fix journal",
	}

	journalCmd.AddCommand(newJournalListCommand(ctx))
	journalCmd.AddCommand(newJournalClearCommand(ctx))

	return journalCmd
}

func newJournalListCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show recent fix runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := journal.Open(cfg.Paths.JournalPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			runs, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "Journal is empty")
				return nil
			}

			if useTable(out) {
				rows := make([]table.Row, 0, len(runs))
				for _, run := range runs {
					rows = append(rows, table.Row{
						run.CreatedAt.Local().Format("2006-01-02 15:04"),
						run.Path,
						string(run.Status),
						run.Adjusted,
						run.Merged,
						run.TextChanges,
					})
				}
				fmt.Fprintln(out, renderTable(
					table.Row{"Time", "File", "Status", "Adjusted", "Merged", "Text"},
					rows, 4, 5, 6))
				return nil
			}
			for _, run := range runs {
				line := run.CreatedAt.Local().Format("2006-01-02 15:04") +
					" " + run.Path + " " + string(run.Status) +
					" adjusted=" + strconv.Itoa(run.Adjusted) +
					" merged=" + strconv.Itoa(run.Merged) +
					" text=" + strconv.Itoa(run.TextChanges)
				if run.Error != "" {
					line += " error=" + run.Error
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum entries to show (0 for all)")
	return cmd
}

func newJournalClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all journal entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := journal.Open(cfg.Paths.JournalPath)
			if err != nil {
				return fmt.Errorf("open journal: %w", err)
			}
			defer store.Close()

			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Journal cleared")
			return nil
		},
	}
}
