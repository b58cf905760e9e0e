package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwalker/jdfile/internal/config"
	"github.com/mwalker/jdfile/internal/history"
)

// NewHistoryCommand creates the history command, which lists journaled
// renames.
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently journaled renames",
		Long: `Show the most recent committed renames from the journal database.
Journaling is off by default; enable it with history.enabled in the
config file.

Examples:
  jdfile history
  jdfile history --limit 50`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultConfigPath()
			}
			cfg, err := config.LoadConfig(path)
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history is disabled; set history.enabled: true in the config file")
			}

			store, err := history.NewStore(cfg.History.DBPath)
			if err != nil {
				return err
			}
			defer store.Close()

			limit, _ := cmd.Flags().GetInt("limit")
			entries, err := store.ListRecent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no renames journaled yet")
				return nil
			}

			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintf(out, "%s  %s -> %s", e.CreatedAt.Format("2006-01-02 15:04"), e.OldPath, e.NewPath)
				if e.Project != "" {
					fmt.Fprintf(out, "  [%s]", e.Project)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: ~/.config/jdfile/config.yaml)")
	cmd.Flags().Int("limit", 20, "Maximum number of entries to show")

	return cmd
}
