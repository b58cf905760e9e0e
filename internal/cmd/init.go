package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwalker/jdfile/internal/config"
)

// NewInitCommand creates the init command, which writes a commented
// starter configuration file.
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		Long: `Create a commented configuration file with every option at its default.
Refuses to overwrite an existing file.

Examples:
  jdfile init
  jdfile init --config ./jdfile.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if err := config.WriteStarter(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to write (default: ~/.config/jdfile/config.yaml)")

	return cmd
}
