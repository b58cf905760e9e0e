package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mwalker/jdfile/internal/project"
)

// NewTreeCommand creates the tree command, which prints a project's
// folder hierarchy.
func NewTreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show the folder hierarchy of a project",
		Long: `Print every indexed folder of a project, indented by hierarchy level.

Examples:
  jdfile tree --project docs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, projCfg, err := loadRunConfig(cmd)
			if err != nil {
				return err
			}
			proj, err := project.New(projCfg)
			if err != nil {
				return err
			}
			proj.Tree(cmd.OutOrStdout())
			return nil
		},
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: ~/.config/jdfile/config.yaml)")
	cmd.Flags().StringP("project", "p", "", "Project to show")
	cmd.MarkFlagRequired("project")

	return cmd
}
