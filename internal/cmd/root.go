// Package cmd wires the jdfile command-line interface.
package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

// NewRootCommand creates the root cobra command for jdfile.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jdfile [flags] <file-or-directory>...",
		Short: "Clean filenames and file documents into Johnny Decimal folders",
		Long: `jdfile normalizes filenames (dates, case, separators, stopwords) and,
when a project is selected, files each document into the numbered folder
whose terms best match the filename.

Configuration is loaded from ~/.config/jdfile/config.yaml if present.
CLI flags override configuration file settings.

Examples:
  # Clean names in place
  jdfile --sep underscore --case title ~/Downloads/*.pdf

  # Preview without touching anything
  jdfile --dry-run ~/Downloads

  # Clean and file into a configured project
  jdfile --project docs scan001.pdf

  # Force a specific folder number
  jdfile --project docs --number 11.01 statement.pdf

  # Add extra matching terms for this run
  jdfile --project docs --term invoice --term 2022 *.pdf`,
		Version: Version,
		Args:    cobra.MinimumNArgs(1),
		RunE:    runClean,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.Flags().String("config", "", "Path to config file (default: ~/.config/jdfile/config.yaml)")
	cmd.Flags().StringP("project", "p", "", "Project to organize files into")
	cmd.Flags().String("number", "", "File into this exact folder number (requires --project)")
	cmd.Flags().StringArrayP("term", "t", nil, "Extra term to match against folder names (repeatable)")
	cmd.Flags().BoolP("force", "f", false, "Auto-select the first folder on ambiguous matches")
	cmd.Flags().BoolP("dry-run", "n", false, "Report renames without performing them")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().BoolP("verbose", "v", false, "Also report files that needed no change")
	cmd.Flags().Bool("clean-only", false, "Clean names but do not move files, even with --project")
	cmd.Flags().Int("depth", 0, "Directory scan depth (default from project config, else 1)")
	cmd.Flags().String("sep", "", "Separator to normalize to: ignore, dash, space, underscore, none")
	cmd.Flags().String("case", "", "Case transform: ignore, lower, upper, title, sentence, camelcase")
	cmd.Flags().String("date-format", "", "strftime-style template for reformatted dates")
	cmd.Flags().Bool("no-dates", false, "Disable date extraction and reinsertion")
	cmd.Flags().Bool("split-words", false, "Split camelCase words")
	cmd.Flags().Bool("keep-stopwords", false, "Do not strip stopwords")
	cmd.Flags().Bool("overwrite", false, "Replace existing files instead of picking a unique name")
	cmd.Flags().Bool("syns", false, "Expand filename tokens through synonyms when organizing")

	cmd.AddCommand(NewTreeCommand())
	cmd.AddCommand(NewHistoryCommand())
	cmd.AddCommand(NewInitCommand())

	return cmd
}
