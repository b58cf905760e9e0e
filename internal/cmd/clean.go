package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwalker/jdfile/internal/config"
	"github.com/mwalker/jdfile/internal/display"
	"github.com/mwalker/jdfile/internal/filelock"
	"github.com/mwalker/jdfile/internal/history"
	"github.com/mwalker/jdfile/internal/pipeline"
	"github.com/mwalker/jdfile/internal/project"
	"github.com/mwalker/jdfile/internal/resolve"
)

// runClean implements the root command: discover, transform, confirm,
// commit.
func runClean(cmd *cobra.Command, args []string) error {
	cfg, projCfg, err := loadRunConfig(cmd)
	if err != nil {
		return err
	}

	settings := cfg.Settings
	if projCfg != nil {
		settings = projCfg.Settings
	}
	overrides, err := flagOverrides(cmd)
	if err != nil {
		return err
	}
	if err := settings.MergeWithFlags(overrides); err != nil {
		return err
	}

	depth := 1
	if projCfg != nil {
		depth = projCfg.Depth
	}
	if cmd.Flags().Changed("depth") {
		depth, _ = cmd.Flags().GetInt("depth")
		if depth < 1 {
			return fmt.Errorf("depth must be >= 1, got %d", depth)
		}
	}

	numberOverride, _ := cmd.Flags().GetString("number")
	cleanOnly, _ := cmd.Flags().GetBool("clean-only")
	if numberOverride != "" && (projCfg == nil || cleanOnly) {
		return errors.New("--number requires --project and organizing enabled")
	}

	files, err := pipeline.Discover(args, depth, settings.IgnoreDotfiles, settings.Ignore)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no files to process")
		return nil
	}

	terms, _ := cmd.Flags().GetStringArray("term")
	force, _ := cmd.Flags().GetBool("force")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	yes, _ := cmd.Flags().GetBool("yes")
	verbose, _ := cmd.Flags().GetBool("verbose")

	chooser := display.NewTerminalChooser()
	pipe := &pipeline.Pipeline{
		Opts: pipeline.Options{
			Settings:  settings,
			Now:       time.Now(),
			UserTerms: terms,
			Synonyms:  synonymFunc(settings),
		},
		Chooser: chooser,
	}

	var projectName string
	if projCfg != nil && !cleanOnly {
		proj, err := project.New(projCfg)
		if err != nil {
			return err
		}
		projectName = proj.Name
		pipe.Resolver = &resolve.Resolver{Project: proj, Synonyms: pipe.Opts.Synonyms, Force: force}

		if !dryRun {
			lock, err := filelock.AcquireBatch(proj.Path)
			if err != nil {
				return err
			}
			defer lock.Release()
		}
	}

	printer := display.NewPrinter(cmd.OutOrStdout())
	printer.Verbose = verbose

	records, aborted, err := processAll(pipe, files, numberOverride, printer)
	if err != nil {
		return err
	}
	if aborted {
		fmt.Fprintln(cmd.OutOrStdout(), "aborted, nothing renamed")
		return nil
	}

	changed := 0
	for _, f := range records {
		if f.Changed() {
			changed++
		}
	}
	if changed > 0 && !dryRun && !yes {
		ok, err := chooser.Confirm(fmt.Sprintf("Apply %d rename(s)?", changed))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "aborted, nothing renamed")
			return nil
		}
	}

	journal, runID, err := openJournal(cfg, dryRun)
	if err != nil {
		return err
	}
	if journal != nil {
		defer journal.Close()
	}

	for _, f := range records {
		res, err := pipe.Commit(f, dryRun)
		if err != nil {
			// Fatal for this file only; the batch continues.
			printer.Error(f.OriginalPath, err)
			continue
		}
		printer.Result(f, res)
		if journal != nil && res == pipeline.Renamed {
			if err := journal.RecordRename(runID, projectName, f.OriginalPath, f.TargetPath()); err != nil {
				printer.Error(f.OriginalPath, err)
			}
		}
	}
	printer.Summary(dryRun)

	if printer.Failed() {
		return errors.New("some files could not be renamed")
	}
	return nil
}

// processAll runs the transform on every file, in the order renames
// will later observe. An abort from the chooser stops the whole batch
// before anything is committed.
func processAll(pipe *pipeline.Pipeline, paths []string, numberOverride string, printer *display.Printer) ([]*pipeline.File, bool, error) {
	var records []*pipeline.File
	for _, path := range paths {
		f, err := pipeline.NewFile(path)
		if err != nil {
			printer.Error(path, err)
			continue
		}
		if err := pipe.Process(f, numberOverride); err != nil {
			if errors.Is(err, pipeline.ErrUserAbort) {
				return nil, true, nil
			}
			return nil, false, err
		}
		records = append(records, f)
	}
	return records, false, nil
}

// loadRunConfig loads the config file and, when --project is set, looks
// up the project section.
func loadRunConfig(cmd *cobra.Command) (*config.Config, *config.ProjectConfig, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, err
	}

	name, _ := cmd.Flags().GetString("project")
	if name == "" {
		return cfg, nil, nil
	}
	projCfg, err := cfg.Project(name)
	if err != nil {
		return nil, nil, err
	}
	return cfg, projCfg, nil
}

// flagOverrides turns set flags into config overrides for the merge
// step. Only flags the user changed are carried over.
func flagOverrides(cmd *cobra.Command) (config.FlagOverrides, error) {
	var o config.FlagOverrides

	if cmd.Flags().Changed("date-format") {
		v, _ := cmd.Flags().GetString("date-format")
		o.DateFormat = &v
	}
	if cmd.Flags().Changed("no-dates") {
		f := false
		o.FormatDates = &f
	}
	if cmd.Flags().Changed("sep") {
		v, _ := cmd.Flags().GetString("sep")
		sep, err := config.ParseSeparator(v)
		if err != nil {
			return o, err
		}
		o.Separator = &sep
	}
	if cmd.Flags().Changed("case") {
		v, _ := cmd.Flags().GetString("case")
		tc, err := config.ParseTransformCase(v)
		if err != nil {
			return o, err
		}
		o.TransformCase = &tc
	}
	if cmd.Flags().Changed("split-words") {
		v, _ := cmd.Flags().GetBool("split-words")
		o.SplitWords = &v
	}
	if cmd.Flags().Changed("keep-stopwords") {
		f := false
		o.StripStopwords = &f
	}
	if cmd.Flags().Changed("overwrite") {
		v, _ := cmd.Flags().GetBool("overwrite")
		o.Overwrite = &v
	}
	if cmd.Flags().Changed("syns") {
		v, _ := cmd.Flags().GetBool("syns")
		o.UseSynonyms = &v
	}
	return o, nil
}

// openJournal opens the rename journal when enabled and not in dry-run
// mode.
func openJournal(cfg *config.Config, dryRun bool) (*history.Store, string, error) {
	if dryRun || !cfg.History.Enabled {
		return nil, "", nil
	}
	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return nil, "", err
	}
	return store, history.NewRunID(), nil
}

// synonymFunc returns the token expander for this run. There is no
// bundled thesaurus; expansion comes from the JDFILE_SYNONYMS file when
// enabled, formatted as "word: syn1, syn2" lines.
func synonymFunc(s config.Settings) resolve.SynonymFunc {
	if !s.UseSynonyms {
		return nil
	}
	path := os.Getenv("JDFILE_SYNONYMS")
	if path == "" {
		return nil
	}
	table, err := loadSynonyms(path)
	if err != nil {
		return nil
	}
	return func(word string) []string {
		return table[word]
	}
}
