package commands

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/homeval/homeval/internal/config"
	"github.com/homeval/homeval/internal/gitops"
	"github.com/homeval/homeval/internal/report"
	"github.com/homeval/homeval/internal/runlog"
	"github.com/homeval/homeval/internal/valuation"
)

const (
	formatText = "text"
	formatCSV  = "csv"
)

type valueOptions struct {
	repoDir         string
	format          string
	commit          bool
	carryMultiplier float64
	carrySet        bool
}

func newValueCommand() *cobra.Command {
	var opts valueOptions

	cmd := &cobra.Command{
		Use:   "value",
		Short: "Value the workspace's property",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(opts.repoDir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			opts.repoDir = absDir
			opts.carrySet = cmd.Flags().Changed("carry-multiplier")
			return runValue(cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&opts.format, "format", formatText, "output format: text or csv")
	cmd.Flags().BoolVar(&opts.commit, "commit", false, "commit the written reports to git (csv format only)")
	cmd.Flags().Float64Var(&opts.carryMultiplier, "carry-multiplier", 0, "units of carry income (overrides carry.multiplier)")

	return cmd
}

func runValue(out, errOut io.Writer, opts valueOptions) error {
	if opts.format != formatText && opts.format != formatCSV {
		return fmt.Errorf("unknown format %q (want %s or %s)", opts.format, formatText, formatCSV)
	}
	if opts.commit && opts.format != formatCSV {
		return fmt.Errorf("--commit needs --format %s: text output writes no files", formatCSV)
	}

	cfg, err := config.Load(filepath.Join(opts.repoDir, config.FileName))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	v, err := valuation.New(cfg.ModelParameters(), cfg.ModelCapabilities())
	if err != nil {
		return fmt.Errorf("valuing %s: %w", cfg.Property.Name, err)
	}

	multiplier := cfg.Carry.Multiplier
	if opts.carrySet {
		multiplier = opts.carryMultiplier
	}

	bundle, err := report.NewBundle(cfg.Property.Name, cfg.Property.Currency, v, multiplier)
	if err != nil {
		return err
	}

	entry := runlog.NewEntry(cfg.Property.Name, opts.format, bundle.Summary)

	switch opts.format {
	case formatText:
		if err := report.RenderText(out, bundle); err != nil {
			return err
		}
	case formatCSV:
		written, err := report.Save(opts.repoDir, bundle)
		if err != nil {
			return fmt.Errorf("saving reports: %w", err)
		}
		for _, p := range written {
			fmt.Fprintf(out, "wrote %s\n", p)
		}

		if opts.commit || cfg.Git.AutoCommit {
			hash, err := commitReports(opts.repoDir, cfg, written)
			if err != nil {
				return err
			}
			entry.CommitHash = hash
			fmt.Fprintf(out, "committed reports (%s)\n", hash)
		}
	}

	if err := runlog.Append(opts.repoDir, entry); err != nil {
		fmt.Fprintf(errOut, "warning: failed to write valuation log: %v\n", err)
	}
	return nil
}

func commitReports(repoDir string, cfg *config.Config, paths []string) (string, error) {
	if !gitops.IsRepo(repoDir) {
		return "", fmt.Errorf("commit requested but %s is not a git repository", repoDir)
	}
	msg := fmt.Sprintf("value: %s", cfg.Property.Name)
	hash, err := gitops.CommitPaths(repoDir, msg, cfg.Git.AuthorName, cfg.Git.AuthorEmail, paths...)
	if err != nil {
		return "", fmt.Errorf("committing reports: %w", err)
	}
	return hash, nil
}
