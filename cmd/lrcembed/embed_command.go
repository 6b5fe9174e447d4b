package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/lrcembed"
	"github.com/simonhull/lrcembed/internal/config"
	"github.com/simonhull/lrcembed/internal/discover"
	"github.com/simonhull/lrcembed/internal/report"
	"github.com/simonhull/lrcembed/internal/runlock"
)

type embedFlags struct {
	skip          bool
	reduce        bool
	recursive     bool
	noVerify      bool
	preserveMtime bool
	backup        string
	strict        bool
	noProgress    bool
}

func (f *embedFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&f.skip, "skip", "s", false, "Skip files that already have embedded lyrics")
	cmd.Flags().BoolVarP(&f.reduce, "reduce", "r", false, "Delete .lrc files after successful embedding")
	cmd.Flags().BoolVarP(&f.recursive, "recursive", "R", false, "Process subdirectories")
	cmd.Flags().BoolVar(&f.noVerify, "no-verify", false, "Do not read lyrics back after writing (ignored with --reduce)")
	cmd.Flags().BoolVar(&f.preserveMtime, "preserve-mtime", false, "Keep audio file modification times")
	cmd.Flags().StringVar(&f.backup, "backup", "", "Keep each rewritten audio file's previous content under this suffix (e.g. .bak)")
}

// options merges command-line flags over configured values.
func (f *embedFlags) options(cmd *cobra.Command, cfg *config.Config) (lrcembed.Options, error) {
	if cmd.Flags().Changed("backup") {
		cfg.Embed.BackupSuffix = f.backup
		if err := cfg.Validate(); err != nil {
			return lrcembed.Options{}, fmt.Errorf("--backup: %w", err)
		}
	}
	return lrcembed.Options{
		SkipIfPresent:   boolSetting(cmd, "skip", f.skip, cfg.Embed.SkipExisting),
		DeleteSidecar:   boolSetting(cmd, "reduce", f.reduce, cfg.Embed.DeleteSidecar),
		Verify:          boolSetting(cmd, "no-verify", !f.noVerify, cfg.Embed.Verify),
		PreserveModTime: boolSetting(cmd, "preserve-mtime", f.preserveMtime, cfg.Embed.PreserveModTime),
		BackupSuffix:    cfg.Embed.BackupSuffix,
	}, nil
}

func (f *embedFlags) recursiveSetting(cmd *cobra.Command, cfg *config.Config) bool {
	return boolSetting(cmd, "recursive", f.recursive, cfg.Embed.Recursive)
}

func newEmbedCommand(ctx *commandContext) *cobra.Command {
	flags := &embedFlags{}

	cmd := &cobra.Command{
		Use:   "embed DIR...",
		Short: "Embed sidecar lyrics into the audio files of one or more directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			log, err := ctx.logger()
			if err != nil {
				return err
			}

			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}

			locks, err := runlock.AcquireAll(lockDirs(args))
			if err != nil {
				return err
			}
			defer func() {
				if err := locks.Release(); err != nil {
					log.Warn("release lock", zap.Error(err))
				}
			}()

			files, err := discover.Walk(cmd.Context(), args, discover.Options{
				Recursive:      flags.recursiveSetting(cmd, cfg),
				FollowSymlinks: cfg.Embed.FollowSymlinks,
				OnError: func(path string, err error) {
					log.Warn("skip unreadable entry", zap.String("path", path), zap.Error(err))
				},
			})
			if err != nil {
				return err
			}

			errOut := cmd.ErrOrStderr()
			showBar := cfg.Output.Progress && !flags.noProgress && report.IsTerminal(errOut)
			progress := report.NewProgress(len(files), errOut, showBar, log)

			embedder := lrcembed.New(opts,
				lrcembed.WithLogger(log),
				lrcembed.WithObserver(progress.Observe),
			)
			result := embedder.Run(cmd.Context(), files)
			progress.Finish()

			out := cmd.OutOrStdout()
			if err := report.Summary(out, result, report.ShouldColor(cfg.Output.Color, out)); err != nil {
				return err
			}

			if result.Canceled {
				return fmt.Errorf("run interrupted: %w", context.Canceled)
			}
			if flags.strict && result.Failed() > 0 {
				return &exitError{code: 2, err: fmt.Errorf("%d of %d files failed", result.Failed(), result.Total)}
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit with status 2 if any file failed")
	cmd.Flags().BoolVar(&flags.noProgress, "no-progress", false, "Disable the progress bar")
	return cmd
}

// lockDirs maps each argument to the directory that should be locked: the
// argument itself for directories, the parent for files. Arguments that do
// not exist are left to discovery to report.
func lockDirs(args []string) []string {
	dirs := make([]string, 0, len(args))
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			continue
		}
		if info.IsDir() {
			dirs = append(dirs, arg)
		} else {
			dirs = append(dirs, filepath.Dir(arg))
		}
	}
	return dirs
}
