package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/simonhull/lrcembed"
	"github.com/simonhull/lrcembed/internal/runlock"
	"github.com/simonhull/lrcembed/internal/watch"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	flags := &embedFlags{}
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch DIR...",
		Short: "Embed lyrics whenever .lrc files are created or changed",
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

			embedder := lrcembed.New(opts, lrcembed.WithLogger(log))
			w := watch.New(embedder, args, watch.Options{
				Recursive: flags.recursiveSetting(cmd, cfg),
				Debounce:  debounce,
				Logger:    log,
				Ready: func() {
					fmt.Fprintf(cmd.OutOrStdout(), "Watching %s (Ctrl-C to stop)\n", strings.Join(args, ", "))
				},
			})
			return w.Run(cmd.Context())
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before a changed sidecar is embedded")
	return cmd
}
