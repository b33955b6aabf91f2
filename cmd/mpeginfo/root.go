package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	flags := &commandFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:   "mpeginfo [flags] <file|dir>...",
		Short: "Report MPEG audio stream properties",
		Long: `mpeginfo reads MPEG-1/2/2.5 Layer I/II/III streams and reports their
version, layer, channel mode, sample rate, bitrate and duration.

Directories are searched recursively for .mp1, .mp2, .mp3 and .mpa files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, ctx, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	f := rootCmd.Flags()
	f.StringVar(&flags.mode, "mode", "prefer-vbr", "Parse mode: prefer-vbr or ignore-vbr")
	f.IntVarP(&flags.jobs, "jobs", "j", 0, "Files parsed in parallel (0 = number of CPUs)")
	f.BoolVar(&flags.json, "json", false, "Print results as JSON")
	f.BoolVar(&flags.cache, "cache", false, "Use the header cache")
	f.BoolVar(&flags.noCache, "no-cache", false, "Bypass the header cache")
	f.Int64Var(&flags.resyncLimit, "resync-limit", 0, "Maximum unrecognized bytes skipped between frames (0 = unlimited)")
	rootCmd.MarkFlagsMutuallyExclusive("cache", "no-cache")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newCacheCommand(ctx))

	return rootCmd
}
