package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"culler/internal/app"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:   "culler",
		Short: "Sort images into keep and reject folders with the mouse",
		Long: `culler scans a source folder for images and lets you sort them one by
one using mouse clicks and the scroll wheel. Kept images move to the keep
folder, rejected ones to the reject folder, both preserving the folder
structure under the source. Mappings and folders persist in a settings
file between runs.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.RecursiveSet = cmd.Flags().Changed("recursive")
			return app.Run(opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Source, "source", "", "folder with images to cull (overrides settings)")
	flags.StringVar(&opts.Keep, "keep", "", "folder for kept images (overrides settings)")
	flags.StringVar(&opts.Reject, "reject", "", "folder for rejected images (overrides settings)")
	flags.BoolVar(&opts.Recursive, "recursive", false, "scan subfolders of the source too")
	flags.StringVar(&opts.ConfigPath, "config", "", "settings file path (default: user config dir)")
	flags.StringVar(&opts.LogPath, "log-file", "", "log file path (default: user cache dir)")
	flags.StringVar(&opts.LogLevel, "log-level", "info", "log level: debug, info, warn, error")

	return cmd
}
