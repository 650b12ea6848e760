// clip2file turns clipboard text into files: it recognizes tree listings and
// filename-looking payloads and materializes them under a destination
// directory, either continuously (watch) or once (apply).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clip2file",
		Short: "Create files and directory trees from clipboard text",
		Long: `clip2file watches the clipboard for text that looks like files: tree
listings (tree(1) output, indented outlines, path lists, content-delimited
scaffolds) or plain filenames, optionally followed by content or more
filenames. Recognized payloads are materialized under the destination
directory with conflict prompts and path-safety checks.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", "", "config file (default: per-user config dir)")
	cmd.PersistentFlags().String("log-level", "", "log verbosity: debug, info, warn, error")

	cmd.AddCommand(newWatchCommand())
	cmd.AddCommand(newApplyCommand())

	return cmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
