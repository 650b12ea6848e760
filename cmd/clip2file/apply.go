package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"clip2file/pkg/app"
	"clip2file/pkg/clipboard"
	"clip2file/pkg/config"
	"clip2file/pkg/logger"
	"clip2file/pkg/notify"
)

func newApplyCommand() *cobra.Command {
	var (
		dest   string
		dryRun bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Process the clipboard (or stdin) once",
		Long: `Apply reads text from a piped stdin, falling back to the clipboard,
and runs it through the pipeline a single time. With --dry-run the plan is
printed and confirmed before anything is created.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, dest, dryRun, yes)
		},
	}

	cmd.Flags().StringVar(&dest, "dest", ".", "destination directory")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "show what would be created and ask")
	cmd.Flags().BoolVar(&yes, "yes", false, "skip confirmation prompts")

	return cmd
}

func runApply(cmd *cobra.Command, dest string, dryRun, yes bool) error {
	cfgPath, err := configPath(cmd)
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	store := config.NewStore(config.NewSnapshot(cfg))

	text, err := clipboard.Input()
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var confirm notify.Confirmer
	if yes || !notify.Interactive() {
		confirm = notify.Static{Conflict: notify.ActionSkip, LargeBatch: true}
	} else {
		confirm = notify.NewTerminal()
	}

	engine := &app.Engine{
		Store:   store,
		Log:     logger.NewConsole(os.Stderr, logLevel(cmd, cfg)),
		Notify:  notify.NewConsole(os.Stderr),
		Confirm: confirm,
		Dest:    app.Fixed(dest),
	}

	if dryRun {
		plan := engine.Plan(text)
		if len(plan) == 0 {
			fmt.Println("Nothing to create.")
			return nil
		}
		fmt.Println("Will create:")
		for _, entry := range plan {
			if entry.IsDir {
				fmt.Printf("  dir:  %s\n", entry.Path)
			} else {
				fmt.Printf("  file: %s\n", entry.Path)
			}
		}
		if !yes && !askConfirm() {
			fmt.Println("Aborted.")
			return nil
		}
	}

	report, err := engine.Process(text)
	if err != nil {
		return err
	}
	if report == nil {
		fmt.Println("Nothing to create.")
	}
	return nil
}

func askConfirm() bool {
	fmt.Print("Proceed? [y/N]: ")
	var resp string
	if _, err := fmt.Scanln(&resp); err != nil {
		return false
	}
	resp = strings.ToLower(strings.TrimSpace(resp))
	return resp == "y" || resp == "yes"
}
