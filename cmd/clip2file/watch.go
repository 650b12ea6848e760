package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"clip2file/pkg/app"
	"clip2file/pkg/clipboard"
	"clip2file/pkg/config"
	"clip2file/pkg/logger"
	"clip2file/pkg/notify"
)

func newWatchCommand() *cobra.Command {
	var dest string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the clipboard and create files as text arrives",
		Long: `Watch polls the clipboard and runs every new payload through the
pipeline. The config file is created with defaults on first run and reloaded
live when edited. Only one watcher may run per user.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, dest)
		},
	}

	cmd.Flags().StringVar(&dest, "dest", "", "destination directory (default: destination from config)")

	return cmd
}

func runWatch(cmd *cobra.Command, dest string) error {
	if !clipboard.Supported() {
		return fmt.Errorf("no clipboard backend available on this system")
	}

	cfgPath, err := configPath(cmd)
	if err != nil {
		return err
	}
	if err := config.WriteDefault(cfgPath); err != nil {
		return err
	}

	lock := flock.New(filepath.Join(filepath.Dir(cfgPath), "clip2file.lock"))
	held, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire instance lock: %w", err)
	}
	if !held {
		return fmt.Errorf("another clip2file watcher is already running")
	}
	defer lock.Unlock()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		// a broken file at startup is not fatal, run on defaults until
		// the next successful reload
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.DefaultConfig()
	}
	store := config.NewStore(config.NewSnapshot(cfg))

	log := logger.NewConsole(os.Stderr, logLevel(cmd, cfg))
	notes := notify.NewConsole(os.Stderr)

	var confirm notify.Confirmer
	if notify.Interactive() {
		confirm = notify.NewTerminal()
	} else {
		// without a terminal nobody can answer: conflicts are skipped and
		// oversized trees declined
		confirm = notify.Static{Conflict: notify.ActionSkip, LargeBatch: false}
	}

	engine := &app.Engine{
		Store:   store,
		Log:     log,
		Notify:  notes,
		Confirm: confirm,
	}
	if dest != "" {
		engine.Dest = app.Fixed(dest)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgWatcher := config.NewWatcher(cfgPath, store)
	cfgWatcher.OnReload = func(snap *config.Snapshot) {
		log.Infof("configuration reloaded from %s", cfgPath)
		notes.Notify("Config Reloaded", "Configuration changes applied", notify.SeverityInfo)
	}
	cfgWatcher.OnError = func(err error) {
		log.Warnf("config reload failed, keeping previous configuration: %v", err)
		notes.Notify("Config Error", err.Error(), notify.SeverityWarning)
	}
	go runConfigWatcher(ctx, cfgWatcher, log)

	clipWatcher := clipboard.NewWatcher(clipboard.System{}, store.Current().PollInterval,
		func(text string) {
			if _, err := engine.Process(text); err != nil {
				log.Errorf("processing clipboard text: %v", err)
			}
		})
	clipWatcher.OnError = func(err error) {
		log.Warnf("clipboard read failed: %v", err)
	}

	log.Infof("watching clipboard (config: %s)", cfgPath)
	if err := clipWatcher.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	log.Infof("stopped")
	return nil
}

// runConfigWatcher keeps watch mode alive when hot reload cannot start, but
// says so instead of failing silently.
func runConfigWatcher(ctx context.Context, w *config.Watcher, log *logger.Console) {
	if err := w.Run(ctx); err != nil && ctx.Err() == nil {
		log.Warnf("config hot reload disabled: %v", err)
	}
}

func configPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

func logLevel(cmd *cobra.Command, cfg *config.Config) string {
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		return level
	}
	return cfg.LogLevel
}
