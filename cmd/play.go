package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/adjacent/internal/app"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a drill session in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay builds the engine and launches the TUI. Logging is off unless
// --log-file is given since the TUI owns the terminal.
func runPlay(cmd *cobra.Command) error {
	log, err := newLogger(cmd, false)
	if err != nil {
		return err
	}
	defer log.Sync()

	eng, cfg, err := newEngine(cmd, log)
	if err != nil {
		return err
	}
	log.Info("session started", "session_id", eng.SessionID())

	return app.Run(app.Options{
		Engine: eng,
		Config: cfg,
		Log:    log,
	})
}
