package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/hostapi"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the drill behind the HTTP host API",
	Long: `Serve the drill engine over HTTP so a host page can read and write
the drill variables, submit answers and watch for mastery.

Completion is signalled once per session. The POST /v1/answer response
that first reaches mastery carries "completed": true and phase "terminal".
A variables write or regenerate that lowers the numerator to within the
recorded history returns mastery true and leaves the drill terminal until
POST /v1/reset. Each completion also increments adjacent_mastery_total.

Prometheus metrics are exposed on /metrics.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", hostapi.DefaultAddr, "Listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("addr")

	log, err := newLogger(cmd, true)
	if err != nil {
		return err
	}
	defer log.Sync()

	metrics := hostapi.NewMetrics()
	eng, _, err := newEngine(cmd, log, engine.WithCompletionHandler(metrics.MasteryReached))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := hostapi.NewServer(eng, addr,
		hostapi.WithLogger(log),
		hostapi.WithMetrics(metrics),
	)
	return srv.Run(ctx)
}
