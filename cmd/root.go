package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/adjacent/internal/config"
	"github.com/abhisek/adjacent/internal/engine"
	"github.com/abhisek/adjacent/internal/logger"
	"github.com/abhisek/adjacent/internal/randsrc"
)

var rootCmd = &cobra.Command{
	Use:   "adjacent",
	Short: "Adjacency matrix and list drill",
	Long:  "Adjacent is a terminal drill for reading graphs as adjacency matrices and adjacency lists.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(pf *pflag.FlagSet) {
	pf.String("config", "", "Path to a JSON or YAML config file")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("log-level", "info", "Log level: debug, info, warn or error")
	pf.String("log-mode", "dev", "Log encoding: dev (console) or prod (JSON)")
	pf.Uint64("seed", 0, "Seed for graph generation (0 picks a random seed)")

	pf.Int("numerator", 0, "Correct answers required for mastery")
	pf.Int("denominator", 0, "Number of recent answers considered for mastery")
	pf.Bool("undirected", false, "Draw undirected graphs (disables random modes)")
	pf.Bool("weighted", false, "Draw weighted graphs (disables random modes)")
	pf.Bool("randomize-modes", true, "Pick directed/weighted at random for every graph")
	pf.Int("first-question", 0, "First question template index")
	pf.Int("last-question", 0, "Last question template index")
	pf.Bool("no-autostart", false, "Wait for an explicit start before drawing the first graph")
}

// loadConfig resolves the configuration: defaults, then the --config file,
// then any flag set explicitly on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		loaded, err := config.LoadFile(p)
		if err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("numerator") {
		cfg.MasteryNumerator, _ = flags.GetInt("numerator")
	}
	if flags.Changed("denominator") {
		cfg.MasteryDenominator, _ = flags.GetInt("denominator")
	}
	if flags.Changed("randomize-modes") {
		cfg.RandomizeModes, _ = flags.GetBool("randomize-modes")
	}
	if flags.Changed("undirected") {
		cfg.Undirected, _ = flags.GetBool("undirected")
		cfg.RandomizeModes = false
	}
	if flags.Changed("weighted") {
		cfg.Weighted, _ = flags.GetBool("weighted")
		cfg.RandomizeModes = false
	}
	if flags.Changed("first-question") {
		cfg.FirstQuestion, _ = flags.GetInt("first-question")
	}
	if flags.Changed("last-question") {
		cfg.LastQuestion, _ = flags.GetInt("last-question")
	}
	if flags.Changed("no-autostart") {
		cfg.SuppressAutoStart, _ = flags.GetBool("no-autostart")
	}
	return cfg, nil
}

// newLogger builds the command's logger. Without --log-file, logs go to
// stderr when stderrOK is set and are discarded otherwise.
func newLogger(cmd *cobra.Command, stderrOK bool) (*logger.Logger, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" && !stderrOK {
		return logger.Nop(), nil
	}
	level, _ := cmd.Flags().GetString("log-level")
	mode, _ := cmd.Flags().GetString("log-mode")
	return logger.New(logger.Options{Mode: mode, Level: level, OutputPath: path})
}

func newSource(cmd *cobra.Command) randsrc.Source {
	if seed, _ := cmd.Flags().GetUint64("seed"); seed != 0 {
		return randsrc.New(seed)
	}
	return randsrc.NewRandom()
}

// newEngine wires config, logger and random source into an engine.
func newEngine(cmd *cobra.Command, log *logger.Logger, opts ...engine.Option) (*engine.Engine, config.Config, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, config.Config{}, err
	}
	opts = append([]engine.Option{
		engine.WithSource(newSource(cmd)),
		engine.WithLogger(log),
	}, opts...)
	eng, err := engine.New(cfg, opts...)
	if err != nil {
		return nil, config.Config{}, fmt.Errorf("create engine: %w", err)
	}
	return eng, cfg, nil
}
