package main

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/phonalign/config"
	"github.com/katalvlaran/phonalign/metrics"
)

// app carries the per-run state shared by every subcommand.
type app struct {
	configPath string
	logLevel   string
	metricsOut string

	cfg    config.Config
	logger *zap.Logger
	rec    *metrics.Recorder
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}
	root := &cobra.Command{
		Use:          "phonalign",
		Short:        "Align phonetic sequences and cluster the results",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.finish()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML configuration file")
	pf.StringVar(&a.logLevel, "log-level", "", "log level override (debug, info, warn, error)")
	pf.StringVar(&a.metricsOut, "metrics-out", "", "write prometheus textfile metrics to this path")

	root.AddCommand(
		a.alignCmd(),
		a.msaCmd(),
		a.distancesCmd(),
		a.treeCmd(),
		a.linkcommCmd(),
		a.evaluateCmd(),
	)

	return root
}

func (a *app) setup() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	a.cfg = cfg

	logger, err := ProvideLogger(cfg)
	if err != nil {
		return err
	}
	a.logger = logger.With(zap.String("run_id", uuid.NewString()))
	a.rec = metrics.New()

	return nil
}

func (a *app) finish() error {
	// Sync on a terminal stderr reports EINVAL; nothing to recover.
	defer func() { _ = a.logger.Sync() }()

	if a.metricsOut == "" {
		return nil
	}
	if err := a.rec.WriteTextfile(a.metricsOut); err != nil {
		return err
	}
	a.logger.Debug("metrics written", zap.String("path", a.metricsOut))

	return nil
}

// ProvideLogger builds a JSON production logger or a console development
// logger at the configured level.
func ProvideLogger(cfg config.Config) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Environment == "production" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(cfg.Level())

	return zc.Build()
}
