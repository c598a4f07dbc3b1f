package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"deedles.dev/listq/internal/config"
	"deedles.dev/listq/internal/mlog"
	"deedles.dev/listq/internal/qtest"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "qtest",
	Short: "Exercise string queues with a small command language.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")

	var script string
	runCmd := &cobra.Command{
		Use:   "run [-f script]",
		Short: "Run commands from a script file or standard input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), script, cmd.InOrStdin(), cmd.OutOrStdout())
		},
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
	}
	runCmd.Flags().StringVarP(&script, "file", "f", "", "script file")
	rootCmd.AddCommand(runCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := config.Load(configFile)
			if err != nil {
				return err
			}

			data, err := cfg.YAML()
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
		SilenceUsage: true,
	}
	rootCmd.AddCommand(configCmd)
}

func run(ctx context.Context, script string, stdin io.Reader, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	cfg, used, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("fail to load config, %w", err)
	}

	lg, closeLog, err := mlog.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	prev := mlog.L()
	mlog.SetL(lg)
	defer func() {
		mlog.SetL(prev)
		closeLog()
	}()
	if used != "" {
		mlog.L().Info("config loaded", zap.String("file", used))
	}

	r := stdin
	if script != "" {
		f, err := os.Open(script)
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer f.Close()
		r = f
	}

	in := qtest.New(cfg, stdout, nil)
	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:    cfg.MetricsAddr,
			Handler: promhttp.HandlerFor(in.Registry(), promhttp.HandlerOpts{}),
		}
		go func() {
			mlog.L().Info("serving metrics", zap.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				mlog.L().Error("metrics server exited", zap.Error(err))
			}
		}()
		defer srv.Close()
	}

	failed, err := in.Run(ctx, r)
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%v commands failed", failed)
	}
	return nil
}
