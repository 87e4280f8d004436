package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MihaiKuro/asd/app"
	"github.com/MihaiKuro/asd/config"
	"github.com/MihaiKuro/asd/internal/apisrv/auth"
	"github.com/MihaiKuro/asd/internal/entity"
	"github.com/MihaiKuro/asd/internal/store"
	"github.com/MihaiKuro/asd/log"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 15 * time.Second

func loadEnvFile() error {
	return config.LoadEnvFile(envFile)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("cannot load a config %v", err.Error())
	}
	slog.SetDefault(log.New(cfg.Logger, os.Stdout))
	return cfg, nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.Default()

	a := app.New(cfg)
	if err := a.Start(ctx); err != nil {
		return fmt.Errorf("cannot start the application %v", err.Error())
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	select {
	case s := <-sigCh:
		logger.With("signal", s.String()).Warn("signal received, exiting")
		stopCtx, stop := context.WithTimeout(ctx, shutdownTimeout)
		defer stop()
		a.Stop(stopCtx)
		logger.Info("application exited")
	case <-a.Done():
		logger.Error("application exited")
	}

	return nil
}

func migrateUp(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	n, err := store.Migrate(cmd.Context(), cfg.DB)
	if err != nil {
		return fmt.Errorf("cannot apply migrations %v", err.Error())
	}
	fmt.Fprintf(cmd.OutOrStdout(), "applied %d migrations\n", n)
	return nil
}

func issueToken(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	s, err := auth.New(&cfg.Auth)
	if err != nil {
		return err
	}
	token, err := s.IssueToken(args[0], entity.UserRoleAdmin)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
