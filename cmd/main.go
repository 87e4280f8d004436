package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	rootCmd = &cobra.Command{
		Use:   "asd",
		Short: "Auto parts shop and service analytics backend",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnvFile()
		},
		RunE: run,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the service version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		RunE:  migrateUp,
	}

	tokenCmd = &cobra.Command{
		Use:   "token <subject>",
		Short: "Issue an admin token signed with the configured secret",
		Args:  cobra.ExactArgs(1),
		RunE:  issueToken,
	}

	cfgFile string
	envFile string
	version = "dev"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to configuration file (optional)")
	rootCmd.PersistentFlags().StringVarP(&envFile, "env-file", "e", "", "path to a .env file loaded before the configuration (optional)")
	rootCmd.AddCommand(versionCmd, migrateCmd, tokenCmd)
	if err := rootCmd.Execute(); err != nil {
		slog.Default().Error("can't start the service", slog.String("err", err.Error()))
		os.Exit(-1)
	}
}
