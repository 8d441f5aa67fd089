// Package main provides the varbench command-line tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var verbose bool

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "varbench",
		Short:         "Benchmark variant calls against a truth set",
		Long:          "varbench compares predicted variant calls against a truth set per contig, reporting true/false positives and negatives, genotype concordance, breakpoint-tolerant structural matches and reference-rescued indels.",
		Version:       fmt.Sprintf("%s (%s) built %s", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	cobra.OnInitialize(initConfig)

	cmd.AddCommand(newCompareCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// initConfig reads ~/.varbench.yaml if present. Flags still win.
func initConfig() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	viper.AddConfigPath(home)
	viper.SetConfigName(".varbench")
	viper.SetConfigType("yaml")
	viper.SetEnvPrefix("VARBENCH")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig() // missing config file is fine
}

// newLogger builds a console logger writing to stderr.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.OutputPaths = []string{"stderr"}
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return cfg.Build()
}
