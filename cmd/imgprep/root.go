package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// configFile is the YAML config path given with --config
	configFile string
	// c is the loaded configuration
	c Config
)

var rootCommand = &cobra.Command{
	Use:   "imgprep",
	Short: "Fast image preprocessing: thumbnails, dimensions, fingerprints",
	Long: `imgprep generates bounded PNG thumbnails, reads image dimensions from
headers and fingerprints files with XXH64.

Run "imgprep serve" to expose the same operations as MCP tools over stdio.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

func init() {
	rootCommand.AddCommand(serveCommand)
	rootCommand.AddCommand(thumbnailCommand)
	rootCommand.AddCommand(dimensionsCommand)
	rootCommand.AddCommand(fingerprintCommand)
	rootCommand.AddCommand(versionCommand)

	flags := rootCommand.PersistentFlags()
	flags.StringVarP(&configFile, "config", "c", "", "config file path (default ./imgprep.yaml if present)")

	flags.Bool("dev", false, "development mode (console logging)")
	bindPFlag(flags, "dev")
	flags.String("log-level", "info", "log level: debug, info, warn, error")
	bindPFlagAs(flags, "log_level", "log-level")

	setDefaults(viper.GetViper())
}

func initConfig() error {
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("imgprep")
	}
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("IMGPREP")
	viper.AutomaticEnv()
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}
	if err := viper.Unmarshal(&c); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCommand.Execute()
}

// getLogger builds a logger writing to stderr; stdout is reserved for MCP
// traffic and thumbnail bytes.
func getLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}

	var cfg zap.Config
	if c.DevMode || level == zapcore.DebugLevel {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		cfg = zap.NewProductionConfig()
		cfg.Sampling = nil
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}
	return logger.With(zap.String("version", Version)), nil
}

func bindPFlag(flags *pflag.FlagSet, key string) {
	bindPFlagAs(flags, key, key)
}

func bindPFlagAs(flags *pflag.FlagSet, key, flag string) {
	if err := viper.BindPFlag(key, flags.Lookup(flag)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
