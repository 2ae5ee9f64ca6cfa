// Package cmd contains all CLI commands for jianjin.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/f3rmion/jianjin/internal/clipboard"
	"github.com/f3rmion/jianjin/internal/config"
	"github.com/f3rmion/jianjin/internal/logger"
	"github.com/f3rmion/jianjin/internal/pinyin"
	"github.com/f3rmion/jianjin/internal/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgDir string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "jianjin",
	Short: "Convert numbered pinyin to tone marks",
	Long: `jianjin turns Hanyu Pinyin written with tone numbers into the
conventional tone mark form:

  ni3hao3   → nǐhǎo
  mei3nv3   → měinǚ   (v stands for ü)

Text that is not numbered pinyin is passed through unchanged.

Running 'jianjin' without arguments launches an interactive preview.`,
	SilenceUsage: true,
	RunE:         runPreview,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgDir, "config", "", "config directory (default is $HOME/.config/jianjin)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig resolves the config directory and enables JIANJIN_* overrides.
func initConfig() {
	if cfgDir != "" {
		viper.Set("config_dir", cfgDir)
	} else {
		dir, err := config.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("JIANJIN")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// loadSettings reads config.yaml, applies flag and environment overrides and
// builds the logger.
func loadSettings() (*config.Config, *zap.Logger, error) {
	cfg, err := config.Load(getConfigDir())
	if err != nil {
		return nil, nil, err
	}

	for key, dst := range map[string]*string{
		"log_level":  &cfg.LogLevel,
		"log_format": &cfg.LogFormat,
		"template":   &cfg.Template,
		"words":      &cfg.Words,
		"anki_field": &cfg.Field,
	} {
		if v := viper.GetString(key); v != "" {
			*dst = v
		}
	}
	if viper.GetBool("verbose") {
		cfg.LogLevel = "debug"
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("creating logger: %w", err)
	}
	log.Debug("settings loaded",
		zap.String("config_dir", getConfigDir()),
		zap.String("log_level", cfg.LogLevel),
	)
	return cfg, log, nil
}

// runPreview launches the interactive preview.
func runPreview(cmd *cobra.Command, args []string) error {
	if err := config.EnsureDir(getConfigDir()); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	var copyFn tui.CopyFunc
	if clipboard.Available() {
		copyFn = clipboard.Write
	}

	p := tea.NewProgram(
		tui.New(pinyin.NewParser(), copyFn),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
