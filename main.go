package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/VANSHIKA-2727/portfolio/internal/config"
	"github.com/VANSHIKA-2727/portfolio/internal/content"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	portFlag    string
	contentFlag string
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		if portFlag != "" {
			cfg.Port = portFlag
		}
		if contentFlag != "" {
			cfg.ContentFile = contentFlag
		}

		logger, err = newLogger(cfg)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	RunE:  runServe,
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration and page content",
	RunE:  runCheck,
}

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Preview the page in the terminal",
	RunE:  runPreview,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&portFlag, "port", "", "HTTP port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&contentFlag, "content", "", "content YAML file (overrides the compiled-in copy)")
	rootCmd.AddCommand(serveCmd, checkCmd, previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newLogger(c *config.Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if c.Debug() {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}

func loadContent(c *config.Config) (*content.Content, error) {
	if c.ContentFile != "" {
		return content.Load(c.ContentFile)
	}
	return content.Default()
}

func ginMode(c *config.Config) string {
	switch c.GinMode {
	case "debug":
		return gin.DebugMode
	case "test":
		return gin.TestMode
	default:
		return gin.ReleaseMode
	}
}
