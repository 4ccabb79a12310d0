package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"examhelper/config"
	"examhelper/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
	rootDir string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "examhelper",
	Short: "Answer exam questions from an indexed mark-scheme corpus",
	Long: `examhelper indexes extracted past-paper text into a TF-IDF vector
index over question chunks, retrieves the best-matching mark-scheme
content for a question, and formats an answer either locally or via a
generation back-end.

Example usage:
  examhelper index                              # Build the index from the text corpus
  examhelper query -q "What is the purpose of the ALU?"
  examhelper answer -q "Explain the role of the control unit. (4)"`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		// API keys live in .env during development; absence is fine.
		_ = godotenv.Load()

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logger.SetDebug(debug || cfg.Logging.Debug)
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./examhelper.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "root directory (default is current directory)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print pipeline diagnostics to stderr")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
