package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/edgar-scout/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "edgar-scout",
	Short: "SEC EDGAR company lookup and industry classification",
	Long:  "Finds public and private companies on SEC EDGAR by name or CIK and derives an industry classification from SIC codes, filed descriptions, Form D filings, and name heuristics.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
