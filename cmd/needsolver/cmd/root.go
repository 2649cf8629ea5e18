// Package cmd provides the needsolver CLI's commands.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mihail-gribov/need-solver/internal/config"
	"github.com/mihail-gribov/need-solver/internal/logging"
)

var (
	cfgFile     string
	dataDirFlag string
	profileFlag string
	cfg         *config.Config
)

// NewRootCmd builds the needsolver root command and its subcommands.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "needsolver",
		Short: "Adaptive need-based recommendation engine",
		Long: `needsolver runs an adaptive questionnaire over a catalog of objects
scored against a set of needs, ranks the catalog by the answers given so
far, and explains why an object ranks where it does.`,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = loaded
			if dataDirFlag != "" {
				cfg.DataDir = dataDirFlag
			}
			if profileFlag != "" {
				cfg.ProfilePath = profileFlag
			}
			logging.Init(cfg.LogLevel, cfg.LogFormat)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "directory holding features.yaml, catalog.yaml, needs.yaml, questions.yaml")
	root.PersistentFlags().StringVar(&profileFlag, "profile", "", "path to the persisted profile YAML file")

	root.AddCommand(newLoadCmd())
	root.AddCommand(newAskCmd())
	root.AddCommand(newRankCmd())
	root.AddCommand(newExplainCmd())
	root.AddCommand(newResetCmd())

	return root
}
