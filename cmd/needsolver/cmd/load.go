package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihail-gribov/need-solver/internal/logging"
	"github.com/mihail-gribov/need-solver/internal/session"
)

func newLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Validate the data directory and report catalog/need/question counts",
		RunE: func(c *cobra.Command, args []string) error {
			bundle, err := session.LoadBundle(cfg.DataDir)
			if err != nil {
				return err
			}
			logging.Logger().Info().
				Int("features", bundle.Table.Len()).
				Int("objects", bundle.Catalog.Len()).
				Int("needs", len(bundle.Needs)).
				Int("questions", len(bundle.Questions)).
				Msg("data directory loaded")

			fmt.Printf("features: %d\n", bundle.Table.Len())
			fmt.Printf("objects:  %d\n", bundle.Catalog.Len())
			fmt.Printf("needs:    %d\n", len(bundle.Needs))
			fmt.Printf("questions: %d\n", len(bundle.Questions))
			return nil
		},
	}
}
