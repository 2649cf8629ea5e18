package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihail-gribov/need-solver/internal/session"
	"github.com/mihail-gribov/need-solver/internal/ui"
	"github.com/mihail-gribov/need-solver/match"
)

func newRankCmd() *cobra.Command {
	var topK int

	c := &cobra.Command{
		Use:   "rank",
		Short: "Print the current top-k ranking for the persisted profile",
		RunE: func(cc *cobra.Command, args []string) error {
			bundle, err := session.LoadBundle(cfg.DataDir)
			if err != nil {
				return err
			}
			p, err := session.LoadProfile(cfg.ProfilePath, bundle.KnownNeedIDs())
			if err != nil {
				return err
			}

			styles := ui.For(cfg.NoColor)
			ranked := match.MatchFast(p.Needs(), bundle.Matrix, topK, nil)

			fmt.Println(styles.RankHead.Render(fmt.Sprintf("%-4s %-10s %s", "#", "object", "score")))
			for i, r := range ranked {
				fmt.Printf("%-4d %-10s %.4f\n", i+1, r.ObjectID, r.Score)
			}
			return nil
		},
	}

	c.Flags().IntVar(&topK, "top", 10, "number of ranked objects to print (0 for all)")
	return c
}
