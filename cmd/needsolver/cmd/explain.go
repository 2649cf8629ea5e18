package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mihail-gribov/need-solver/explain"
	"github.com/mihail-gribov/need-solver/internal/session"
	"github.com/mihail-gribov/need-solver/internal/ui"
)

func newExplainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "explain <object-id>",
		Short: "Print the per-need pros/cons/conflicts breakdown for an object",
		Args:  cobra.ExactArgs(1),
		RunE: func(cc *cobra.Command, args []string) error {
			bundle, err := session.LoadBundle(cfg.DataDir)
			if err != nil {
				return err
			}
			p, err := session.LoadProfile(cfg.ProfilePath, bundle.KnownNeedIDs())
			if err != nil {
				return err
			}

			breakdown, ok := explain.Explain(p.Needs(), bundle.Matrix, args[0])
			if !ok {
				return fmt.Errorf("explain: unknown object %q", args[0])
			}

			styles := ui.For(cfg.NoColor)
			fmt.Println(styles.Title.Render("pros"))
			for _, r := range breakdown.Pros {
				fmt.Println(styles.Pro.Render(fmt.Sprintf("  %-20s sim=%.3f user=%s matrix=%s", r.NeedID, r.Similarity, r.User, r.Matrix)))
			}
			fmt.Println(styles.Title.Render("cons"))
			for _, r := range breakdown.Cons {
				fmt.Println(styles.Con.Render(fmt.Sprintf("  %-20s sim=%.3f user=%s matrix=%s", r.NeedID, r.Similarity, r.User, r.Matrix)))
			}
			if len(breakdown.Conflicts) > 0 {
				fmt.Println(styles.Title.Render("conflicts"))
				for _, r := range breakdown.Conflicts {
					fmt.Println(styles.Conflict.Render(fmt.Sprintf("  %-20s user=%s matrix=%s", r.NeedID, r.User, r.Matrix)))
				}
			}
			return nil
		},
	}
}
