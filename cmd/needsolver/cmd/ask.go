package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mihail-gribov/need-solver/internal/session"
	"github.com/mihail-gribov/need-solver/internal/ui"
	"github.com/mihail-gribov/need-solver/profile"
	"github.com/mihail-gribov/need-solver/question"
)

func newAskCmd() *cobra.Command {
	var epsilon float64

	c := &cobra.Command{
		Use:   "ask",
		Short: "Run the adaptive questionnaire against the persisted profile",
		RunE: func(cc *cobra.Command, args []string) error {
			if epsilon <= 0 {
				epsilon = cfg.Epsilon
			}
			return runAsk(cc, epsilon)
		},
	}

	c.Flags().Float64Var(&epsilon, "epsilon", 0, "convergence threshold; 0 uses the config default")
	return c
}

func runAsk(cc *cobra.Command, epsilon float64) error {
	bundle, err := session.LoadBundle(cfg.DataDir)
	if err != nil {
		return err
	}
	p, err := session.LoadProfile(cfg.ProfilePath, bundle.KnownNeedIDs())
	if err != nil {
		return err
	}

	styles := ui.For(cfg.NoColor)
	scanner := bufio.NewScanner(cc.InOrStdin())

	for {
		candidates := bundle.CandidateNeedIDs(p)
		rankings := question.GetQuestionRankings(p.Needs(), bundle.Matrix, candidates)

		if question.ConvergenceHint(rankings, epsilon) {
			fmt.Println(styles.Dim.Render("no more useful questions — stopping"))
			break
		}

		best := rankings[0]
		q, ok := bundle.QuestionForNeed(best.NeedID)
		if !ok {
			// candidates are built from questioned needs only; this would be
			// an inconsistent data directory.
			return fmt.Errorf("ask: need %q has no linked question", best.NeedID)
		}

		fmt.Println(styles.Prompt.Render(q.Text) + styles.Dim.Render("  [y/n/u/i/q]"))

		if !scanner.Scan() {
			break
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))

		switch answer {
		case "q", "quit":
			fmt.Println(styles.Dim.Render("stopping"))
			if err := session.SaveProfile(cfg.ProfilePath, p); err != nil {
				return err
			}
			return nil
		case "y", "yes":
			p.AddAnswer(best.NeedID, profile.Yes, q.Text)
		case "n", "no":
			p.AddAnswer(best.NeedID, profile.No, q.Text)
		case "u", "unknown", "":
			p.AddAnswer(best.NeedID, profile.Unknown, q.Text)
		case "i", "independent":
			p.MarkIndependent(best.NeedID)
		default:
			fmt.Println(styles.Dim.Render("unrecognized answer, skipping"))
			continue
		}

		if err := session.SaveProfile(cfg.ProfilePath, p); err != nil {
			return err
		}
	}

	return session.SaveProfile(cfg.ProfilePath, p)
}
