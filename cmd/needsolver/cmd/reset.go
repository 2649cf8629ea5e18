package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Delete the persisted profile, starting the questionnaire over",
		RunE: func(cc *cobra.Command, args []string) error {
			if err := os.Remove(cfg.ProfilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			fmt.Printf("profile reset: %s\n", cfg.ProfilePath)
			return nil
		},
	}
}
