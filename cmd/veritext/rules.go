package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/veritext/veritext/pkg/scoring"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the detection rule table",
		Long:  `Lists every scoring rule in evaluation order with its firing condition.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, r := range scoring.DefaultRules() {
				fmt.Printf("%2d. %-24s %s\n", i+1, r.Key, r.Name)
				fmt.Printf("    fires when %s\n", r.Summary)
			}
			return nil
		},
	}
}
