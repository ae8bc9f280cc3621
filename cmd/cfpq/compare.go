// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cfpq/query"
)

func newCompareCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run every applicable algorithm and check that answers agree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			doc, err := f.load(ctx)
			if err != nil {
				return err
			}

			outs, cmpErr := query.Compare(ctx, doc, f.solverOptions(ctx)...)
			if outs == nil {
				return cmpErr
			}
			if err := printOutcomes(cmd.OutOrStdout(), f.asJSON, outs...); err != nil {
				return err
			}

			return cmpErr
		},
	}
}
