// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/cfpq/query"
)

func newRunCmd(f *flags) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Answer the query with one algorithm",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			doc, err := f.load(ctx)
			if err != nil {
				return err
			}
			name := algorithm
			if name == "" {
				name = doc.Algorithm
			}
			if name == "" {
				name = string(query.GLL)
			}
			alg, err := query.Parse(name)
			if err != nil {
				return err
			}

			out, err := query.Run(ctx, alg, doc, f.solverOptions(ctx)...)
			if err != nil {
				return err
			}

			return printOutcomes(cmd.OutOrStdout(), f.asJSON, out)
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "", "gll, tensor, hellings, matrix, rpq or bfs (default: document, then gll)")

	return cmd
}
