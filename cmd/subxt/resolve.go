package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-subxt/common/util"
	"github.com/spacemeshos/go-subxt/dispatch"
	"github.com/spacemeshos/go-subxt/nodeapi"
)

func resolveCommand(a *app) *cobra.Command {
	var fail bool
	c := &cobra.Command{
		Use:   "resolve <dispatch-error-hex>",
		Short: "Resolve a SCALE encoded dispatch error against the metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			raw, err := util.Decode(args[0])
			if err != nil {
				return report(fmt.Errorf("parse dispatch error: %w", err))
			}
			resolver := dispatch.New(a.md, dispatch.WithLogger(a.Logger("dispatch")))
			rerr, err := resolver.ResolveBytes(raw)
			if err != nil {
				return report(err)
			}
			if fail {
				return nodeapi.FromRuntime(rerr)
			}
			fmt.Fprintf(c.OutOrStdout(), "%s\t%s\n", rerr.Kind, rerr.Error())
			return nil
		},
	}
	c.Flags().BoolVar(&fail, "fail", false, "exit with an error carrying the resolved runtime error")
	return c
}
