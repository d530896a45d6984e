package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-subxt/common/util"
	"github.com/spacemeshos/go-subxt/value"
)

func decodeCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <type-id> <hex>",
		Short: "Decode a SCALE encoded value of a registry type",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			id, err := strconv.ParseUint(args[0], 10, 32)
			if err != nil {
				return report(fmt.Errorf("parse type id %q: %w", args[0], err))
			}
			raw, err := util.Decode(args[1])
			if err != nil {
				return report(fmt.Errorf("parse value: %w", err))
			}
			v, err := value.Decode(a.md, uint32(id), raw)
			if err != nil {
				return report(err)
			}
			fmt.Fprintln(c.OutOrStdout(), v.String())
			return nil
		},
	}
}
