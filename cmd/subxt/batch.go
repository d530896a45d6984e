package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-subxt/common/util"
	"github.com/spacemeshos/go-subxt/extrinsic"
)

func batchCommand(a *app) *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "batch <call-hex>...",
		Short: "Wrap encoded calls into Utility.batch or Utility.force_batch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			calls := make([]extrinsic.Call, 0, len(args))
			for i, arg := range args {
				raw, err := util.Decode(arg)
				if err != nil {
					return report(fmt.Errorf("parse call %d: %w", i, err))
				}
				call, err := extrinsic.ParseCall(raw)
				if err != nil {
					return report(fmt.Errorf("parse call %d: %w", i, err))
				}
				calls = append(calls, call)
			}
			composer := extrinsic.New(a.md, extrinsic.WithLogger(a.Logger("extrinsic")))
			var (
				batch *extrinsic.Call
				err   error
			)
			if force {
				batch, err = composer.ForceBatch(calls)
			} else {
				batch, err = composer.Batch(calls)
			}
			if err != nil {
				return report(err)
			}
			return printCall(c.OutOrStdout(), batch)
		},
	}
	c.Flags().BoolVar(&force, "force", false, "use Utility.force_batch which continues after a failed call")
	return c
}

// printCall writes the call, its unsigned extrinsic and the extrinsic hash.
func printCall(w io.Writer, call *extrinsic.Call) error {
	body, err := call.Bytes()
	if err != nil {
		return report(err)
	}
	xt, err := extrinsic.Unsigned(call)
	if err != nil {
		return report(err)
	}
	fmt.Fprintf(w, "call\t%s\t%s\n", call.Index, util.Encode(body))
	fmt.Fprintf(w, "extrinsic\t%s\n", util.Encode(xt))
	fmt.Fprintf(w, "hash\t%s\n", extrinsic.Hash(xt).Hex())
	return nil
}
