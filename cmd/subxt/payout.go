package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-subxt/common/types"
	"github.com/spacemeshos/go-subxt/common/util"
	"github.com/spacemeshos/go-subxt/extrinsic"
)

func payoutCommand(a *app) *cobra.Command {
	var callIndex string
	c := &cobra.Command{
		Use:   "payout <stash>:<era>...",
		Short: "Batch Staking.payout_stakers calls for validator stashes",
		Long: `Batch Staking.payout_stakers calls for validator stashes.
The stash is either an ss58 address or a 0x prefixed account id.
The index of payout_stakers is taken from --call-index as is, only Utility.batch is looked up.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			index, err := parseCallIndex(callIndex)
			if err != nil {
				return report(err)
			}
			calls := make([]extrinsic.PayoutCall, 0, len(args))
			for _, arg := range args {
				payout, err := parsePayout(arg)
				if err != nil {
					return report(err)
				}
				calls = append(calls, extrinsic.PayoutCall{Index: index, Args: payout})
			}
			composer := extrinsic.New(a.md, extrinsic.WithLogger(a.Logger("extrinsic")))
			batch, err := composer.BatchPayoutStakers(calls)
			if err != nil {
				return report(err)
			}
			return printCall(c.OutOrStdout(), batch)
		},
	}
	c.Flags().StringVar(&callIndex, "call-index", "0x0712", "pallet and call index of Staking.payout_stakers")
	return c
}

func parseCallIndex(s string) (types.CallIndex, error) {
	raw, err := util.Decode(s)
	if err != nil {
		return types.CallIndex{}, fmt.Errorf("parse call index %q: %w", s, err)
	}
	if len(raw) != 2 {
		return types.CallIndex{}, fmt.Errorf("call index %q must be 2 bytes", s)
	}
	return types.CallIndexFromBytes([2]byte(raw)), nil
}

func parsePayout(s string) (extrinsic.PayoutStakers, error) {
	stash, era, ok := strings.Cut(s, ":")
	if !ok {
		return extrinsic.PayoutStakers{}, fmt.Errorf("payout %q is not <stash>:<era>", s)
	}
	var (
		account types.AccountID
		err     error
	)
	if strings.HasPrefix(stash, "0x") {
		var raw []byte
		raw, err = util.Decode(stash)
		if err == nil && len(raw) != len(account) {
			err = fmt.Errorf("account id must be %d bytes, got %d", len(account), len(raw))
		}
		copy(account[:], raw)
	} else {
		account, err = types.StringToAccountID(stash)
	}
	if err != nil {
		return extrinsic.PayoutStakers{}, fmt.Errorf("parse stash %q: %w", stash, err)
	}
	n, err := strconv.ParseUint(era, 10, 32)
	if err != nil {
		return extrinsic.PayoutStakers{}, fmt.Errorf("parse era %q: %w", era, err)
	}
	return extrinsic.PayoutStakers{ValidatorStash: account, Era: uint32(n)}, nil
}
