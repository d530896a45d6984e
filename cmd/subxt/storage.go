package main

import (
	"fmt"

	"github.com/spacemeshos/go-scale"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/common/util"
	"github.com/spacemeshos/go-subxt/storage"
)

// encodedKey is a storage map key that is already SCALE encoded.
type encodedKey []byte

func (k encodedKey) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, k)
}

func storageKeyCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "storage-key <pallet> <entry> [key-hex]...",
		Short: "Print the storage key of an entry",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			addr := storage.Address{Pallet: args[0], Entry: args[1]}
			for i, arg := range args[2:] {
				raw, err := util.Decode(arg)
				if err != nil {
					return report(fmt.Errorf("parse key %d: %w", i, err))
				}
				addr.Keys = append(addr.Keys, codec.Encodable(encodedKey(raw)))
			}
			key, err := addr.Key(a.md)
			if err != nil {
				return report(err)
			}
			fmt.Fprintln(c.OutOrStdout(), util.Encode(key))
			return nil
		},
	}
}
