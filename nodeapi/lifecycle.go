package nodeapi

import (
	"fmt"

	"github.com/spacemeshos/go-subxt/common/util"
)

// TransactionError is a failure to track a submitted transaction.
type TransactionError uint8

const (
	// FinalitySubscriptionTimeout is reported when the transaction was not finalized
	// before the finality subscription expired.
	FinalitySubscriptionTimeout TransactionError = iota + 1
	// RetractedBlockHashNotFound is reported when the block the transaction was included in
	// cannot be found, usually because it was retracted before being finalized.
	RetractedBlockHashNotFound
)

func (e TransactionError) Error() string {
	switch e {
	case FinalitySubscriptionTimeout:
		return "transaction: finality subscription timeout"
	case RetractedBlockHashNotFound:
		return "transaction: block hash not found"
	}
	return fmt.Sprintf("transaction: error %d", uint8(e))
}

// BlockError is a failure to find a block.
type BlockError struct {
	// Hash is the 0x prefixed lowercase hex hash of the block that was not found.
	Hash string
}

// BlockHashNotFound returns the error for a block that cannot be found by hash.
func BlockHashNotFound(hash []byte) BlockError {
	return BlockError{Hash: util.Encode(hash)}
}

func (e BlockError) Error() string {
	return "block hash not found: " + e.Hash
}
