package metadata

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/go-subxt/common/types"
)

func testPallets() []PalletMetadata {
	return []PalletMetadata{
		{
			Name:  "Utility",
			Index: 40,
			Calls: []CallMetadata{
				{Name: "batch", Index: 0},
				{Name: "force_batch", Index: 4},
			},
			Errors: []ErrorMetadata{
				{Name: "TooManyCalls", Index: 0, Docs: []string{"Too many calls batched."}},
			},
		},
		{
			Name:  "Balances",
			Index: 5,
			Calls: []CallMetadata{
				{Name: "transfer_allow_death", Index: 0, Fields: []Field{{Name: "value", Type: 1}}},
			},
			Errors: []ErrorMetadata{
				{Name: "VestingBalance", Index: 0},
				{Name: "InsufficientBalance", Index: 2, Docs: []string{"Balance too low to send value."}},
			},
			Storage: &StorageMetadata{
				Prefix: "Balances",
				Entries: []StorageEntry{
					{Name: "TotalIssuance", Plain: true, ValueType: 1},
				},
			},
		},
	}
}

func testTypes() []Type {
	return []Type{
		{ID: 0, Def: TypeDef{Kind: KindPrimitive, Primitive: U8}},
		{ID: 1, Def: TypeDef{Kind: KindCompact, Elem: 2}},
		{ID: 2, Def: TypeDef{Kind: KindPrimitive, Primitive: U128}},
		{ID: 3, Def: TypeDef{Kind: KindTuple, Tuple: []uint32{0, 2}}},
	}
}

func testMetadata(tb testing.TB) *Metadata {
	tb.Helper()
	md, err := New(Version{SpecVersion: 1, TransactionVersion: 1}, testPallets(), testTypes())
	require.NoError(tb, err)
	return md
}

func TestErrorLookup(t *testing.T) {
	md := testMetadata(t)

	t.Run("found", func(t *testing.T) {
		info, err := md.Error(5, 2)
		require.NoError(t, err)
		require.Equal(t, "Balances", info.Pallet())
		require.Equal(t, "InsufficientBalance", info.Name)
		require.Equal(t, []string{"Balance too low to send value."}, info.Description())
	})
	t.Run("unknown pallet", func(t *testing.T) {
		_, err := md.Error(99, 0)
		require.ErrorIs(t, err, ErrPalletIndexNotFound)
		require.NotErrorIs(t, err, ErrErrorIndexNotFound)
		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		require.EqualValues(t, 99, lerr.PalletIndex)
	})
	t.Run("unknown error", func(t *testing.T) {
		_, err := md.Error(5, 1)
		require.ErrorIs(t, err, ErrErrorIndexNotFound)
		var lerr *Error
		require.ErrorAs(t, err, &lerr)
		require.Equal(t, "Balances", lerr.Pallet)
		require.EqualValues(t, 5, lerr.PalletIndex)
		require.EqualValues(t, 1, lerr.Index)
		require.Equal(t, "error index not found: 1 in pallet Balances (5)", err.Error())
	})
}

func TestCallIndex(t *testing.T) {
	md := testMetadata(t)

	idx, err := md.CallIndex("Utility", "force_batch")
	require.NoError(t, err)
	require.Equal(t, types.CallIndex{Pallet: 40, Call: 4}, idx)

	for _, tc := range []struct {
		desc         string
		pallet, call string
	}{
		{desc: "unknown call", pallet: "Utility", call: "batch_all"},
		{desc: "unknown pallet", pallet: "Staking", call: "batch"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := md.CallIndex(tc.pallet, tc.call)
			require.ErrorIs(t, err, ErrCallNotFound)
			var lerr *Error
			require.ErrorAs(t, err, &lerr)
			require.Equal(t, tc.pallet, lerr.Pallet)
			require.Equal(t, tc.call, lerr.Name)
		})
	}
}

func TestPalletLookups(t *testing.T) {
	md := testMetadata(t)

	p, err := md.Pallet(40)
	require.NoError(t, err)
	require.Equal(t, "Utility", p.Name)

	p, err = md.PalletByName("Balances")
	require.NoError(t, err)
	require.EqualValues(t, 5, p.Index)

	_, err = md.Pallet(1)
	require.ErrorIs(t, err, ErrPalletIndexNotFound)
	_, err = md.PalletByName("Staking")
	require.ErrorIs(t, err, ErrPalletNameNotFound)

	pallets := md.Pallets()
	require.Len(t, pallets, 2)
	require.Equal(t, "Balances", pallets[0].Name)
	require.Equal(t, "Utility", pallets[1].Name)
}

func TestTypeAndStorage(t *testing.T) {
	md := testMetadata(t)

	typ, err := md.Type(3)
	require.NoError(t, err)
	require.Equal(t, KindTuple, typ.Def.Kind)
	_, err = md.Type(100)
	require.ErrorIs(t, err, ErrTypeNotFound)

	entry, prefix, err := md.StorageEntry("Balances", "TotalIssuance")
	require.NoError(t, err)
	require.Equal(t, "Balances", prefix)
	require.True(t, entry.Plain)
	_, _, err = md.StorageEntry("Balances", "Account")
	require.ErrorIs(t, err, ErrStorageNotFound)
	_, _, err = md.StorageEntry("Utility", "Anything")
	require.ErrorIs(t, err, ErrStorageNotFound)
}

func TestNewInvalid(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		mutate  func([]PalletMetadata, []Type) ([]PalletMetadata, []Type)
		message string
	}{
		{
			desc: "duplicate pallet index",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				p[1].Index = p[0].Index
				return p, ts
			},
			message: "duplicate pallet index 40",
		},
		{
			desc: "duplicate pallet name",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				p[1].Name = p[0].Name
				return p, ts
			},
			message: `duplicate pallet name "Utility"`,
		},
		{
			desc: "duplicate error index",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				p[1].Errors[1].Index = 0
				return p, ts
			},
			message: "duplicate error index 0 in pallet Balances",
		},
		{
			desc: "duplicate call index",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				p[0].Calls[1].Index = 0
				return p, ts
			},
			message: "duplicate call index 0 in pallet Utility",
		},
		{
			desc: "duplicate type",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				return p, append(ts, Type{ID: 0, Def: TypeDef{Kind: KindPrimitive}})
			},
			message: "duplicate type id 0",
		},
		{
			desc: "field with unknown type",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				p[1].Calls[0].Fields[0].Type = 77
				return p, ts
			},
			message: `call Balances.transfer_allow_death: field "value" references unknown type 77`,
		},
		{
			desc: "storage with unknown type",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				p[1].Storage.Entries[0].ValueType = 77
				return p, ts
			},
			message: "storage Balances.TotalIssuance references unknown value type 77",
		},
		{
			desc: "dangling tuple element",
			mutate: func(p []PalletMetadata, ts []Type) ([]PalletMetadata, []Type) {
				ts[3].Def.Tuple = []uint32{0, 9}
				return p, ts
			},
			message: "type 3 references unknown type 9",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			pallets, registry := tc.mutate(testPallets(), testTypes())
			_, err := New(Version{}, pallets, registry)
			require.ErrorIs(t, err, ErrInvalidMetadata)
			var invalid *InvalidMetadataError
			require.ErrorAs(t, err, &invalid)
			require.Equal(t, tc.message, invalid.Reason)
		})
	}
}

func TestNewCopiesInput(t *testing.T) {
	pallets := testPallets()
	md, err := New(Version{}, pallets, testTypes())
	require.NoError(t, err)

	pallets[1].Errors[1].Docs[0] = "changed"
	pallets[1].Errors[1].Name = "Changed"

	info, err := md.Error(5, 2)
	require.NoError(t, err)
	require.Equal(t, "InsufficientBalance", info.Name)
	require.Equal(t, []string{"Balance too low to send value."}, info.Docs)
}

func TestLookupsReturnCopies(t *testing.T) {
	md := testMetadata(t)

	p, err := md.Pallet(5)
	require.NoError(t, err)
	p.Name = "Changed"
	p.Errors[1].Name = "Changed"
	p.Errors[1].Docs[0] = "changed"
	p.Calls[0].Index = 9
	p.Storage.Prefix = "Changed"
	p.Storage.Entries[0].Plain = false

	byName, err := md.PalletByName("Balances")
	require.NoError(t, err)
	byName.Errors[1].Index = 7

	for _, p := range md.Pallets() {
		p.Errors[0].Name = "Changed"
	}

	info, err := md.Error(5, 2)
	require.NoError(t, err)
	info.Name = "Changed"
	info.Docs[0] = "changed"

	call, owner, err := md.Call("Balances", "transfer_allow_death")
	require.NoError(t, err)
	call.Fields[0].Type = 3
	owner.Index = 6

	typ, err := md.Type(3)
	require.NoError(t, err)
	typ.Def.Tuple[0] = 1

	entry, _, err := md.StorageEntry("Balances", "TotalIssuance")
	require.NoError(t, err)
	entry.Plain = false

	require.Equal(t, pristine(t), snapshot(t, md))
}

func pristine(tb testing.TB) []*PalletMetadata {
	tb.Helper()
	return testMetadata(tb).Pallets()
}

func snapshot(tb testing.TB, md *Metadata) []*PalletMetadata {
	tb.Helper()
	info, err := md.Error(5, 2)
	require.NoError(tb, err)
	require.Equal(tb, "InsufficientBalance", info.Name)
	require.Equal(tb, []string{"Balance too low to send value."}, info.Docs)

	idx, err := md.CallIndex("Balances", "transfer_allow_death")
	require.NoError(tb, err)
	require.Equal(tb, types.CallIndex{Pallet: 5, Call: 0}, idx)

	call, _, err := md.Call("Balances", "transfer_allow_death")
	require.NoError(tb, err)
	require.Equal(tb, uint32(1), call.Fields[0].Type)

	typ, err := md.Type(3)
	require.NoError(tb, err)
	require.Equal(tb, []uint32{0, 2}, typ.Def.Tuple)

	entry, prefix, err := md.StorageEntry("Balances", "TotalIssuance")
	require.NoError(tb, err)
	require.True(tb, entry.Plain)
	require.Equal(tb, "Balances", prefix)
	return md.Pallets()
}

func TestConcurrentReads(t *testing.T) {
	md := testMetadata(t)
	var eg errgroup.Group
	for i := 0; i < 16; i++ {
		eg.Go(func() error {
			for j := 0; j < 100; j++ {
				info, err := md.Error(5, 2)
				if err != nil {
					return err
				}
				if info.Name != "InsufficientBalance" {
					return errors.New("unexpected error name " + info.Name)
				}
				if _, err := md.CallIndex("Utility", "batch"); err != nil {
					return err
				}
				if _, err := md.Error(5, 1); !errors.Is(err, ErrErrorIndexNotFound) {
					return errors.New("expected error index not found")
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}

func TestHasherNames(t *testing.T) {
	for _, h := range []Hasher{Blake2_128, Blake2_256, Blake2_128Concat, Twox128, Twox256, Twox64Concat, Identity} {
		parsed, err := ParseHasher(h.String())
		require.NoError(t, err)
		require.Equal(t, h, parsed)
	}
	_, err := ParseHasher("sha256")
	require.Error(t, err)
}

func TestVariantLookups(t *testing.T) {
	typ := Type{Def: TypeDef{Kind: KindVariant, Variants: []Variant{
		{Name: "None", Index: 0},
		{Name: "Some", Index: 1, Fields: []Field{{Type: 0}}},
	}}}
	v, ok := typ.VariantByIndex(1)
	require.True(t, ok)
	require.Equal(t, "Some", v.Name)
	v, ok = typ.VariantByName("None")
	require.True(t, ok)
	if diff := cmp.Diff(Variant{Name: "None"}, *v); diff != "" {
		t.Errorf("variant mismatch (-want +got):\n%s", diff)
	}
	_, ok = typ.VariantByIndex(2)
	require.False(t, ok)
}
