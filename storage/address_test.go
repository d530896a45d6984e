package storage

import (
	"errors"
	"testing"

	"github.com/spacemeshos/go-scale"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-subxt/codec"
	"github.com/spacemeshos/go-subxt/common/types"
	"github.com/spacemeshos/go-subxt/common/util"
	"github.com/spacemeshos/go-subxt/metadata"
)

type u32 uint32

func (v *u32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeUint32(e, uint32(*v))
}

func testMetadata(tb testing.TB) *metadata.Metadata {
	tb.Helper()
	md, err := metadata.New(metadata.Version{SpecVersion: 1}, []metadata.PalletMetadata{
		{
			Name:  "System",
			Index: 0,
			Storage: &metadata.StorageMetadata{
				Prefix: "System",
				Entries: []metadata.StorageEntry{
					{Name: "Account", Hashers: []metadata.Hasher{metadata.Blake2_128Concat}, KeyType: 0, ValueType: 2},
					{Name: "Number", Plain: true, ValueType: 2},
					{Name: "Pair", Hashers: []metadata.Hasher{metadata.Twox64Concat, metadata.Identity}, KeyType: 3, ValueType: 2},
					{Name: "NotTuple", Hashers: []metadata.Hasher{metadata.Twox64Concat, metadata.Identity}, KeyType: 2, ValueType: 2},
					{Name: "Mismatch", Hashers: []metadata.Hasher{metadata.Twox64Concat}, KeyType: 2, ValueType: 2},
					{Name: "Triple", Hashers: []metadata.Hasher{metadata.Twox64Concat, metadata.Identity, metadata.Identity}, KeyType: 3, ValueType: 2},
				},
			},
		},
	}, []metadata.Type{
		{ID: 0, Def: metadata.TypeDef{Kind: metadata.KindArray, Len: 32, Elem: 1}},
		{ID: 1, Def: metadata.TypeDef{Kind: metadata.KindPrimitive, Primitive: metadata.U8}},
		{ID: 2, Def: metadata.TypeDef{Kind: metadata.KindPrimitive, Primitive: metadata.U32}},
		{ID: 3, Def: metadata.TypeDef{Kind: metadata.KindTuple, Tuple: []uint32{2, 2}}},
	})
	require.NoError(tb, err)
	return md
}

func alice(tb testing.TB) types.AccountID {
	tb.Helper()
	var id types.AccountID
	copy(id[:], util.FromHex("0xd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d"))
	return id
}

func TestAccountKey(t *testing.T) {
	id := alice(t)
	addr := Address{Pallet: "System", Entry: "Account", Keys: []codec.Encodable{&id}}
	key, err := addr.Key(testMetadata(t))
	require.NoError(t, err)
	require.Equal(t,
		"0x26aa394eea5630e07c48ae0c9558cef7b99d880ec681799c0cf30e8886371da9"+
			"de1e86a9a8c739864cf3cc5ec2bea59fd43593c715fdd31c61141abd04a99fd6822c8558854ccde39a5684e7a56da27d",
		util.Encode(key))
}

func TestPlainKey(t *testing.T) {
	md := testMetadata(t)
	addr := Address{Pallet: "System", Entry: "Number"}
	key, err := addr.Key(md)
	require.NoError(t, err)
	require.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef702a5c1b19ab7a04f536c519aca4983ac", util.Encode(key))

	root, err := RootKey(md, "System", "Number")
	require.NoError(t, err)
	require.Equal(t, key, root)

	one := u32(1)
	_, err = (&Address{Pallet: "System", Entry: "Number", Keys: []codec.Encodable{&one}}).Key(md)
	var aerr *AddressError
	require.ErrorAs(t, err, &aerr)
	require.Equal(t, WrongNumberOfKeys, aerr.Kind)
}

func TestDoubleMapKey(t *testing.T) {
	md := testMetadata(t)
	a, b := u32(1), u32(2)
	key, err := (&Address{Pallet: "System", Entry: "Pair", Keys: []codec.Encodable{&a, &b}}).Key(md)
	require.NoError(t, err)

	root, err := RootKey(md, "System", "Pair")
	require.NoError(t, err)
	require.Equal(t, root, key[:32])
	rest := key[32:]
	require.Len(t, rest, 8+4+4)
	require.Equal(t, []byte{1, 0, 0, 0}, rest[8:12])
	require.Equal(t, []byte{2, 0, 0, 0}, rest[12:])
	require.Equal(t, Hash(metadata.Twox64Concat, []byte{1, 0, 0, 0}), rest[:12])
}

func TestAddressErrors(t *testing.T) {
	md := testMetadata(t)
	a, b := u32(1), u32(2)
	for _, tc := range []struct {
		desc string
		addr Address
		want AddressError
	}{
		{
			desc: "too few keys",
			addr: Address{Pallet: "System", Entry: "Pair", Keys: []codec.Encodable{&a}},
			want: AddressError{Kind: WrongNumberOfKeys, Actual: 2, Expected: 1},
		},
		{
			desc: "not a tuple",
			addr: Address{Pallet: "System", Entry: "NotTuple", Keys: []codec.Encodable{&a, &b}},
			want: AddressError{Kind: MapTypeMustBeTuple},
		},
		{
			desc: "hashers and fields mismatch",
			addr: Address{Pallet: "System", Entry: "Triple", Keys: []codec.Encodable{&a, &b}},
			want: AddressError{Kind: WrongNumberOfHashers, Hashers: 3, Fields: 2},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := tc.addr.Key(md)
			require.ErrorIs(t, err, ErrStorageAddress)
			var aerr *AddressError
			require.ErrorAs(t, err, &aerr)
			require.Equal(t, tc.want, *aerr)
		})
	}

	_, err := (&Address{Pallet: "System", Entry: "Missing"}).Key(md)
	require.ErrorIs(t, err, metadata.ErrStorageNotFound)
}

type missingTypes struct {
	*metadata.Metadata
}

func (missingTypes) Type(id uint32) (*metadata.Type, error) {
	return nil, &metadata.Error{Kind: metadata.ErrTypeNotFound, TypeID: id}
}

func TestAddressTypeNotFound(t *testing.T) {
	id := alice(t)
	_, err := (&Address{Pallet: "System", Entry: "Account", Keys: []codec.Encodable{&id}}).Key(missingTypes{testMetadata(t)})
	var aerr *AddressError
	require.True(t, errors.As(err, &aerr))
	require.Equal(t, AddressError{Kind: TypeNotFound, TypeID: 0}, *aerr)
}

func TestHashers(t *testing.T) {
	data := []byte("key")
	require.Len(t, Hash(metadata.Blake2_128, data), 16)
	require.Len(t, Hash(metadata.Blake2_256, data), 32)
	require.Equal(t, data, Hash(metadata.Blake2_128Concat, data)[16:])
	require.Len(t, Hash(metadata.Twox128, data), 16)
	require.Len(t, Hash(metadata.Twox256, data), 32)
	require.Equal(t, data, Hash(metadata.Twox64Concat, data)[8:])
	require.Equal(t, data, Hash(metadata.Identity, data))
}
