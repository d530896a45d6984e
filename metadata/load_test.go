package metadata

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-subxt/common/types"
)

func TestLoadFile(t *testing.T) {
	md, err := LoadFile(afero.NewOsFs(), "testdata/registry.json")
	require.NoError(t, err)
	require.Equal(t, Version{SpecVersion: 9430, TransactionVersion: 24}, md.Version())

	info, err := md.Error(0, 0)
	require.NoError(t, err)
	require.Equal(t, "System", info.Pallet())
	require.Equal(t, "InvalidSpecName", info.Name)
	require.Len(t, info.Description(), 2)

	idx, err := md.CallIndex("Utility", "force_batch")
	require.NoError(t, err)
	require.Equal(t, types.CallIndex{Pallet: 40, Call: 4}, idx)

	entry, prefix, err := md.StorageEntry("System", "Account")
	require.NoError(t, err)
	require.Equal(t, "System", prefix)
	require.Equal(t, []Hasher{Blake2_128Concat}, entry.Hashers)
	require.EqualValues(t, 0, entry.KeyType)

	entry, _, err = md.StorageEntry("System", "Number")
	require.NoError(t, err)
	require.True(t, entry.Plain)

	typ, err := md.Type(0)
	require.NoError(t, err)
	require.Equal(t, TypeDef{Kind: KindArray, Elem: 1, Len: 32}, typ.Def)

	typ, err = md.Type(8)
	require.NoError(t, err)
	require.Equal(t, KindVariant, typ.Def.Kind)
	require.Len(t, typ.Def.Variants, 2)
}

func TestLoadMemFs(t *testing.T) {
	data, err := os.ReadFile("testdata/registry.json")
	require.NoError(t, err)
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/registry.json", data, 0o600))

	md, err := LoadFile(fs, "/registry.json")
	require.NoError(t, err)
	require.Len(t, md.Pallets(), 3)

	_, err = LoadFile(fs, "/missing.json")
	require.Error(t, err)
}

func TestLoadInvalid(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		desc string
		data string
	}{
		{
			desc: "not json",
			data: "{",
		},
		{
			desc: "missing types",
			data: `{"version": {"spec_version": 1, "transaction_version": 1}, "pallets": []}`,
		},
		{
			desc: "pallet index out of range",
			data: `{"version": {"spec_version": 1, "transaction_version": 1},
				"pallets": [{"name": "System", "index": 256}], "types": []}`,
		},
		{
			desc: "unknown hasher",
			data: `{"version": {"spec_version": 1, "transaction_version": 1},
				"pallets": [{"name": "System", "index": 0, "storage": {"prefix": "System",
				"entries": [{"name": "Account", "hashers": ["sha256"], "key": 0, "value": 0}]}}],
				"types": [{"id": 0, "def": {"primitive": "u8"}}]}`,
		},
		{
			desc: "two definitions",
			data: `{"version": {"spec_version": 1, "transaction_version": 1}, "pallets": [],
				"types": [{"id": 0, "def": {"primitive": "u8", "compact": 0}}]}`,
		},
		{
			desc: "duplicate error index",
			data: `{"version": {"spec_version": 1, "transaction_version": 1},
				"pallets": [{"name": "System", "index": 0,
				"errors": [{"name": "A", "index": 1}, {"name": "B", "index": 1}]}], "types": []}`,
		},
		{
			desc: "unknown field",
			data: `{"version": {"spec_version": 1, "transaction_version": 1}, "pallets": [], "types": [], "extra": 1}`,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()
			_, err := Load(bytes.NewBufferString(tc.data))
			require.ErrorIs(t, err, ErrInvalidMetadata)
		})
	}
}

func TestValidateSchema(t *testing.T) {
	data, err := os.ReadFile("testdata/registry.json")
	require.NoError(t, err)
	require.NoError(t, ValidateSchema(data))
	require.Error(t, ValidateSchema([]byte(`{"version": 1}`)))
}
