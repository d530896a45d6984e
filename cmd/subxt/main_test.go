package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-subxt/nodeapi"
)

const registryPath = "/registry.json"

func execute(tb testing.TB, args ...string) (string, error) {
	tb.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "metadata", "testdata", "registry.json"))
	require.NoError(tb, err)
	fs := afero.NewMemMapFs()
	require.NoError(tb, afero.WriteFile(fs, registryPath, data, 0o600))

	root := newRootCommand(fs)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--metadata", registryPath, "--log-level", "error"}, args...))
	err = root.Execute()
	return out.String(), err
}

func requireKind(tb testing.TB, err error, kind nodeapi.Kind) {
	tb.Helper()
	var nerr *nodeapi.Error
	require.True(tb, errors.As(err, &nerr), "%v", err)
	require.Equal(tb, kind, nerr.Kind, "%v", err)
}

func TestResolve(t *testing.T) {
	for _, tc := range []struct {
		desc string
		raw  string
		out  string
	}{
		{
			desc: "module",
			raw:  "0x030502000000",
			out:  "module\tmodule error: Balances.InsufficientBalance: Balance too low to send value.\n",
		},
		{
			desc: "bad origin",
			raw:  "0x02",
			out:  "bad_origin\tbad origin\n",
		},
		{
			desc: "arithmetic",
			raw:  "0x0801",
			out:  "other\tother error: math_error\n",
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			out, err := execute(t, "resolve", tc.raw)
			require.NoError(t, err)
			require.Equal(t, tc.out, out)
		})
	}
}

func TestResolveErrors(t *testing.T) {
	t.Run("unknown error index", func(t *testing.T) {
		_, err := execute(t, "resolve", "0x030509000000")
		requireKind(t, err, nodeapi.KindMetadata)
	})
	t.Run("fail", func(t *testing.T) {
		_, err := execute(t, "resolve", "--fail", "0x02")
		requireKind(t, err, nodeapi.KindRuntime)
		require.ErrorContains(t, err, "bad origin")
	})
	t.Run("not hex", func(t *testing.T) {
		_, err := execute(t, "resolve", "0302")
		requireKind(t, err, nodeapi.KindOther)
	})
}

func TestBatch(t *testing.T) {
	out, err := execute(t, "batch", "0x050001")
	require.NoError(t, err)
	require.Equal(t, "call\t40:0\t0x280004050001\n"+
		"extrinsic\t0x1c04280004050001\n", firstLines(out, 2))

	out, err = execute(t, "batch", "--force", "0x050001")
	require.NoError(t, err)
	require.Equal(t, "call\t40:4\t0x280404050001\n"+
		"extrinsic\t0x1c04280404050001\n", firstLines(out, 2))
}

func TestBatchShortCall(t *testing.T) {
	_, err := execute(t, "batch", "0x05")
	requireKind(t, err, nodeapi.KindOther)
}

func TestPayout(t *testing.T) {
	stash := "0x" + string(bytes.Repeat([]byte("01"), 32))
	out, err := execute(t, "payout", stash+":7")
	require.NoError(t, err)
	// utility batch ++ compact(1) ++ 07 12 ++ stash ++ era
	want := "0x280004" + "0712" + string(bytes.Repeat([]byte("01"), 32)) + "07000000"
	require.Equal(t, "call\t40:0\t"+want+"\n", firstLines(out, 1))

	_, err = execute(t, "payout", "bad")
	require.ErrorContains(t, err, "is not <stash>:<era>")
}

func TestStorageKey(t *testing.T) {
	out, err := execute(t, "storage-key", "System", "Number")
	require.NoError(t, err)
	require.Equal(t, "0x26aa394eea5630e07c48ae0c9558cef702a5c1b19ab7a04f536c519aca4983ac\n", out)

	_, err = execute(t, "storage-key", "System", "Number", "0x01")
	requireKind(t, err, nodeapi.KindStorageAddress)

	_, err = execute(t, "storage-key", "System", "Missing")
	requireKind(t, err, nodeapi.KindMetadata)
}

func TestDecode(t *testing.T) {
	out, err := execute(t, "decode", "8", "0x0105000000")
	require.NoError(t, err)
	require.Equal(t, "Some (5)\n", out)

	_, err = execute(t, "decode", "2", "0x0500")
	requireKind(t, err, nodeapi.KindDecodeValue)
}

func TestMissingMetadata(t *testing.T) {
	root := newRootCommand(afero.NewMemMapFs())
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"--metadata", "/missing.json", "resolve", "0x02"})
	require.ErrorContains(t, root.Execute(), "open registry /missing.json")
}

func firstLines(s string, n int) string {
	var b bytes.Buffer
	for _, line := range bytes.SplitAfter([]byte(s), []byte("\n")) {
		if n == 0 {
			break
		}
		b.Write(line)
		n--
	}
	return b.String()
}
