package hash

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

func TestTwox128(t *testing.T) {
	for _, tc := range []struct {
		input  string
		expect string
	}{
		{input: "System", expect: "26aa394eea5630e07c48ae0c9558cef7"},
		{input: "Account", expect: "b99d880ec681799c0cf30e8886371da9"},
	} {
		t.Run(tc.input, func(t *testing.T) {
			h := Twox128([]byte(tc.input))
			require.Equal(t, tc.expect, hex.EncodeToString(h[:]))
		})
	}
}

func TestTwoxPrefixes(t *testing.T) {
	data := []byte("Timestamp")
	t64 := Twox64(data)
	t128 := Twox128(data)
	t256 := Twox256(data)
	require.Equal(t, t64[:], t128[:8])
	require.Equal(t, t128[:], t256[:16])
}

func TestBlake2b(t *testing.T) {
	data := []byte("subxt")
	require.Equal(t, blake2b.Sum256(data), Blake2b256(data))
	require.Equal(t, blake2b.Sum512(data), Blake2b512(data))

	h, err := blake2b.New(16, nil)
	require.NoError(t, err)
	h.Write(data)
	b128 := Blake2b128(data)
	require.Equal(t, h.Sum(nil), b128[:])
}

func TestSumReusesHashers(t *testing.T) {
	first := Sum([]byte("a"), []byte("b"))
	second := Sum([]byte("ab"))
	require.Equal(t, first, second)
	require.Equal(t, blake2b.Sum256([]byte("ab")), Sum([]byte("ab")))
}
