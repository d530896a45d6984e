package secret

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const phrase = "bottom drive obey lake curtain smoke basket hold race lonely fit walk"

func TestParseURI(t *testing.T) {
	for _, tc := range []struct {
		desc string
		suri string
		want URI
	}{
		{
			desc: "dev path",
			suri: "//Alice",
			want: URI{Path: []Junction{{Name: "Alice", Hard: true}}},
		},
		{
			desc: "phrase with path and password",
			suri: phrase + "//polkadot/0///secret",
			want: URI{
				Phrase:   phrase,
				Path:     []Junction{{Name: "polkadot", Hard: true}, {Name: "0"}},
				Password: "secret",
			},
		},
		{
			desc: "seed",
			suri: "0x" + strings.Repeat("ab", SeedLength),
			want: URI{Seed: []byte(strings.Repeat("\xab", SeedLength))},
		},
		{
			desc: "password only",
			suri: phrase + "///p/w",
			want: URI{Phrase: phrase, Password: "p/w"},
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			uri, err := ParseURI(tc.suri)
			require.NoError(t, err)
			require.Equal(t, tc.want, *uri)
		})
	}
}

func TestParseURIErrors(t *testing.T) {
	for _, tc := range []struct {
		desc string
		suri string
		kind StringErrorKind
	}{
		{desc: "dangling slashes", suri: "//Alice//", kind: InvalidFormat},
		{desc: "short phrase", suri: "bottom drive obey", kind: InvalidPhrase},
		{desc: "empty password", suri: "//Alice///", kind: InvalidPassword},
		{desc: "bad seed", suri: "0xzz", kind: InvalidSeed},
		{desc: "short seed", suri: "0xabcd", kind: InvalidSeedLength},
		{desc: "junction with spaces", suri: "// Alice", kind: InvalidPath},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			_, err := ParseURI(tc.suri)
			require.ErrorIs(t, err, ErrSecretString)
			var serr *StringError
			require.ErrorAs(t, err, &serr)
			require.Equal(t, tc.kind, serr.Kind)
		})
	}
}

func TestURIStringRedacts(t *testing.T) {
	uri, err := ParseURI(phrase + "//polkadot/0///secret")
	require.NoError(t, err)
	require.Equal(t, "<secret>//polkadot/0///<password>", uri.String())
	require.NotContains(t, uri.String(), "bottom")
}
