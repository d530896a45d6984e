// Package secret parses secret URIs of the form phrase/soft//hard///password.
package secret

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spacemeshos/go-subxt/common/util"
)

// ErrSecretString is wrapped by every StringError.
var ErrSecretString = errors.New("secret string")

// StringErrorKind selects the variant of StringError.
type StringErrorKind uint8

const (
	InvalidFormat StringErrorKind = iota
	InvalidPhrase
	InvalidPassword
	InvalidSeed
	InvalidSeedLength
	InvalidPath
)

var stringErrorMessages = [...]string{
	InvalidFormat:     "invalid format",
	InvalidPhrase:     "invalid phrase",
	InvalidPassword:   "invalid password",
	InvalidSeed:       "invalid seed",
	InvalidSeedLength: "invalid seed length",
	InvalidPath:       "invalid path",
}

func (k StringErrorKind) String() string {
	if int(k) < len(stringErrorMessages) {
		return stringErrorMessages[k]
	}
	return fmt.Sprintf("kind %d", k)
}

// StringError is a failure to parse a secret URI.
// Detail never contains the secret itself.
type StringError struct {
	Kind   StringErrorKind
	Detail string
}

func (e *StringError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("%v: %s", ErrSecretString, e.Kind)
	}
	return fmt.Sprintf("%v: %s: %s", ErrSecretString, e.Kind, e.Detail)
}

func (e *StringError) Unwrap() error { return ErrSecretString }

// SeedLength is the length of a raw seed given in hex instead of a phrase.
const SeedLength = 32

var (
	uriFormat     = regexp.MustCompile(`^(?P<phrase>[^/]*)(?P<path>(//?[^/]+)*)(///(?P<password>.*))?$`)
	junctionRegex = regexp.MustCompile(`/(/?[^/]+)`)
	phraseWords   = map[int]struct{}{12: {}, 15: {}, 18: {}, 21: {}, 24: {}}
)

// Junction is a step of a derivation path.
type Junction struct {
	Name string
	Hard bool
}

func (j Junction) String() string {
	if j.Hard {
		return "//" + j.Name
	}
	return "/" + j.Name
}

// URI is a parsed secret URI. Exactly one of Phrase and Seed is set,
// unless both are empty and the URI is a path from the development phrase.
type URI struct {
	Phrase   string
	Seed     []byte
	Path     []Junction
	Password string
}

// ParseURI parses a secret URI.
func ParseURI(suri string) (*URI, error) {
	m := uriFormat.FindStringSubmatch(suri)
	if m == nil {
		return nil, &StringError{Kind: InvalidFormat}
	}
	uri := &URI{}
	phrase := m[uriFormat.SubexpIndex("phrase")]
	switch {
	case strings.HasPrefix(phrase, "0x"):
		seed, err := util.Decode(phrase)
		if err != nil {
			return nil, &StringError{Kind: InvalidSeed, Detail: err.Error()}
		}
		if len(seed) != SeedLength {
			return nil, &StringError{Kind: InvalidSeedLength, Detail: fmt.Sprintf("%d bytes", len(seed))}
		}
		uri.Seed = seed
	case phrase != "":
		words := strings.Fields(phrase)
		if _, ok := phraseWords[len(words)]; !ok {
			return nil, &StringError{Kind: InvalidPhrase, Detail: fmt.Sprintf("%d words", len(words))}
		}
		uri.Phrase = strings.Join(words, " ")
	}
	for _, j := range junctionRegex.FindAllStringSubmatch(m[uriFormat.SubexpIndex("path")], -1) {
		name := j[1]
		hard := strings.HasPrefix(name, "/")
		if hard {
			name = name[1:]
		}
		if strings.TrimSpace(name) != name || name == "" {
			return nil, &StringError{Kind: InvalidPath, Detail: fmt.Sprintf("junction %q", name)}
		}
		uri.Path = append(uri.Path, Junction{Name: name, Hard: hard})
	}
	if strings.Contains(suri, "///") {
		uri.Password = m[uriFormat.SubexpIndex("password")]
		if uri.Password == "" {
			return nil, &StringError{Kind: InvalidPassword, Detail: "empty password"}
		}
	}
	return uri, nil
}

// String returns the URI with the phrase, seed and password redacted.
func (u *URI) String() string {
	var b strings.Builder
	if u.Phrase != "" || len(u.Seed) > 0 {
		b.WriteString("<secret>")
	}
	for _, j := range u.Path {
		b.WriteString(j.String())
	}
	if u.Password != "" {
		b.WriteString("///<password>")
	}
	return b.String()
}
