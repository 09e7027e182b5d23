// Package auth holds API credentials for the lifetime of a client. The
// secret material is kept in byte slices that are wiped when the owning
// client closes, and every printable representation is redacted.
package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/paperstack-io/paperless-client/pkg/paperless"
)

type kind int

const (
	kindNone kind = iota
	kindToken
	kindBasic
)

// Credentials is an immutable credential store. It is safe for
// concurrent reads; Zero must only be called once no request can still
// authorize against it.
type Credentials struct {
	kind     kind
	username string
	secret   []byte
}

// NewToken stores an API token. An empty token yields a store that
// fails authorization with a credential-missing error.
func NewToken(token string) *Credentials {
	if token == "" {
		return &Credentials{kind: kindNone}
	}

	return &Credentials{kind: kindToken, secret: []byte(token)}
}

// NewBasic stores a username/password pair.
func NewBasic(username, password string) *Credentials {
	if username == "" && password == "" {
		return &Credentials{kind: kindNone}
	}

	return &Credentials{kind: kindBasic, username: username, secret: []byte(password)}
}

// Authorize adds the Authorization header to req. The secret is read
// only for the instant of header construction.
func (c *Credentials) Authorize(req *http.Request) error {
	switch c.kind {
	case kindToken:
		req.Header.Set("Authorization", "Token "+string(c.secret))

		return nil
	case kindBasic:
		pair := c.username + ":" + string(c.secret)
		req.Header.Set("Authorization", "Basic "+base64.StdEncoding.EncodeToString([]byte(pair)))

		return nil
	default:
		return paperless.ErrCredentialMissing
	}
}

// Empty reports whether the store was constructed without a secret.
func (c *Credentials) Empty() bool {
	return c.kind == kindNone
}

// Zero wipes the secret bytes. The store fails authorization afterwards.
func (c *Credentials) Zero() {
	for i := range c.secret {
		c.secret[i] = 0
	}

	c.secret = nil
	c.username = ""
	c.kind = kindNone
}

// String never exposes the secret.
func (c *Credentials) String() string {
	return "Credentials(redacted)"
}

// GoString never exposes the secret, covering %#v formatting.
func (c *Credentials) GoString() string {
	return c.String()
}

// Format keeps every fmt verb redacted.
func (c *Credentials) Format(state fmt.State, verb rune) {
	_, _ = fmt.Fprint(state, c.String())
}

// MarshalJSON keeps accidental serialization redacted.
func (c *Credentials) MarshalJSON() ([]byte, error) {
	return []byte(`"REDACTED"`), nil
}
