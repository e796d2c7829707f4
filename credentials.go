package basicauth

import (
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
)

const (
	// HeaderName is the HTTP header carrying the credentials.
	HeaderName = "Authorization"
	// Scheme is the authentication scheme emitted by [Credentials.Header].
	Scheme = "Basic"

	redacted = "[REDACTED]"
)

// Credentials is the user-id and password pair carried by a Basic
// Authorization header. The zero value holds empty strings.
type Credentials struct {
	userID   string
	password string
}

// New creates Credentials from a known user-id and password. No validation is
// performed on either value.
func New(userID, password string) Credentials {
	return Credentials{userID: userID, password: password}
}

// Decode creates Credentials from a base64 value which must encode the
// credentials as "user-id:password". The value is split at the first colon;
// any further colons belong to the password.
func Decode(value string) (Credentials, error) {
	// Strict still skips CR and LF, which are not part of the alphabet.
	if i := strings.IndexAny(value, "\r\n"); i >= 0 {
		return Credentials{}, fmt.Errorf("%w: %w", ErrInvalidBase64Value, base64.CorruptInputError(i))
	}
	raw, err := base64.StdEncoding.Strict().DecodeString(value)
	if err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrInvalidBase64Value, err)
	}
	if err = validateUTF8(raw); err != nil {
		return Credentials{}, fmt.Errorf("%w: %w", ErrInvalidUTF8Value, err)
	}
	userID, password, ok := strings.Cut(string(raw), ":")
	if !ok {
		return Credentials{}, ErrInvalidAuthorizationHeader
	}
	return New(userID, password), nil
}

// FromHeader creates Credentials from an Authorization header value using the
// Basic scheme. The scheme is matched case-insensitively.
func FromHeader(header string) (Credentials, error) {
	scheme, payload, ok := strings.Cut(header, " ")
	if !ok {
		return Credentials{}, ErrInvalidAuthorizationHeader
	}
	if strings.ToLower(scheme) != "basic" {
		return Credentials{}, &SchemeError{Scheme: scheme}
	}
	if strings.Contains(payload, " ") {
		return Credentials{}, ErrInvalidAuthorizationHeader
	}
	return Decode(payload)
}

// Parse accepts either a full header value or a bare base64 payload. Input
// containing a space is treated as a header value.
func Parse(text string) (Credentials, error) {
	if strings.Contains(text, " ") {
		return FromHeader(text)
	}
	return Decode(text)
}

// FromRequest reads Credentials from the request's Authorization header. A
// missing header yields [ErrInvalidAuthorizationHeader].
func FromRequest(req *http.Request) (Credentials, error) {
	return FromHeader(req.Header.Get(HeaderName))
}

// UserID returns the user-id.
func (c Credentials) UserID() string { return c.userID }

// Password returns the password.
func (c Credentials) Password() string { return c.password }

// Encode returns the base64 form of "user-id:password".
//
// Colons in the user-id are not escaped, so a user-id containing one does not
// survive a round trip through [Decode].
func (c Credentials) Encode() string {
	return base64.StdEncoding.EncodeToString([]byte(c.userID + ":" + c.password))
}

// Header returns the Authorization header value for the Basic scheme.
func (c Credentials) Header() string {
	return Scheme + " " + c.Encode()
}

// SetHeader sets the Authorization header on h.
func (c Credentials) SetHeader(h http.Header) {
	h.Set(HeaderName, c.Header())
}

// String satisfies [fmt.Stringer]. The password is redacted.
func (c Credentials) String() string {
	return c.userID + ":" + redacted
}

// LogValue satisfies [slog.LogValuer]. The password is redacted.
func (c Credentials) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("user_id", c.userID),
		slog.String("password", redacted),
	)
}

// MarshalText satisfies [encoding.TextMarshaler], producing the header form.
func (c Credentials) MarshalText() ([]byte, error) {
	return []byte(c.Header()), nil
}

// UnmarshalText satisfies [encoding.TextUnmarshaler], accepting anything
// [Parse] accepts.
func (c *Credentials) UnmarshalText(text []byte) error {
	creds, err := Parse(string(text))
	if err != nil {
		return err
	}
	*c = creds
	return nil
}
