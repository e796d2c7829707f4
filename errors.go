package basicauth

import (
	"fmt"
	"unicode/utf8"
)

const (
	// ErrInvalidAuthorizationHeader is returned when the header value or the
	// decoded payload is malformed.
	ErrInvalidAuthorizationHeader = Error("invalid value provided for the HTTP Authorization header")
	// ErrInvalidScheme is matched by a [*SchemeError] when the header carries a
	// scheme other than Basic.
	ErrInvalidScheme = Error("invalid authorization scheme")
	// ErrInvalidBase64Value is returned when the payload is not valid base64.
	ErrInvalidBase64Value = Error("invalid base64 encoding")
	// ErrInvalidUTF8Value is returned when the decoded payload is not valid
	// UTF-8.
	ErrInvalidUTF8Value = Error("invalid UTF-8")
)

// Error is an error type for credential parsing failures.
type Error string

// Error satisfies [error].
func (e Error) Error() string { return string(e) }

// SchemeError reports an Authorization header whose scheme is not Basic.
type SchemeError struct {
	// Scheme is the token as it appeared in the header, case preserved.
	Scheme string
}

// Error satisfies [error].
func (e *SchemeError) Error() string {
	return fmt.Sprintf("the scheme provided (%s) is not %s", e.Scheme, Scheme)
}

// Is reports whether target is [ErrInvalidScheme].
func (e *SchemeError) Is(target error) bool { return target == ErrInvalidScheme }

// UTF8Error describes the first invalid UTF-8 sequence in a decoded payload.
type UTF8Error struct {
	Offset int
	Length int
}

// Error satisfies [error].
func (e *UTF8Error) Error() string {
	return fmt.Sprintf("invalid utf-8 sequence of %d bytes from index %d", e.Length, e.Offset)
}

func validateUTF8(data []byte) error {
	for offset := 0; offset < len(data); {
		r, size := utf8.DecodeRune(data[offset:])
		if r == utf8.RuneError && size <= 1 {
			return &UTF8Error{Offset: offset, Length: invalidSequenceLength(data[offset:])}
		}
		offset += size
	}
	return nil
}

// invalidSequenceLength counts the bytes belonging to the broken sequence at
// the head of data: the lead byte plus any continuation bytes that follow it.
func invalidSequenceLength(data []byte) int {
	n := 1
	for n < len(data) && n < utf8.UTFMax && !utf8.RuneStart(data[n]) {
		n++
	}
	return n
}
