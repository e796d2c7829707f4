// Package connectauth adapts Basic credential parsing to the
// connectrpc.com/authn middleware.
//
// The package only parses the Authorization header. Whether the credentials
// are acceptable is decided by the caller's [VerifyFunc].
package connectauth

import (
	"context"
	"net/http"

	"connectrpc.com/authn"
	"connectrpc.com/connect"

	"github.com/stolasapp/basicauth"
)

// VerifyFunc checks parsed credentials. The returned info is attached to the
// request context and can be read back with [GetInfo]. Errors should be
// created with authn.Errorf so clients see CodeUnauthenticated.
type VerifyFunc func(ctx context.Context, creds basicauth.Credentials) (info any, err error)

// AuthFunc returns an authn.AuthFunc that parses Basic credentials from the
// request and hands them to verify. Malformed headers are rejected without
// calling verify.
func AuthFunc(verify VerifyFunc) authn.AuthFunc {
	return func(ctx context.Context, req *http.Request) (any, error) {
		creds, err := basicauth.FromRequest(req)
		if err != nil {
			return nil, authn.Errorf("invalid authorization header")
		}
		return verify(ctx, creds)
	}
}

// NewMiddleware returns a new authentication middleware for ConnectRPC.
func NewMiddleware(verify VerifyFunc, opts ...connect.HandlerOption) *authn.Middleware {
	return authn.NewMiddleware(AuthFunc(verify), opts...)
}

// GetInfo returns the info produced by the [VerifyFunc] for this request.
// The second result is false if the context has no info or if it is not a T
// (should only happen if middleware is misconfigured).
func GetInfo[T any](ctx context.Context) (T, bool) {
	info, ok := authn.GetInfo(ctx).(T)
	return info, ok
}

// SetInfo attaches info to ctx. The authn.Middleware automatically injects
// this information; this function is provided as a convenience for testing.
func SetInfo(ctx context.Context, info any) context.Context {
	return authn.SetInfo(ctx, info)
}
