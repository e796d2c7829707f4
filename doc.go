// Package basicauth parses and builds HTTP Basic Authorization header values
// (RFC 7617).
//
// # Format
//
// A header value has the form "Basic <base64>", where the payload decodes to
// UTF-8 text "user-id:password". The payload is split at the first colon, so
// passwords may contain colons while user-ids may not.
//
// IMPORTANT: Basic credentials are base64 encoded, not encrypted. TLS must be
// used to protect them in transit.
//
// # Components
//
//   - [New]: Builds [Credentials] from known values
//   - [Decode], [FromHeader], [Parse], [FromRequest]: Parse credentials
//   - [Credentials.Encode], [Credentials.Header], [Credentials.SetHeader]: Build header values
//   - [ErrInvalidAuthorizationHeader], [ErrInvalidScheme], [ErrInvalidBase64Value],
//     [ErrInvalidUTF8Value]: Failure kinds, matched with [errors.Is]
//
// Framework adapters live in the connectauth and echoauth sub-packages.
package basicauth
