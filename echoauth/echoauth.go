// Package echoauth provides Echo middleware that parses Basic credentials and
// defers the accept/reject decision to a caller-supplied [Validator].
package echoauth

import (
	"log/slog"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/stolasapp/basicauth"
)

// DefaultRealm is used when [Config.Realm] is empty.
const DefaultRealm = "Restricted"

const credentialsKey = "basicauth.credentials"

// Validator decides whether the parsed credentials are accepted.
type Validator func(c echo.Context, creds basicauth.Credentials) (bool, error)

// Config configures [MiddlewareWithConfig].
type Config struct {
	// Skipper bypasses the middleware when it returns true.
	Skipper middleware.Skipper
	// Validator is required.
	Validator Validator
	// Realm is advertised in the WWW-Authenticate challenge.
	Realm string
	// Logger receives debug records for rejected requests. Defaults to
	// slog.Default().
	Logger *slog.Logger
}

// Middleware returns Basic auth middleware using fn and default settings.
func Middleware(fn Validator) echo.MiddlewareFunc {
	return MiddlewareWithConfig(Config{Validator: fn})
}

// MiddlewareWithConfig returns Basic auth middleware. It panics if no
// Validator is configured.
func MiddlewareWithConfig(cfg Config) echo.MiddlewareFunc {
	if cfg.Validator == nil {
		panic("echoauth: a validator is required")
	}
	if cfg.Skipper == nil {
		cfg.Skipper = middleware.DefaultSkipper
	}
	if cfg.Realm == "" {
		cfg.Realm = DefaultRealm
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	challenge := basicauth.Scheme + " realm=" + strconv.Quote(cfg.Realm)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if cfg.Skipper(c) {
				return next(c)
			}

			req := c.Request()
			creds, err := basicauth.FromRequest(req)
			if err != nil {
				cfg.Logger.DebugContext(req.Context(),
					"rejected authorization header",
					slog.String("uri", req.RequestURI),
					slog.Any("error", err),
				)
				return unauthorized(c, challenge)
			}

			ok, err := cfg.Validator(c, creds)
			if err != nil {
				return err
			}
			if !ok {
				cfg.Logger.DebugContext(req.Context(),
					"credentials not accepted",
					slog.String("uri", req.RequestURI),
					slog.Any("credentials", creds),
				)
				return unauthorized(c, challenge)
			}

			c.Set(credentialsKey, creds)
			return next(c)
		}
	}
}

// GetCredentials returns the credentials accepted by the middleware for this
// request.
func GetCredentials(c echo.Context) (basicauth.Credentials, bool) {
	creds, ok := c.Get(credentialsKey).(basicauth.Credentials)
	return creds, ok
}

func unauthorized(c echo.Context, challenge string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, challenge)
	return echo.ErrUnauthorized
}
