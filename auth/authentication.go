package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

var (
	ErrUnauthenticated          = fmt.Errorf("session token is invalid")
	AuthContextKey              = AuthKey("auth")
	DefaultCacheSize            = 10000           // Cache up to 10000 tokens
	DefaultCacheEntryExpiration = 5 * time.Minute // Cache tokens for 5 minutes
)

type AuthKey string

// Auth is the authenticated identity a request is executed under. Every
// patient record read or written by a request is scoped to SubjectId.
type Auth struct {
	SubjectId string `json:"subjectId"`
	Name      string `json:"name"`
}

type Authenticator interface {
	ValidateAndSetAuthData(token string, ec echo.Context) (bool, error)
}

type AuthMiddlewareOpts struct {
	Skipper middleware.Skipper
}

func NewAuthMiddleware(authenticator Authenticator, opts AuthMiddlewareOpts) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Allow skipping authentication for certain routes (e.g. readiness probe)
			if opts.Skipper != nil {
				if opts.Skipper(c) {
					return next(c)
				}
			}

			token := tokenFromHeader(c.Request())
			if token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "session token is missing")
			}

			valid, err := authenticator.ValidateAndSetAuthData(token, c)
			if err != nil {
				return &echo.HTTPError{
					Code:     http.StatusUnauthorized,
					Message:  "session token is invalid",
					Internal: err,
				}
			} else if valid {
				return next(c)
			}
			return echo.ErrUnauthorized
		}
	}
}

func tokenFromHeader(r *http.Request) string {
	header := r.Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

// NewAuthenticator returns a session authenticator that caches valid tokens
func NewAuthenticator(cfg *Config) (Authenticator, error) {
	delegate := NewSessionAuthenticator(cfg)
	return NewCachingAuthenticator(
		DefaultCacheSize,
		DefaultCacheEntryExpiration,
		delegate,
		func(a *Auth) bool { return a != nil },
	)
}

type SessionAuthenticator struct {
	secret []byte
}

var _ Authenticator = &SessionAuthenticator{}

func NewSessionAuthenticator(cfg *Config) Authenticator {
	return &SessionAuthenticator{secret: []byte(cfg.SessionSecret)}
}

func (s *SessionAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return false, ErrUnauthenticated
	}

	subject, _ := claims["sub"].(string)
	if subject == "" {
		return false, ErrUnauthenticated
	}
	name, _ := claims["name"].(string)

	SetAuthData(ec, &Auth{
		SubjectId: subject,
		Name:      name,
	})
	return true, nil
}

func GetAuthData(ctx context.Context) *Auth {
	if auth, ok := ctx.Value(AuthContextKey).(*Auth); ok {
		return auth
	}

	return nil
}

func SetAuthData(ec echo.Context, auth *Auth) {
	ctx := context.WithValue(ec.Request().Context(), AuthContextKey, auth)
	ec.SetRequest(ec.Request().WithContext(ctx))
}

type CacheEntry struct {
	token  string
	auth   *Auth
	expiry time.Time
}

func (c CacheEntry) IsExpired() bool {
	return time.Now().After(c.expiry)
}

type CachingAuthenticator struct {
	delegate    Authenticator
	expiration  time.Duration
	lru         *simplelru.LRU
	mu          *sync.Mutex
	shouldCache func(*Auth) bool
}

var _ Authenticator = &CachingAuthenticator{}

func NewCachingAuthenticator(size int, expiration time.Duration, delegate Authenticator, shouldCache func(*Auth) bool) (Authenticator, error) {
	var onEvict simplelru.EvictCallback
	lru, err := simplelru.NewLRU(size, onEvict)
	if err != nil {
		return nil, err
	}

	return &CachingAuthenticator{
		delegate:    delegate,
		expiration:  expiration,
		lru:         lru,
		mu:          &sync.Mutex{},
		shouldCache: shouldCache,
	}, nil
}

func (c *CachingAuthenticator) ValidateAndSetAuthData(token string, ec echo.Context) (bool, error) {
	entry := c.getCachedEntry(token)
	if entry != nil {
		SetAuthData(ec, entry.auth)
		return true, nil
	}

	res, err := c.delegate.ValidateAndSetAuthData(token, ec)
	auth := GetAuthData(ec.Request().Context())

	if c.shouldCache(auth) {
		entry := CacheEntry{
			token:  token,
			auth:   auth,
			expiry: time.Now().Add(c.expiration),
		}
		c.setCacheEntry(entry)
	}

	return res, err
}

func (c *CachingAuthenticator) getCachedEntry(token string) *CacheEntry {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.lru.Get(token); ok {
		entry := e.(CacheEntry)
		if entry.IsExpired() {
			c.lru.Remove(token)
			return nil
		}
		return &entry
	}

	return nil
}

func (c *CachingAuthenticator) setCacheEntry(entry CacheEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_ = c.lru.Add(entry.token, entry)
}
