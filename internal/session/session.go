package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "booking_session"
	contextKey = "session"
	issuer     = "booking-backend"

	// MaxFlashes bounds the pending notices so the cookie stays well under browser limits.
	MaxFlashes = 5
)

var ErrInvalidSession = errors.New("invalid session cookie")

// Session is the per-client state carried in the signed cookie.
type Session struct {
	adminLoggedIn bool
	flashes       []string
}

// LogIn sets the admin flag.
func (s *Session) LogIn() {
	s.adminLoggedIn = true
}

// LogOut clears the admin flag. Calling it on an anonymous session is a no-op.
func (s *Session) LogOut() {
	s.adminLoggedIn = false
}

func (s *Session) IsAdmin() bool {
	return s.adminLoggedIn
}

// AddFlash queues a notice for the next rendered view. Past MaxFlashes the oldest is dropped.
func (s *Session) AddFlash(msg string) {
	s.flashes = append(s.flashes, msg)
	if over := len(s.flashes) - MaxFlashes; over > 0 {
		s.flashes = append([]string(nil), s.flashes[over:]...)
	}
}

// ConsumeFlashes returns and clears the queued notices. Never nil.
func (s *Session) ConsumeFlashes() []string {
	out := s.flashes
	s.flashes = nil
	if out == nil {
		out = []string{}
	}
	return out
}

func (s *Session) empty() bool {
	return !s.adminLoggedIn && len(s.flashes) == 0
}

type claims struct {
	AdminLoggedIn bool     `json:"admin_logged_in,omitempty"`
	Flashes       []string `json:"flashes,omitempty"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session cookies.
type Manager struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewManager(secret string, ttl time.Duration, secure bool) *Manager {
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Encode signs s into a cookie value.
func (m *Manager) Encode(s *Session) (string, error) {
	now := m.now()
	c := &claims{
		AdminLoggedIn: s.adminLoggedIn,
		Flashes:       s.flashes,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Decode verifies a cookie value and returns the session it carries.
func (m *Manager) Decode(raw string) (*Session, error) {
	c := &claims{}
	token, err := jwt.ParseWithClaims(raw, c, func(token *jwt.Token) (interface{}, error) {
		// block alg confusion
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid {
		return nil, ErrInvalidSession
	}
	sess := &Session{adminLoggedIn: c.AdminLoggedIn}
	for _, f := range c.Flashes {
		sess.AddFlash(f)
	}
	return sess, nil
}

// Load is a gin middleware that decodes the request's session cookie into the context.
// A missing or unverifiable cookie yields an anonymous session.
func (m *Manager) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := &Session{}
		if raw, err := c.Cookie(CookieName); err == nil && raw != "" {
			decoded, decodeErr := m.Decode(raw)
			if decodeErr != nil {
				utils.LogDebug("Discarding session cookie", map[string]interface{}{"reason": decodeErr.Error()})
			} else {
				sess = decoded
			}
		}
		c.Set(contextKey, sess)
		c.Next()
	}
}

// Save writes s back as a cookie. It must run before the response body is written.
// An empty session deletes the cookie if the client sent one.
func (m *Manager) Save(c *gin.Context, s *Session) error {
	c.SetSameSite(http.SameSiteLaxMode)
	if s.empty() {
		if _, err := c.Cookie(CookieName); err == nil {
			c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
		}
		return nil
	}
	value, err := m.Encode(s)
	if err != nil {
		return err
	}
	c.SetCookie(CookieName, value, int(m.ttl.Seconds()), "/", "", m.secure, true)
	return nil
}

// FromContext returns the session Load placed in c, creating an anonymous one if absent.
func FromContext(c *gin.Context) *Session {
	if v, ok := c.Get(contextKey); ok {
		if s, ok := v.(*Session); ok {
			return s
		}
	}
	s := &Session{}
	c.Set(contextKey, s)
	return s
}
