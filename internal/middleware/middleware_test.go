package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booking_backend/internal/session"
	"booking_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequireAdminRedirectsAnonymous(t *testing.T) {
	sessions := session.NewManager("secret", time.Hour, false)
	reached := false

	r := gin.New()
	r.Use(sessions.Load())
	r.GET("/admin", RequireAdmin(sessions), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != LoginPath {
		t.Errorf("expected redirect to %s, got %q", LoginPath, loc)
	}
	if reached {
		t.Error("handler ran for anonymous client")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected flash to be stored in session cookie, got %v", cookies)
	}
	sess, err := sessions.Decode(cookies[0].Value)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if flashes := sess.ConsumeFlashes(); len(flashes) != 1 || flashes[0] != LoginRequiredMsg {
		t.Errorf("unexpected flashes: %v", flashes)
	}
}

func TestRequireAdminAllowsAdmin(t *testing.T) {
	sessions := session.NewManager("secret", time.Hour, false)
	admin := &session.Session{}
	admin.LogIn()
	raw, err := sessions.Encode(admin)
	if err != nil {
		t.Fatal(err)
	}

	r := gin.New()
	r.Use(sessions.Load())
	r.GET("/admin", RequireAdmin(sessions), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: session.CookieName, Value: raw})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequestIDGeneratesAndPropagates(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(utils.RequestIDKey))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(RequestIDHeader)
	if len(generated) != 36 || rec.Body.String() != generated {
		t.Errorf("expected generated uuid in header and context, got header=%q body=%q", generated, rec.Body.String())
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Header().Get(RequestIDHeader) != "abc-123" || rec.Body.String() != "abc-123" {
		t.Errorf("incoming request id not reused: %q", rec.Body.String())
	}
}

func TestRateLimitPerClient(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	r := gin.New()
	r.POST("/admin/login", RateLimit(rl), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	send := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
		req.RemoteAddr = ip + ":1234"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec.Code
	}

	for i := 0; i < 2; i++ {
		if code := send("10.0.0.1"); code != http.StatusOK {
			t.Fatalf("request %d within burst rejected: %d", i, code)
		}
	}
	if code := send("10.0.0.1"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", code)
	}
	if code := send("10.0.0.2"); code != http.StatusOK {
		t.Fatalf("other client should have its own bucket, got %d", code)
	}
}

func TestRateLimiterSweepsStaleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	now := time.Now()
	rl.now = func() time.Time { return now }
	rl.Allow("10.0.0.1")

	now = now.Add(staleClientAfter + sweepEvery + time.Second)
	rl.Allow("10.0.0.2")

	rl.mu.Lock()
	defer rl.mu.Unlock()
	if _, ok := rl.clients["10.0.0.1"]; ok {
		t.Error("stale client not swept")
	}
	if len(rl.clients) != 1 {
		t.Errorf("expected 1 tracked client, got %d", len(rl.clients))
	}
}
