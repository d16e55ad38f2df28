package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/skillwaves/skillwaves-server/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "cookie-auth-test-secret"

func newGatedRouter(codec *token.Codec) *gin.Engine {
	r := gin.New()
	r.GET("/protected", VerifyCookieToken(codec, "token"), func(c *gin.Context) {
		c.String(http.StatusOK, TokenEmail(c))
	})
	return r
}

func TestVerifyCookieToken(t *testing.T) {
	t.Parallel()

	codec := token.NewCodec([]byte(testSecret), time.Hour)

	t.Run("missing cookie is rejected with 401", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		newGatedRouter(codec).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("invalid token is rejected with 401", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: "garbage"})
		newGatedRouter(codec).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("expired token is rejected with 401", func(t *testing.T) {
		t.Parallel()

		expiredCodec := token.NewCodec([]byte(testSecret), -time.Minute)
		signed, err := expiredCodec.Issue("a@b.com")
		if err != nil {
			t.Fatalf("Issue() error: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signed})
		newGatedRouter(codec).ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("valid token attaches the issued identity", func(t *testing.T) {
		t.Parallel()

		signed, err := codec.Issue("a@b.com")
		if err != nil {
			t.Fatalf("Issue() error: %v", err)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.AddCookie(&http.Cookie{Name: "token", Value: signed})
		newGatedRouter(codec).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}
		if got := w.Body.String(); got != "a@b.com" {
			t.Errorf("token email = %q, want %q", got, "a@b.com")
		}
	})
}

func TestTokenEmailWithoutGate(t *testing.T) {
	t.Parallel()

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := TokenEmail(c); got != "" {
		t.Errorf("TokenEmail() = %q, want empty", got)
	}
}
