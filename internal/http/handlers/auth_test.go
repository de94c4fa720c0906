package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	types "github.com/quizforge/quizforge-backend/internal/domain"
	"github.com/quizforge/quizforge-backend/internal/services"
)

type stubAuthService struct {
	login func(identifier, password string) (*types.Session, error)
}

func (s *stubAuthService) Register(context.Context, string, string, string) (*types.Session, error) {
	return nil, nil
}

func (s *stubAuthService) Login(_ context.Context, identifier, password string) (*types.Session, error) {
	return s.login(identifier, password)
}

func (s *stubAuthService) Logout(context.Context, string) error { return nil }

func (s *stubAuthService) Authenticate(ctx context.Context, _ string) (context.Context, error) {
	return ctx, nil
}

func (s *stubAuthService) SessionTTL() time.Duration { return 7 * 24 * time.Hour }

func loginRouter(t *testing.T, svc services.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ah := NewAuthHandler(testLogger(t), svc)
	r := gin.New()
	r.POST("/auth/login", ah.Login)
	return r
}

func postLogin(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func stubSession() *types.Session {
	return &types.Session{
		Token:  "opaque-token",
		UserID: 1,
		User:   &types.User{ID: 1, Username: "quizmaster", Email: "a@x.com"},
	}
}

func TestAuthHandlerLoginAcceptsEitherIdentifierKey(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"email key", `{"email": "a@x.com", "password": "pw"}`, "a@x.com"},
		{"username key", `{"username": "quizmaster", "password": "pw"}`, "quizmaster"},
		{"email wins when both sent", `{"email": "a@x.com", "username": "quizmaster", "password": "pw"}`, "a@x.com"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotIdentifier string
			r := loginRouter(t, &stubAuthService{
				login: func(identifier, password string) (*types.Session, error) {
					gotIdentifier = identifier
					if password != "pw" {
						t.Fatalf("unexpected password %q", password)
					}
					return stubSession(), nil
				},
			})

			w := postLogin(r, tc.body)
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
			}
			if gotIdentifier != tc.want {
				t.Fatalf("expected identifier %q, got %q", tc.want, gotIdentifier)
			}
			var body map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if body["sessionToken"] != "opaque-token" {
				t.Fatalf("missing sessionToken: %v", body)
			}
		})
	}
}
