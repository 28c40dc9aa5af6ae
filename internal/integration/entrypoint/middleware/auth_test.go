package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/moneybook/backend/internal/application/adapter"
	domainerror "github.com/moneybook/backend/internal/domain/error"
	"github.com/moneybook/backend/internal/integration/entrypoint/dto"
)

type fakeTokenService struct {
	userID uuid.UUID
}

func (s *fakeTokenService) GenerateAccessToken(_ context.Context, _ uuid.UUID, _ string) (string, error) {
	return "", nil
}

func (s *fakeTokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if token != "valid-token" {
		return nil, errors.New("token is invalid")
	}
	return &adapter.TokenClaims{
		UserID:    s.userID,
		Email:     "alice@example.com",
		ExpiresAt: time.Now().Add(time.Hour),
	}, nil
}

var _ adapter.TokenService = (*fakeTokenService)(nil)

func TestAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New()

	newRouter := func() (*gin.Engine, *uuid.UUID) {
		var seen uuid.UUID
		r := gin.New()
		r.Use(NewAuthMiddleware(&fakeTokenService{userID: userID}).Authenticate())
		r.GET("/protected", func(c *gin.Context) {
			id, ok := GetUserIDFromContext(c)
			if !ok {
				c.Status(http.StatusInternalServerError)
				return
			}
			seen = id
			c.Status(http.StatusOK)
		})
		return r, &seen
	}

	request := func(r *gin.Engine, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("valid token resolves the user", func(t *testing.T) {
		r, seen := newRouter()
		w := request(r, "Bearer valid-token")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if *seen != userID {
			t.Errorf("expected user %s in context, got %s", userID, *seen)
		}
	})

	t.Run("rejections", func(t *testing.T) {
		tests := []struct {
			name   string
			header string
			code   domainerror.UserErrorCode
		}{
			{name: "missing header", header: "", code: domainerror.ErrCodeMissingToken},
			{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", code: domainerror.ErrCodeInvalidToken},
			{name: "empty bearer token", header: "Bearer ", code: domainerror.ErrCodeMissingToken},
			{name: "rejected token", header: "Bearer expired-token", code: domainerror.ErrCodeInvalidToken},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				r, _ := newRouter()
				w := request(r, tt.header)
				if w.Code != http.StatusUnauthorized {
					t.Fatalf("expected 401, got %d", w.Code)
				}
				var resp dto.ErrorResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Code != string(tt.code) {
					t.Errorf("expected code %s, got %s", tt.code, resp.Code)
				}
			})
		}
	})
}
