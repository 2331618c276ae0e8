package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/avkorablev/skills-tracker/internal/jwt"
	"github.com/avkorablev/skills-tracker/internal/middlewares"
	"github.com/avkorablev/skills-tracker/internal/models"
)

// authedRequest builds a request carrying authenticated claims, as the auth
// middleware would have left them.
func authedRequest(method, target string, body io.Reader, userID uuid.UUID, role string) *http.Request {
	req := httptest.NewRequest(method, target, body)
	claims := &jwt.Claims{UserID: userID, Role: role}
	return req.WithContext(middlewares.SetClaimsToContext(req.Context(), claims))
}

// withURLParam attaches a chi route parameter to the request context.
func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func testUser(userID uuid.UUID) *models.UserDB {
	role := "Engineer"
	return &models.UserDB{
		UserID:     userID,
		Email:      "john@example.com",
		Role:       &role,
		AccessRole: models.AccessRoleUser,
	}
}
