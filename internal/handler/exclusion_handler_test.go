package handler_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/frontdesk-go-api/internal/dto"
	"github.com/noah-isme/frontdesk-go-api/internal/handler"
	"github.com/noah-isme/frontdesk-go-api/internal/service"
)

type mockScreeningService struct {
	check   dto.ExclusionCheckResponse
	entries []dto.ExclusionMatch
	err     error
}

func (m *mockScreeningService) MatchName(_ context.Context, _, _ string) ([]dto.ExclusionMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.check.Matches, nil
}

func (m *mockScreeningService) Check(_ context.Context, _, _ string) (dto.ExclusionCheckResponse, error) {
	if m.err != nil {
		return dto.ExclusionCheckResponse{}, m.err
	}
	return m.check, nil
}

func (m *mockScreeningService) ListEntries(_ context.Context) ([]dto.ExclusionMatch, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entries, nil
}

func (m *mockScreeningService) AddEntry(_ context.Context, _ dto.ExclusionEntryCreateRequest) (dto.ExclusionMatch, error) {
	if m.err != nil {
		return dto.ExclusionMatch{}, m.err
	}
	return dto.ExclusionMatch{ID: 1}, nil
}

func newExclusionApp(svc service.ScreeningService) *fiber.App {
	app := fiber.New()
	h := handler.NewExclusionHandler(svc, zerolog.New(io.Discard))
	h.Register(app.Group("/api/v1/exclusions"))
	h.RegisterAdmin(app.Group("/api/v1/admin/exclusions"))
	return app
}

func TestExclusionHandler_CheckMatch(t *testing.T) {
	warning := "flagged"
	svc := &mockScreeningService{check: dto.ExclusionCheckResponse{
		IsInExclusionList: true,
		Matches:           []dto.ExclusionMatch{{ID: 2, Name: "Doe, Jane"}},
		WarningMessage:    &warning,
	}}
	app := newExclusionApp(svc)

	resp := postJSON(t, app, "/api/v1/exclusions/check", dto.ExclusionCheckRequest{FirstName: "Jane", LastName: "Doe"})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Success bool                       `json:"success"`
		Data    dto.ExclusionCheckResponse `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.True(t, response.Data.IsInExclusionList)
	require.NotNil(t, response.Data.WarningMessage)
}

func TestExclusionHandler_CheckRequiresNames(t *testing.T) {
	app := newExclusionApp(&mockScreeningService{})

	resp := postJSON(t, app, "/api/v1/exclusions/check", dto.ExclusionCheckRequest{FirstName: "Jane"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExclusionHandler_CheckBackendDown(t *testing.T) {
	app := newExclusionApp(&mockScreeningService{err: service.ErrScreeningUnavailable})

	resp := postJSON(t, app, "/api/v1/exclusions/check", dto.ExclusionCheckRequest{FirstName: "Jane", LastName: "Doe"})
	require.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestExclusionHandler_AdminList(t *testing.T) {
	svc := &mockScreeningService{entries: []dto.ExclusionMatch{{ID: 1}, {ID: 2}}}
	app := newExclusionApp(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/exclusions", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var response struct {
		Data []dto.ExclusionMatch `json:"data"`
	}
	decodeResponse(t, resp, &response)
	require.Len(t, response.Data, 2)
}
