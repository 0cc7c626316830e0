package careplan

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/careops/careops/internal/platform/auth"
)

func newTestServer(f *fixture) *echo.Echo {
	e := echo.New()
	api := e.Group("/api/v1")
	NewHandler(f.svc).RegisterRoutes(api)
	return e
}

func doRequest(e *echo.Echo, method, path, body, role string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	ctx := req.Context()
	ctx = context.WithValue(ctx, auth.UserIDKey, "user-123")
	ctx = context.WithValue(ctx, auth.UserRoleKey, role)
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGenerateHandler_Created(t *testing.T) {
	f := newFixture()
	clientID := f.addClient("Rosa", "Delgado")
	f.addAssessment(clientID, "Katz ADL", 1)
	e := newTestServer(f)

	rec := doRequest(e, http.MethodPost, "/api/v1/care-plans/generate",
		`{"client_id":"`+clientID.String()+`"}`, "care_manager")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", rec.Code, rec.Body.String())
	}
	var result GenerateResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if result.CarePlan.Status != StatusDraft {
		t.Errorf("status = %q, want DRAFT", result.CarePlan.Status)
	}
	if len(result.GeneratedFrom) != 1 {
		t.Errorf("generated_from = %+v", result.GeneratedFrom)
	}
}

func TestGenerateHandler_MissingClientID(t *testing.T) {
	f := newFixture()
	e := newTestServer(f)

	rec := doRequest(e, http.MethodPost, "/api/v1/care-plans/generate", `{}`, "care_manager")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateHandler_InvalidClientID(t *testing.T) {
	f := newFixture()
	e := newTestServer(f)

	rec := doRequest(e, http.MethodPost, "/api/v1/care-plans/generate",
		`{"client_id":"not-a-uuid"}`, "care_manager")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGenerateHandler_ClientNotFound(t *testing.T) {
	f := newFixture()
	e := newTestServer(f)

	rec := doRequest(e, http.MethodPost, "/api/v1/care-plans/generate",
		`{"client_id":"`+uuid.NewString()+`"}`, "nurse")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestGenerateHandler_NoAssessments(t *testing.T) {
	f := newFixture()
	clientID := f.addClient("Rosa", "Delgado")
	e := newTestServer(f)

	rec := doRequest(e, http.MethodPost, "/api/v1/care-plans/generate",
		`{"client_id":"`+clientID.String()+`"}`, "care_manager")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No completed assessments found for this client") {
		t.Errorf("body = %s, want precondition message", rec.Body.String())
	}
}

func TestGenerateHandler_ForbiddenRole(t *testing.T) {
	f := newFixture()
	clientID := f.addClient("Rosa", "Delgado")
	f.addAssessment(clientID, "Katz ADL", 1)
	e := newTestServer(f)

	rec := doRequest(e, http.MethodPost, "/api/v1/care-plans/generate",
		`{"client_id":"`+clientID.String()+`"}`, "scheduler")
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if len(f.plans.created) != 0 {
		t.Error("forbidden request must not create a plan")
	}
}

func TestGenerateHandler_Unauthenticated(t *testing.T) {
	f := newFixture()
	e := newTestServer(f)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/care-plans/generate",
		strings.NewReader(`{"client_id":"`+uuid.NewString()+`"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGetCarePlanHandler(t *testing.T) {
	f := newFixture()
	clientID := f.addClient("Rosa", "Delgado")
	f.addAssessment(clientID, "Lawton IADL", 3)
	e := newTestServer(f)

	res, err := f.svc.Generate(context.Background(), GenerateRequest{ClientID: clientID})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	f.plans.plans[res.CarePlan.ID] = res.CarePlan

	rec := doRequest(e, http.MethodGet, "/api/v1/care-plans/"+res.CarePlan.ID.String(), "", "clinical_director")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var got CarePlan
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.PlanNumber != res.CarePlan.PlanNumber {
		t.Errorf("plan number = %q, want %q", got.PlanNumber, res.CarePlan.PlanNumber)
	}
}

func TestGetCarePlanHandler_NotFound(t *testing.T) {
	f := newFixture()
	e := newTestServer(f)

	rec := doRequest(e, http.MethodGet, "/api/v1/care-plans/"+uuid.NewString(), "", "nurse")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListByClientHandler(t *testing.T) {
	f := newFixture()
	clientID := f.addClient("Rosa", "Delgado")
	f.addAssessment(clientID, "PHQ-9", 16)
	e := newTestServer(f)

	if _, err := f.svc.Generate(context.Background(), GenerateRequest{ClientID: clientID}); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	rec := doRequest(e, http.MethodGet, "/api/v1/clients/"+clientID.String()+"/care-plans", "", "care_manager")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Data  []*CarePlan `json:"data"`
		Total int         `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Total != 1 || len(resp.Data) != 1 {
		t.Errorf("total = %d, data = %d, want 1 each", resp.Total, len(resp.Data))
	}
}
