package db

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestExtractTenantID_Header(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Tenant-ID", "acme")
	c := e.NewContext(req, httptest.NewRecorder())

	if got := extractTenantID(c, "default"); got != "acme" {
		t.Errorf("expected acme, got %q", got)
	}
}

func TestExtractTenantID_JWTClaimWins(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Tenant-ID", "header_tenant")
	c := e.NewContext(req, httptest.NewRecorder())
	c.Set("jwt_tenant_id", "claim_tenant")

	if got := extractTenantID(c, "default"); got != "claim_tenant" {
		t.Errorf("expected claim_tenant, got %q", got)
	}
}

func TestExtractTenantID_Default(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	if got := extractTenantID(c, "default"); got != "default" {
		t.Errorf("expected default, got %q", got)
	}
}

func TestTenantIDPattern(t *testing.T) {
	for _, valid := range []string{"default", "acme_care", "Tenant42"} {
		if !tenantIDPattern.MatchString(valid) {
			t.Errorf("%q should be a valid tenant id", valid)
		}
	}
	for _, invalid := range []string{"", "a-b", "x;DROP TABLE", "a b"} {
		if tenantIDPattern.MatchString(invalid) {
			t.Errorf("%q should not be a valid tenant id", invalid)
		}
	}
}

func TestConnFromContext_Nil(t *testing.T) {
	if conn := ConnFromContext(context.Background()); conn != nil {
		t.Error("expected nil connection for empty context")
	}
}

func TestConnFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DBConnKey, "not-a-conn")
	if conn := ConnFromContext(ctx); conn != nil {
		t.Error("expected nil when context value is wrong type")
	}
}

func TestTxFromContext_Nil(t *testing.T) {
	if tx := TxFromContext(context.Background()); tx != nil {
		t.Error("expected nil transaction for empty context")
	}
}

func TestTxFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), DBTxKey, "not-a-tx")
	if tx := TxFromContext(ctx); tx != nil {
		t.Error("expected nil when context value is wrong type")
	}
}

func TestTenantFromContext(t *testing.T) {
	ctx := context.WithValue(context.Background(), TenantIDKey, "acme")
	if tid := TenantFromContext(ctx); tid != "acme" {
		t.Errorf("expected acme, got %q", tid)
	}
}

func TestTenantFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), TenantIDKey, 12345)
	if tid := TenantFromContext(ctx); tid != "" {
		t.Errorf("expected empty string when context value is wrong type, got %q", tid)
	}
}

func TestWithTx_NoConnection(t *testing.T) {
	if _, _, err := WithTx(context.Background()); err == nil {
		t.Fatal("expected error when no connection is pinned on the context")
	}
}
