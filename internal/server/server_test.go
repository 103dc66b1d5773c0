package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

// fakeRow implements pgx.Row over a fixed count/error for handler tests.
type fakeRow struct {
	count int64
	err   error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.count
	return nil
}

type fakePool struct {
	row fakeRow
}

func (p *fakePool) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	return p.row
}

func newTestServer(row fakeRow) *Server {
	srv := &Server{router: mux.NewRouter(), pool: &fakePool{row: row}}
	srv.routes()
	return srv
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(fakeRow{count: 0})
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rr := httptest.NewRecorder()
	srv.router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestHandleCountSuccess(t *testing.T) {
	srv := newTestServer(fakeRow{count: 17})
	req := httptest.NewRequest(http.MethodGet, "/counts/blocks/ethereum", nil)
	rr := httptest.NewRecorder()
	srv.router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var body countResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Count != 17 || body.Network != "ethereum" || body.Table != "block" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestHandleCountUnknownNetwork(t *testing.T) {
	srv := newTestServer(fakeRow{count: 0})
	req := httptest.NewRequest(http.MethodGet, "/counts/blocks/solana", nil)
	rr := httptest.NewRecorder()
	srv.router.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for an unrecognised network, got %d", rr.Code)
	}
}

func TestHandleCountQueryError(t *testing.T) {
	srv := newTestServer(fakeRow{err: errors.New("connection reset")})
	req := httptest.NewRequest(http.MethodGet, "/counts/logs/ethereum", nil)
	rr := httptest.NewRecorder()
	srv.router.ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
}
