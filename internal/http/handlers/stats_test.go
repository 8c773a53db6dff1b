package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"server/internal/sqlinline"
)

type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type dashboardTestSQL struct {
	generated, failed, previews int64
	successRate                 *float64
	execQueries                 []string
}

func (d *dashboardTestSQL) Exec(_ context.Context, query string, _ ...any) (pgconn.CommandTag, error) {
	d.execQueries = append(d.execQueries, query)
	return pgconn.CommandTag{}, nil
}

func (d *dashboardTestSQL) QueryRow(_ context.Context, query string, _ ...any) pgx.Row {
	if query != sqlinline.QDashboard24h {
		return simpleRow{scan: func(...any) error {
			return fmt.Errorf("unexpected query: %s", query)
		}}
	}
	return simpleRow{scan: func(dest ...any) error {
		if len(dest) != 4 {
			return fmt.Errorf("unexpected scan args: %d", len(dest))
		}
		*dest[0].(*int64) = d.generated
		*dest[1].(*int64) = d.failed
		*dest[2].(*int64) = d.previews
		*dest[3].(**float64) = d.successRate
		return nil
	}}
}

func (d *dashboardTestSQL) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, fmt.Errorf("query not supported in test")
}

func TestDashboard24h(t *testing.T) {
	rate := 87.5
	sql := &dashboardTestSQL{generated: 7, failed: 1, previews: 12, successRate: &rate}
	app := &App{SQL: sql, Logger: zerolog.Nop()}

	req := httptest.NewRequest("GET", "/metrics/dashboard-24h", nil)
	rr := httptest.NewRecorder()
	app.Dashboard24h(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["generated"] != float64(7) {
		t.Fatalf("generated = %#v", payload["generated"])
	}
	if payload["success_rate"] != 87.5 {
		t.Fatalf("success_rate = %#v", payload["success_rate"])
	}
}

func TestDashboard24hNoEventsReportsZeroRate(t *testing.T) {
	sql := &dashboardTestSQL{}
	app := &App{SQL: sql, Logger: zerolog.Nop()}

	req := httptest.NewRequest("GET", "/metrics/dashboard-24h", nil)
	rr := httptest.NewRecorder()
	app.Dashboard24h(rr, req)

	if rr.Code != 200 {
		t.Fatalf("unexpected status code: got %d, want 200", rr.Code)
	}
	var payload map[string]any
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["success_rate"] != float64(0) {
		t.Fatalf("success_rate = %#v, want 0", payload["success_rate"])
	}
}

func TestRecordUsageInsertsEvent(t *testing.T) {
	sql := &dashboardTestSQL{}
	app, _, _ := newTestApp()
	app.SQL = sql

	req := httptest.NewRequest("POST", "/content/preview", nil)
	app.recordUsage(req, eventContentPreview, "video_script_short", true)

	if len(sql.execQueries) != 1 {
		t.Fatalf("expected 1 usage insert, got %d", len(sql.execQueries))
	}
	if sql.execQueries[0] != sqlinline.QInsertUsageEvent {
		t.Fatalf("unexpected query recorded: %s", sql.execQueries[0])
	}
}
