package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dukerupert/maeumsee/internal/database"
	"github.com/dukerupert/maeumsee/internal/handler"
	"github.com/dukerupert/maeumsee/internal/journal"
	"github.com/dukerupert/maeumsee/internal/store"
	ws "github.com/dukerupert/maeumsee/internal/websocket"
)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func setupTestServer(t *testing.T) (http.Handler, *journal.Journal, *testClock) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := &testClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	hub := ws.NewHub(logger)
	j := journal.New(store.NewKVStore(db), journal.Options{
		Location: time.UTC,
		Now:      clock.Now,
		Rand:     func(int) int { return 0 },
		Logger:   logger,
		OnChange: func(c journal.Change) {
			hub.Broadcast(ws.NewMessage(c.Entity, c.Action, c.ID, c.Score))
		},
	})
	j.Load(context.Background())
	j.ClearAll(context.Background())

	return New(j, hub, logger).Router(), j, clock
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		r = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}

func TestHealth(t *testing.T) {
	h, _, _ := setupTestServer(t)
	rec := do(t, h, "GET", "/health", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestDailySaveOutcomes(t *testing.T) {
	h, _, _ := setupTestServer(t)

	rec := do(t, h, "PUT", "/api/records/daily", map[string]any{
		"date": "2024-01-01", "emotion": "기쁨", "content": "오늘은 좋은 하루", "isPublic": true, "category": "일상",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("save status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	res := decode[journal.Result](t, rec)
	if res.Record == nil || res.Record.ID == "" {
		t.Fatalf("Record = %+v, want saved record with id", res.Record)
	}

	rec = do(t, h, "PUT", "/api/records/daily", map[string]any{
		"date": "2024-01-02", "emotion": "기쁨", "content": "카테고리 없는 공개", "isPublic": true,
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("invalid status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}

	rec = do(t, h, "PUT", "/api/records/daily", "not an object")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad json status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = do(t, h, "GET", "/api/records/date/2024-01-01", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("get by date status = %d, want %d", rec.Code, http.StatusOK)
	}
	rec = do(t, h, "GET", "/api/records/date/2023-01-01", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing date status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestUpdateAndDeleteStaleIDs(t *testing.T) {
	h, _, _ := setupTestServer(t)

	rec := do(t, h, "PUT", "/api/records/gone", map[string]any{"date": "2024-01-01", "emotion": "기쁨", "content": "사라진 기록"})
	if rec.Code != http.StatusOK {
		t.Errorf("update status = %d, want %d", rec.Code, http.StatusOK)
	}
	if res := decode[journal.Result](t, rec); res.Record != nil {
		t.Errorf("Record = %+v, want nil", res.Record)
	}

	rec = do(t, h, "DELETE", "/api/records/gone", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("delete status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := decode[map[string]bool](t, rec); got["deleted"] {
		t.Error("deleted = true, want false")
	}
}

func TestSeedNameQuota(t *testing.T) {
	h, _, clock := setupTestServer(t)

	if rec := do(t, h, "PUT", "/api/seed-name", map[string]string{"name": "새싹이"}); rec.Code != http.StatusOK {
		t.Fatalf("first rename status = %d, want %d", rec.Code, http.StatusOK)
	}
	if rec := do(t, h, "PUT", "/api/seed-name", map[string]string{"name": "꽃님이"}); rec.Code != http.StatusConflict {
		t.Errorf("second rename status = %d, want %d", rec.Code, http.StatusConflict)
	}
	clock.t = clock.t.AddDate(0, 1, 0)
	if rec := do(t, h, "PUT", "/api/seed-name", map[string]string{"name": "꽃님이"}); rec.Code != http.StatusOK {
		t.Errorf("next month rename status = %d, want %d", rec.Code, http.StatusOK)
	}

	growth := decode[map[string]any](t, do(t, h, "GET", "/api/growth", nil))
	if growth["seedName"] != "꽃님이" {
		t.Errorf("seedName = %v, want %q", growth["seedName"], "꽃님이")
	}
}

func TestForestFlow(t *testing.T) {
	h, j, _ := setupTestServer(t)
	res := j.UpsertByDate(context.Background(), journal.RecordInput{
		Date: "2024-01-01", Emotion: "기쁨", Content: "숲에 올리는 글", IsPublic: true, Category: "유머",
	})
	id := res.Record.ID

	items := decode[[]journal.FeedItem](t, do(t, h, "GET", "/api/forest?category=유머", nil))
	if len(items) != 1 || items[0].ID != id {
		t.Fatalf("feed = %+v, want one item %s", items, id)
	}

	like := decode[journal.LikeResult](t, do(t, h, "POST", "/api/forest/"+id+"/like", nil))
	if !like.Liked || like.Likes != 1 {
		t.Errorf("like = %+v, want liked with 1", like)
	}
	if rec := do(t, h, "POST", "/api/forest/nope/like", nil); rec.Code != http.StatusNotFound {
		t.Errorf("like missing status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	if rec := do(t, h, "POST", "/api/forest/"+id+"/report", map[string]string{"reason": "광고/스팸"}); rec.Code != http.StatusOK {
		t.Errorf("report status = %d, want %d", rec.Code, http.StatusOK)
	}

	share := decode[map[string]string](t, do(t, h, "GET", "/api/forest/"+id+"/share", nil))
	if !strings.HasPrefix(share["text"], "마음숲 유머") {
		t.Errorf("share text = %q", share["text"])
	}
}

func TestSettingsAndNotifications(t *testing.T) {
	h, j, _ := setupTestServer(t)

	rec := do(t, h, "PATCH", "/api/settings", map[string]any{"lock": map[string]any{"pin": "12"}})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("bad pin status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	rec = do(t, h, "PATCH", "/api/settings", map[string]any{"notifications": map[string]any{"recordTime": "22:30"}})
	if rec.Code != http.StatusOK {
		t.Fatalf("patch status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	settings := decode[map[string]any](t, rec)
	notif := settings["notifications"].(map[string]any)
	if notif["recordTime"] != "22:30" || notif["empathy"] != true {
		t.Errorf("notifications = %v, want merged recordTime", notif)
	}

	j.AddNotification(context.Background(), "empathy", "누군가 공감했어요")
	list := decode[map[string]any](t, do(t, h, "GET", "/api/notifications", nil))
	if list["unread"] != float64(1) {
		t.Errorf("unread = %v, want 1", list["unread"])
	}
	if rec := do(t, h, "POST", "/api/notifications/read-all", nil); rec.Code != http.StatusNoContent {
		t.Errorf("read-all status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := j.UnreadCount(); got != 0 {
		t.Errorf("UnreadCount() = %d, want 0", got)
	}
}

func TestExport(t *testing.T) {
	h, j, _ := setupTestServer(t)
	j.UpsertByDate(context.Background(), journal.RecordInput{ID: "r1", Date: "2024-01-01", Emotion: "기쁨", Content: "내보낼 기록, 하나"})

	rec := do(t, h, "GET", "/api/export/csv", nil)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if !strings.Contains(rec.Header().Get("Content-Disposition"), "maeumsee-2024-01-01.csv") {
		t.Errorf("Content-Disposition = %q", rec.Header().Get("Content-Disposition"))
	}
	want := "id,date,emotion,content,isPublic,category,likes\nr1,2024-01-01,기쁨,\"내보낼 기록, 하나\",false,,0"
	if rec.Body.String() != want {
		t.Errorf("csv = %q, want %q", rec.Body.String(), want)
	}

	rec = do(t, h, "GET", "/api/export/json", nil)
	if !strings.HasPrefix(rec.Body.String(), "[\n  {") {
		t.Errorf("json = %q, want indented array", rec.Body.String())
	}
}

func TestBackupRestore(t *testing.T) {
	h, j, _ := setupTestServer(t)
	j.UpsertByDate(context.Background(), journal.RecordInput{ID: "r1", Date: "2024-01-01", Emotion: "기쁨", Content: "백업할 기록입니다"})

	if rec := do(t, h, "POST", "/api/backup", map[string]string{}); rec.Code != http.StatusBadRequest {
		t.Errorf("no passphrase status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	rec := do(t, h, "POST", "/api/backup", map[string]string{"passphrase": "pw"})
	if rec.Code != http.StatusOK {
		t.Fatalf("backup status = %d, want %d", rec.Code, http.StatusOK)
	}
	sealed := rec.Body.Bytes()

	if rec := do(t, h, "DELETE", "/api/data", nil); rec.Code != http.StatusNoContent {
		t.Fatalf("clear status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if len(j.Records()) != 0 {
		t.Fatalf("len(Records()) = %d after clear, want 0", len(j.Records()))
	}

	restore := func(pass string) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/restore", bytes.NewReader(sealed))
		req.Header.Set(handler.PassphraseHeader, pass)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}
	if rec := restore("wrong"); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("wrong passphrase status = %d, want %d", rec.Code, http.StatusUnprocessableEntity)
	}
	if rec := restore("pw"); rec.Code != http.StatusOK {
		t.Fatalf("restore status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}
	if _, ok := j.GetByID("r1"); !ok {
		t.Error("restored journal is missing r1")
	}
}

func TestBackupRateLimited(t *testing.T) {
	h, _, _ := setupTestServer(t)

	var last int
	for range backupLimit + 1 {
		last = do(t, h, "POST", "/api/backup", map[string]string{}).Code
	}
	if last != http.StatusTooManyRequests {
		t.Errorf("status = %d, want %d", last, http.StatusTooManyRequests)
	}
}

func TestStats(t *testing.T) {
	h, j, _ := setupTestServer(t)
	j.UpsertByDate(context.Background(), journal.RecordInput{Date: "2024-01-01", Emotion: "기쁨", Content: "통계를 위한 기록"})

	stats := decode[map[string]float64](t, do(t, h, "GET", "/api/stats", nil))
	if stats["totalRecords"] != 1 || stats["streakDays"] != 1 {
		t.Errorf("stats = %v, want one record and a one-day streak", stats)
	}
}
