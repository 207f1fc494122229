package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"mrm-cyber-api/config"
	"mrm-cyber-api/models"
	"mrm-cyber-api/services"
)

func performRequest(handler gin.HandlerFunc, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Handle(method, "/x", handler)

	req := httptest.NewRequest(method, "/x"+target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return m
}

func TestRootHandler(t *testing.T) {
	rec := performRequest(RootHandler(), http.MethodGet, "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["name"] != "MRM Cybersecurity API" || body["status"] != "ok" {
		t.Fatalf("unexpected body: %v", body)
	}
}

func TestIncidentsHandler(t *testing.T) {
	rec := performRequest(IncidentsHandler(), http.MethodGet, "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var incidents []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &incidents); err != nil {
		t.Fatal(err)
	}
	if len(incidents) != 3 {
		t.Fatalf("expected 3 incidents, got %d", len(incidents))
	}
	if incidents[0]["severity"] != "High" || incidents[0]["mitre_attack_vector"] != "T1498" {
		t.Fatalf("unexpected first incident: %v", incidents[0])
	}
	// all three share the one request timestamp
	if incidents[0]["time"] != incidents[2]["time"] {
		t.Fatal("expected identical timestamps across sample incidents")
	}
}

func TestListToolsHandlerDisabledStorage(t *testing.T) {
	rec := performRequest(ListToolsHandler(nil), http.MethodGet, "?q=map&sort=popularity", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %q", rec.Body.String())
	}
}

func TestListCoursesHandlerDisabledStorage(t *testing.T) {
	rec := performRequest(ListCoursesHandler(nil), http.MethodGet, "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Fatalf("expected empty list, got %q", rec.Body.String())
	}
}

func TestSeedHandlerDisabledStorageIsHardFailure(t *testing.T) {
	rec := performRequest(SeedHandler(nil), http.MethodPost, "", "")

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	body := decodeBody(t, rec)
	if body["detail"] != "Database not configured" {
		t.Fatalf("unexpected detail: %v", body["detail"])
	}
}

func TestNewsHandlerSampleFallback(t *testing.T) {
	svc := services.NewNewsService(nil, config.NewsConfig{
		Query:     "cybersecurity",
		Countries: "us,gb,ca",
		Language:  "en",
		Limit:     12,
	})
	rec := performRequest(NewsHandler(svc), http.MethodGet, "", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatal(err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 sample items, got %d", len(items))
	}
	for _, item := range items {
		if item["source"] != "Sample" {
			t.Fatalf("expected Sample source, got %v", item["source"])
		}
		if item["published_at"] != items[0]["published_at"] {
			t.Fatal("expected one shared published_at across sample items")
		}
	}
}

type capturingSubscriberStore struct {
	inserted []models.Subscriber
}

func (s *capturingSubscriberStore) Insert(_ context.Context, sub *models.Subscriber) (string, error) {
	s.inserted = append(s.inserted, *sub)
	return "sub-id", nil
}

type capturingContactStore struct {
	inserted []models.ContactMessage
}

func (s *capturingContactStore) Insert(_ context.Context, msg *models.ContactMessage) (string, error) {
	s.inserted = append(s.inserted, *msg)
	return "msg-id", nil
}

func TestSubscribeHandlerDisabled(t *testing.T) {
	rec := performRequest(SubscribeHandler(nil), http.MethodPost, "", `{"email":"a@b.c"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decodeBody(t, rec)["status"] != "disabled" {
		t.Fatalf("expected disabled status, got %s", rec.Body.String())
	}
}

func TestSubscribeHandlerStoresWithDefaultSource(t *testing.T) {
	store := &capturingSubscriberStore{}
	rec := performRequest(SubscribeHandler(store), http.MethodPost, "", `{"email":"a@b.c"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decodeBody(t, rec)["status"] != "ok" {
		t.Fatalf("expected ok status, got %s", rec.Body.String())
	}
	if len(store.inserted) != 1 {
		t.Fatalf("expected one insert, got %d", len(store.inserted))
	}
	if store.inserted[0].Email != "a@b.c" || store.inserted[0].Source != "website" {
		t.Fatalf("unexpected stored subscriber: %+v", store.inserted[0])
	}
}

func TestSubscribeHandlerValidation(t *testing.T) {
	store := &capturingSubscriberStore{}
	rec := performRequest(SubscribeHandler(store), http.MethodPost, "", `{"source":"landing"}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	if len(store.inserted) != 0 {
		t.Fatal("validation failure must not reach storage")
	}
	if !strings.Contains(rec.Body.String(), "email") {
		t.Fatalf("expected email in error detail, got %s", rec.Body.String())
	}
}

func TestContactHandlerReportsEveryMissingField(t *testing.T) {
	rec := performRequest(ContactHandler(&capturingContactStore{}), http.MethodPost, "", `{}`)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", rec.Code)
	}
	var body struct {
		Detail []models.FieldError `json:"detail"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Detail) != 3 {
		t.Fatalf("expected 3 field errors, got %v", body.Detail)
	}
}

func TestContactHandlerDisabled(t *testing.T) {
	rec := performRequest(ContactHandler(nil), http.MethodPost, "", `{"name":"a","email":"a@b.c","message":"hi"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if decodeBody(t, rec)["status"] != "disabled" {
		t.Fatalf("expected disabled status, got %s", rec.Body.String())
	}
}
