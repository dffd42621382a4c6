// handlers_test.go exercises the portal API end to end over httptest, in
// memory-only mode and against the fake durable backend.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testAdminToken = "test-admin-token"

func newTestServer(t *testing.T, kv KV, adminToken string) *httptest.Server {
	t.Helper()
	store := NewStore(kv, zerolog.Nop())
	updates := NewBroadcaster(kv, zerolog.Nop())
	activity := NewActivityLog()
	handler := NewHandler(store, updates, activity, zerolog.Nop())
	srv := httptest.NewServer(handler.Routes(adminToken))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url, token string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeInto(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t, nil, "")

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	decodeInto(t, resp, &body)
	require.Equal(t, "ok", body["status"])
}

func TestAnnouncementLifecycle(t *testing.T) {
	srv := newTestServer(t, nil, testAdminToken)

	resp, err := http.Get(srv.URL + "/api/announcements")
	require.NoError(t, err)
	var initial []Announcement
	decodeInto(t, resp, &initial)
	require.Len(t, initial, 5)

	// Create: new announcements go to the front.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/announcements", testAdminToken, CreateAnnouncementRequest{
		Title:    "Water Interruption Notice",
		Category: "General",
		Content:  "Water service will be interrupted on Sunday for pipe repairs.",
		Date:     "2025-04-06",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Announcement
	decodeInto(t, resp, &created)
	require.NotEmpty(t, created.ID)
	require.NotEmpty(t, created.CreatedAt)

	resp, err = http.Get(srv.URL + "/api/announcements")
	require.NoError(t, err)
	var afterCreate []Announcement
	decodeInto(t, resp, &afterCreate)
	require.Len(t, afterCreate, 6)
	require.Equal(t, created.ID, afterCreate[0].ID)

	// Update by id.
	created.Title = "Water Interruption Rescheduled"
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/announcements", testAdminToken, created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Announcement
	decodeInto(t, resp, &updated)
	require.Equal(t, "Water Interruption Rescheduled", updated.Title)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)

	// Delete by id.
	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/announcements?id="+created.ID, testAdminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/api/announcements")
	require.NoError(t, err)
	var afterDelete []Announcement
	decodeInto(t, resp, &afterDelete)
	require.Len(t, afterDelete, 5)
}

func TestHotlineDeleteByID(t *testing.T) {
	srv := newTestServer(t, nil, "")

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/hotlines?id=3", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	r, err := http.Get(srv.URL + "/api/hotlines")
	require.NoError(t, err)
	var hotlines []Hotline
	decodeInto(t, r, &hotlines)
	require.Len(t, hotlines, 4)
	for _, h := range hotlines {
		require.NotEqual(t, "3", h.ID)
	}
}

func TestDeleteValidation(t *testing.T) {
	srv := newTestServer(t, nil, "")

	resp := doJSON(t, http.MethodDelete, srv.URL+"/api/hotlines", "", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodDelete, srv.URL+"/api/hotlines?id=no-such-id", "", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestApplicationSubmissionAndStatusUpdate(t *testing.T) {
	srv := newTestServer(t, nil, testAdminToken)

	// Public submission, no credentials.
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/applications", "", CreateApplicationRequest{
		FullName:      "Elena Reyes",
		Address:       "Purok 4, Barangay Matiao",
		ContactNumber: "+63-917-555-0101",
		DocumentType:  "Barangay Clearance",
		Purpose:       "Employment requirement",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Application
	decodeInto(t, resp, &created)
	require.Equal(t, StatusPending, created.Status)
	require.NotEmpty(t, created.SubmittedAt)
	require.NotEmpty(t, created.UpdatedAt)

	// Admin approves.
	created.Status = StatusApproved
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/applications", testAdminToken, created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Application
	decodeInto(t, resp, &updated)
	require.Equal(t, StatusApproved, updated.Status)
	require.Equal(t, created.SubmittedAt, updated.SubmittedAt)
	require.NotEmpty(t, updated.UpdatedAt)

	r, err := http.Get(srv.URL + "/api/applications")
	require.NoError(t, err)
	var listed []Application
	decodeInto(t, r, &listed)
	require.Len(t, listed, 1)
	require.Equal(t, StatusApproved, listed[0].Status)
}

func TestReportSubmission(t *testing.T) {
	srv := newTestServer(t, nil, testAdminToken)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/reports", "", CreateReportRequest{
		Name:        "Marco Tan",
		IssueType:   "Streetlight",
		Description: "Lamp post at Purok 2 has been dark for a week.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created Report
	decodeInto(t, resp, &created)
	require.Equal(t, StatusPending, created.Status)

	created.Status = StatusResolved
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/reports", testAdminToken, created)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated Report
	decodeInto(t, resp, &updated)
	require.Equal(t, StatusResolved, updated.Status)
}

func TestUpdatesEndpoint(t *testing.T) {
	srv := newTestServer(t, newFakeKV(), testAdminToken)

	resp, err := http.Get(srv.URL + "/api/updates")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var before map[string]int64
	decodeInto(t, resp, &before)
	require.Len(t, before, len(ResourceTypes))
	for _, rt := range ResourceTypes {
		require.Contains(t, before, string(rt))
	}

	time.Sleep(2 * time.Millisecond)
	r := doJSON(t, http.MethodPost, srv.URL+"/api/announcements", testAdminToken, CreateAnnouncementRequest{
		Title:   "Vaccination Drive",
		Content: "Anti-rabies vaccination for pets at the barangay hall.",
	})
	require.Equal(t, http.StatusCreated, r.StatusCode)
	r.Body.Close()

	resp, err = http.Get(srv.URL + "/api/updates")
	require.NoError(t, err)
	var after map[string]int64
	decodeInto(t, resp, &after)
	require.Greater(t, after[string(TypeAnnouncements)], before[string(TypeAnnouncements)])
	require.Equal(t, before[string(TypeHotlines)], after[string(TypeHotlines)])
}

func TestUpdatesEndpointSurvivesBackendFailure(t *testing.T) {
	kv := newFakeKV()
	kv.failGets(fmt.Errorf("connection reset by peer"))
	srv := newTestServer(t, kv, "")

	resp, err := http.Get(srv.URL + "/api/updates")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got map[string]int64
	decodeInto(t, resp, &got)
	require.Len(t, got, len(ResourceTypes))
}

func TestAdminAuth(t *testing.T) {
	srv := newTestServer(t, nil, testAdminToken)

	payload := CreateAnnouncementRequest{Title: "x", Content: "y"}

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/announcements", "", payload)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/announcements", "wrong-token", payload)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/announcements", testAdminToken, payload)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	// Public reads and submissions stay open.
	r, err := http.Get(srv.URL + "/api/announcements")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, r.StatusCode)
	r.Body.Close()

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/reports", "", CreateReportRequest{
		IssueType:   "Noise",
		Description: "Karaoke past midnight at Purok 1.",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestMalformedBody(t *testing.T) {
	srv := newTestServer(t, nil, "")

	resp, err := http.Post(srv.URL+"/api/reports", "application/json", bytes.NewReader([]byte("{not json")))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRequiredFieldValidation(t *testing.T) {
	srv := newTestServer(t, nil, "")

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/applications", "", CreateApplicationRequest{
		FullName: "No Document Type",
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestStorageFailureNeverSurfacesAsError(t *testing.T) {
	kv := newFakeKV()
	kv.failGets(fmt.Errorf("backend down"))
	kv.failSets(fmt.Errorf("backend down"))
	srv := newTestServer(t, kv, "")

	resp, err := http.Get(srv.URL + "/api/hotlines")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var hotlines []Hotline
	decodeInto(t, resp, &hotlines)
	require.Len(t, hotlines, 5)

	r := doJSON(t, http.MethodPost, srv.URL+"/api/reports", "", CreateReportRequest{
		IssueType:   "Flooding",
		Description: "Clogged drainage at the corner of Mabini St.",
	})
	require.Equal(t, http.StatusCreated, r.StatusCode)
	r.Body.Close()

	resp, err = http.Get(srv.URL + "/api/reports")
	require.NoError(t, err)
	var reports []Report
	decodeInto(t, resp, &reports)
	require.Len(t, reports, 1)
}

func TestDocumentCatalog(t *testing.T) {
	srv := newTestServer(t, nil, "")

	resp, err := http.Get(srv.URL + "/api/documents")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var docs []Document
	decodeInto(t, resp, &docs)
	require.Len(t, docs, 5)
	require.Equal(t, "Barangay Clearance", docs[0].Name)
}

func TestActivityLogEndpoint(t *testing.T) {
	srv := newTestServer(t, nil, testAdminToken)

	resp, err := http.Get(srv.URL + "/api/logs")
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	r := doJSON(t, http.MethodPost, srv.URL+"/api/hotlines", testAdminToken, CreateHotlineRequest{
		Name:   "Rescue Boat Dispatch",
		Number: "+63-900-000-0003",
	})
	require.Equal(t, http.StatusCreated, r.StatusCode)
	r.Body.Close()

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/logs", testAdminToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var entries []ActivityEntry
	decodeInto(t, resp, &entries)
	require.NotEmpty(t, entries)
	require.Equal(t, "Created hotline", entries[0].Action)
	require.Equal(t, "Rescue Boat Dispatch", entries[0].Details)
}
