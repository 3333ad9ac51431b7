package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/vcaggregate/pkg/config"
	"github.com/umputun/vcaggregate/pkg/directory"
	"github.com/umputun/vcaggregate/pkg/domain"
	"github.com/umputun/vcaggregate/pkg/submission"
	"github.com/umputun/vcaggregate/server/mocks"
)

var testFirms = []domain.Firm{
	{
		ID: "peakxv", Name: "Peak XV Partners", Website: "https://www.peakxv.com", HQ: "Bengaluru, India",
		Regions: []string{"India", "SEA"}, Stages: []string{"Seed", "Series A"}, Sectors: []string{"SaaS", "Fintech"},
		Ticket: "$1M-$20M",
	},
	{
		ID: "a16z", Name: "Andreessen Horowitz", Website: "https://a16z.com", HQ: "Menlo Park, USA",
		Regions: []string{"USA", "Global"}, Stages: []string{"Seed", "Growth"}, Sectors: []string{"AI", "Web3"},
		Ticket: "$1M-$100M",
	},
}

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
		GetDirectoryConfigFunc: func() config.DirectoryConfig {
			return config.DirectoryConfig{IntroEmail: "intros@example.com", DefaultRegions: []string{"India"}}
		},
	}
}

func testDirectory() *mocks.DirectoryMock {
	return &mocks.DirectoryMock{
		LenFunc: func() int { return len(testFirms) },
		GetFunc: func(id string) (domain.Firm, bool) {
			for _, f := range testFirms {
				if f.ID == id {
					return f, true
				}
			}
			return domain.Firm{}, false
		},
		VisibleFunc: func(query string, sel domain.Selection) []domain.Firm {
			return directory.Visible(testFirms, query, sel)
		},
		BookmarkedFunc: func(ids domain.StringSet) []domain.Firm {
			return directory.Bookmarked(testFirms, ids)
		},
	}
}

// testBookmarks keeps bookmarks in memory the way the real manager does
func testBookmarks(ids ...string) *mocks.BookmarksMock {
	set := domain.NewStringSet(ids...)
	return &mocks.BookmarksMock{
		ToggleFunc: func(_ context.Context, id string) bool {
			if set.Has(id) {
				set.Remove(id)
				return false
			}
			set.Add(id)
			return true
		},
		IsBookmarkedFunc: set.Has,
		IDsFunc:          set.Sorted,
		SetFunc:          set.Clone,
	}
}

func testSubmitter(copied bool) *mocks.SubmitterMock {
	return &mocks.SubmitterMock{
		CollectFunc: func(form domain.SubmissionForm) (*submission.Result, error) {
			if err := submission.Validate(form); err != nil {
				return nil, err
			}
			sub := submission.Parse(form)
			text, err := submission.Marshal(sub)
			if err != nil {
				return nil, err
			}
			return &submission.Result{Submission: sub, JSON: text, Copied: copied}, nil
		},
	}
}

// testServer creates a server instance using the actual New function
func testServer(t *testing.T, bm Bookmarks, sub Submitter) *Server {
	t.Helper()
	srv, err := New(testConfig(), testDirectory(), bm, sub, "test", false)
	require.NoError(t, err)
	return srv
}

func TestServer_New(t *testing.T) {
	srv, err := New(testConfig(), testDirectory(), testBookmarks(), testSubmitter(true), "1.0.0", false)
	require.NoError(t, err)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
	assert.NotNil(t, srv.templates.Lookup(templateDirectory))
	assert.NotNil(t, srv.templates.Lookup(templateSubmit))
	assert.Contains(t, srv.pageTemplates, templateIndex)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := testConfig()
	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
	}

	srv, err := New(cfg, testDirectory(), testBookmarks(), testSubmitter(true), "1.0.0", false)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	// wait for server to start
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/api/v1/status", port))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "vcaggregate", resp.Header.Get("App-Name"))
	assert.Equal(t, "1.0.0", resp.Header.Get("App-Version"))

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunListenError(t *testing.T) {
	cfg := testConfig()
	cfg.GetServerConfigFunc = func() (string, time.Duration) {
		return "bad-address:-1", time.Second
	}
	srv, err := New(cfg, testDirectory(), testBookmarks(), testSubmitter(true), "1.0.0", false)
	require.NoError(t, err)

	err = srv.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server error")
}

func TestServer_Routes(t *testing.T) {
	srv := testServer(t, testBookmarks("peakxv"), testSubmitter(true))
	ts := httptest.NewServer(srv.router)
	defer ts.Close()

	tests := []struct {
		name        string
		method      string
		path        string
		code        int
		contains    string
		contentType string
	}{
		{name: "ping", method: http.MethodGet, path: "/ping", code: http.StatusOK, contains: "pong"},
		{name: "index", method: http.MethodGet, path: "/", code: http.StatusOK, contains: "Peak XV Partners",
			contentType: "text/html; charset=utf-8"},
		{name: "shortlist", method: http.MethodGet, path: "/shortlist", code: http.StatusOK, contains: `id="shortlist"`},
		{name: "static css", method: http.MethodGet, path: "/static/style.css", code: http.StatusOK, contains: ".firm-header"},
		{name: "api status", method: http.MethodGet, path: "/api/v1/status", code: http.StatusOK, contains: `"status":"ok"`,
			contentType: "application/json"},
		{name: "api firms", method: http.MethodGet, path: "/api/v1/firms?filtered=1", code: http.StatusOK, contains: `"count":2`},
		{name: "api bookmarks", method: http.MethodGet, path: "/api/v1/bookmarks", code: http.StatusOK, contains: `"ids":["peakxv"]`},
		{name: "unknown path", method: http.MethodGet, path: "/nothing-here", code: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(tt.method, ts.URL+tt.path, http.NoBody)
			require.NoError(t, err)
			resp, err := http.DefaultClient.Do(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, tt.code, resp.StatusCode)
			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			if tt.contains != "" {
				assert.Contains(t, string(body), tt.contains)
			}
			if tt.contentType != "" {
				assert.Equal(t, tt.contentType, resp.Header.Get("Content-Type"))
			}
		})
	}
}

func TestServer_DebugRequestLogging(t *testing.T) {
	srv, err := New(testConfig(), testDirectory(), testBookmarks(), testSubmitter(true), "test", true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
