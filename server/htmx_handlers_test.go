package server

import (
	"errors"
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-pkgz/routegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/vcaggregate/pkg/domain"
	"github.com/umputun/vcaggregate/pkg/submission"
	"github.com/umputun/vcaggregate/server/mocks"
)

func TestServer_indexHandler(t *testing.T) {
	srv := testServer(t, testBookmarks(), testSubmitter(true))

	t.Run("first visit uses default selection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", http.NoBody)
		w := httptest.NewRecorder()
		srv.indexHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<html")
		assert.Contains(t, body, "Peak XV Partners")
		assert.NotContains(t, body, "Andreessen Horowitz")
		assert.Contains(t, body, "Showing <strong>1</strong> firms for your filters")
		assert.Contains(t, body, `value="India" checked`)
		assert.NotContains(t, body, `value="USA" checked`)
		assert.Contains(t, body, "No bookmarks yet.")
	})

	t.Run("explicit empty selection shows everything", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?filtered=1", http.NoBody)
		w := httptest.NewRecorder()
		srv.indexHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Peak XV Partners")
		assert.Contains(t, body, "Andreessen Horowitz")
		assert.Contains(t, body, "Showing <strong>2</strong> firms\n")
		assert.NotContains(t, body, "for your filters")
		assert.NotContains(t, body, `value="India" checked`)
	})

	t.Run("query and facets", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?filtered=1&q=web3&stage=Seed", http.NoBody)
		w := httptest.NewRecorder()
		srv.indexHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Andreessen Horowitz")
		assert.NotContains(t, body, "Peak XV Partners")
		assert.Contains(t, body, `value="web3"`)
		assert.Contains(t, body, `value="Seed" checked`)
	})

	t.Run("no matches", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?filtered=1&q=nothing-like-this", http.NoBody)
		w := httptest.NewRecorder()
		srv.indexHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No firms match your search")
		assert.Contains(t, w.Body.String(), "Showing <strong>0</strong> firms")
	})

	t.Run("intro link and website", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", http.NoBody)
		w := httptest.NewRecorder()
		srv.indexHandler(w, req)

		body := w.Body.String()
		assert.Contains(t, body, "mailto:intros@example.com?subject=Intro%20request:%20Peak%20XV%20Partners")
		assert.Contains(t, body, `href="https://www.peakxv.com"`)
		assert.Contains(t, body, "Typical ticket: <strong>$1M-$20M</strong>")
	})

	t.Run("htmx partial", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/?filtered=1&region=USA", http.NoBody)
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		srv.indexHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.NotContains(t, body, "<html")
		assert.NotContains(t, body, `id="shortlist"`)
		assert.Contains(t, body, `<div id="counter" class="counter" hx-swap-oob="true">`)
		assert.Contains(t, body, `<section id="directory"`)
		assert.Contains(t, body, "Andreessen Horowitz")
		assert.NotContains(t, body, "Peak XV Partners")
		assert.Less(t, strings.Index(body, `id="counter"`), strings.Index(body, `id="directory"`))
	})
}

func TestServer_indexHandler_Bookmarked(t *testing.T) {
	srv := testServer(t, testBookmarks("a16z", "stale-id"), testSubmitter(true))

	req := httptest.NewRequest("GET", "/?filtered=1", http.NoBody)
	w := httptest.NewRecorder()
	srv.indexHandler(w, req)

	body := w.Body.String()
	assert.Contains(t, body, `id="bm-a16z"`)
	assert.Contains(t, body, `id="saved-a16z"`)
	assert.NotContains(t, body, `id="saved-peakxv"`)
	assert.NotContains(t, body, "No bookmarks yet.")
	assert.Contains(t, body, `aria-pressed="true"`)
	assert.Contains(t, body, `aria-pressed="false"`)
}

func TestServer_toggleBookmarkHandler(t *testing.T) {
	t.Run("unknown firm", func(t *testing.T) {
		bm := testBookmarks()
		srv := testServer(t, bm, testSubmitter(true))

		req := httptest.NewRequest("POST", "/bookmarks/nope", http.NoBody)
		req.SetPathValue("id", "nope")
		w := httptest.NewRecorder()
		srv.toggleBookmarkHandler(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Empty(t, bm.ToggleCalls())
	})

	t.Run("htmx toggle on and off", func(t *testing.T) {
		bm := testBookmarks()
		srv := testServer(t, bm, testSubmitter(true))

		req := httptest.NewRequest("POST", "/bookmarks/peakxv", http.NoBody)
		req.SetPathValue("id", "peakxv")
		req.Header.Set("HX-Request", "true")
		w := httptest.NewRecorder()
		srv.toggleBookmarkHandler(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `id="bm-peakxv" hx-swap-oob="true"`)
		assert.Contains(t, body, `<section id="shortlist" class="container shortlist" hx-swap-oob="true">`)
		assert.Contains(t, body, "Saved")
		assert.Contains(t, body, `id="saved-peakxv"`)
		require.Len(t, bm.ToggleCalls(), 1)
		assert.Equal(t, "peakxv", bm.ToggleCalls()[0].Id)

		w = httptest.NewRecorder()
		srv.toggleBookmarkHandler(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No bookmarks yet.")
		assert.Contains(t, w.Body.String(), `aria-pressed="false"`)
		assert.Len(t, bm.ToggleCalls(), 2)
	})

	t.Run("plain form post redirects back", func(t *testing.T) {
		bm := testBookmarks()
		srv := testServer(t, bm, testSubmitter(true))

		req := httptest.NewRequest("POST", "/bookmarks/a16z", http.NoBody)
		req.SetPathValue("id", "a16z")
		req.Header.Set("Referer", "http://localhost:8080/?filtered=1&q=ai")
		w := httptest.NewRecorder()
		srv.toggleBookmarkHandler(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/?filtered=1&q=ai", w.Header().Get("Location"))
		assert.True(t, bm.IsBookmarked("a16z"))
	})

	t.Run("protocol-relative referer path stays local", func(t *testing.T) {
		srv := testServer(t, testBookmarks(), testSubmitter(true))

		req := httptest.NewRequest("POST", "/bookmarks/a16z", http.NoBody)
		req.SetPathValue("id", "a16z")
		req.Header.Set("Referer", "https://evil.example//evil.example/phish")
		w := httptest.NewRecorder()
		srv.toggleBookmarkHandler(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/", w.Header().Get("Location"))
	})
}

func TestServer_shortlistHandler(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		srv := testServer(t, testBookmarks(), testSubmitter(true))
		w := httptest.NewRecorder()
		srv.shortlistHandler(w, httptest.NewRequest("GET", "/shortlist", http.NoBody))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "No bookmarks yet.")
		assert.NotContains(t, w.Body.String(), "hx-swap-oob")
	})

	t.Run("catalog order, stale ids ignored", func(t *testing.T) {
		srv := testServer(t, testBookmarks("a16z", "peakxv", "gone"), testSubmitter(true))
		w := httptest.NewRecorder()
		srv.shortlistHandler(w, httptest.NewRequest("GET", "/shortlist", http.NoBody))

		body := w.Body.String()
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Less(t, strings.Index(body, "Peak XV Partners"), strings.Index(body, "Andreessen Horowitz"))
		assert.NotContains(t, body, "gone")
		assert.NotContains(t, body, `id="bm-`, "shortlist buttons are not swap targets")
	})
}

func TestServer_submitHandler(t *testing.T) {
	validForm := url.Values{
		"name":    {"Acme Ventures"},
		"website": {"https://acme.vc"},
		"hq":      {"Pune, India"},
		"regions": {"India, SEA"},
		"stages":  {"Seed"},
		"sectors": {" AI, , SaaS "},
		"ticket":  {""},
	}

	post := func(srv *Server, form url.Values, htmx bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/submit", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if htmx {
			req.Header.Set("HX-Request", "true")
		}
		w := httptest.NewRecorder()
		srv.submitHandler(w, req)
		return w
	}

	t.Run("copied", func(t *testing.T) {
		sub := testSubmitter(true)
		srv := testServer(t, testBookmarks(), sub)
		w := post(srv, validForm, true)

		assert.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Copied as JSON")
		assert.Contains(t, body, "Acme Ventures")
		assert.NotContains(t, body, "<html")
		assert.Contains(t, body, `<div id="submit-body">`)

		require.Len(t, sub.CollectCalls(), 1)
		assert.Equal(t, domain.SubmissionForm{Name: "Acme Ventures", Website: "https://acme.vc", HQ: "Pune, India",
			Regions: "India, SEA", Stages: "Seed", Sectors: " AI, , SaaS "}, sub.CollectCalls()[0].Form)
	})

	t.Run("clipboard unavailable", func(t *testing.T) {
		srv := testServer(t, testBookmarks(), testSubmitter(false))
		w := post(srv, validForm, true)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Submission ready.")
		assert.Contains(t, w.Body.String(), "copy the JSON below manually")
		assert.Contains(t, w.Body.String(), `<pre class="json">`)
		assert.NotContains(t, w.Body.String(), "Copied as JSON")
	})

	t.Run("missing fields", func(t *testing.T) {
		srv := testServer(t, testBookmarks(), testSubmitter(true))
		form := url.Values{"name": {"Acme Ventures"}, "regions": {" , "}}
		w := post(srv, form, true)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "Please fill in the highlighted fields.")
		assert.Contains(t, body, `value="Acme Ventures"`)
		assert.Equal(t, 5, strings.Count(body, "field missing"), "website, hq, regions, stages and sectors")
		assert.NotContains(t, body, "Copied as JSON")
	})

	t.Run("plain post renders the page", func(t *testing.T) {
		srv := testServer(t, testBookmarks(), testSubmitter(true))
		w := post(srv, url.Values{}, false)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, "<html")
		assert.Contains(t, body, "Please fill in the highlighted fields.")
		assert.Contains(t, body, "Peak XV Partners")
	})

	t.Run("collector failure", func(t *testing.T) {
		sub := &mocks.SubmitterMock{
			CollectFunc: func(domain.SubmissionForm) (*submission.Result, error) {
				return nil, errors.New("marshal failed")
			},
		}
		srv := testServer(t, testBookmarks(), sub)
		w := post(srv, validForm, true)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Failed to collect submission")
	})
}

func TestServer_TemplateErrors(t *testing.T) {
	srv := &Server{
		config:        testConfig(),
		directory:     testDirectory(),
		bookmarks:     testBookmarks(),
		submitter:     testSubmitter(true),
		version:       "test",
		router:        routegroup.New(http.NewServeMux()),
		templates:     template.New("test"),
		pageTemplates: map[string]*template.Template{}, // no pages
	}

	req := httptest.NewRequest("GET", "/", http.NoBody)
	w := httptest.NewRecorder()
	srv.indexHandler(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to render page")
}

func TestServer_selectionFromQuery(t *testing.T) {
	srv := testServer(t, testBookmarks(), testSubmitter(true))

	tests := []struct {
		name  string
		query string
		want  domain.Selection
	}{
		{name: "defaults", query: "",
			want: domain.Selection{Regions: domain.NewStringSet("India"), Stages: domain.NewStringSet(), Sectors: domain.NewStringSet()}},
		{name: "facets without marker are ignored", query: "region=USA",
			want: domain.Selection{Regions: domain.NewStringSet("India"), Stages: domain.NewStringSet(), Sectors: domain.NewStringSet()}},
		{name: "explicit empty", query: "filtered=1",
			want: domain.Selection{Regions: domain.NewStringSet(), Stages: domain.NewStringSet(), Sectors: domain.NewStringSet()}},
		{name: "explicit with blanks", query: "filtered=1&region=USA&region=+&stage=Seed&sector=AI&sector=Web3",
			want: domain.Selection{Regions: domain.NewStringSet("USA"), Stages: domain.NewStringSet("Seed"),
				Sectors: domain.NewStringSet("AI", "Web3")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, srv.selectionFromQuery(q))
		})
	}
}

func TestFacetGroups(t *testing.T) {
	sel := domain.Selection{Regions: domain.NewStringSet("India", "Antarctica"), Stages: domain.NewStringSet()}
	groups := facetGroups(sel)
	require.Len(t, groups, 3)

	regions := groups[0]
	assert.Equal(t, "region", regions.Name)
	assert.Equal(t, "Region", regions.Label)
	require.Len(t, regions.Chips, len(domain.Regions)+1)
	assert.Equal(t, chip{Value: "India", Checked: true}, regions.Chips[0])
	assert.Equal(t, chip{Value: "USA", Checked: false}, regions.Chips[1])
	assert.Equal(t, chip{Value: "Antarctica", Checked: true}, regions.Chips[len(regions.Chips)-1])

	assert.Equal(t, "stage", groups[1].Name)
	assert.Len(t, groups[1].Chips, len(domain.Stages))
	assert.Equal(t, "sector", groups[2].Name)
	for _, c := range groups[2].Chips {
		assert.False(t, c.Checked)
	}
}

func TestBackURL(t *testing.T) {
	tests := []struct {
		referer string
		want    string
	}{
		{referer: "", want: "/"},
		{referer: "http://localhost:8080/?filtered=1&region=India", want: "/?filtered=1&region=India"},
		{referer: "https://evil.example.com/steal", want: "/steal"},
		{referer: "http://localhost:8080", want: "/"},
		{referer: "::not a url", want: "/"},
		{referer: "https://evil.example//evil.example/phish", want: "/"},
		{referer: "http://localhost:8080/\\evil.example/phish", want: "/%5Cevil.example/phish"},
		{referer: "http://localhost:8080/shortlist?x=//y", want: "/shortlist?x=//y"},
	}
	for _, tt := range tests {
		t.Run(tt.referer, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/bookmarks/x", http.NoBody)
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			assert.Equal(t, tt.want, backURL(req))
		})
	}
}
