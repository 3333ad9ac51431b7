package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/umputun/vcaggregate/pkg/domain"
	"github.com/umputun/vcaggregate/pkg/submission"
)

// firmResponse is a firm with its bookmark state, as returned by the API
type firmResponse struct {
	domain.Firm
	Bookmarked bool   `json:"bookmarked"`
	IntroLink  string `json:"intro_link"`
}

// submissionResponse is a collected submission, as returned by the API
type submissionResponse struct {
	Submission domain.Submission `json:"submission"`
	JSON       string            `json:"json"`
	Copied     bool              `json:"copied"`
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":    "ok",
		"version":   s.version,
		"time":      time.Now().UTC(),
		"firms":     s.directory.Len(),
		"bookmarks": len(s.bookmarks.IDs()),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// listFirmsHandler returns visible firms for q and facet params, same rules as the page
func (s *Server) listFirmsHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	sel := s.selectionFromQuery(r.URL.Query())

	bookmarked := s.bookmarks.Set()
	firms := s.directory.Visible(query, sel)
	renderJSON(w, r, http.StatusOK, map[string]any{
		"count": len(firms),
		"firms": s.firmResponses(firms, bookmarked),
	})
}

// listBookmarksHandler returns bookmarked ids and the catalog firms they refer to
func (s *Server) listBookmarksHandler(w http.ResponseWriter, r *http.Request) {
	bookmarked := s.bookmarks.Set()
	renderJSON(w, r, http.StatusOK, map[string]any{
		"ids":   bookmarked.Sorted(),
		"firms": s.firmResponses(s.directory.Bookmarked(bookmarked), bookmarked),
	})
}

// toggleBookmarkAPIHandler flips a bookmark and returns the new state
func (s *Server) toggleBookmarkAPIHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, ok := s.directory.Get(id); !ok {
		renderError(w, r, fmt.Errorf("firm %q not found", id), http.StatusNotFound)
		return
	}

	bookmarked := s.bookmarks.Toggle(r.Context(), id)
	renderJSON(w, r, http.StatusOK, map[string]any{"id": id, "bookmarked": bookmarked})
}

// createSubmissionHandler collects a submission sent as JSON form fields
func (s *Server) createSubmissionHandler(w http.ResponseWriter, r *http.Request) {
	var form domain.SubmissionForm
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		renderError(w, r, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}

	res, err := s.submitter.Collect(form)
	if err != nil {
		var verr *submission.ValidationError
		if errors.As(err, &verr) {
			renderJSON(w, r, http.StatusUnprocessableEntity, map[string]any{"error": verr.Error(), "fields": verr.Fields})
			return
		}
		log.Printf("[ERROR] failed to collect submission: %v", err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, submissionResponse{Submission: res.Submission, JSON: res.JSON, Copied: res.Copied})
}

func (s *Server) firmResponses(firms []domain.Firm, bookmarked domain.StringSet) []firmResponse {
	mailbox := s.config.GetDirectoryConfig().IntroEmail
	res := make([]firmResponse, 0, len(firms))
	for _, f := range firms {
		res = append(res, firmResponse{Firm: f, Bookmarked: bookmarked.Has(f.ID), IntroLink: f.IntroLink(mailbox)})
	}
	return res
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
