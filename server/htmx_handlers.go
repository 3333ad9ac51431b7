package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/umputun/vcaggregate/pkg/domain"
	"github.com/umputun/vcaggregate/pkg/submission"
)

// template names
const (
	templateIndex     = "index.html"
	templateDirectory = "directory.html"
	templateCounter   = "counter.html"
	templateShortlist = "shortlist.html"
	templateBookmark  = "bookmark-button.html"
	templateSubmit    = "submit.html"
)

// firmCard is a firm as shown on a card, in the directory or in the shortlist
type firmCard struct {
	Firm       domain.Firm
	Bookmarked bool
	IntroLink  string
	ButtonID   string // set for directory cards only, the bookmark button is swapped by this id
	OOB        bool
}

// chip is one selectable facet tag
type chip struct {
	Value   string
	Checked bool
}

// facetGroup is a row of chips for a facet
type facetGroup struct {
	Name  string
	Label string
	Chips []chip
}

type directoryView struct {
	Firms    []firmCard
	Count    int
	Filtered bool // any facet constrained
	OOB      bool
}

type shortlistView struct {
	Firms []firmCard
	OOB   bool
}

type submitView struct {
	Form    domain.SubmissionForm
	Missing map[string]bool
	Result  *submission.Result
}

type indexPage struct {
	Query     string
	Facets    []facetGroup
	Directory directoryView
	Shortlist shortlistView
	Submit    submitView
	Version   string
}

// indexHandler renders the landing page with the directory; an HTMX request gets the directory partial only
func (s *Server) indexHandler(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	sel := s.selectionFromQuery(r.URL.Query())

	if isHTMX(r) {
		dir := s.directoryView(query, sel)
		dir.OOB = true
		s.renderComponent(w, templateCounter, dir)
		dir.OOB = false
		s.renderComponent(w, templateDirectory, dir)
		return
	}

	s.renderIndex(w, http.StatusOK, s.indexPage(query, sel, submitView{}))
}

// toggleBookmarkHandler flips a bookmark. HTMX gets the refreshed directory button and the shortlist,
// both out-of-band; a plain form post is redirected back to where it came from.
func (s *Server) toggleBookmarkHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	firm, ok := s.directory.Get(id)
	if !ok {
		http.Error(w, "Firm not found", http.StatusNotFound)
		return
	}

	bookmarked := s.bookmarks.Toggle(r.Context(), id)
	log.Printf("[DEBUG] bookmark %s set to %v", id, bookmarked)

	if !isHTMX(r) {
		http.Redirect(w, r, backURL(r), http.StatusSeeOther)
		return
	}

	card := s.firmCard(firm, bookmarked, true)
	card.OOB = true
	s.renderComponent(w, templateBookmark, card)

	sl := s.shortlistView()
	sl.OOB = true
	s.renderComponent(w, templateShortlist, sl)
}

// shortlistHandler renders the shortlist partial
func (s *Server) shortlistHandler(w http.ResponseWriter, _ *http.Request) {
	s.renderComponent(w, templateShortlist, s.shortlistView())
}

// submitHandler collects the "submit a VC" form. Missing fields answer 422 with the form re-rendered.
func (s *Server) submitHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := domain.SubmissionForm{
		Name:    r.PostFormValue("name"),
		Website: r.PostFormValue("website"),
		HQ:      r.PostFormValue("hq"),
		Regions: r.PostFormValue("regions"),
		Stages:  r.PostFormValue("stages"),
		Sectors: r.PostFormValue("sectors"),
		Ticket:  r.PostFormValue("ticket"),
	}

	status, view := http.StatusOK, submitView{}
	res, err := s.submitter.Collect(form)
	var verr *submission.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusUnprocessableEntity
		view = submitView{Form: form, Missing: make(map[string]bool, len(verr.Fields))}
		for _, f := range verr.Fields {
			view.Missing[f] = true
		}
	case err != nil:
		log.Printf("[ERROR] failed to collect submission: %v", err)
		http.Error(w, "Failed to collect submission", http.StatusInternalServerError)
		return
	default:
		view.Result = res
	}

	if !isHTMX(r) {
		s.renderIndex(w, status, s.indexPage("", s.selectionFromQuery(url.Values{}), view))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	s.renderComponent(w, templateSubmit, view)
}

// selectionFromQuery reads facet selection from query params. Without the "filtered" marker
// the configured default selection is used, so a first visit starts with it.
func (s *Server) selectionFromQuery(q url.Values) domain.Selection {
	if q.Get("filtered") == "" {
		dc := s.config.GetDirectoryConfig()
		return domain.Selection{
			Regions: domain.NewStringSet(dc.DefaultRegions...),
			Stages:  domain.NewStringSet(dc.DefaultStages...),
			Sectors: domain.NewStringSet(dc.DefaultSectors...),
		}
	}
	return domain.Selection{
		Regions: nonBlankSet(q[string(domain.FacetRegion)]),
		Stages:  nonBlankSet(q[string(domain.FacetStage)]),
		Sectors: nonBlankSet(q[string(domain.FacetSector)]),
	}
}

func (s *Server) indexPage(query string, sel domain.Selection, submit submitView) indexPage {
	return indexPage{
		Query:     query,
		Facets:    facetGroups(sel),
		Directory: s.directoryView(query, sel),
		Shortlist: s.shortlistView(),
		Submit:    submit,
		Version:   s.version,
	}
}

func (s *Server) directoryView(query string, sel domain.Selection) directoryView {
	bookmarked := s.bookmarks.Set()
	firms := s.directory.Visible(query, sel)
	res := directoryView{Firms: make([]firmCard, 0, len(firms)), Count: len(firms), Filtered: !sel.IsEmpty()}
	for _, f := range firms {
		res.Firms = append(res.Firms, s.firmCard(f, bookmarked.Has(f.ID), true))
	}
	return res
}

func (s *Server) shortlistView() shortlistView {
	firms := s.directory.Bookmarked(s.bookmarks.Set())
	res := shortlistView{Firms: make([]firmCard, 0, len(firms))}
	for _, f := range firms {
		res.Firms = append(res.Firms, s.firmCard(f, true, false))
	}
	return res
}

func (s *Server) firmCard(f domain.Firm, bookmarked, inDirectory bool) firmCard {
	card := firmCard{Firm: f, Bookmarked: bookmarked, IntroLink: f.IntroLink(s.config.GetDirectoryConfig().IntroEmail)}
	if inDirectory {
		card.ButtonID = "bm-" + f.ID
	}
	return card
}

// facetGroups builds chips for every facet from its vocabulary, followed by selected tags
// the vocabulary doesn't know about
func facetGroups(sel domain.Selection) []facetGroup {
	res := make([]facetGroup, 0, len(domain.Facets))
	for _, facet := range domain.Facets {
		selected := sel.Of(facet)
		group := facetGroup{Name: string(facet), Label: facet.Label()}
		known := domain.NewStringSet(facet.Vocabulary()...)
		for _, v := range facet.Vocabulary() {
			group.Chips = append(group.Chips, chip{Value: v, Checked: selected.Has(v)})
		}
		for _, v := range selected.Sorted() {
			if !known.Has(v) {
				group.Chips = append(group.Chips, chip{Value: v, Checked: true})
			}
		}
		res = append(res, group)
	}
	return res
}

// renderIndex renders the full landing page
func (s *Server) renderIndex(w http.ResponseWriter, status int, data indexPage) {
	tmpl, ok := s.pageTemplates[templateIndex]
	if !ok {
		s.respondWithError(w, http.StatusInternalServerError, "Failed to render page", fmt.Errorf("template %s not found", templateIndex))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := tmpl.ExecuteTemplate(w, templateIndex, data); err != nil {
		log.Printf("[WARN] failed to render page: %v", err)
	}
}

// renderComponent renders a single component template
func (s *Server) renderComponent(w http.ResponseWriter, name string, data any) {
	if w.Header().Get("Content-Type") == "" {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
	}
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("[WARN] failed to render %s: %v", name, err)
	}
}

// respondWithError logs the error and sends a plain text error page
func (s *Server) respondWithError(w http.ResponseWriter, code int, message string, err error) {
	if err != nil {
		log.Printf("[ERROR] %s: %v", message, err)
	}
	http.Error(w, message, code)
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// backURL returns the local part of the referer, "/" if there is none. Anything a browser could
// read as another host, like "//host/path" or "/\host/path", is replaced by "/".
func backURL(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" {
		return "/"
	}
	uri := ref.RequestURI()
	if !strings.HasPrefix(uri, "/") || strings.HasPrefix(uri, "//") || strings.HasPrefix(uri, "/\\") {
		return "/"
	}
	return uri
}

func nonBlankSet(values []string) domain.StringSet {
	res := domain.NewStringSet()
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			res.Add(v)
		}
	}
	return res
}
