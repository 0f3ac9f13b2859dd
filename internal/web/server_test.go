package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/choonghwanlee/folio/internal/portfolio"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(portfolio.Default())
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestIndexRendersEverySection(t *testing.T) {
	rec := get(t, newTestRouter(t), "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", rec.Code)
	}
	body := rec.Body.String()
	for _, section := range portfolio.Sections {
		if !strings.Contains(body, `id="`+string(section)+`"`) {
			t.Fatalf("page missing section %q", section)
		}
	}
	for _, want := range []string{"Jason Lee.", "Hotplate", "Evalon", "mailto:cl491@duke.edu", `href="#projects"`} {
		if !strings.Contains(body, want) {
			t.Fatalf("page missing %q", want)
		}
	}
	if got := rec.Header().Get("Server"); got != "folio/dev" {
		t.Fatalf("Server header = %q, want folio/dev", got)
	}
	if strings.Contains(body, `class="active"`) {
		t.Fatalf("no nav link should be active on the hero")
	}
}

func TestPortfolioJSON(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/portfolio")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got portfolio.Content
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if diff := cmp.Diff(portfolio.Default(), got); diff != "" {
		t.Fatalf("content mismatch (-want +got):\n%s", diff)
	}
}

func TestSectionEndpoint(t *testing.T) {
	r := newTestRouter(t)

	rec := get(t, r, "/api/sections/work")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp struct {
		Section string              `json:"section"`
		Heading string              `json:"heading"`
		Data    []portfolio.Project `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if resp.Section != "projects" || resp.Heading != "03. Some Things I Built" || len(resp.Data) != 2 {
		t.Fatalf("unexpected response: %+v", resp)
	}

	if rec := get(t, r, "/api/sections/blog"); rec.Code != http.StatusNotFound {
		t.Fatalf("unknown section status = %d, want 404", rec.Code)
	}
}

func TestSectionsListing(t *testing.T) {
	rec := get(t, newTestRouter(t), "/api/sections")
	var resp struct {
		Sections []string `json:"sections"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	want := []string{"home", "about", "experience", "projects", "contact"}
	if diff := cmp.Diff(want, resp.Sections); diff != "" {
		t.Fatalf("sections mismatch (-want +got):\n%s", diff)
	}
}

func TestIndexScrollsSmoothlyAndShowsOneJobAtATime(t *testing.T) {
	body := get(t, newTestRouter(t), "/").Body.String()

	if !strings.Contains(body, "scroll-behavior: smooth") {
		t.Fatalf("page does not smooth-scroll to anchors")
	}
	if got := strings.Count(body, `<details name="experience" open>`); got != 1 {
		t.Fatalf("open experience tabs = %d, want 1", got)
	}
	if got := strings.Count(body, `<details name="experience"`); got != len(portfolio.Default().Experiences) {
		t.Fatalf("experience tabs = %d, want %d", got, len(portfolio.Default().Experiences))
	}
	open := body[strings.Index(body, `<details name="experience" open>`):]
	if !strings.HasPrefix(open[strings.Index(open, "<summary>"):], "<summary>Hotplate</summary>") {
		t.Fatalf("first tab is not the open one")
	}
}
