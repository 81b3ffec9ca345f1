package web

import (
	"database/sql"
	"net/http"

	"github.com/calebhs/canvas/internal/board"
	"github.com/calebhs/canvas/internal/config"
	"github.com/calebhs/canvas/internal/errors"
	"github.com/calebhs/canvas/internal/ops"
	"github.com/calebhs/canvas/internal/plan"
	"github.com/calebhs/canvas/internal/profile"
	"github.com/calebhs/canvas/internal/store"
	"github.com/calebhs/canvas/internal/suggest"
)

// Handlers contains HTTP route handlers for the web UI.
type Handlers struct {
	db       *sql.DB
	cfg      *config.Config
	client   *suggest.Client
	renderer *Renderer
}

// HandleHome handles GET / — redirect to the persisted view.
func (h *Handlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	view, err := store.LoadView(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	if view == store.ViewCanvas {
		http.Redirect(w, r, "/canvas", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/intake", http.StatusFound)
}

// HandleIntake handles GET /intake — the profile form.
func (h *Handlers) HandleIntake(w http.ResponseWriter, r *http.Request) {
	result, err := ops.ProfileGet(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	if _, err := ops.ViewSet(h.db, ops.ViewSetInput{View: store.ViewIntake}); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	selected := make(map[string]bool, len(result.Profile.HelpWith))
	for _, id := range result.Profile.HelpWith {
		selected[id] = true
	}

	h.renderer.renderPage(w, r, "intake", IntakePageData{
		PageData: PageData{
			Title:   "Intake",
			Version: h.renderer.version,
			Nav:     "intake",
		},
		Profile:     result.Profile,
		HelpOptions: result.HelpOptions,
		Selected:    selected,
		Complete:    result.Complete,
		Missing:     result.Missing,
	})
}

// HandleIntakeSave handles POST /intake — save the profile form.
func (h *Handlers) HandleIntakeSave(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	current, err := ops.ProfileGet(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	role := r.FormValue("role")
	responsibilities := r.FormValue("responsibilities")

	_, err = ops.ProfileUpdate(h.db, ops.ProfileUpdateInput{
		Role:             &role,
		Responsibilities: &responsibilities,
		ToggleHelp:       diffToggles(current.Profile.HelpWith, r.Form["help"]),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/intake", http.StatusFound)
}

// HandleGenerate handles POST /generate — bulk idea generation.
func (h *Handlers) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Generate(r.Context(), h.db, h.client, ops.GenerateInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	target := "/canvas"
	if result.Degraded {
		target = "/canvas?degraded=1"
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// HandleCanvas handles GET /canvas — the six-category board.
func (h *Handlers) HandleCanvas(w http.ResponseWriter, r *http.Request) {
	result, err := ops.IdeaList(h.db, ops.IdeaListInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	profileResult, err := ops.ProfileGet(h.db)
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	if _, err := ops.ViewSet(h.db, ops.ViewSetInput{View: store.ViewCanvas}); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "canvas", CanvasPageData{
		PageData: PageData{
			Title:   "Canvas",
			Version: h.renderer.version,
			Nav:     "canvas",
		},
		Categories:      result.Categories,
		Counts:          result.Counts,
		ProfileComplete: profileResult.Complete,
		Degraded:        r.URL.Query().Get("degraded") == "1",
	})
}

// HandleIdeaAdd handles POST /canvas/ideas — add a manual idea.
func (h *Handlers) HandleIdeaAdd(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	_, err := ops.IdeaAdd(h.db, ops.IdeaAddInput{
		Category: r.FormValue("category"),
		Text:     r.FormValue("text"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/canvas", http.StatusFound)
}

// HandleIdeaStar handles POST /canvas/ideas/{category}/{id}/star.
func (h *Handlers) HandleIdeaStar(w http.ResponseWriter, r *http.Request) {
	_, err := ops.IdeaStar(h.db, ops.IdeaStarInput{
		Category: r.PathValue("category"),
		ID:       r.PathValue("id"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/canvas", http.StatusFound)
}

// HandleIdeaEdit handles POST /canvas/ideas/{category}/{id}/edit.
func (h *Handlers) HandleIdeaEdit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	_, err := ops.IdeaEdit(h.db, ops.IdeaEditInput{
		Category: r.PathValue("category"),
		ID:       r.PathValue("id"),
		Text:     r.FormValue("text"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/canvas", http.StatusFound)
}

// HandleIdeaDelete handles POST /canvas/ideas/{category}/{id}/delete.
func (h *Handlers) HandleIdeaDelete(w http.ResponseWriter, r *http.Request) {
	_, err := ops.IdeaRemove(h.db, ops.IdeaRemoveInput{
		Category: r.PathValue("category"),
		ID:       r.PathValue("id"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/canvas", http.StatusFound)
}

// HandleChat handles GET /chat/{category} — a category conversation.
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	category := r.PathValue("category")
	result, err := ops.ChatOpen(h.db, ops.ChatOpenInput{Category: category})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "chat", ChatPageData{
		PageData: PageData{
			Title:   board.Category(result.Category).Title(),
			Version: h.renderer.version,
			Nav:     "canvas",
		},
		Category:      result.Category,
		CategoryTitle: board.Category(result.Category).Title(),
		Messages:      result.Messages,
	})
}

// HandleChatSend handles POST /chat/{category} — send a message.
func (h *Handlers) HandleChatSend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	category := r.PathValue("category")
	_, err := ops.ChatSend(r.Context(), h.db, h.client, ops.ChatSendInput{
		Category: category,
		Text:     r.FormValue("text"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/chat/"+category, http.StatusFound)
}

// HandleChatAccept handles POST /chat/{category}/accept — accept a suggestion.
func (h *Handlers) HandleChatAccept(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid form data"))
		return
	}

	category := r.PathValue("category")
	_, err := ops.ChatAccept(h.db, ops.ChatAcceptInput{
		Category:   category,
		MessageID:  r.FormValue("message_id"),
		Suggestion: r.FormValue("suggestion"),
	})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/chat/"+category, http.StatusFound)
}

// HandleExport handles GET /export — preview the markdown plan.
func (h *Handlers) HandleExport(w http.ResponseWriter, r *http.Request) {
	p, b, err := h.loadPlanInputs()
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "export", ExportPageData{
		PageData: PageData{
			Title:   "Export",
			Version: h.renderer.version,
			Nav:     "export",
		},
		RenderedHTML: renderMarkdown(plan.Render(p, b)),
		Counts:       ops.Counts{Total: b.TotalCount(), Priority: b.PriorityCount()},
	})
}

// HandleExportWrite handles POST /export — write the plan to disk.
func (h *Handlers) HandleExportWrite(w http.ResponseWriter, r *http.Request) {
	result, err := ops.Export(h.db, ops.ExportInput{})
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	p, b, err := h.loadPlanInputs()
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	h.renderer.renderPage(w, r, "export", ExportPageData{
		PageData: PageData{
			Title:   "Export",
			Version: h.renderer.version,
			Nav:     "export",
		},
		RenderedHTML: renderMarkdown(plan.Render(p, b)),
		Counts:       result.Counts,
		WrittenPath:  result.Path,
	})
}

// HandleExportDownload handles GET /export/download — raw markdown attachment.
func (h *Handlers) HandleExportDownload(w http.ResponseWriter, r *http.Request) {
	p, b, err := h.loadPlanInputs()
	if err != nil {
		h.renderer.renderError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+plan.Filename+`"`)
	_, _ = w.Write([]byte(plan.Render(p, b)))
}

// HandleReset handles POST /reset — clear all state.
func (h *Handlers) HandleReset(w http.ResponseWriter, r *http.Request) {
	if _, err := ops.Reset(h.db); err != nil {
		h.renderer.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, "/intake", http.StatusFound)
}

// loadPlanInputs reads the slices the plan renderer needs.
func (h *Handlers) loadPlanInputs() (*profile.Profile, board.Board, error) {
	p, err := store.LoadProfile(h.db)
	if err != nil {
		return nil, nil, err
	}
	b, err := store.LoadBoard(h.db)
	if err != nil {
		return nil, nil, err
	}
	return p, b, nil
}

// diffToggles returns the motivation ids whose selection state differs
// between the stored set and the submitted set.
func diffToggles(current, submitted []string) []string {
	currentSet := make(map[string]bool, len(current))
	for _, id := range current {
		currentSet[id] = true
	}
	submittedSet := make(map[string]bool, len(submitted))
	for _, id := range submitted {
		submittedSet[id] = true
	}

	var toggles []string
	for _, id := range submitted {
		if !currentSet[id] {
			toggles = append(toggles, id)
		}
	}
	for _, id := range current {
		if !submittedSet[id] {
			toggles = append(toggles, id)
		}
	}
	return toggles
}
