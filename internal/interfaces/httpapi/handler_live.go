package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fplhub/fpl-live/internal/usecase"
)

func (h *Handler) GetEventBonus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEventBonus")
	defer span.End()

	event, err := pathInt(r, "event")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	views, err := h.liveScoreService.FixtureBonus(ctx, event)
	if err != nil {
		h.logger.WarnContext(ctx, "fixture bonus failed", "event", event, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]fixtureBonusDTO, 0, len(views))
	for _, view := range views {
		items = append(items, fixtureBonusToDTO(ctx, view))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetEntryLive(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEntryLive")
	defer span.End()

	event, err := pathInt(r, "event")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entryID, err := pathInt(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	withAutoSubs := true
	if raw := strings.TrimSpace(r.URL.Query().Get("autosubs")); raw != "" {
		parsed, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			writeError(ctx, w, fmt.Errorf("%w: autosubs must be a boolean", usecase.ErrInvalidInput))
			return
		}
		withAutoSubs = parsed
	}

	summary, err := h.liveScoreService.EntryLive(ctx, event, entryID, withAutoSubs)
	if err != nil {
		h.logger.WarnContext(ctx, "entry live failed", "event", event, "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, entryLiveToDTO(ctx, summary))
}

func (h *Handler) GetEntryAutoSubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetEntryAutoSubs")
	defer span.End()

	event, err := pathInt(r, "event")
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	entryID, err := pathInt(r, "entryID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.liveScoreService.EntryAutoSubs(ctx, event, entryID)
	if err != nil {
		h.logger.WarnContext(ctx, "entry autosubs failed", "event", event, "entry_id", entryID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, autoSubsToDTO(ctx, result))
}

func pathInt(r *http.Request, name string) (int, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer", usecase.ErrInvalidInput, name)
	}
	return value, nil
}
