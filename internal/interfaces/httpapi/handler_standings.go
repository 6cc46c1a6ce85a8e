package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/fplhub/fpl-live/internal/usecase"
)

func (h *Handler) GetLeagueLiveStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueLiveStandings")
	defer span.End()

	leagueID, err := pathInt(r, "leagueID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	raw := strings.TrimSpace(r.URL.Query().Get("event"))
	if raw == "" {
		writeError(ctx, w, fmt.Errorf("%w: event query parameter is required", usecase.ErrInvalidInput))
		return
	}
	event, err := strconv.Atoi(raw)
	if err != nil || event <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: event must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	standings, err := h.standingsService.LiveStandings(ctx, leagueID, event)
	if err != nil {
		h.logger.WarnContext(ctx, "live standings failed", "league_id", leagueID, "event", event, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(ctx, standings))
}
