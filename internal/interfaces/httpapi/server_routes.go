package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events/{event}/bonus", handler.GetEventBonus)
	mux.HandleFunc("GET /v1/events/{event}/entries/{entryID}/live", handler.GetEntryLive)
	mux.HandleFunc("GET /v1/events/{event}/entries/{entryID}/autosubs", handler.GetEntryAutoSubs)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/live", handler.GetLeagueLiveStandings)
}

func registerInternalSnapshotRoutes(mux *http.ServeMux, handler *Handler, internalSnapshotToken string) {
	mux.Handle("POST /v1/internal/snapshots/bootstrap", RequireInternalSnapshotToken(internalSnapshotToken, http.HandlerFunc(handler.IngestBootstrap)))
	mux.Handle("POST /v1/internal/snapshots/fixtures", RequireInternalSnapshotToken(internalSnapshotToken, http.HandlerFunc(handler.IngestFixtures)))
	mux.Handle("POST /v1/internal/snapshots/live", RequireInternalSnapshotToken(internalSnapshotToken, http.HandlerFunc(handler.IngestLive)))
	mux.Handle("POST /v1/internal/snapshots/picks", RequireInternalSnapshotToken(internalSnapshotToken, http.HandlerFunc(handler.IngestEntryPicks)))
	mux.Handle("POST /v1/internal/snapshots/leagues", RequireInternalSnapshotToken(internalSnapshotToken, http.HandlerFunc(handler.IngestLeague)))
}
