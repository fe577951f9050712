package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codele-game/codele-go/internal/api/apierr"
	"github.com/codele-game/codele-go/internal/api/middleware"
	"github.com/codele-game/codele-go/internal/api/response"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/services/stats"
)

// PlayerHandler handles player stats endpoints
type PlayerHandler struct {
	reporter *stats.Reporter
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(reporter *stats.Reporter) *PlayerHandler {
	return &PlayerHandler{
		reporter: reporter,
	}
}

// GetStats handles GET /api/v1/players/{playerId}/stats
// Unknown players receive a zeroed summary rather than an error.
func (h *PlayerHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	playerID := mux.Vars(r)["playerId"]
	if playerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("playerId is required"))
		return
	}

	h.writeStats(w, r, model.PlayerID(playerID))
}

// GetMyStats handles GET /api/v1/players/me/stats
// Requires authentication; the player is taken from the token claims.
func (h *PlayerHandler) GetMyStats(w http.ResponseWriter, r *http.Request) {
	claims := middleware.MustGetClaims(r.Context())
	h.writeStats(w, r, model.PlayerID(claims.PlayerID))
}

func (h *PlayerHandler) writeStats(w http.ResponseWriter, r *http.Request, playerID model.PlayerID) {
	summary, err := h.reporter.PlayerSummary(r.Context(), playerID)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerStatsFromSummary(summary))
}
