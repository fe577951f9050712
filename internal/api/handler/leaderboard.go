package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/codele-game/codele-go/internal/api/apierr"
	"github.com/codele-game/codele-go/internal/api/response"
	"github.com/codele-game/codele-go/internal/dependencies/clock"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/services/leaderboard"
)

// LeaderboardHandler handles leaderboard endpoints
type LeaderboardHandler struct {
	leaderboardService *leaderboard.Service
	clock              clock.Clock
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(leaderboardService *leaderboard.Service, clk clock.Clock) *LeaderboardHandler {
	return &LeaderboardHandler{
		leaderboardService: leaderboardService,
		clock:              clk,
	}
}

// GetBoard handles GET /api/v1/leaderboard/{kind}
// The date query parameter defaults to today when absent.
func (h *LeaderboardHandler) GetBoard(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseBoardKind(mux.Vars(r)["kind"])
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	date := model.DateOf(h.clock.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err = model.ParseDate(raw)
		if err != nil {
			apierr.WriteError(w, err)
			return
		}
	}

	board, err := h.leaderboardService.GetBoard(r.Context(), date, kind)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(board))
}
