package handler

import (
	"encoding/json"
	"net/http"

	"github.com/codele-game/codele-go/internal/api/apierr"
	"github.com/codele-game/codele-go/internal/api/request"
	"github.com/codele-game/codele-go/internal/api/response"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/services/stats"
	"github.com/codele-game/codele-go/internal/services/submission"
)

// GameHandler handles game submission endpoints
type GameHandler struct {
	processor *submission.Processor
}

// NewGameHandler creates a new game handler
func NewGameHandler(processor *submission.Processor) *GameHandler {
	return &GameHandler{
		processor: processor,
	}
}

// Submit handles POST /api/v1/game/submit
func (h *GameHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("invalid request body"))
		return
	}

	if req.PlayerID == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("player_id is required"))
		return
	}
	date, err := model.ParseDate(req.Date)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if req.Guesses <= 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("guesses must be positive"))
		return
	}
	if req.TimeMs < 0 {
		apierr.WriteError(w, apierr.NewInvalidRequestError("time_ms must not be negative"))
		return
	}

	result, err := h.processor.Submit(r.Context(), submission.Submission{
		PlayerID: model.PlayerID(req.PlayerID),
		Date:     date,
		Won:      req.Won,
		Guesses:  req.Guesses,
		TimeMs:   req.TimeMs,
		Attempts: req.Attempts,
	})
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SubmitResponse{
		Success:    true,
		Stats:      response.PlayerStatsFromSummary(stats.Summarize(result.Stats)),
		TodayStats: response.PuzzleFromModel(result.Puzzle, false),
	})
}
