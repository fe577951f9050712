package handler

import (
	"net/http"

	"github.com/codele-game/codele-go/internal/api/apierr"
	"github.com/codele-game/codele-go/internal/api/response"
	"github.com/codele-game/codele-go/internal/services/puzzle"
)

// PuzzleHandler handles puzzle endpoints
type PuzzleHandler struct {
	puzzleService *puzzle.Service
}

// NewPuzzleHandler creates a new puzzle handler
func NewPuzzleHandler(puzzleService *puzzle.Service) *PuzzleHandler {
	return &PuzzleHandler{
		puzzleService: puzzleService,
	}
}

// GetToday handles GET /api/v1/puzzle/today
// The solution is never revealed for the current day.
func (h *PuzzleHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	allowDuplicates := r.URL.Query().Get("duplicates") == "true"

	p, err := h.puzzleService.Today(r.Context(), allowDuplicates)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(p, false))
}

// GetYesterday handles GET /api/v1/puzzle/yesterday
// Returns the full puzzle including the solution, or 404 when the puzzle
// was never created.
func (h *PuzzleHandler) GetYesterday(w http.ResponseWriter, r *http.Request) {
	p, err := h.puzzleService.Yesterday(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PuzzleFromModel(p, true))
}
