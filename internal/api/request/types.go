package request

// SubmitGameRequest is the request body for submitting a finished game
type SubmitGameRequest struct {
	PlayerID string  `json:"player_id"`
	Date     string  `json:"date"`
	Won      bool    `json:"won"`
	Guesses  int     `json:"guesses"`
	TimeMs   int     `json:"time_ms"`
	Attempts [][]int `json:"attempts,omitempty"`
}

// RegisterRequest is the request body for registering a player.
// PlayerID is optional; clients that played anonymously pass their existing
// ID so the account keeps its history.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Password string `json:"password"`
	PlayerID string `json:"player_id,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
