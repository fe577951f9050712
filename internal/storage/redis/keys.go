package redis

import (
	"fmt"

	"github.com/codele-game/codele-go/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "codele"

// puzzleKey returns the Redis key for a DailyPuzzle
func puzzleKey(date model.Date) string {
	return fmt.Sprintf("%s:puzzle:%s", keyPrefix, date)
}

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// credentialsKey returns the Redis key for a player's Credentials
func credentialsKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:credentials:%s", keyPrefix, playerID)
}

// usernameIndexKey returns the Redis key for the username -> player_id index
func usernameIndexKey(username string) string {
	return fmt.Sprintf("%s:idx:username:%s", keyPrefix, username)
}

// emailIndexKey returns the Redis key for the email -> player_id index
func emailIndexKey(email string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, email)
}

// boardKey returns the Redis key for a Leaderboard
func boardKey(date model.Date, kind model.BoardKind) string {
	return fmt.Sprintf("%s:board:%s:%s", keyPrefix, kind, date)
}
