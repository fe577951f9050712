package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/codele-game/codele-go/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Puzzle tests

func (s *StorageSuite) TestSaveAndGetPuzzle() {
	puzzle := &model.DailyPuzzle{
		Date:      "2024-01-01",
		Solution:  []int{2, 5, 1, 6},
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePuzzle(s.ctx, puzzle)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "2024-01-01")
	s.Require().NoError(err)
	s.Equal(puzzle.Date, retrieved.Date)
	s.Equal(puzzle.Solution, retrieved.Solution)
}

func (s *StorageSuite) TestGetPuzzleNotFound() {
	_, err := s.storage.GetPuzzle(s.ctx, "2024-01-01")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *StorageSuite) TestSavePuzzleOverwrites() {
	puzzle := &model.DailyPuzzle{Date: "2024-01-01", Solution: []int{2, 5, 1, 6}}
	_ = s.storage.SavePuzzle(s.ctx, puzzle)

	puzzle.TotalPlayers = 3
	err := s.storage.SavePuzzle(s.ctx, puzzle)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPuzzle(s.ctx, "2024-01-01")
	s.Require().NoError(err)
	s.Equal(3, retrieved.TotalPlayers)
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:        "player-1",
		Username:  "alice",
		CreatedAt: time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.Username, retrieved.Username)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestPlayerHistoryRoundTrips() {
	player := &model.Player{
		ID: "player-1",
		Games: []model.GameRecord{
			{Date: "2024-01-01", Won: true, Guesses: 3, TimeMs: 42000},
		},
	}
	_ = s.storage.SavePlayer(s.ctx, player)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(retrieved.Games, 1)
	s.Equal(model.Date("2024-01-01"), retrieved.Games[0].Date)
	s.True(retrieved.Games[0].Won)
}

// Credentials tests

func (s *StorageSuite) TestSaveAndGetCredentials() {
	creds := &model.Credentials{
		PlayerID:     "player-1",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
	}

	err := s.storage.SaveCredentials(s.ctx, creds)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetCredentials(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal("alice", retrieved.Username)
}

func (s *StorageSuite) TestGetCredentialsByUsername() {
	creds := &model.Credentials{PlayerID: "player-1", Username: "alice"}
	_ = s.storage.SaveCredentials(s.ctx, creds)

	retrieved, err := s.storage.GetCredentialsByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.PlayerID)
}

func (s *StorageSuite) TestGetCredentialsByEmail() {
	creds := &model.Credentials{
		PlayerID: "player-1",
		Username: "alice",
		Email:    "alice@example.com",
	}
	_ = s.storage.SaveCredentials(s.ctx, creds)

	retrieved, err := s.storage.GetCredentialsByEmail(s.ctx, "alice@example.com")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("player-1"), retrieved.PlayerID)
}

func (s *StorageSuite) TestGetCredentialsNotFound() {
	_, err := s.storage.GetCredentials(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrCredentialsNotFound)

	_, err = s.storage.GetCredentialsByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrCredentialsNotFound)

	_, err = s.storage.GetCredentialsByEmail(s.ctx, "nobody@example.com")
	s.ErrorIs(err, model.ErrCredentialsNotFound)
}

// Leaderboard tests

func (s *StorageSuite) TestSaveAndGetLeaderboard() {
	board := model.NewLeaderboard("2024-01-01", model.BoardKindDaily)
	board.Insert(model.BoardEntry{PlayerID: "player-1", Username: "alice", Score: 700})

	err := s.storage.SaveLeaderboard(s.ctx, board)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetLeaderboard(s.ctx, "2024-01-01", model.BoardKindDaily)
	s.Require().NoError(err)
	s.Require().Len(retrieved.Entries, 1)
	s.Equal("alice", retrieved.Entries[0].Username)
}

func (s *StorageSuite) TestGetLeaderboardNotFound() {
	_, err := s.storage.GetLeaderboard(s.ctx, "2024-01-01", model.BoardKindDaily)
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *StorageSuite) TestLeaderboardKindsAreIndependent() {
	daily := model.NewLeaderboard("2024-01-01", model.BoardKindDaily)
	daily.Insert(model.BoardEntry{PlayerID: "player-1", Score: 700})
	_ = s.storage.SaveLeaderboard(s.ctx, daily)

	_, err := s.storage.GetLeaderboard(s.ctx, "2024-01-01", model.BoardKindWeekly)
	s.ErrorIs(err, model.ErrBoardNotFound)
}
