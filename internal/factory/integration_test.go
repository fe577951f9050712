package factory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/services/submission"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

func (s *IntegrationSuite) today() model.Date {
	return model.DateOf(s.app.MockClock.Now())
}

// Test: a full day in the life of two players
func (s *IntegrationSuite) TestDailyGameFlow() {
	// Step 1: first client of the day materializes the puzzle
	puzzle, err := s.app.PuzzleService.Today(s.ctx, false)
	s.Require().NoError(err)
	s.Len(puzzle.Solution, model.CodeLength)

	// Step 2: one player registers, one plays anonymously
	session, err := s.app.AuthService.Register(s.ctx, "alice", "alice@example.com", "password123", "")
	s.Require().NoError(err)

	// Step 3: both submit results for today's puzzle
	_, err = s.app.SubmissionProcessor.Submit(s.ctx, submission.Submission{
		PlayerID: session.PlayerID,
		Date:     s.today(),
		Won:      true,
		Guesses:  3,
		TimeMs:   30000,
	})
	s.Require().NoError(err)

	_, err = s.app.SubmissionProcessor.Submit(s.ctx, submission.Submission{
		PlayerID: "anon-1",
		Date:     s.today(),
		Won:      true,
		Guesses:  3,
		TimeMs:   45000,
	})
	s.Require().NoError(err)

	// Step 4: the puzzle aggregates reflect both plays
	puzzle, err = s.app.PuzzleService.Get(s.ctx, s.today())
	s.Require().NoError(err)
	s.Equal(2, puzzle.TotalPlayers)
	s.Equal(2, puzzle.CompletedPlayers)
	s.Equal(session.PlayerID, puzzle.FastestPlayer)

	// Step 5: the daily board ranks the faster win first, named
	board, err := s.app.LeaderboardService.GetBoard(s.ctx, s.today(), model.BoardKindDaily)
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 2)
	s.Equal("alice", board.Entries[0].Username)
	s.Equal("Anonymous", board.Entries[1].Username)

	// Step 6: stats report for the registered player
	summary, err := s.app.StatsReporter.PlayerSummary(s.ctx, session.PlayerID)
	s.Require().NoError(err)
	s.Equal(1, summary.GamesPlayed)
	s.Equal(100, summary.WinRate)
}

func (s *IntegrationSuite) TestStreakSurvivesOvernight() {
	_, err := s.app.PuzzleService.Today(s.ctx, false)
	s.Require().NoError(err)

	_, err = s.app.SubmissionProcessor.Submit(s.ctx, submission.Submission{
		PlayerID: "player-1",
		Date:     s.today(),
		Won:      true,
		Guesses:  3,
		TimeMs:   30000,
	})
	s.Require().NoError(err)

	// Next day: a new puzzle, a new win, a longer streak
	s.app.MockClock.Advance(24 * time.Hour)

	_, err = s.app.PuzzleService.Today(s.ctx, false)
	s.Require().NoError(err)

	result, err := s.app.SubmissionProcessor.Submit(s.ctx, submission.Submission{
		PlayerID: "player-1",
		Date:     s.today(),
		Won:      true,
		Guesses:  4,
		TimeMs:   40000,
	})
	s.Require().NoError(err)
	s.Equal(2, result.Stats.CurrentStreak)
}

func (s *IntegrationSuite) TestAnonymousHistorySurvivesRegistration() {
	_, err := s.app.PuzzleService.Today(s.ctx, false)
	s.Require().NoError(err)

	_, err = s.app.SubmissionProcessor.Submit(s.ctx, submission.Submission{
		PlayerID: "anon-1",
		Date:     s.today(),
		Won:      true,
		Guesses:  3,
		TimeMs:   30000,
	})
	s.Require().NoError(err)

	session, err := s.app.AuthService.Register(s.ctx, "alice", "alice@example.com", "password123", "anon-1")
	s.Require().NoError(err)
	s.Equal(model.PlayerID("anon-1"), session.PlayerID)

	summary, err := s.app.StatsReporter.PlayerSummary(s.ctx, "anon-1")
	s.Require().NoError(err)
	s.Equal(1, summary.GamesPlayed)
}

func (s *IntegrationSuite) TestFactoryRejectsBadStorageType() {
	_, err := New(Config{StorageType: "cassandra"})
	s.Error(err)
}

func (s *IntegrationSuite) TestFactoryRequiresRedisConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}
