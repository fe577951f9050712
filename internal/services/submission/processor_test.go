package submission

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/codele-game/codele-go/internal/dependencies/mocks"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/services/leaderboard"
	"github.com/codele-game/codele-go/internal/storage/memory"
	"github.com/codele-game/codele-go/internal/testutil"
)

type ProcessorSuite struct {
	suite.Suite
	storage   *memory.Storage
	clock     *mocks.MockClock
	processor *Processor
	ctx       context.Context
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorSuite))
}

func (s *ProcessorSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	logger := testutil.NopLogger()
	boards := leaderboard.New(s.storage, s.clock, logger)
	s.processor = NewProcessor(s.storage, boards, s.clock, logger)
	s.ctx = context.Background()
}

func (s *ProcessorSuite) createPuzzle(date model.Date) {
	puzzle := model.NewDailyPuzzle(date, []int{2, 5, 1, 6}, false, s.clock.Now())
	s.Require().NoError(s.storage.SavePuzzle(s.ctx, puzzle))
}

func (s *ProcessorSuite) submit(playerID model.PlayerID, date model.Date, won bool, guesses, timeMs int) (*Result, error) {
	return s.processor.Submit(s.ctx, Submission{
		PlayerID: playerID,
		Date:     date,
		Won:      won,
		Guesses:  guesses,
		TimeMs:   timeMs,
	})
}

func (s *ProcessorSuite) TestSubmitCreatesPlayerLazily() {
	s.createPuzzle("2024-01-01")

	result, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)
	s.Equal(1, result.Stats.GamesPlayed)

	player, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(1, player.Stats.GamesWon)
}

func (s *ProcessorSuite) TestSubmitRequiresPuzzle() {
	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.ErrorIs(err, model.ErrPuzzleNotFound)

	// A rejected submission leaves nothing behind
	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ProcessorSuite) TestSubmitRejectsSecondPlay() {
	s.createPuzzle("2024-01-01")

	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)

	_, err = s.submit("player-1", "2024-01-01", false, 6, 90000)
	s.ErrorIs(err, model.ErrAlreadyPlayed)

	// The rejected submission must not touch the stats or the puzzle
	player, _ := s.storage.GetPlayer(s.ctx, "player-1")
	s.Equal(1, player.Stats.GamesPlayed)

	puzzle, _ := s.storage.GetPuzzle(s.ctx, "2024-01-01")
	s.Equal(1, puzzle.TotalPlayers)
}

func (s *ProcessorSuite) TestSubmitUpdatesPuzzleAggregates() {
	s.createPuzzle("2024-01-01")

	_, err := s.submit("player-1", "2024-01-01", true, 2, 30000)
	s.Require().NoError(err)
	_, err = s.submit("player-2", "2024-01-01", true, 3, 20000)
	s.Require().NoError(err)
	_, err = s.submit("player-3", "2024-01-01", true, 4, 50000)
	s.Require().NoError(err)
	_, err = s.submit("player-4", "2024-01-01", false, 6, 90000)
	s.Require().NoError(err)

	puzzle, err := s.storage.GetPuzzle(s.ctx, "2024-01-01")
	s.Require().NoError(err)
	s.Equal(4, puzzle.TotalPlayers)
	s.Equal(3, puzzle.CompletedPlayers)
	s.Equal(3.0, puzzle.AverageGuesses)
	s.Equal(20000, puzzle.FastestTime)
	s.Equal(model.PlayerID("player-2"), puzzle.FastestPlayer)
}

func (s *ProcessorSuite) TestStreakExtendsAcrossConsecutiveDays() {
	s.createPuzzle("2024-01-01")
	s.createPuzzle("2024-01-02")

	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)

	result, err := s.submit("player-1", "2024-01-02", true, 4, 50000)
	s.Require().NoError(err)
	s.Equal(2, result.Stats.CurrentStreak)
	s.Equal(2, result.Stats.MaxStreak)
}

func (s *ProcessorSuite) TestStreakResetsAfterGap() {
	s.createPuzzle("2024-01-01")
	s.createPuzzle("2024-01-04")

	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)

	result, err := s.submit("player-1", "2024-01-04", true, 3, 42000)
	s.Require().NoError(err)
	s.Equal(1, result.Stats.CurrentStreak)
	s.Equal(1, result.Stats.MaxStreak)
}

func (s *ProcessorSuite) TestLossResetsStreakButKeepsMax() {
	s.createPuzzle("2024-01-01")
	s.createPuzzle("2024-01-02")
	s.createPuzzle("2024-01-03")

	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)
	_, err = s.submit("player-1", "2024-01-02", true, 3, 42000)
	s.Require().NoError(err)

	result, err := s.submit("player-1", "2024-01-03", false, 6, 90000)
	s.Require().NoError(err)
	s.Equal(0, result.Stats.CurrentStreak)
	s.Equal(2, result.Stats.MaxStreak)
}

func (s *ProcessorSuite) TestStreakLifecycle() {
	for _, d := range []model.Date{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"} {
		s.createPuzzle(d)
	}

	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)

	result, err := s.submit("player-1", "2024-01-02", true, 3, 42000)
	s.Require().NoError(err)
	s.Equal(2, result.Stats.CurrentStreak)
	s.Equal(2, result.Stats.MaxStreak)

	result, err = s.submit("player-1", "2024-01-03", false, 6, 90000)
	s.Require().NoError(err)
	s.Equal(0, result.Stats.CurrentStreak)
	s.Equal(2, result.Stats.MaxStreak)

	// Win after a missed day starts over rather than continuing
	result, err = s.submit("player-1", "2024-01-05", true, 3, 42000)
	s.Require().NoError(err)
	s.Equal(1, result.Stats.CurrentStreak)
	s.Equal(2, result.Stats.MaxStreak)
}

func (s *ProcessorSuite) TestAverageGuessesCountsWinsOnly() {
	s.createPuzzle("2024-01-01")
	s.createPuzzle("2024-01-02")
	s.createPuzzle("2024-01-03")
	s.createPuzzle("2024-01-04")

	_, err := s.submit("player-1", "2024-01-01", true, 2, 42000)
	s.Require().NoError(err)
	_, err = s.submit("player-1", "2024-01-02", true, 3, 42000)
	s.Require().NoError(err)
	_, err = s.submit("player-1", "2024-01-03", true, 4, 42000)
	s.Require().NoError(err)

	result, err := s.submit("player-1", "2024-01-04", false, 6, 90000)
	s.Require().NoError(err)
	s.Equal(9, result.Stats.TotalGuesses)
	s.Equal(3, result.Stats.GamesWon)
}

func (s *ProcessorSuite) TestWinLandsOnDailyLeaderboard() {
	s.createPuzzle("2024-01-01")

	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)

	board, err := s.storage.GetLeaderboard(s.ctx, "2024-01-01", model.BoardKindDaily)
	s.Require().NoError(err)
	s.Require().Len(board.Entries, 1)
	s.Equal(model.PlayerID("player-1"), board.Entries[0].PlayerID)
}

func (s *ProcessorSuite) TestLossDoesNotTouchLeaderboard() {
	s.createPuzzle("2024-01-01")

	_, err := s.submit("player-1", "2024-01-01", false, 6, 90000)
	s.Require().NoError(err)

	_, err = s.storage.GetLeaderboard(s.ctx, "2024-01-01", model.BoardKindDaily)
	s.ErrorIs(err, model.ErrBoardNotFound)
}

func (s *ProcessorSuite) TestFastestTimeTracksPersonalBest() {
	s.createPuzzle("2024-01-01")
	s.createPuzzle("2024-01-02")

	_, err := s.submit("player-1", "2024-01-01", true, 3, 42000)
	s.Require().NoError(err)

	result, err := s.submit("player-1", "2024-01-02", true, 3, 30000)
	s.Require().NoError(err)
	s.Equal(30000, result.Stats.FastestTime)
}
