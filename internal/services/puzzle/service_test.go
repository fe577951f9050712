package puzzle

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/codele-game/codele-go/internal/dependencies/mocks"
	"github.com/codele-game/codele-go/internal/model"
	"github.com/codele-game/codele-go/internal/storage/memory"
	"github.com/codele-game/codele-go/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestGetOrCreateGeneratesOnFirstRead() {
	puzzle, err := s.service.GetOrCreate(s.ctx, "2024-01-01", false)
	s.Require().NoError(err)

	s.Equal(model.Date("2024-01-01"), puzzle.Date)
	s.Equal([]int{2, 5, 1, 6}, puzzle.Solution)
	s.False(puzzle.Duplicates)
	s.Equal(0, puzzle.TotalPlayers)
}

func (s *ServiceSuite) TestGetOrCreatePersistsPuzzle() {
	_, err := s.service.GetOrCreate(s.ctx, "2024-01-01", false)
	s.Require().NoError(err)

	stored, err := s.storage.GetPuzzle(s.ctx, "2024-01-01")
	s.Require().NoError(err)
	s.Equal([]int{2, 5, 1, 6}, stored.Solution)
}

func (s *ServiceSuite) TestGetOrCreateReturnsExisting() {
	first, err := s.service.GetOrCreate(s.ctx, "2024-01-01", false)
	s.Require().NoError(err)

	first.TotalPlayers = 5
	s.Require().NoError(s.storage.SavePuzzle(s.ctx, first))

	second, err := s.service.GetOrCreate(s.ctx, "2024-01-01", false)
	s.Require().NoError(err)
	s.Equal(5, second.TotalPlayers)
}

func (s *ServiceSuite) TestGetOrCreateDuplicatesVariantDiffers() {
	unique, err := s.service.GetOrCreate(s.ctx, "2024-01-01", false)
	s.Require().NoError(err)

	dup, err := s.service.GetOrCreate(s.ctx, "2024-01-02", true)
	s.Require().NoError(err)

	s.False(unique.Duplicates)
	s.True(dup.Duplicates)
}

func (s *ServiceSuite) TestGetDoesNotCreate() {
	_, err := s.service.Get(s.ctx, "2024-01-01")
	s.ErrorIs(err, model.ErrPuzzleNotFound)

	_, err = s.storage.GetPuzzle(s.ctx, "2024-01-01")
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}

func (s *ServiceSuite) TestTodayUsesClockDate() {
	puzzle, err := s.service.Today(s.ctx, false)
	s.Require().NoError(err)
	s.Equal(model.Date("2024-01-01"), puzzle.Date)

	s.clock.Advance(24 * time.Hour)

	next, err := s.service.Today(s.ctx, false)
	s.Require().NoError(err)
	s.Equal(model.Date("2024-01-02"), next.Date)
	s.NotEqual(puzzle.Solution, next.Solution)
}

func (s *ServiceSuite) TestYesterdayReturnsPreviousDay() {
	_, err := s.service.GetOrCreate(s.ctx, "2023-12-31", false)
	s.Require().NoError(err)

	puzzle, err := s.service.Yesterday(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.Date("2023-12-31"), puzzle.Date)
}

func (s *ServiceSuite) TestYesterdayNeverCreates() {
	_, err := s.service.Yesterday(s.ctx)
	s.ErrorIs(err, model.ErrPuzzleNotFound)
}
