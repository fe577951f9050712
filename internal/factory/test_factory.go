package factory

import (
	"time"

	"github.com/codele-game/codele-go/internal/dependencies/mocks"
	"github.com/codele-game/codele-go/internal/services/auth"
	"github.com/codele-game/codele-go/internal/storage/memory"
	"github.com/codele-game/codele-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App configured for testing with in-memory storage
// and a controllable clock. The clock starts at the current time so issued
// tokens validate against real expiry checks.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Now().UTC())

	app := newWithDependencies(store, mockClock, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
