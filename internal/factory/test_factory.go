package factory

import (
	"time"

	"github.com/shadyltdcry-byte/classiklust/internal/config"
	"github.com/shadyltdcry-byte/classiklust/internal/dependencies/mocks"
	"github.com/shadyltdcry-byte/classiklust/internal/storage/memory"
	"github.com/shadyltdcry-byte/classiklust/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
// and in-memory storage.
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app, err := newWithDependencies(store, config.Default(), mockClock, mockRandom, testutil.NopLogger())
	if err != nil {
		// Default tables are statically valid; this cannot happen.
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}
