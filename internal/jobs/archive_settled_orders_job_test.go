package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"orderlifecycle/internal/core/application/usecases/commands"
	"orderlifecycle/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockArchiveHandler struct{ mock.Mock }

func (m *MockArchiveHandler) Handle(
	ctx context.Context,
	cmd commands.ArchiveSettledOrdersCommand,
) (commands.ArchiveSettledOrdersResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.ArchiveSettledOrdersResult), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestArchiveSettledOrdersJob_Run(t *testing.T) {
	t.Run("passes retention to the handler", func(t *testing.T) {
		handler := &MockArchiveHandler{}
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ArchiveSettledOrdersCommand) bool {
			return cmd.Retention() == 48*time.Hour
		})).Return(commands.ArchiveSettledOrdersResult{Orders: 2, Entries: 9, Mappings: 1}, nil).Once()

		job := NewArchiveSettledOrdersJob(handler, "@every 1h", 48*time.Hour, discardLogger())
		job.Run(context.Background())

		handler.AssertExpectations(t)
	})

	t.Run("handler failure is swallowed", func(t *testing.T) {
		handler := &MockArchiveHandler{}
		handler.On("Handle", mock.Anything, mock.Anything).
			Return(commands.ArchiveSettledOrdersResult{}, errs.NewStorageFailureError("archive")).Once()

		job := NewArchiveSettledOrdersJob(handler, "@every 1h", time.Hour, discardLogger())

		assert.NotPanics(t, func() { job.Run(context.Background()) })
		handler.AssertExpectations(t)
	})

	t.Run("invalid retention never reaches the handler", func(t *testing.T) {
		handler := &MockArchiveHandler{}

		job := NewArchiveSettledOrdersJob(handler, "@every 1h", 0, discardLogger())
		job.Run(context.Background())

		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestArchiveSettledOrdersJob_Start(t *testing.T) {
	t.Run("bad schedule", func(t *testing.T) {
		job := NewArchiveSettledOrdersJob(&MockArchiveHandler{}, "not a schedule", time.Hour, discardLogger())

		require.Error(t, job.Start())
	})

	t.Run("non positive retention", func(t *testing.T) {
		job := NewArchiveSettledOrdersJob(&MockArchiveHandler{}, "@every 1h", -time.Hour, discardLogger())

		err := job.Start()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("starts and stops", func(t *testing.T) {
		manager := NewJobManager(&MockArchiveHandler{}, "@every 1h", time.Hour, discardLogger())

		require.NoError(t, manager.StartAll())
		manager.StopAll()
	})
}
