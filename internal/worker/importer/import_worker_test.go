package importer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/transit-site/internal/domain"
	"github.com/transit-site/internal/pkg/errors"
)

type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(<-chan domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	return m.Called(ctx, stream, group, messageID).Error(0)
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	return m.Called(ctx, stream, group).Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) (string, error) {
	args := m.Called(ctx, stream, data)
	return args.String(0), args.Error(1)
}

type MockImporter struct {
	mock.Mock
}

func (m *MockImporter) Import(ctx context.Context, operatorCode, operatorSlug string) (*domain.ImportResult, error) {
	args := m.Called(ctx, operatorCode, operatorSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ImportResult), args.Error(1)
}

func requestMessage(t *testing.T, id string, event domain.ImportRequestEvent) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(event)
	require.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func newTestWorker(stream *MockStreamRepository, imp *MockImporter, retries int) *RouteImportWorker {
	w := NewRouteImportWorker(stream, imp, "test-group", retries, zap.NewNop())
	w.retryDelay = time.Millisecond
	return w
}

func TestRouteImportWorker_Name(t *testing.T) {
	w := newTestWorker(&MockStreamRepository{}, &MockImporter{}, 3)
	assert.Equal(t, "route-import", w.Name())
}

func TestRouteImportWorker_ProcessMessage(t *testing.T) {
	event := domain.ImportRequestEvent{
		RequestID:    uuid.New(),
		OperatorCode: "ANWE",
		OperatorSlug: "arriva-north-west",
		RequestedAt:  time.Now(),
	}

	t.Run("success publishes counts", func(t *testing.T) {
		stream := &MockStreamRepository{}
		imp := &MockImporter{}
		imp.On("Import", mock.Anything, "ANWE", "arriva-north-west").
			Return(&domain.ImportResult{Fetched: 3, Created: 2, Updated: 1}, nil).Once()
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteImportDone,
			mock.MatchedBy(func(done domain.ImportDoneEvent) bool {
				return done.RequestID == event.RequestID &&
					done.Fetched == 3 && done.Created == 2 && done.Updated == 1 &&
					done.Error == "" && !done.FinishedAt.IsZero()
			})).Return("2-0", nil).Once()

		err := newTestWorker(stream, imp, 3).processMessage(context.Background(), requestMessage(t, "1-0", event))

		assert.NoError(t, err)
		stream.AssertExpectations(t)
		imp.AssertExpectations(t)
	})

	t.Run("unknown operator is not retried", func(t *testing.T) {
		stream := &MockStreamRepository{}
		imp := &MockImporter{}
		imp.On("Import", mock.Anything, "ANWE", "arriva-north-west").
			Return(nil, errors.ErrOperatorNotFound).Once()
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteImportDone,
			mock.MatchedBy(func(done domain.ImportDoneEvent) bool {
				return done.Error != "" && done.Fetched == 0
			})).Return("2-0", nil).Once()

		err := newTestWorker(stream, imp, 3).processMessage(context.Background(), requestMessage(t, "1-0", event))

		assert.NoError(t, err)
		imp.AssertNumberOfCalls(t, "Import", 1)
	})

	t.Run("external failure retried up to the limit", func(t *testing.T) {
		stream := &MockStreamRepository{}
		imp := &MockImporter{}
		imp.On("Import", mock.Anything, "ANWE", "arriva-north-west").
			Return(nil, errors.ErrExternalService).Times(3)
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteImportDone, mock.Anything).
			Return("2-0", nil).Once()

		err := newTestWorker(stream, imp, 3).processMessage(context.Background(), requestMessage(t, "1-0", event))

		assert.NoError(t, err)
		imp.AssertNumberOfCalls(t, "Import", 3)
	})

	t.Run("retry recovers", func(t *testing.T) {
		stream := &MockStreamRepository{}
		imp := &MockImporter{}
		imp.On("Import", mock.Anything, "ANWE", "arriva-north-west").
			Return(nil, errors.ErrExternalService).Once()
		imp.On("Import", mock.Anything, "ANWE", "arriva-north-west").
			Return(&domain.ImportResult{Fetched: 1, Created: 1}, nil).Once()
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteImportDone,
			mock.MatchedBy(func(done domain.ImportDoneEvent) bool {
				return done.Error == "" && done.Created == 1
			})).Return("2-0", nil).Once()

		err := newTestWorker(stream, imp, 3).processMessage(context.Background(), requestMessage(t, "1-0", event))

		assert.NoError(t, err)
		imp.AssertNumberOfCalls(t, "Import", 2)
	})

	t.Run("malformed payload is skipped", func(t *testing.T) {
		stream := &MockStreamRepository{}
		imp := &MockImporter{}

		err := newTestWorker(stream, imp, 3).processMessage(context.Background(),
			domain.StreamMessage{ID: "1-0", Data: "{not json"})

		assert.NoError(t, err)
		imp.AssertNotCalled(t, "Import", mock.Anything, mock.Anything, mock.Anything)
		stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("publish failure surfaces", func(t *testing.T) {
		stream := &MockStreamRepository{}
		imp := &MockImporter{}
		imp.On("Import", mock.Anything, "ANWE", "arriva-north-west").
			Return(&domain.ImportResult{}, nil).Once()
		stream.On("PublishToStream", mock.Anything, domain.StreamRouteImportDone, mock.Anything).
			Return("", errors.ErrQueueError).Once()

		err := newTestWorker(stream, imp, 3).processMessage(context.Background(), requestMessage(t, "1-0", event))

		assert.Error(t, err)
	})
}

func TestRouteImportWorker_StartAcksHandledMessages(t *testing.T) {
	stream := &MockStreamRepository{}
	imp := &MockImporter{}

	msgs := make(chan domain.StreamMessage, 2)
	msgs <- domain.StreamMessage{ID: "1-0", Data: "garbage"}
	msgs <- requestMessage(t, "2-0", domain.ImportRequestEvent{
		RequestID:    uuid.New(),
		OperatorCode: "FHAM",
		OperatorSlug: "first-hampshire",
	})

	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteImport, "test-group").Return(nil)
	stream.On("ConsumeStream", mock.Anything, domain.StreamRouteImport, "test-group", mock.Anything).
		Return((<-chan domain.StreamMessage)(msgs), nil)
	imp.On("Import", mock.Anything, "FHAM", "first-hampshire").
		Return(&domain.ImportResult{Fetched: 0}, nil)
	stream.On("PublishToStream", mock.Anything, domain.StreamRouteImportDone, mock.Anything).Return("3-0", nil)

	acked := make(chan string, 2)
	stream.On("AckMessage", mock.Anything, domain.StreamRouteImport, "test-group", mock.Anything).
		Run(func(args mock.Arguments) { acked <- args.String(3) }).
		Return(nil)

	w := newTestWorker(stream, imp, 3)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Start(ctx) }()

	got := []string{<-acked, <-acked}
	assert.ElementsMatch(t, []string{"1-0", "2-0"}, got)

	require.NoError(t, w.Stop())
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}

func TestRouteImportWorker_StartFailsWithoutGroup(t *testing.T) {
	stream := &MockStreamRepository{}
	stream.On("CreateConsumerGroup", mock.Anything, domain.StreamRouteImport, "test-group").
		Return(errors.ErrQueueError)

	err := newTestWorker(stream, &MockImporter{}, 3).Start(context.Background())

	assert.Error(t, err)
	stream.AssertNotCalled(t, "ConsumeStream", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
