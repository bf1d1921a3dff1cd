package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/akshayraj18/mealfix-analytics/internal/domain"
)

// MockEventPublisher is a mock implementation of queue.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishEvent(ctx context.Context, event *domain.EventRecord) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

// MockCounterRepository is a mock implementation of repository.CounterRepository
type MockCounterRepository struct {
	mock.Mock
}

func (m *MockCounterRepository) Increment(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockCounterRepository) Get(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func testSession() Session {
	return Session{
		ID:         "session-1",
		Platform:   domain.PlatformIOS,
		AppVersion: "1.4.0",
	}
}

func newTestRecorder(publisher *MockEventPublisher, counters *MockCounterRepository) *Recorder {
	return NewRecorder(publisher, counters, testSession(), zap.NewNop())
}

func TestRecorder_RecordClientEvent_PublishesRecord(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	var published *domain.EventRecord
	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*domain.EventRecord)
		}).
		Return(nil)

	recorder.RecordClientEvent(context.Background(), ClientEvent{
		EventName:       domain.EventViewRecipe,
		SubjectID:       "user123",
		SessionID:       "client-session",
		Platform:        domain.PlatformAndroid,
		AppVersion:      "2.0.1",
		ClientTimestamp: 1700000000,
		Attributes:      &domain.RecipeViewAttrs{Recipe: "Pasta"},
	})

	mockPublisher.AssertNumberOfCalls(t, "PublishEvent", 1)
	assert.Equal(t, domain.EventViewRecipe, published.EventName)
	assert.Equal(t, "user123", published.SubjectID)
	assert.Equal(t, "client-session", published.SessionID)
	assert.Equal(t, domain.PlatformAndroid, published.Platform)
	assert.Equal(t, "2.0.1", published.AppVersion)
	assert.Equal(t, int64(1700000000), published.ClientTimestamp)
	assert.NotEmpty(t, published.EventID)
	assert.JSONEq(t, `{"recipe":"Pasta"}`, published.Attributes)
}

func TestRecorder_RecordClientEvent_DefaultsFromSession(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	var published *domain.EventRecord
	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*domain.EventRecord)
		}).
		Return(nil)

	recorder.RecordClientEvent(context.Background(), ClientEvent{
		EventName: domain.EventScreenView,
	})

	assert.Equal(t, domain.AnonymousSubject, published.SubjectID)
	assert.Equal(t, "session-1", published.SessionID)
	assert.Equal(t, domain.PlatformIOS, published.Platform)
	assert.Equal(t, "1.4.0", published.AppVersion)
	assert.NotZero(t, published.ClientTimestamp)
	assert.Equal(t, "{}", published.Attributes)
}

func TestRecorder_RecordClientEvent_DropsNamelessEvent(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	recorder.RecordClientEvent(context.Background(), ClientEvent{SubjectID: "user123"})

	mockPublisher.AssertNotCalled(t, "PublishEvent")
	mockCounters.AssertNotCalled(t, "Increment")
}

func TestRecorder_RecordClientEvent_PublishFailureSwallowed(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).Return(errors.New("queue unavailable"))
	mockCounters.On("Increment", mock.Anything, SignupCounter).Return(nil)

	assert.NotPanics(t, func() {
		recorder.RecordClientEvent(context.Background(), ClientEvent{
			EventName: domain.EventUserSignup,
			SubjectID: "user123",
		})
	})

	// The counter write is independent of the failed primary write.
	mockCounters.AssertNumberOfCalls(t, "Increment", 1)
}

func TestRecorder_RecordClientEvent_CounterFailureSwallowed(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)
	mockCounters.On("Increment", mock.Anything, SignupCounter).Return(errors.New("db down"))

	assert.NotPanics(t, func() {
		recorder.RecordClientEvent(context.Background(), ClientEvent{
			EventName: domain.EventUserSignup,
			SubjectID: "user123",
		})
	})

	mockPublisher.AssertNumberOfCalls(t, "PublishEvent", 1)
}

func TestRecorder_SignupIncrementsCounter(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)
	mockCounters.On("Increment", mock.Anything, SignupCounter).Return(nil)

	recorder.Record(context.Background(), domain.EventUserSignup, "user123", nil)

	mockCounters.AssertCalled(t, "Increment", mock.Anything, SignupCounter)
}

func TestRecorder_NonSignupDoesNotTouchCounters(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	recorder.Record(context.Background(), domain.EventUserLogin, "user123", nil)
	recorder.Record(context.Background(), domain.EventViewRecipe, "user123", &domain.RecipeViewAttrs{Recipe: "Pasta"})

	mockCounters.AssertNotCalled(t, "Increment")
}

func TestRecorder_EventIDDeterministic(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	var ids []string
	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ids = append(ids, args.Get(1).(*domain.EventRecord).EventID)
		}).
		Return(nil)

	event := ClientEvent{
		EventName:       domain.EventSaveRecipe,
		SubjectID:       "user123",
		SessionID:       "client-session",
		ClientTimestamp: 1700000000,
		Attributes:      &domain.RecipeViewAttrs{Recipe: "Pasta"},
	}
	recorder.RecordClientEvent(context.Background(), event)
	recorder.RecordClientEvent(context.Background(), event)

	assert.Len(t, ids, 2)
	assert.Equal(t, ids[0], ids[1], "replays of the same logical event share an id")
	assert.Len(t, ids[0], 64)
}

func TestRecorder_EventIDDistinguishesContent(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	var ids []string
	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			ids = append(ids, args.Get(1).(*domain.EventRecord).EventID)
		}).
		Return(nil)

	base := ClientEvent{
		EventName:       domain.EventSaveRecipe,
		SubjectID:       "user123",
		SessionID:       "client-session",
		ClientTimestamp: 1700000000,
	}
	other := base
	other.SubjectID = "user456"

	recorder.RecordClientEvent(context.Background(), base)
	recorder.RecordClientEvent(context.Background(), other)

	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}

func TestRecorder_RecordBatch(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).Return(nil)

	recorder.RecordBatch(context.Background(), []ClientEvent{
		{EventName: domain.EventViewRecipe, SubjectID: "user1"},
		{EventName: ""}, // dropped, does not block the rest
		{EventName: domain.EventScreenView, SubjectID: "user2"},
	})

	mockPublisher.AssertNumberOfCalls(t, "PublishEvent", 2)
}

func TestRecorder_TrackConversion(t *testing.T) {
	mockPublisher := new(MockEventPublisher)
	mockCounters := new(MockCounterRepository)
	recorder := newTestRecorder(mockPublisher, mockCounters)

	var published *domain.EventRecord
	mockPublisher.On("PublishEvent", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			published = args.Get(1).(*domain.EventRecord)
		}).
		Return(nil)

	recorder.TrackConversion(context.Background(), "user123", "new_prompt", "recipe_saved", 1)

	assert.Equal(t, domain.EventConversion, published.EventName)
	assert.Equal(t, "user123", published.SubjectID)

	var attrs domain.ConversionAttrs
	assert.NoError(t, json.Unmarshal([]byte(published.Attributes), &attrs))
	assert.Equal(t, "new_prompt", attrs.Test)
	assert.Equal(t, "recipe_saved", attrs.Metric)
	assert.Equal(t, 1.0, attrs.Value)
}
