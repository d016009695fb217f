package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"atlantic-api/internal/db"
	"atlantic-api/internal/mocks"
	"atlantic-api/internal/services"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDraftService_SaveAndGet(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	payload := json.RawMessage(`{"name":"Asha"}`)

	mockQuerier.EXPECT().UpsertApplicationDraft(gomock.Any(), db.UpsertApplicationDraftParams{
		Key:     "session-1",
		Payload: []byte(payload),
	}).Return(db.ApplicationDraft{
		Key:       "session-1",
		Payload:   []byte(payload),
		UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
	}, nil)

	service := services.NewDraftService(mockQuerier)

	_, err := service.Save(context.Background(), "session-1", payload)
	require.NoError(t, err)

	// Reads hit the cache, so no GetApplicationDraft expectation is set.
	draft, ok := service.Get(context.Background(), "session-1")
	require.True(t, ok)
	assert.JSONEq(t, `{"name":"Asha"}`, string(draft.Payload))
}

func TestDraftService_SaveSurvivesDurableFailure(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().UpsertApplicationDraft(gomock.Any(), gomock.Any()).
		Return(db.ApplicationDraft{}, errors.New("connection lost"))

	service := services.NewDraftService(mockQuerier)

	_, err := service.Save(context.Background(), "session-1", json.RawMessage(`{"a":1}`))
	require.NoError(t, err, "a failed durable write must not lose the draft")

	draft, ok := service.Get(context.Background(), "session-1")
	require.True(t, ok)
	assert.JSONEq(t, `{"a":1}`, string(draft.Payload))
}

func TestDraftService_LastWriterWins(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().UpsertApplicationDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpsertApplicationDraftParams) (db.ApplicationDraft, error) {
			return db.ApplicationDraft{
				Key:       arg.Key,
				Payload:   arg.Payload,
				UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
			}, nil
		}).Times(2)

	service := services.NewDraftService(mockQuerier)

	_, err := service.Save(context.Background(), "k", json.RawMessage(`{"v":1}`))
	require.NoError(t, err)
	_, err = service.Save(context.Background(), "k", json.RawMessage(`{"v":2}`))
	require.NoError(t, err)

	draft, ok := service.Get(context.Background(), "k")
	require.True(t, ok)
	assert.JSONEq(t, `{"v":2}`, string(draft.Payload))
}

func TestDraftService_GetFallsBackToDurableStore(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().GetApplicationDraft(gomock.Any(), "cold-key").
		Return(db.ApplicationDraft{
			Key:       "cold-key",
			Payload:   []byte(`{"restored":true}`),
			UpdatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true},
		}, nil)

	service := services.NewDraftService(mockQuerier)

	draft, ok := service.Get(context.Background(), "cold-key")
	require.True(t, ok)
	assert.JSONEq(t, `{"restored":true}`, string(draft.Payload))

	// Second read is served from cache.
	_, ok = service.Get(context.Background(), "cold-key")
	assert.True(t, ok)
}

func TestDraftService_GetMissing(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().GetApplicationDraft(gomock.Any(), "nope").
		Return(db.ApplicationDraft{}, pgx.ErrNoRows)

	service := services.NewDraftService(mockQuerier)

	_, ok := service.Get(context.Background(), "nope")
	assert.False(t, ok)
}

func TestDraftService_Delete(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().UpsertApplicationDraft(gomock.Any(), gomock.Any()).
		Return(db.ApplicationDraft{}, nil)
	mockQuerier.EXPECT().DeleteApplicationDraft(gomock.Any(), "k").Return(nil)
	mockQuerier.EXPECT().GetApplicationDraft(gomock.Any(), "k").
		Return(db.ApplicationDraft{}, pgx.ErrNoRows)

	service := services.NewDraftService(mockQuerier)

	_, err := service.Save(context.Background(), "k", json.RawMessage(`{}`))
	require.NoError(t, err)
	require.NoError(t, service.Delete(context.Background(), "k"))

	_, ok := service.Get(context.Background(), "k")
	assert.False(t, ok)
}

func TestDraftService_RejectsBadInput(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	service := services.NewDraftService(mockQuerier)

	_, err := service.Save(context.Background(), "", json.RawMessage(`{}`))
	assert.Error(t, err)

	_, err = service.Save(context.Background(), "k", json.RawMessage(`{broken`))
	assert.Error(t, err)
}
