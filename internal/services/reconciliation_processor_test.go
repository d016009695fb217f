package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"atlantic-api/internal/db"
	"atlantic-api/internal/mocks"
	"atlantic-api/internal/services"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func parkedSubmission(sessionID uuid.UUID) db.FailedSubmission {
	record, _ := json.Marshal(map[string]interface{}{
		"internship_id":  uuid.New().String(),
		"name":           "Asha Rao",
		"email":          "asha@example.com",
		"phone":          "+919876543210",
		"education":      "B.Com",
		"payment_status": "paid",
		"payment_id":     "pay_1",
		"payment_amount": 400,
	})
	return db.FailedSubmission{
		ID:        uuid.New(),
		SessionID: sessionID,
		Record:    record,
		PaymentID: pgtype.Text{String: "pay_1", Valid: true},
	}
}

func TestReconciliationProcessor_DrainOnce(t *testing.T) {
	t.Run("resolves a parked submission", func(t *testing.T) {
		sessionID := uuid.New()
		task := parkedSubmission(sessionID)
		applicationID := uuid.New()

		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().ListUnresolvedFailedSubmissions(gomock.Any(), gomock.Any()).
			Return([]db.FailedSubmission{task}, nil)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(db.ApplicationSession{ID: sessionID, State: services.SessionStateError}, nil)
		compat := &fakeCompatInserter{id: applicationID}
		mockQuerier.EXPECT().MarkFailedSubmissionResolved(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.MarkFailedSubmissionResolvedParams) (db.FailedSubmission, error) {
				assert.Equal(t, task.ID, arg.ID)
				assert.Equal(t, applicationID, uuid.UUID(arg.ApplicationID.Bytes))
				return task, nil
			})
		mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.UpdateApplicationSessionParams) (db.ApplicationSession, error) {
				assert.Equal(t, sessionID, arg.ID)
				assert.Equal(t, services.SessionStateSuccess, arg.State.String)
				return db.ApplicationSession{}, nil
			})

		applications := services.NewApplicationService(mockQuerier, compat, nil, nil, nil, nil)
		processor := services.NewReconciliationProcessor(mockQuerier, applications, 1, 10)

		resolved, err := processor.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, resolved)
	})

	t.Run("resolves without replaying when the session already succeeded", func(t *testing.T) {
		sessionID := uuid.New()
		task := parkedSubmission(sessionID)
		applicationID := uuid.New()

		// No Create* expectations: the strict mock fails the test if the
		// worker replays a record the applicant already retried.
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().ListUnresolvedFailedSubmissions(gomock.Any(), gomock.Any()).
			Return([]db.FailedSubmission{task}, nil)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(db.ApplicationSession{
				ID:            sessionID,
				State:         services.SessionStateSuccess,
				ApplicationID: pgtype.UUID{Bytes: applicationID, Valid: true},
			}, nil)
		mockQuerier.EXPECT().MarkFailedSubmissionResolved(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.MarkFailedSubmissionResolvedParams) (db.FailedSubmission, error) {
				assert.Equal(t, task.ID, arg.ID)
				assert.Equal(t, applicationID, uuid.UUID(arg.ApplicationID.Bytes))
				return task, nil
			})

		applications := services.NewApplicationService(mockQuerier, nil, nil, nil, nil, nil)
		processor := services.NewReconciliationProcessor(mockQuerier, applications, 1, 10)

		resolved, err := processor.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, resolved)
	})

	t.Run("failed retry increments attempts and stays unresolved", func(t *testing.T) {
		sessionID := uuid.New()
		task := parkedSubmission(sessionID)

		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().ListUnresolvedFailedSubmissions(gomock.Any(), gomock.Any()).
			Return([]db.FailedSubmission{task}, nil)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).
			Return(db.ApplicationSession{ID: sessionID, State: services.SessionStateError}, nil)
		compat := &fakeCompatInserter{err: errors.New("still down")}
		mockQuerier.EXPECT().CreateApplicationMinimal(gomock.Any(), gomock.Any()).
			Return(db.Application{}, errors.New("still down"))
		mockQuerier.EXPECT().IncrementFailedSubmissionAttempts(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.IncrementFailedSubmissionAttemptsParams) (db.FailedSubmission, error) {
				assert.Equal(t, task.ID, arg.ID)
				return task, nil
			})

		applications := services.NewApplicationService(mockQuerier, compat, nil, nil, nil, nil)
		processor := services.NewReconciliationProcessor(mockQuerier, applications, 1, 10)

		resolved, err := processor.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, resolved)
	})

	t.Run("unreadable record never resolves", func(t *testing.T) {
		task := db.FailedSubmission{ID: uuid.New(), SessionID: uuid.New(), Record: []byte("not json")}

		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().ListUnresolvedFailedSubmissions(gomock.Any(), gomock.Any()).
			Return([]db.FailedSubmission{task}, nil)
		mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), task.SessionID).
			Return(db.ApplicationSession{ID: task.SessionID, State: services.SessionStateError}, nil)
		mockQuerier.EXPECT().IncrementFailedSubmissionAttempts(gomock.Any(), gomock.Any()).
			Return(task, nil)

		applications := services.NewApplicationService(mockQuerier, nil, nil, nil, nil, nil)
		processor := services.NewReconciliationProcessor(mockQuerier, applications, 1, 10)

		resolved, err := processor.DrainOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, resolved)
	})

	t.Run("list failure surfaces", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerierForTest(t)
		mockQuerier.EXPECT().ListUnresolvedFailedSubmissions(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db offline"))

		applications := services.NewApplicationService(mockQuerier, nil, nil, nil, nil, nil)
		processor := services.NewReconciliationProcessor(mockQuerier, applications, 1, 10)

		_, err := processor.DrainOnce(context.Background())
		assert.Error(t, err)
	})
}

// A paid session can be fixed from two sides at once: the applicant retries
// from the error page while the worker still holds the parked row. However the
// race falls, one payment must yield exactly one application record.
func TestReconciliationProcessor_RetryThenDrain(t *testing.T) {
	internshipID := uuid.New()
	sessionID := uuid.New()
	applicationID := uuid.New()

	errorSession := formSession(sessionID, internshipID, 500, 400)
	errorSession.State = services.SessionStateError
	errorSession.Form = validFormJSON()
	errorSession.PaymentID = pgtype.Text{String: "pay_1", Valid: true}
	errorSession.PaymentVerified = true

	successSession := errorSession
	successSession.State = services.SessionStateSuccess
	successSession.ApplicationID = pgtype.UUID{Bytes: applicationID, Valid: true}

	parked := parkedSubmission(sessionID)

	mockQuerier := mocks.NewMockQuerierForTest(t)

	// Applicant retry: session loads in the error state and the record is
	// written on the first strategy.
	mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(errorSession, nil)
	mockQuerier.EXPECT().GetInternship(gomock.Any(), internshipID).
		Return(paidInternship(internshipID, 500), nil)
	mockQuerier.EXPECT().CreateApplication(gomock.Any(), gomock.Any()).
		Return(db.Application{ID: applicationID}, nil).
		Times(1)
	mockQuerier.EXPECT().UpdateApplicationSession(gomock.Any(), gomock.Any()).
		Return(successSession, nil)
	mockQuerier.EXPECT().ResolveFailedSubmissionsBySession(gomock.Any(), gomock.Any()).
		Return(nil)

	// Worker drain on a listing taken before the retry resolved the row: the
	// session is now successful, so the row is closed without a replay.
	mockQuerier.EXPECT().ListUnresolvedFailedSubmissions(gomock.Any(), gomock.Any()).
		Return([]db.FailedSubmission{parked}, nil)
	mockQuerier.EXPECT().GetApplicationSession(gomock.Any(), sessionID).Return(successSession, nil)
	mockQuerier.EXPECT().MarkFailedSubmissionResolved(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.MarkFailedSubmissionResolvedParams) (db.FailedSubmission, error) {
			assert.Equal(t, parked.ID, arg.ID)
			assert.Equal(t, applicationID, uuid.UUID(arg.ApplicationID.Bytes))
			return parked, nil
		})

	service := newFlowService(mockQuerier, &fakeGateway{})
	session, err := service.RetrySubmission(context.Background(), sessionID)
	require.NoError(t, err)
	assert.Equal(t, services.SessionStateSuccess, session.State)

	applications := services.NewApplicationService(mockQuerier, nil, nil, nil, nil, nil)
	processor := services.NewReconciliationProcessor(mockQuerier, applications, 1, 10)
	resolved, err := processor.DrainOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, resolved)
}

func TestReconciliationProcessor_StartStop(t *testing.T) {
	mockQuerier := mocks.NewMockQuerierForTest(t)
	applications := services.NewApplicationService(mockQuerier, nil, nil, nil, nil, nil)
	processor := services.NewReconciliationProcessor(mockQuerier, applications, 2, 10)

	// The poll interval is a minute, so no queries fire in this window.
	processor.Start()
	processor.Stop()
}
