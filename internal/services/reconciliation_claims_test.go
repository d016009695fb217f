package services

import (
	"testing"

	"atlantic-api/internal/db"
	"atlantic-api/internal/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReconciliationClaims(t *testing.T) {
	rp := NewReconciliationProcessor(nil, nil, 1, 4)
	id := uuid.New()

	require.True(t, rp.claim(id))
	assert.False(t, rp.claim(id), "a claimed row must not be handed out twice")

	rp.release(id)
	assert.True(t, rp.claim(id))
}

func TestEnqueueBatchSkipsClaimedRows(t *testing.T) {
	row := db.FailedSubmission{
		ID:        uuid.New(),
		SessionID: uuid.New(),
		Record:    []byte(`{}`),
	}

	mockQuerier := mocks.NewMockQuerierForTest(t)
	mockQuerier.EXPECT().ListUnresolvedFailedSubmissions(gomock.Any(), gomock.Any()).
		Return([]db.FailedSubmission{row}, nil).
		Times(2)

	rp := NewReconciliationProcessor(mockQuerier, nil, 1, 4)

	// The first listing buffers the row; it is still queued when the second
	// listing returns it again, so the second pass must skip it.
	rp.enqueueBatch()
	rp.enqueueBatch()
	assert.Len(t, rp.tasks, 1, "a row listed by two polls must be enqueued once")
}
