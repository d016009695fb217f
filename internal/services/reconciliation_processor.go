package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"atlantic-api/internal/db"
	"atlantic-api/internal/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// ReconciliationProcessor drains parked paid-but-unrecorded submissions in
// the background. Each task replays the stored record through the submission
// fallback strategies; the applicant is never charged again.
type ReconciliationProcessor struct {
	tasks        chan db.FailedSubmission
	queries      db.Querier
	applications *ApplicationService
	workerCount  int
	pollInterval time.Duration
	batchSize    int32
	wg           sync.WaitGroup
	ctx          context.Context
	cancel       context.CancelFunc

	// Claims for rows handed to a worker or drained inline. A row can sit
	// in the task channel across two polls; without the claim it would be
	// listed and processed twice.
	claimMu  sync.Mutex
	inFlight map[uuid.UUID]struct{}

	// Circuit breaker so a dead persistence layer is not hammered
	mu                  sync.Mutex
	circuitOpen         bool
	consecutiveFailures int
	failureThreshold    int
	resetTimeout        time.Duration
	lastFailureTime     time.Time
}

// NewReconciliationProcessor creates a processor with the given number of
// workers and queue buffer size.
func NewReconciliationProcessor(
	queries db.Querier,
	applications *ApplicationService,
	workerCount int,
	bufferSize int,
) *ReconciliationProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	return &ReconciliationProcessor{
		tasks:            make(chan db.FailedSubmission, bufferSize),
		queries:          queries,
		applications:     applications,
		workerCount:      workerCount,
		inFlight:         make(map[uuid.UUID]struct{}),
		pollInterval:     time.Minute,
		batchSize:        int32(bufferSize),
		ctx:              ctx,
		cancel:           cancel,
		failureThreshold: 3,
		resetTimeout:     5 * time.Minute,
	}
}

// Start launches the poller and worker goroutines.
func (rp *ReconciliationProcessor) Start() {
	logger.Info("Starting reconciliation processor", zap.Int("worker_count", rp.workerCount))

	go rp.poll()

	for i := 0; i < rp.workerCount; i++ {
		workerID := i
		rp.wg.Add(1)

		go func() {
			defer rp.wg.Done()
			logger.Debug("Reconciliation worker started", zap.Int("worker_id", workerID))

			for {
				select {
				case <-rp.ctx.Done():
					logger.Debug("Reconciliation worker stopped", zap.Int("worker_id", workerID))
					return
				case task := <-rp.tasks:
					if err := rp.process(task); err != nil {
						logger.Error("Failed to reconcile submission",
							zap.Error(err),
							zap.String("failed_submission_id", task.ID.String()),
						)
					}
				}
			}
		}()
	}
}

// Stop shuts the processor down and waits for in-flight work.
func (rp *ReconciliationProcessor) Stop() {
	logger.Info("Stopping reconciliation processor")
	rp.cancel()
	rp.wg.Wait()
	logger.Info("Reconciliation processor stopped")
}

// poll periodically loads unresolved submissions and feeds the workers. When
// the circuit is open, polling pauses until the reset timeout has elapsed.
func (rp *ReconciliationProcessor) poll() {
	ticker := time.NewTicker(rp.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rp.ctx.Done():
			return
		case <-ticker.C:
			rp.mu.Lock()
			if rp.circuitOpen {
				if time.Since(rp.lastFailureTime) < rp.resetTimeout {
					rp.mu.Unlock()
					continue
				}
				// Half-open: let one batch through.
				logger.Info("Reconciliation circuit breaker reopening after reset timeout")
				rp.circuitOpen = false
				rp.consecutiveFailures = 0
			}
			rp.mu.Unlock()

			rp.enqueueBatch()
		}
	}
}

func (rp *ReconciliationProcessor) enqueueBatch() {
	ctx, cancel := context.WithTimeout(rp.ctx, 30*time.Second)
	defer cancel()

	pending, err := rp.queries.ListUnresolvedFailedSubmissions(ctx, rp.batchSize)
	if err != nil {
		logger.Error("Failed to list unresolved submissions", zap.Error(err))
		return
	}

	for _, task := range pending {
		if !rp.claim(task.ID) {
			continue
		}
		select {
		case rp.tasks <- task:
		case <-rp.ctx.Done():
			rp.release(task.ID)
			return
		default:
			// Queue full; the next poll picks the rest up.
			rp.release(task.ID)
			return
		}
	}
}

func (rp *ReconciliationProcessor) claim(id uuid.UUID) bool {
	rp.claimMu.Lock()
	defer rp.claimMu.Unlock()

	if _, taken := rp.inFlight[id]; taken {
		return false
	}
	rp.inFlight[id] = struct{}{}
	return true
}

func (rp *ReconciliationProcessor) release(id uuid.UUID) {
	rp.claimMu.Lock()
	defer rp.claimMu.Unlock()
	delete(rp.inFlight, id)
}

// DrainOnce synchronously works through one batch of unresolved submissions.
// It backs the admin "reconcile now" action and returns how many records were
// successfully reconciled.
func (rp *ReconciliationProcessor) DrainOnce(ctx context.Context) (int, error) {
	pending, err := rp.queries.ListUnresolvedFailedSubmissions(ctx, rp.batchSize)
	if err != nil {
		return 0, err
	}

	resolved := 0
	for _, task := range pending {
		if !rp.claim(task.ID) {
			// A background worker already holds this row.
			continue
		}
		if err := rp.process(task); err == nil {
			resolved++
		}
	}
	return resolved, nil
}

func (rp *ReconciliationProcessor) process(task db.FailedSubmission) error {
	defer rp.release(task.ID)

	ctx, cancel := context.WithTimeout(rp.ctx, 60*time.Second)
	defer cancel()

	// The applicant may have retried the submission themselves between the
	// listing and now. If the owning session already reached success, the
	// payment has an application record; resolve the row without replaying
	// so a single payment never produces two applications.
	if session, sessErr := rp.queries.GetApplicationSession(ctx, task.SessionID); sessErr == nil && session.State == SessionStateSuccess {
		if _, err := rp.queries.MarkFailedSubmissionResolved(ctx, db.MarkFailedSubmissionResolvedParams{
			ID:            task.ID,
			ApplicationID: session.ApplicationID,
		}); err != nil {
			logger.Error("Submission already recorded but could not be marked resolved",
				zap.Error(err),
				zap.String("failed_submission_id", task.ID.String()))
			return err
		}
		logger.Info("Parked submission already recorded by applicant retry",
			zap.String("failed_submission_id", task.ID.String()),
			zap.String("session_id", task.SessionID.String()))
		return nil
	}

	var record map[string]interface{}
	if err := json.Unmarshal(task.Record, &record); err != nil {
		// An unreadable record will never succeed; count the attempt so
		// operators can spot it, but don't trip the circuit.
		_, dbErr := rp.queries.IncrementFailedSubmissionAttempts(ctx, db.IncrementFailedSubmissionAttemptsParams{
			ID:           task.ID,
			ErrorMessage: textOrNull("stored record is not valid JSON: " + err.Error()),
		})
		if dbErr != nil {
			logger.Error("Failed to record reconciliation attempt", zap.Error(dbErr))
		}
		return errors.New("stored record is not valid JSON")
	}

	result, err := rp.applications.Resubmit(ctx, record)
	if err != nil {
		rp.noteFailure()

		_, dbErr := rp.queries.IncrementFailedSubmissionAttempts(ctx, db.IncrementFailedSubmissionAttemptsParams{
			ID:           task.ID,
			ErrorMessage: textOrNull(err.Error()),
		})
		if dbErr != nil {
			logger.Error("Failed to record reconciliation attempt",
				zap.Error(dbErr),
				zap.String("failed_submission_id", task.ID.String()))
		}
		return err
	}

	rp.noteSuccess()

	if _, err := rp.queries.MarkFailedSubmissionResolved(ctx, db.MarkFailedSubmissionResolvedParams{
		ID:            task.ID,
		ApplicationID: applicationIDOrNull(result.ApplicationID),
	}); err != nil {
		logger.Error("Submission reconciled but could not be marked resolved",
			zap.Error(err),
			zap.String("failed_submission_id", task.ID.String()),
			zap.String("application_id", result.ApplicationID))
		return err
	}

	// Move the owning session to success so the applicant sees the final
	// state on their next visit.
	rp.finishSession(ctx, task.SessionID, result.ApplicationID)

	logger.Info("Reconciled paid submission",
		zap.String("failed_submission_id", task.ID.String()),
		zap.String("application_id", result.ApplicationID),
		zap.Int("strategy", result.Strategy))

	return nil
}

func (rp *ReconciliationProcessor) finishSession(ctx context.Context, sessionID uuid.UUID, applicationID string) {
	_, err := rp.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:            sessionID,
		State:         pgtype.Text{String: SessionStateSuccess, Valid: true},
		ApplicationID: applicationIDOrNull(applicationID),
		LastError:     pgtype.Text{String: "", Valid: true},
	})
	if err != nil {
		logger.Warn("Failed to update session after reconciliation",
			zap.String("session_id", sessionID.String()),
			zap.Error(err))
	}
}

func (rp *ReconciliationProcessor) noteFailure() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	rp.consecutiveFailures++
	rp.lastFailureTime = time.Now()

	if rp.consecutiveFailures >= rp.failureThreshold && !rp.circuitOpen {
		logger.Warn("Opening reconciliation circuit breaker",
			zap.Int("failure_count", rp.consecutiveFailures),
			zap.Int("threshold", rp.failureThreshold))
		rp.circuitOpen = true
	}
}

func (rp *ReconciliationProcessor) noteSuccess() {
	rp.mu.Lock()
	defer rp.mu.Unlock()

	if rp.consecutiveFailures > 0 {
		rp.consecutiveFailures = 0
	}
	rp.circuitOpen = false
}
