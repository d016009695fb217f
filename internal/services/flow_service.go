package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"atlantic-api/internal/db"
	"atlantic-api/internal/logger"
	"atlantic-api/internal/pkg/naming"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// Application session states. A session walks form → payment → success, or
// form → success directly when no fee is due. The error state is reached only
// when payment succeeded but persistence failed; retry from there re-runs
// submission, never payment.
const (
	SessionStateForm    = "form"
	SessionStatePayment = "payment"
	SessionStateSuccess = "success"
	SessionStateError   = "error"
)

// Payment markers on the persisted application.
const (
	PaymentStatusPaid   = "paid"
	PaymentStatusUnpaid = "unpaid"
	PaymentStatusWaived = "waived"
)

// ErrInvalidTransition is returned when an operation is called from a state
// whose guards forbid it.
var ErrInvalidTransition = errors.New("operation not allowed in current session state")

// ApplicationForm is the canonical shape of the applicant-entered fields.
// Inbound payloads may use either naming convention; ParseForm normalizes
// them before this struct is filled.
type ApplicationForm struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	Education       string   `json:"education"`
	College         string   `json:"college"`
	City            string   `json:"city"`
	CoverLetter     string   `json:"cover_letter"`
	Skills          []string `json:"skills"`
	LinkedinProfile string   `json:"linkedin_profile"`
	GithubProfile   string   `json:"github_profile"`
	PortfolioUrl    string   `json:"portfolio_url"`
	HearAboutUs     string   `json:"hear_about_us"`
	AgreesToTerms   bool     `json:"agrees_to_terms"`

	// Extra keeps unrecognized fields so the fallback submission paths can
	// still forward them.
	Extra map[string]interface{} `json:"-"`
}

// ParseForm canonicalizes a raw JSON payload: camelCase keys are folded into
// snake_case, known fields land on the struct, and the rest is preserved.
func ParseForm(raw []byte) (*ApplicationForm, error) {
	var loose map[string]interface{}
	if err := json.Unmarshal(raw, &loose); err != nil {
		return nil, fmt.Errorf("malformed form payload: %w", err)
	}

	canonical := naming.Normalize(loose)

	canonicalJSON, err := json.Marshal(canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize form payload: %w", err)
	}

	var form ApplicationForm
	if err := json.Unmarshal(canonicalJSON, &form); err != nil {
		return nil, fmt.Errorf("invalid form payload: %w", err)
	}

	known := map[string]bool{
		"name": true, "email": true, "phone": true, "education": true,
		"college": true, "city": true, "cover_letter": true, "skills": true,
		"linkedin_profile": true, "github_profile": true, "portfolio_url": true,
		"hear_about_us": true, "agrees_to_terms": true,
	}
	for key, value := range canonical {
		if !known[key] {
			if form.Extra == nil {
				form.Extra = make(map[string]interface{})
			}
			form.Extra[key] = value
		}
	}

	return &form, nil
}

// Validate applies the local checks that gate leaving the form step.
func (f *ApplicationForm) Validate() error {
	switch {
	case f.Name == "":
		return errors.New("name is required")
	case f.Email == "":
		return errors.New("email is required")
	case !strings.ContainsRune(f.Email, '@'):
		return errors.New("email is malformed")
	case f.Phone == "":
		return errors.New("phone is required")
	case f.Education == "":
		return errors.New("education is required")
	case !f.AgreesToTerms:
		return errors.New("terms must be accepted")
	}
	return nil
}

// FlowService drives one application session through its states, persisting
// every transition so a session survives reloads and reconnects.
type FlowService struct {
	queries      db.Querier
	payments     *PaymentService
	applications *ApplicationService
	coupons      *CouponService
	logger       *zap.Logger
}

// NewFlowService creates a new flow service.
func NewFlowService(
	queries db.Querier,
	payments *PaymentService,
	applications *ApplicationService,
	coupons *CouponService,
) *FlowService {
	return &FlowService{
		queries:      queries,
		payments:     payments,
		applications: applications,
		coupons:      coupons,
		logger:       logger.Log,
	}
}

// StartSession opens a session for an internship in the form state. The fee
// snapshot is taken here: a later admin fee change does not move an in-flight
// session.
func (s *FlowService) StartSession(ctx context.Context, internshipID uuid.UUID) (*db.ApplicationSession, error) {
	internship, err := s.queries.GetInternship(ctx, internshipID)
	if err != nil {
		return nil, fmt.Errorf("internship not found: %w", err)
	}
	if !internship.Active {
		return nil, errors.New("internship is not accepting applications")
	}

	fee := internship.ApplicationFee
	if !internship.PaymentRequired {
		fee = 0
	}

	session, err := s.queries.CreateApplicationSession(ctx, db.CreateApplicationSessionParams{
		InternshipID:   internshipID,
		OriginalAmount: fee,
		FinalAmount:    fee,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create application session: %w", err)
	}

	return &session, nil
}

// ApplyCoupon validates a code against the session's internship and, when
// valid, reprices the session. Rejections come back as a typed result, not an
// error.
func (s *FlowService) ApplyCoupon(ctx context.Context, sessionID uuid.UUID, code string) (*db.ApplicationSession, CouponValidation, error) {
	session, internship, err := s.sessionWithInternship(ctx, sessionID)
	if err != nil {
		return nil, CouponValidation{}, err
	}

	if session.State != SessionStateForm {
		return nil, CouponValidation{}, ErrInvalidTransition
	}
	if !internship.PaymentRequired || !internship.AcceptsCoupon {
		return nil, CouponValidation{Valid: false, Message: MsgCouponInvalid}, nil
	}

	validation := s.coupons.ValidateCoupon(ctx, code, internship.ID)
	if !validation.Valid {
		return session, validation, nil
	}

	discount, final := ComputeDiscount(internship.ApplicationFee, validation.DiscountPercent)

	updated, err := s.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:              session.ID,
		CouponCode:      pgtype.Text{String: strings.ToUpper(strings.TrimSpace(code)), Valid: true},
		DiscountPercent: pgtype.Int4{Int32: validation.DiscountPercent, Valid: true},
		OriginalAmount:  pgtype.Int4{Int32: internship.ApplicationFee, Valid: true},
		DiscountAmount:  pgtype.Int4{Int32: discount, Valid: true},
		FinalAmount:     pgtype.Int4{Int32: final, Valid: true},
	})
	if err != nil {
		return nil, CouponValidation{}, fmt.Errorf("failed to apply coupon to session: %w", err)
	}

	return &updated, validation, nil
}

// RemoveCoupon resets the session back to the undiscounted fee.
func (s *FlowService) RemoveCoupon(ctx context.Context, sessionID uuid.UUID) (*db.ApplicationSession, error) {
	session, internship, err := s.sessionWithInternship(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionStateForm {
		return nil, ErrInvalidTransition
	}

	updated, err := s.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:              session.ID,
		CouponCode:      pgtype.Text{String: "", Valid: true},
		DiscountPercent: pgtype.Int4{Int32: 0, Valid: true},
		DiscountAmount:  pgtype.Int4{Int32: 0, Valid: true},
		FinalAmount:     pgtype.Int4{Int32: internship.ApplicationFee, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to remove coupon from session: %w", err)
	}
	return &updated, nil
}

// BeginPayment validates the form, snapshots it on the session and opens a
// gateway order. Guards: only from the form state, only when a fee is
// actually due. A fully discounted fee skips payment entirely and submits as
// waived.
func (s *FlowService) BeginPayment(ctx context.Context, sessionID uuid.UUID, rawForm []byte) (*CheckoutOrder, *db.ApplicationSession, error) {
	session, internship, err := s.sessionWithInternship(ctx, sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session.State != SessionStateForm {
		return nil, nil, ErrInvalidTransition
	}
	if !internship.PaymentRequired {
		return nil, nil, fmt.Errorf("%w: internship requires no payment", ErrInvalidTransition)
	}

	form, err := ParseForm(rawForm)
	if err != nil {
		return nil, nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, nil, err
	}

	if session.FinalAmount <= 0 {
		// A 100% coupon leaves nothing to charge; submit directly.
		updated, err := s.submitAndFinish(ctx, session, internship, form, PaymentStatusWaived, "")
		return nil, updated, err
	}

	order, err := s.payments.CreateOrder(ctx, int64(session.FinalAmount), session.ID.String(), map[string]string{
		"internship_id": internship.ID.String(),
		"session_id":    session.ID.String(),
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := s.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:              session.ID,
		State:           pgtype.Text{String: SessionStatePayment, Valid: true},
		Form:            mustMarshalForm(form),
		RazorpayOrderID: pgtype.Text{String: order.OrderID, Valid: true},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to move session to payment: %w", err)
	}

	return order, &updated, nil
}

// CancelPayment returns a session from the payment step to the form step. No
// partial records exist at that point, so there is nothing to clean up.
func (s *FlowService) CancelPayment(ctx context.Context, sessionID uuid.UUID) (*db.ApplicationSession, error) {
	session, err := s.queries.GetApplicationSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("session not found: %w", err)
	}
	if session.State != SessionStatePayment {
		return nil, ErrInvalidTransition
	}

	updated, err := s.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:              session.ID,
		State:           pgtype.Text{String: SessionStateForm, Valid: true},
		RazorpayOrderID: pgtype.Text{String: "", Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to return session to form: %w", err)
	}
	return &updated, nil
}

// ConfirmPayment verifies the checkout callback and, on success, submits the
// application. A verification failure keeps the session on the payment step
// for retry; a submission failure after a verified payment moves the session
// to the error state and records the payload for reconciliation, because the
// applicant must never be charged again.
func (s *FlowService) ConfirmPayment(ctx context.Context, sessionID uuid.UUID, orderID, paymentID, signature string) (*db.ApplicationSession, error) {
	session, internship, err := s.sessionWithInternship(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionStatePayment {
		return nil, ErrInvalidTransition
	}
	if !session.RazorpayOrderID.Valid || session.RazorpayOrderID.String != orderID {
		return nil, fmt.Errorf("%w: order does not belong to this session", ErrVerificationFailed)
	}

	if err := s.payments.VerifyPayment(orderID, paymentID, signature); err != nil {
		return nil, err
	}

	verified, err := s.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:              session.ID,
		PaymentID:       pgtype.Text{String: paymentID, Valid: true},
		PaymentVerified: pgtype.Bool{Bool: true, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to record payment verification: %w", err)
	}

	form, err := ParseForm(verified.Form)
	if err != nil {
		return nil, fmt.Errorf("stored form is unreadable: %w", err)
	}

	return s.submitAndFinish(ctx, &verified, internship, form, PaymentStatusPaid, paymentID)
}

// SubmitWithoutPayment is the direct form → success path for internships with
// no application fee.
func (s *FlowService) SubmitWithoutPayment(ctx context.Context, sessionID uuid.UUID, rawForm []byte) (*db.ApplicationSession, error) {
	session, internship, err := s.sessionWithInternship(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionStateForm {
		return nil, ErrInvalidTransition
	}
	if internship.PaymentRequired {
		return nil, fmt.Errorf("%w: internship requires payment", ErrInvalidTransition)
	}

	form, err := ParseForm(rawForm)
	if err != nil {
		return nil, err
	}
	if err := form.Validate(); err != nil {
		return nil, err
	}

	return s.submitAndFinish(ctx, session, internship, form, PaymentStatusWaived, "")
}

// RetrySubmission re-runs persistence for a session stuck in the error state.
// Payment is never retried from here.
func (s *FlowService) RetrySubmission(ctx context.Context, sessionID uuid.UUID) (*db.ApplicationSession, error) {
	session, internship, err := s.sessionWithInternship(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != SessionStateError {
		return nil, ErrInvalidTransition
	}

	form, err := ParseForm(session.Form)
	if err != nil {
		return nil, fmt.Errorf("stored form is unreadable: %w", err)
	}

	status := PaymentStatusWaived
	paymentID := ""
	if session.PaymentVerified {
		status = PaymentStatusPaid
		paymentID = session.PaymentID.String
	}

	updated, err := s.submitAndFinish(ctx, session, internship, form, status, paymentID)
	if err != nil {
		return updated, err
	}

	if status == PaymentStatusPaid {
		// The failed paid submission was parked for the reconciliation
		// worker; resolve it here so the worker does not replay a payment
		// that now has an application record.
		if resolveErr := s.queries.ResolveFailedSubmissionsBySession(ctx, db.ResolveFailedSubmissionsBySessionParams{
			SessionID:     session.ID,
			ApplicationID: updated.ApplicationID,
		}); resolveErr != nil {
			s.logger.Error("Failed to resolve parked submission after retry",
				zap.String("session_id", session.ID.String()),
				zap.Error(resolveErr))
		}
	}

	return updated, nil
}

func (s *FlowService) submitAndFinish(ctx context.Context, session *db.ApplicationSession, internship db.Internship, form *ApplicationForm, paymentStatus, paymentID string) (*db.ApplicationSession, error) {
	params := SubmitParams{
		InternshipID:    internship.ID,
		InternshipTitle: internship.Title,
		Name:            form.Name,
		Email:           form.Email,
		Phone:           form.Phone,
		Education:       form.Education,
		College:         form.College,
		City:            form.City,
		CoverLetter:     form.CoverLetter,
		Skills:          form.Skills,
		LinkedinProfile: form.LinkedinProfile,
		GithubProfile:   form.GithubProfile,
		PortfolioUrl:    form.PortfolioUrl,
		HearAboutUs:     form.HearAboutUs,
		AgreesToTerms:   form.AgreesToTerms,
		PaymentStatus:   paymentStatus,
		PaymentID:       paymentID,
		CouponCode:      session.CouponCode.String,
		DiscountAmount:  session.DiscountAmount,
		OriginalAmount:  session.OriginalAmount,
		Extra:           form.Extra,
	}
	if paymentStatus == PaymentStatusPaid {
		params.PaymentAmount = session.FinalAmount
	}

	result, err := s.applications.Submit(ctx, params)
	if err != nil {
		return s.failSession(ctx, session, form, paymentID, err, paymentStatus == PaymentStatusPaid)
	}

	updated, updateErr := s.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:            session.ID,
		State:         pgtype.Text{String: SessionStateSuccess, Valid: true},
		Form:          mustMarshalForm(form),
		ApplicationID: applicationIDOrNull(result.ApplicationID),
		LastError:     pgtype.Text{String: "", Valid: true},
	})
	if updateErr != nil {
		// The application is persisted; a stale session state is tolerable.
		s.logger.Warn("Failed to mark session successful",
			zap.String("session_id", session.ID.String()),
			zap.Error(updateErr))
		session.State = SessionStateSuccess
		return session, nil
	}

	return &updated, nil
}

// failSession moves a session to the error state after submission exhaustion.
// For paid sessions the full record is also parked for the reconciliation
// worker, so a "paid but not recorded" applicant is never lost.
func (s *FlowService) failSession(ctx context.Context, session *db.ApplicationSession, form *ApplicationForm, paymentID string, submitErr error, paid bool) (*db.ApplicationSession, error) {
	s.logger.Error("Submission failed after all strategies",
		zap.String("session_id", session.ID.String()),
		zap.Bool("paid", paid),
		zap.Error(submitErr))

	if paid {
		record := s.reconciliationRecord(session, form)
		if _, err := s.queries.CreateFailedSubmission(ctx, db.CreateFailedSubmissionParams{
			SessionID:    session.ID,
			Record:       record,
			PaymentID:    textOrNull(paymentID),
			ErrorMessage: textOrNull(submitErr.Error()),
		}); err != nil {
			s.logger.Error("Failed to park record for reconciliation",
				zap.String("session_id", session.ID.String()),
				zap.Error(err))
		}
	}

	updated, err := s.queries.UpdateApplicationSession(ctx, db.UpdateApplicationSessionParams{
		ID:        session.ID,
		State:     pgtype.Text{String: SessionStateError, Valid: true},
		Form:      mustMarshalForm(form),
		LastError: textOrNull(submitErr.Error()),
	})
	if err != nil {
		return nil, fmt.Errorf("submission failed and session update failed: %w", submitErr)
	}

	return &updated, fmt.Errorf("submission failed: %w", submitErr)
}

func (s *FlowService) reconciliationRecord(session *db.ApplicationSession, form *ApplicationForm) []byte {
	record := map[string]interface{}{
		"internship_id":    session.InternshipID.String(),
		"name":             form.Name,
		"email":            form.Email,
		"phone":            form.Phone,
		"education":        form.Education,
		"college":          form.College,
		"city":             form.City,
		"cover_letter":     form.CoverLetter,
		"skills":           form.Skills,
		"linkedin_profile": form.LinkedinProfile,
		"github_profile":   form.GithubProfile,
		"portfolio_url":    form.PortfolioUrl,
		"hear_about_us":    form.HearAboutUs,
		"agrees_to_terms":  form.AgreesToTerms,
		"payment_status":   PaymentStatusPaid,
		"payment_id":       session.PaymentID.String,
		"payment_amount":   session.FinalAmount,
		"coupon_code":      session.CouponCode.String,
		"discount_amount":  session.DiscountAmount,
		"original_amount":  session.OriginalAmount,
	}
	for key, value := range form.Extra {
		if _, exists := record[key]; !exists {
			record[key] = value
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Error("Failed to marshal reconciliation record", zap.Error(err))
		return []byte("{}")
	}
	return data
}

func (s *FlowService) sessionWithInternship(ctx context.Context, sessionID uuid.UUID) (*db.ApplicationSession, db.Internship, error) {
	session, err := s.queries.GetApplicationSession(ctx, sessionID)
	if err != nil {
		return nil, db.Internship{}, fmt.Errorf("session not found: %w", err)
	}

	internship, err := s.queries.GetInternship(ctx, session.InternshipID)
	if err != nil {
		return nil, db.Internship{}, fmt.Errorf("internship not found: %w", err)
	}

	return &session, internship, nil
}

func mustMarshalForm(form *ApplicationForm) []byte {
	loose := map[string]interface{}{
		"name":             form.Name,
		"email":            form.Email,
		"phone":            form.Phone,
		"education":        form.Education,
		"college":          form.College,
		"city":             form.City,
		"cover_letter":     form.CoverLetter,
		"skills":           form.Skills,
		"linkedin_profile": form.LinkedinProfile,
		"github_profile":   form.GithubProfile,
		"portfolio_url":    form.PortfolioUrl,
		"hear_about_us":    form.HearAboutUs,
		"agrees_to_terms":  form.AgreesToTerms,
	}
	for key, value := range form.Extra {
		if _, exists := loose[key]; !exists {
			loose[key] = value
		}
	}

	data, err := json.Marshal(loose)
	if err != nil {
		return []byte("{}")
	}
	return data
}

func applicationIDOrNull(id string) pgtype.UUID {
	parsed, err := uuid.Parse(id)
	if err != nil {
		// Legacy identifiers are not UUIDs; the session then carries no
		// foreign key, only the success state.
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: parsed, Valid: true}
}
