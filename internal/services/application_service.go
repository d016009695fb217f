package services

import (
	"context"
	"fmt"

	"atlantic-api/internal/client/legacy"
	"atlantic-api/internal/db"
	"atlantic-api/internal/logger"
	"atlantic-api/internal/pkg/naming"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

// CompatInserter inserts an application from a loose field map, keeping only
// columns the current schema knows about.
type CompatInserter interface {
	InsertApplicationCompat(ctx context.Context, fields map[string]interface{}) (uuid.UUID, error)
}

// LegacySubmitter is the previous-generation backend's submission endpoint.
type LegacySubmitter interface {
	SubmitApplication(ctx context.Context, record map[string]interface{}) (*legacy.SubmitResponse, error)
}

// ResumeUploader stores a resume and returns a public reference for it.
type ResumeUploader interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (string, error)
}

// ConfirmationSender sends the post-submission confirmation email.
type ConfirmationSender interface {
	SendApplicationConfirmation(ctx context.Context, email, name, internshipTitle, applicationID string) error
}

// SubmitParams carries everything needed to persist one application.
type SubmitParams struct {
	InternshipID    uuid.UUID
	InternshipTitle string

	Name        string
	Email       string
	Phone       string
	Education   string
	College     string
	City        string
	CoverLetter string
	Skills      []string

	LinkedinProfile string
	GithubProfile   string
	PortfolioUrl    string
	HearAboutUs     string
	AgreesToTerms   bool

	PaymentStatus  string
	PaymentID      string
	PaymentAmount  int32
	CouponCode     string
	DiscountAmount int32
	OriginalAmount int32

	// Resume is optional; a failed upload degrades to no attachment.
	ResumeFileName    string
	ResumeContentType string
	Resume            []byte

	// Extra carries unrecognized client fields through to the fallback
	// paths, which may know columns this schema does not.
	Extra map[string]interface{}
}

// SubmissionResult reports which strategy persisted the record and the
// identifier it produced. Legacy identifiers are not always UUIDs, so the ID
// stays a string.
type SubmissionResult struct {
	ApplicationID string `json:"application_id"`
	Strategy      int    `json:"strategy"`
}

// ApplicationService persists applications. A submission only fails after
// every fallback strategy is exhausted; each strategy reshapes the payload
// rather than retrying the same one.
type ApplicationService struct {
	queries db.Querier
	compat  CompatInserter
	legacy  LegacySubmitter
	resumes ResumeUploader
	coupons *CouponService
	email   ConfirmationSender
	logger  *zap.Logger
}

// NewApplicationService creates a new application service. legacy, resumes
// and email may be nil when the corresponding integration is not configured.
func NewApplicationService(
	queries db.Querier,
	compat CompatInserter,
	legacyClient LegacySubmitter,
	resumes ResumeUploader,
	coupons *CouponService,
	email ConfirmationSender,
) *ApplicationService {
	return &ApplicationService{
		queries: queries,
		compat:  compat,
		legacy:  legacyClient,
		resumes: resumes,
		coupons: coupons,
		email:   email,
		logger:  logger.Log,
	}
}

// Submit persists an application, trying each strategy in order:
//
//  1. full typed insert
//  2. insert of the snake_case field subset through the compat path
//  3. the legacy backend's submission endpoint
//  4. a minimal essential-fields insert
//
// The resume upload runs first and is optional: an upload failure means the
// record goes in without an attachment, never that the submission aborts.
func (s *ApplicationService) Submit(ctx context.Context, params SubmitParams) (*SubmissionResult, error) {
	resumeURL := s.uploadResume(ctx, &params)

	result, err := s.trySubmit(ctx, params, resumeURL)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Application submitted",
		zap.String("application_id", result.ApplicationID),
		zap.Int("strategy", result.Strategy),
		zap.String("internship_id", params.InternshipID.String()))

	// Post-success side effects are best-effort and never fail the
	// submission.
	if s.coupons != nil && params.CouponCode != "" {
		s.coupons.IncrementUsage(ctx, params.CouponCode)
	}
	if s.email != nil {
		if err := s.email.SendApplicationConfirmation(ctx, params.Email, params.Name, params.InternshipTitle, result.ApplicationID); err != nil {
			s.logger.Warn("Failed to send confirmation email",
				zap.String("application_id", result.ApplicationID),
				zap.Error(err))
		}
	}

	return result, nil
}

func (s *ApplicationService) uploadResume(ctx context.Context, params *SubmitParams) string {
	if s.resumes == nil || len(params.Resume) == 0 {
		return ""
	}

	url, err := s.resumes.Upload(ctx, params.ResumeFileName, params.ResumeContentType, params.Resume)
	if err != nil {
		s.logger.Warn("Resume upload failed, submitting without attachment",
			zap.String("file_name", params.ResumeFileName),
			zap.Error(err))
		return ""
	}
	return url
}

func (s *ApplicationService) trySubmit(ctx context.Context, params SubmitParams, resumeURL string) (*SubmissionResult, error) {
	// Strategy 1: full typed insert.
	app, err := s.queries.CreateApplication(ctx, s.fullInsertParams(params, resumeURL))
	if err == nil {
		return &SubmissionResult{ApplicationID: app.ID.String(), Strategy: 1}, nil
	}
	firstErr := err
	s.logger.Warn("Full application insert failed, trying compat insert",
		zap.String("internship_id", params.InternshipID.String()),
		zap.Error(err))

	record := s.recordMap(params, resumeURL)

	// Strategy 2: keep only the snake_case keys and let the compat path
	// drop anything the schema does not recognize.
	if s.compat != nil {
		id, err := s.compat.InsertApplicationCompat(ctx, naming.FilterSnake(record))
		if err == nil {
			return &SubmissionResult{ApplicationID: id.String(), Strategy: 2}, nil
		}
		s.logger.Warn("Compat application insert failed, trying legacy endpoint",
			zap.String("internship_id", params.InternshipID.String()),
			zap.Error(err))
	}

	// Strategy 3: hand the record to the legacy backend and trust its
	// identifier.
	if s.legacy != nil {
		resp, err := s.legacy.SubmitApplication(ctx, record)
		if err == nil && resp != nil && resp.ApplicationID != "" {
			return &SubmissionResult{ApplicationID: resp.ApplicationID, Strategy: 3}, nil
		}
		s.logger.Warn("Legacy application submission failed, trying minimal insert",
			zap.String("internship_id", params.InternshipID.String()),
			zap.Error(err))
	}

	// Strategy 4: persist the essential fields only, sacrificing the
	// optional ones to get something on record.
	app, err = s.queries.CreateApplicationMinimal(ctx, db.CreateApplicationMinimalParams{
		InternshipID:  params.InternshipID,
		Name:          params.Name,
		Email:         params.Email,
		Phone:         params.Phone,
		Education:     params.Education,
		Status:        "pending",
		PaymentStatus: params.PaymentStatus,
		PaymentID:     textOrNull(params.PaymentID),
		PaymentAmount: params.PaymentAmount,
	})
	if err == nil {
		return &SubmissionResult{ApplicationID: app.ID.String(), Strategy: 4}, nil
	}
	s.logger.Error("All application submission strategies failed",
		zap.String("internship_id", params.InternshipID.String()),
		zap.String("email", params.Email),
		zap.Error(err))

	return nil, fmt.Errorf("all submission attempts failed, first error: %w", firstErr)
}

func (s *ApplicationService) fullInsertParams(params SubmitParams, resumeURL string) db.CreateApplicationParams {
	return db.CreateApplicationParams{
		InternshipID:    params.InternshipID,
		Name:            params.Name,
		Email:           params.Email,
		Phone:           params.Phone,
		Education:       params.Education,
		College:         textOrNull(params.College),
		City:            textOrNull(params.City),
		CoverLetter:     textOrNull(params.CoverLetter),
		Skills:          params.Skills,
		ResumeUrl:       textOrNull(resumeURL),
		ResumeFileName:  textOrNull(params.ResumeFileName),
		LinkedinProfile: textOrNull(params.LinkedinProfile),
		GithubProfile:   textOrNull(params.GithubProfile),
		PortfolioUrl:    textOrNull(params.PortfolioUrl),
		HearAboutUs:     textOrNull(params.HearAboutUs),
		AgreesToTerms:   params.AgreesToTerms,
		Status:          "pending",
		PaymentStatus:   params.PaymentStatus,
		PaymentID:       textOrNull(params.PaymentID),
		PaymentAmount:   params.PaymentAmount,
		CouponCode:      textOrNull(params.CouponCode),
		DiscountAmount:  params.DiscountAmount,
		OriginalAmount:  params.OriginalAmount,
	}
}

// recordMap flattens the submission into the loose shape the fallback paths
// consume. Unrecognized client fields ride along untouched.
func (s *ApplicationService) recordMap(params SubmitParams, resumeURL string) map[string]interface{} {
	record := map[string]interface{}{
		"internship_id":    params.InternshipID.String(),
		"name":             params.Name,
		"email":            params.Email,
		"phone":            params.Phone,
		"education":        params.Education,
		"college":          params.College,
		"city":             params.City,
		"cover_letter":     params.CoverLetter,
		"skills":           params.Skills,
		"resume_url":       resumeURL,
		"resume_file_name": params.ResumeFileName,
		"linkedin_profile": params.LinkedinProfile,
		"github_profile":   params.GithubProfile,
		"portfolio_url":    params.PortfolioUrl,
		"hear_about_us":    params.HearAboutUs,
		"agrees_to_terms":  params.AgreesToTerms,
		"status":           "pending",
		"payment_status":   params.PaymentStatus,
		"payment_id":       params.PaymentID,
		"payment_amount":   params.PaymentAmount,
		"coupon_code":      params.CouponCode,
		"discount_amount":  params.DiscountAmount,
		"original_amount":  params.OriginalAmount,
	}

	for key, value := range params.Extra {
		if _, exists := record[key]; !exists {
			record[key] = value
		}
	}

	return record
}

// Resubmit replays a previously captured record map through the fallback
// strategies. It is used when a paid submission failed to persist and is being
// retried later; the typed insert is skipped because the stored record is
// already loose JSON.
func (s *ApplicationService) Resubmit(ctx context.Context, record map[string]interface{}) (*SubmissionResult, error) {
	if s.compat != nil {
		id, err := s.compat.InsertApplicationCompat(ctx, naming.FilterSnake(record))
		if err == nil {
			return &SubmissionResult{ApplicationID: id.String(), Strategy: 2}, nil
		}
		s.logger.Warn("Compat resubmission failed, trying legacy endpoint", zap.Error(err))
	}

	if s.legacy != nil {
		resp, err := s.legacy.SubmitApplication(ctx, record)
		if err == nil && resp != nil && resp.ApplicationID != "" {
			return &SubmissionResult{ApplicationID: resp.ApplicationID, Strategy: 3}, nil
		}
		s.logger.Warn("Legacy resubmission failed, trying minimal insert", zap.Error(err))
	}

	minimal, err := minimalParamsFromRecord(record)
	if err != nil {
		return nil, err
	}

	app, err := s.queries.CreateApplicationMinimal(ctx, minimal)
	if err != nil {
		return nil, fmt.Errorf("all resubmission attempts failed: %w", err)
	}
	return &SubmissionResult{ApplicationID: app.ID.String(), Strategy: 4}, nil
}

func minimalParamsFromRecord(record map[string]interface{}) (db.CreateApplicationMinimalParams, error) {
	str := func(key string) string {
		if v, ok := record[key].(string); ok {
			return v
		}
		return ""
	}

	internshipID, err := uuid.Parse(str("internship_id"))
	if err != nil {
		return db.CreateApplicationMinimalParams{}, fmt.Errorf("stored record has no usable internship_id: %w", err)
	}

	var amount int32
	switch v := record["payment_amount"].(type) {
	case float64:
		amount = int32(v)
	case int32:
		amount = v
	case int:
		amount = int32(v)
	}

	paymentStatus := str("payment_status")
	if paymentStatus == "" {
		paymentStatus = "unpaid"
	}

	return db.CreateApplicationMinimalParams{
		InternshipID:  internshipID,
		Name:          str("name"),
		Email:         str("email"),
		Phone:         str("phone"),
		Education:     str("education"),
		Status:        "pending",
		PaymentStatus: paymentStatus,
		PaymentID:     textOrNull(str("payment_id")),
		PaymentAmount: amount,
	}, nil
}

func textOrNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
