package server

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	_ "atlantic-api/docs" // This will be generated
	"atlantic-api/internal/auth"
	awsclient "atlantic-api/internal/client/aws"
	"atlantic-api/internal/client/legacy"
	"atlantic-api/internal/client/razorpay"
	"atlantic-api/internal/client/storage"
	"atlantic-api/internal/constants"
	"atlantic-api/internal/db"
	"atlantic-api/internal/handlers"
	"atlantic-api/internal/logger"
	"atlantic-api/internal/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handler Definitions
var (
	healthHandler         *handlers.HealthHandler
	internshipHandler     *handlers.InternshipHandler
	couponHandler         *handlers.CouponHandler
	applicationHandler    *handlers.ApplicationHandler
	flowHandler           *handlers.FlowHandler
	draftHandler          *handlers.DraftHandler
	blogHandler           *handlers.BlogHandler
	settingsHandler       *handlers.SettingsHandler
	profileHandler        *handlers.ProfileHandler
	reconciliationHandler *handlers.ReconciliationHandler

	reconciliationProcessor *services.ReconciliationProcessor

	// Database
	dbQueries *db.Queries
)

func InitializeHandlers() {
	// Get database connection string from environment
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL environment variable is required")
	}

	// Create a connection pool using pgxpool
	poolConfig, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	// Create the connection pool
	connPool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(connPool)

	// Payment gateway credentials come from Secrets Manager in deployed
	// environments and plain env vars locally.
	secretsClient, err := awsclient.NewSecretsManagerClient(context.Background())
	if err != nil {
		logger.Fatal("Unable to create Secrets Manager client", zap.Error(err))
	}
	razorpayKeyID, err := secretsClient.GetSecretString(context.Background(), "RAZORPAY_KEY_ID_SECRET_ARN", "RAZORPAY_KEY_ID")
	if err != nil {
		logger.Fatal("Unable to resolve Razorpay key ID", zap.Error(err))
	}
	razorpayKeySecret, err := secretsClient.GetSecretString(context.Background(), "RAZORPAY_KEY_SECRET_SECRET_ARN", "RAZORPAY_KEY_SECRET")
	if err != nil {
		logger.Fatal("Unable to resolve Razorpay key secret", zap.Error(err))
	}

	razorpayClient, err := razorpay.NewClient(razorpay.Config{
		KeyID:     razorpayKeyID,
		KeySecret: razorpayKeySecret,
	})
	if err != nil {
		logger.Fatal("Unable to create Razorpay client", zap.Error(err))
	}

	// The legacy backend stays wired in as a submission fallback until it is
	// fully retired. Leaving LEGACY_API_URL unset disables it.
	var legacyClient *legacy.Client
	if legacyURL := os.Getenv("LEGACY_API_URL"); legacyURL != "" {
		legacyClient = legacy.New(legacyURL, 15*time.Second)
	}

	var resumeStore *storage.ResumeStore
	if bucket := os.Getenv("RESUME_BUCKET"); bucket != "" {
		resumeStore, err = storage.NewResumeStore(context.Background(),
			bucket,
			os.Getenv("AWS_REGION"),
			os.Getenv("RESUME_PUBLIC_URL"),
		)
		if err != nil {
			logger.Fatal("Unable to create resume store", zap.Error(err))
		}
	}

	var emailService *services.EmailService
	if resendKey := os.Getenv("RESEND_API_KEY"); resendKey != "" {
		emailService = services.NewEmailService(resendKey,
			os.Getenv("EMAIL_FROM_ADDRESS"),
			os.Getenv("EMAIL_FROM_NAME"),
		)
	}

	var legacyCoupons services.LegacyCouponStore
	var legacySubmitter services.LegacySubmitter
	if legacyClient != nil {
		legacyCoupons = legacyClient
		legacySubmitter = legacyClient
	}

	couponService := services.NewCouponService(dbQueries, legacyCoupons)
	paymentService := services.NewPaymentService(razorpayClient)

	var resumeUploader services.ResumeUploader
	if resumeStore != nil {
		resumeUploader = resumeStore
	}
	var confirmationSender services.ConfirmationSender
	if emailService != nil {
		confirmationSender = emailService
	}

	applicationService := services.NewApplicationService(
		dbQueries,
		dbQueries,
		legacySubmitter,
		resumeUploader,
		couponService,
		confirmationSender,
	)
	flowService := services.NewFlowService(dbQueries, paymentService, applicationService, couponService)
	draftService := services.NewDraftService(dbQueries)

	// Reconciliation replays paid-but-unrecorded submissions in the
	// background with 2 workers and a buffer size of 50.
	reconciliationProcessor = services.NewReconciliationProcessor(dbQueries, applicationService, 2, 50)

	commonServices := handlers.NewCommonServices(
		dbQueries,
		couponService,
		paymentService,
		applicationService,
		flowService,
		draftService,
		reconciliationProcessor,
	)

	// API Handler initialization
	healthHandler = handlers.NewHealthHandler(connPool)
	internshipHandler = handlers.NewInternshipHandler(commonServices)
	couponHandler = handlers.NewCouponHandler(commonServices)
	applicationHandler = handlers.NewApplicationHandler(commonServices)
	flowHandler = handlers.NewFlowHandler(commonServices)
	draftHandler = handlers.NewDraftHandler(commonServices)
	blogHandler = handlers.NewBlogHandler(commonServices)
	settingsHandler = handlers.NewSettingsHandler(commonServices)
	profileHandler = handlers.NewProfileHandler(commonServices)
	reconciliationHandler = handlers.NewReconciliationHandler(commonServices)
}

func InitializeRoutes(router *gin.Engine) {
	// Initialize logger first
	logger.InitLogger()

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	// Start the reconciliation worker unless explicitly disabled
	if os.Getenv("RECONCILIATION_DISABLED") != "true" {
		reconciliationProcessor.Start()
	}

	// Ensure we gracefully stop the reconciliation processor when the server shuts down
	router.GET("/shutdown", func(c *gin.Context) {
		go func() {
			time.Sleep(1 * time.Second)
			reconciliationProcessor.Stop()
			logger.Info("Server is shutting down...")
			os.Exit(0)
		}()
		c.JSON(http.StatusOK, gin.H{"message": "Server is shutting down..."})
	})

	// if we are not in production, log the request body
	if os.Getenv("GIN_MODE") != "release" {
		router.Use(handlers.LogRequest())
	}

	// Legacy-shaped routes older clients still call
	compat := router.Group("/api")
	{
		compat.POST("/submit-application", applicationHandler.SubmitApplication)
		compat.POST("/verify-payment", applicationHandler.VerifyPayment)
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes
		v1.GET("/internships", internshipHandler.ListActiveInternships)
		v1.GET("/internships/:internship_id", internshipHandler.GetInternship)

		v1.GET("/blog", blogHandler.ListPublishedPosts)
		v1.GET("/blog/:slug", blogHandler.GetPostBySlug)

		v1.GET("/settings/:key", settingsHandler.GetSetting)

		v1.POST("/coupons/validate", couponHandler.ValidateCoupon)

		// Application flow
		flow := v1.Group("/flow")
		{
			flow.POST("/sessions", flowHandler.StartSession)
			flow.GET("/sessions/:session_id", flowHandler.GetSession)
			flow.POST("/sessions/:session_id/coupon", flowHandler.ApplyCoupon)
			flow.DELETE("/sessions/:session_id/coupon", flowHandler.RemoveCoupon)
			flow.POST("/sessions/:session_id/payment", flowHandler.BeginPayment)
			flow.DELETE("/sessions/:session_id/payment", flowHandler.CancelPayment)
			flow.POST("/sessions/:session_id/payment/confirm", flowHandler.ConfirmPayment)
			flow.POST("/sessions/:session_id/submit", flowHandler.SubmitWithoutPayment)
			flow.POST("/sessions/:session_id/retry", flowHandler.RetrySubmission)
		}

		// Form drafts
		drafts := v1.Group("/drafts")
		{
			drafts.PUT("/:draft_key", draftHandler.SaveDraft)
			drafts.GET("/:draft_key", draftHandler.GetDraft)
			drafts.DELETE("/:draft_key", draftHandler.DeleteDraft)
		}

		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(handlers.AuthMiddleware())
		{
			// Current profile routes
			profiles := protected.Group("/profiles")
			{
				profiles.GET("/me", profileHandler.GetCurrentProfile)
				profiles.PUT("/me", profileHandler.UpdateCurrentProfile)
			}

			// Admin-only routes
			admin := protected.Group("/admin")
			admin.Use(auth.RequireRoles(dbQueries, constants.RoleAdmin))
			{
				// Internship management
				admin.GET("/internships", internshipHandler.ListInternships)
				admin.POST("/internships", internshipHandler.CreateInternship)
				admin.PUT("/internships/:internship_id", internshipHandler.UpdateInternship)
				admin.DELETE("/internships/:internship_id", internshipHandler.DeleteInternship)

				// Coupon management
				admin.GET("/coupons", couponHandler.ListCoupons)
				admin.POST("/coupons", couponHandler.CreateCoupon)
				admin.PUT("/coupons/:coupon_id", couponHandler.UpdateCoupon)
				admin.DELETE("/coupons/:coupon_id", couponHandler.DeleteCoupon)

				// Application review
				admin.GET("/applications", applicationHandler.ListApplications)
				admin.GET("/applications/:application_id", applicationHandler.GetApplication)
				admin.PUT("/applications/:application_id/status", applicationHandler.UpdateApplicationStatus)

				// Blog management
				admin.GET("/blog", blogHandler.ListPosts)
				admin.GET("/blog/:post_id", blogHandler.GetPost)
				admin.POST("/blog", blogHandler.CreatePost)
				admin.PUT("/blog/:post_id", blogHandler.UpdatePost)
				admin.DELETE("/blog/:post_id", blogHandler.DeletePost)

				// Settings management
				admin.GET("/settings", settingsHandler.ListSettings)
				admin.PUT("/settings/:key", settingsHandler.UpsertSetting)

				// Reconciliation queue
				admin.GET("/reconciliation", reconciliationHandler.ListFailedSubmissions)
				admin.POST("/reconciliation/run", reconciliationHandler.RunReconciliation)
			}
		}
	}
}

// Shutdown stops background workers. Called from main on SIGTERM.
func Shutdown() {
	if reconciliationProcessor != nil {
		reconciliationProcessor.Stop()
	}
}

// Port returns the port the server should listen on
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		return "8080"
	}
	if _, err := strconv.Atoi(port); err != nil {
		logger.Fatal("PORT must be numeric", zap.String("port", port))
	}
	return port
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
