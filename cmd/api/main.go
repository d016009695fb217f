package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"atlantic-api/internal/logger"
	"atlantic-api/internal/server"

	_ "atlantic-api/docs" // This will be generated

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// @title           Atlantic Enterprise API
// @version         1.0
// @description     API server for the Atlantic Enterprise internship platform

// @contact.name   API Support
// @contact.email  support@atlanticenterprise.in

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v\n", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{"DATABASE_URL", "SUPABASE_JWT_SECRET"}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" {
			log.Fatalf("%s environment variable is required", envVar)
		}
	}

	logger.InitLogger()

	// Initialize router
	router := gin.Default()

	// Initialize Handlers
	server.InitializeHandlers()

	// Initialize routes
	server.InitializeRoutes(router)

	port := server.Port()

	// Configure server
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second, // Prevent Slowloris attacks
	}
	// Start server in a goroutine
	go func() {
		log.Printf("Server starting on port %s\n", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop background workers before draining HTTP connections
	server.Shutdown()

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
