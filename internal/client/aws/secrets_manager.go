package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"

	"atlantic-api/internal/logger"
)

// SecretsManagerClient wraps the AWS Secrets Manager client. It is used for
// the Razorpay key pair and the Supabase JWT secret in deployed environments;
// local development falls back to plain environment variables.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
	cfg aws.Config
}

// NewSecretsManagerClient creates and initializes a new Secrets Manager client.
// It uses the default AWS configuration chain (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	svc := secretsmanager.NewFromConfig(cfg)

	return &SecretsManagerClient{
		svc: svc,
		cfg: cfg,
	}, nil
}

// GetSecretString fetches a secret string from AWS Secrets Manager using an ARN
// specified by an environment variable. If the ARN environment variable is not
// set or fetching fails, it falls back to reading the secret directly from
// another environment variable. It returns the secret value or an error if
// both methods fail.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		logger.Log.Debug("Attempting to fetch secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar), zap.String("secretArn", secretArn))
		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Log.Info("Successfully fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return *result.SecretString, nil
		}
		logger.Log.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("secretArn", secretArn),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	} else {
		logger.Log.Debug("Secret ARN environment variable not set, falling back to direct env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
		)
	}

	secretValue := os.Getenv(fallbackEnvVar)
	if secretValue != "" {
		logger.Log.Info("Using secret value from direct environment variable", zap.String("envVar", fallbackEnvVar))
		return secretValue, nil
	}

	logger.Log.Error("Failed to retrieve secret from both Secrets Manager and direct environment variable",
		zap.String("arnEnvVar", secretArnEnvVar),
		zap.String("fallbackEnvVar", fallbackEnvVar),
	)
	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON fetches a secret from AWS Secrets Manager and unmarshals it
// into the provided struct. It expects the secret stored in Secrets Manager to
// be a JSON string, such as the Razorpay {key_id, key_secret} pair.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("secret ARN env var '%s' not set", secretArnEnvVar)
	}

	logger.Log.Debug("Attempting to fetch JSON secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar), zap.String("secretArn", secretArn))
	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	}

	result, err := c.svc.GetSecretValue(ctx, input)
	if err != nil {
		logger.Log.Error("Failed to retrieve JSON secret from Secrets Manager",
			zap.String("secretArn", secretArn),
			zap.Error(err),
		)
		return fmt.Errorf("failed to fetch secret '%s': %w", secretArn, err)
	}

	if result.SecretString == nil {
		return fmt.Errorf("secret '%s' has no string value", secretArn)
	}

	if err := json.Unmarshal([]byte(*result.SecretString), target); err != nil {
		logger.Log.Error("Failed to unmarshal JSON secret from Secrets Manager",
			zap.String("secretArn", secretArn),
			zap.Error(err),
		)
		return fmt.Errorf("failed to parse secret '%s': %w", secretArn, err)
	}

	logger.Log.Info("Successfully fetched and parsed JSON secret from Secrets Manager", zap.String("secretArn", secretArn))
	return nil
}
