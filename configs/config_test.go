package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	// Set required environment variables to avoid unmarshal errors
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("SALESFORCE_USERNAME", "ci@example.com")
	os.Setenv("SALESFORCE_PASSWORD", "secret")
	os.Setenv("SALESFORCE_LOGIN_URL", "https://login.salesforce.com")
	os.Setenv("SALESFORCE_TIMEOUT", "30")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("SALESFORCE_USERNAME")
	os.Unsetenv("SALESFORCE_PASSWORD")
	os.Unsetenv("SALESFORCE_LOGIN_URL")
	os.Unsetenv("SALESFORCE_TIMEOUT")
}

// TestSalesforceStructFieldsUnmarshal tests that Salesforce struct fields are
// properly unmarshaled from config
func TestSalesforceStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SALESFORCE_LOGIN_URL", "https://test.salesforce.com")
	os.Setenv("SALESFORCE_TIMEOUT", "45")

	// Initialize config - using relative path from configs directory
	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Salesforce.Username != "ci@example.com" {
		t.Errorf("Expected Salesforce.Username to be ci@example.com, got %s", cfg.Salesforce.Username)
	}

	if cfg.Salesforce.LoginURL != "https://test.salesforce.com" {
		t.Errorf("Expected Salesforce.LoginURL to be https://test.salesforce.com, got %s", cfg.Salesforce.LoginURL)
	}

	if cfg.Salesforce.Timeout != 45 {
		t.Errorf("Expected Salesforce.Timeout to be 45, got %d", cfg.Salesforce.Timeout)
	}
}

// TestSalesforceZeroTimeoutSignalsAdapterDefault tests that a zero timeout is
// passed through; the chatter adapter applies its own default when it is 0
func TestSalesforceZeroTimeoutSignalsAdapterDefault(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("SALESFORCE_TIMEOUT", "0")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Salesforce.Timeout != 0 {
		t.Errorf("Expected Salesforce.Timeout to be 0, got %d", cfg.Salesforce.Timeout)
	}
}

// TestAppConfigAccess tests config access via configs.GetViper()
func TestAppConfigAccess(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.App.Env != "test" {
		t.Errorf("Expected App.Env to be test, got %s", cfg.App.Env)
	}

	if cfg.App.Port != "8080" {
		t.Errorf("Expected App.Port to be 8080, got %s", cfg.App.Port)
	}

	if cfg.Postgres.Host != "localhost" {
		t.Errorf("Expected Postgres.Host to be localhost, got %s", cfg.Postgres.Host)
	}
}
