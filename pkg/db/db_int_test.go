package db

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"liyu1981.xyz/battlogger/pkg/common"
)

func TestWithEnvPath(t *testing.T) {
	common.SetTestLoggerNop()

	if os.Getenv(common.EnvKeyRunIntegrationTests) != "true" {
		t.Skip("Skipping integration test: RUN_INTEGRATION_TESTS environment variable not set")
	}

	testPath := filepath.Join(t.TempDir(), "test.db")
	t.Setenv(common.EnvKeyDbPath, testPath)

	instance, err := New(UseSqliteDialector(""))
	if err != nil || instance == nil || instance.Conn == nil {
		t.Fatalf("Expected non-nil DB connection, got error: %v", err)
	}
	defer func() { _ = instance.Close() }()

	if _, err := instance.Initialize(context.Background(), false); err != nil {
		t.Fatalf("Failed to initialize database: %v", err)
	}

	if _, err := os.Stat(testPath); os.IsNotExist(err) {
		t.Errorf("Expected database file to be created at %s", testPath)
	}
}
