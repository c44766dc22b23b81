// Package database provides a Postgres-backed client for integration tests.
package database

import (
	"testing"

	"github.com/stanley-ops/stanley/pkg/database"
	"github.com/stanley-ops/stanley/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to the external PostgreSQL
// service container. In local dev: spins up a PostgreSQL testcontainer.
// Schema teardown and connection close are registered on t.Cleanup.
func NewTestClient(t *testing.T) *database.Client {
	t.Helper()

	entClient, db := util.SetupTestDatabase(t)
	return database.NewClientFromEnt(entClient, db)
}
