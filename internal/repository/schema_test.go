package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMigrationsFor_MySQLUsesBinaryCollation(t *testing.T) {
	stmts := migrationsFor("mysql")
	assert.Len(t, stmts, len(migrations))
	for _, stmt := range stmts {
		assert.True(t, strings.HasSuffix(stmt, "COLLATE utf8mb4_bin"), stmt)
	}
}

func TestMigrationsFor_SQLiteUnchanged(t *testing.T) {
	stmts := migrationsFor("sqlite3")
	assert.Equal(t, migrations, stmts)
	for _, stmt := range stmts {
		assert.NotContains(t, stmt, "COLLATE")
	}
}
