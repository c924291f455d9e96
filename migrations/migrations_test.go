package migrations

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitMigration_HoursColumnsAreUnbounded(t *testing.T) {
	up, err := FS.ReadFile("000001_init.up.sql")
	require.NoError(t, err)

	hoursColumns := regexp.MustCompile(`(?m)^\s*hours\s+([A-Z]+(?:\s*\([^)]*\))?)`).FindAllSubmatch(up, -1)
	require.Len(t, hoursColumns, 2, "overtime and leave_types each carry an hours column")
	for _, col := range hoursColumns {
		assert.Equal(t, "NUMERIC", string(col[1]))
	}
}
