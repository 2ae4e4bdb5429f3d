package repositories

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var createTableRe = regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+) \(`)

// schemaColumns parses the column names per table out of the initial
// migration. Column definitions start with a lowercase identifier;
// constraint lines (UNIQUE, CHECK continuations) start uppercase.
func schemaColumns(t *testing.T) map[string]map[string]bool {
	t.Helper()

	content, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err)

	tables := make(map[string]map[string]bool)
	var current map[string]bool

	for _, line := range strings.Split(string(content), "\n") {
		if m := createTableRe.FindStringSubmatch(line); m != nil {
			current = make(map[string]bool)
			tables[m[1]] = current
			continue
		}
		if current == nil {
			continue
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, ")") {
			current = nil
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) == 0 {
			continue
		}
		first := fields[0]
		if first[0] >= 'a' && first[0] <= 'z' {
			current[first] = true
		}
	}

	return tables
}

// The scan order in each repository is positional, so a column list that
// names a column the schema does not define breaks at runtime even though
// it compiles. Pin every repository column list to the shipped schema.
func TestRepositoryColumnListsMatchSchema(t *testing.T) {
	tables := schemaColumns(t)

	cases := []struct {
		table   string
		columns string
	}{
		{"users", userColumns},
		{"fees", feeColumns},
		{"attendance", attendanceColumns},
		{"visitors", visitorColumns},
		{"complaints", complaintColumns},
		{"mess_menus", messMenuColumns},
		{"contact_messages", contactColumns},
	}

	for _, tc := range cases {
		t.Run(tc.table, func(t *testing.T) {
			schema, ok := tables[tc.table]
			require.True(t, ok, "table %s not found in migration", tc.table)

			for _, col := range strings.Split(tc.columns, ",") {
				col = strings.TrimSpace(col)
				require.True(t, schema[col],
					"repository selects %s.%s which the schema does not define", tc.table, col)
			}
		})
	}
}
