package plugins

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegisterConfiguredResolvesSymbols(t *testing.T) {
	t.Parallel()
	table := NewFilterTable()
	imports := map[string]Spec{
		"Plain text": {Extension: "txt", Function: "text.Load"},
	}
	exports := map[string]Spec{
		"Plain text": {Extension: "txt", Function: "text.Save"},
	}

	var problems []string
	err := RegisterConfigured(table, imports, exports, func(name, problem string) {
		problems = append(problems, name+": "+problem)
	})
	require.NoError(t, err)
	require.Empty(t, problems)
	require.Len(t, table.Imports(), 1)
	require.Len(t, table.Exports(), 1)
}

func TestRegisterConfiguredSkipsUnresolvable(t *testing.T) {
	t.Parallel()
	table := NewFilterTable()
	imports := map[string]Spec{
		"Broken": {Extension: "xyz", Function: "csv.Laod"},
		"Good":   {Extension: "csv", Function: "csv.Load"},
	}

	var problems []string
	err := RegisterConfigured(table, imports, nil, func(name, problem string) {
		problems = append(problems, name+": "+problem)
	})
	require.NoError(t, err)
	require.Len(t, table.Imports(), 1, "the resolvable plugin still loads")
	require.Len(t, problems, 1)
	require.Contains(t, problems[0], "Broken")
	require.Contains(t, problems[0], `did you mean "csv.Load"`)
}

func TestRegisterConfiguredDuplicateNameIsFatal(t *testing.T) {
	t.Parallel()
	table := NewFilterTable()
	require.NoError(t, table.RegisterImport("CSV", "csv", LoadCSV))

	imports := map[string]Spec{
		"CSV": {Extension: "csv", Function: "csv.Load"},
	}
	err := RegisterConfigured(table, imports, nil, func(string, string) {})
	require.ErrorIs(t, err, ErrDuplicateFilter)
}

func TestClosestSymbolIgnoresWildMisses(t *testing.T) {
	t.Parallel()
	require.Equal(t, "", closestSymbol("completely.unrelated", importSymbolNames()))
}
