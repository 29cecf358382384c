package plugins

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// Spec is one configured plugin: the file extension it handles and the
// symbol name of the conversion function to use for it.
type Spec struct {
	Extension string
	Function  string
}

// The symbol tables list every conversion function configuration may refer
// to. Configured plugins resolve against these at startup; there is no
// runtime code loading.
var importSymbols = map[string]ImportFunc{
	"csv.Load":  LoadCSV,
	"text.Load": LoadText,
}

var exportSymbols = map[string]ExportFunc{
	"csv.Save":  SaveCSV,
	"text.Save": SaveText,
}

// RegisterConfigured resolves and registers the configured import and export
// plugins. A plugin whose function symbol cannot be resolved is reported
// through report and skipped; the remaining plugins still load. A duplicate
// display name is returned as a fatal setup error.
func RegisterConfigured(t *FilterTable, imports, exports map[string]Spec, report func(name, problem string)) error {
	for _, name := range sortedKeys(imports) {
		spec := imports[name]
		fn, ok := importSymbols[spec.Function]
		if !ok {
			report(name, resolveProblem(spec.Function, importSymbolNames()))
			continue
		}
		if err := t.RegisterImport(name, spec.Extension, fn); err != nil {
			return err
		}
	}
	for _, name := range sortedKeys(exports) {
		spec := exports[name]
		fn, ok := exportSymbols[spec.Function]
		if !ok {
			report(name, resolveProblem(spec.Function, exportSymbolNames()))
			continue
		}
		if err := t.RegisterExport(name, spec.Extension, fn); err != nil {
			return err
		}
	}
	return nil
}

func resolveProblem(symbol string, known []string) string {
	msg := fmt.Sprintf("unknown plugin function %q", symbol)
	if suggestion := closestSymbol(symbol, known); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg
}

// closestSymbol returns the known symbol nearest to s, or "" when nothing is
// close enough to be a plausible typo.
func closestSymbol(s string, known []string) string {
	best, bestDist := "", len(s)/2+1
	for _, k := range known {
		if d := levenshtein.ComputeDistance(s, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}

func importSymbolNames() []string {
	return sortedKeys(importSymbols)
}

func exportSymbolNames() []string {
	return sortedKeys(exportSymbols)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
