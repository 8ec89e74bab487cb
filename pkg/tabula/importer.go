package tabula

import (
	"sort"
	"strings"
	"sync"
)

// Options is the key/value settings bag handed to an Importer. Importers
// document which keys they recognize; unrecognized keys are ignored.
type Options map[string]string

// Bool reports whether the option named key is set to a truthy value
// ("1", "true", "yes" or "on", case-insensitively).
func (o Options) Bool(key string) bool {
	switch strings.ToLower(o[key]) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Importer converts a parsed Table into a domain-specific object. This is
// the contract resource-loading glue programs against: the core hands over a
// constructed table plus options and does not interpret the result or any
// failure of the conversion.
type Importer interface {
	// Name identifies the importer in the registry.
	Name() string
	// Import produces the typed object for t under the given options.
	Import(t *Table, opts Options) (any, error)
}

var (
	importersMu sync.RWMutex
	importers   = map[string]Importer{}
)

// RegisterImporter makes an importer available under its Name. Registering
// a name twice replaces the earlier importer; registries are host-controlled.
// It is safe for concurrent use.
func RegisterImporter(imp Importer) {
	importersMu.Lock()
	defer importersMu.Unlock()
	importers[imp.Name()] = imp
}

// LookupImporter returns the importer registered under name, if any.
func LookupImporter(name string) (Importer, bool) {
	importersMu.RLock()
	defer importersMu.RUnlock()
	imp, ok := importers[name]
	return imp, ok
}

// Importers returns the registered importer names, sorted.
func Importers() []string {
	importersMu.RLock()
	defer importersMu.RUnlock()
	names := make([]string, 0, len(importers))
	for name := range importers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	RegisterImporter(RecordImporter{})
	RegisterImporter(DictionaryImporter{})
}

// RecordImporter converts each row below the header into a map keyed by
// header text and returns []map[string]string.
//
// Recognized options:
//   - "trim_space": trim surrounding whitespace from every value
//   - "skip_labels": omit the label column (column 0) from each record
type RecordImporter struct{}

// Name returns "records".
func (RecordImporter) Name() string { return "records" }

// Import converts t into a record list.
func (RecordImporter) Import(t *Table, opts Options) (any, error) {
	headers := t.Headers()
	records := make([]map[string]string, 0, max(t.Height()-1, 0))
	for row := 1; row < t.Height(); row++ {
		record := make(map[string]string, len(headers))
		for col, header := range headers {
			if col == 0 && opts.Bool("skip_labels") {
				continue
			}
			cell, err := t.Cell(Index(col), Index(row))
			if err != nil {
				return nil, err
			}
			if opts.Bool("trim_space") {
				cell = strings.TrimSpace(cell)
			}
			record[header] = cell
		}
		records = append(records, record)
	}
	return records, nil
}

// DictionaryImporter maps the label column onto one value column and
// returns map[string]string. Like the table's own row lookup, the first
// occurrence of a duplicate label wins.
//
// Recognized options:
//   - "value_column": header name of the value column (default: column 1)
//   - "trim_space": trim surrounding whitespace from every value
type DictionaryImporter struct{}

// Name returns "dictionary".
func (DictionaryImporter) Name() string { return "dictionary" }

// Import converts t into a label→value dictionary.
func (DictionaryImporter) Import(t *Table, opts Options) (any, error) {
	col := Index(1)
	if name, ok := opts["value_column"]; ok {
		col = Name(name)
	}
	dict := make(map[string]string, max(t.Height()-1, 0))
	for row := 1; row < t.Height(); row++ {
		label, err := t.Cell(Index(0), Index(row))
		if err != nil {
			return nil, err
		}
		if _, seen := dict[label]; seen {
			continue
		}
		value, err := t.Cell(col, Index(row))
		if err != nil {
			return nil, err
		}
		if opts.Bool("trim_space") {
			value = strings.TrimSpace(value)
		}
		dict[label] = value
	}
	return dict, nil
}
