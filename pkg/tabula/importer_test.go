package tabula_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/softgrid/tabula/pkg/tabula"
)

const itemSheet = "id,name,cost\nsword, Sword ,10\nshield,Shield,5\n"

func TestRecordImporter(t *testing.T) {
	tab, err := tabula.Parse("items", itemSheet)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		opts tabula.Options
		want []map[string]string
	}{
		{
			name: "defaults",
			opts: nil,
			want: []map[string]string{
				{"id": "sword", "name": " Sword ", "cost": "10"},
				{"id": "shield", "name": "Shield", "cost": "5"},
			},
		},
		{
			name: "trim_space",
			opts: tabula.Options{"trim_space": "true"},
			want: []map[string]string{
				{"id": "sword", "name": "Sword", "cost": "10"},
				{"id": "shield", "name": "Shield", "cost": "5"},
			},
		},
		{
			name: "skip_labels",
			opts: tabula.Options{"skip_labels": "yes"},
			want: []map[string]string{
				{"name": " Sword ", "cost": "10"},
				{"name": "Shield", "cost": "5"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tabula.RecordImporter{}.Import(tab, tt.opts)
			if err != nil {
				t.Fatalf("Import() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Import() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRecordImporterEmptyTable(t *testing.T) {
	tab := tabula.New("empty", nil, 0)
	got, err := tabula.RecordImporter{}.Import(tab, nil)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	records, ok := got.([]map[string]string)
	if !ok || len(records) != 0 {
		t.Errorf("Import() = %#v, want zero records", got)
	}
}

func TestDictionaryImporter(t *testing.T) {
	tab, err := tabula.Parse("items", itemSheet)
	if err != nil {
		t.Fatal(err)
	}

	got, err := tabula.DictionaryImporter{}.Import(tab, nil)
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	want := map[string]string{"sword": " Sword ", "shield": "Shield"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("default value column mismatch (-want +got):\n%s", diff)
	}

	got, err = tabula.DictionaryImporter{}.Import(tab, tabula.Options{"value_column": "cost"})
	if err != nil {
		t.Fatalf("Import() error: %v", err)
	}
	want = map[string]string{"sword": "10", "shield": "5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("value_column=cost mismatch (-want +got):\n%s", diff)
	}
}

func TestDictionaryImporterFirstLabelWins(t *testing.T) {
	tab, err := tabula.Parse("dup", "id,v\nkey,first\nkey,second\n")
	if err != nil {
		t.Fatal(err)
	}
	got, err := tabula.DictionaryImporter{}.Import(tab, nil)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(map[string]string{"key": "first"}, got); diff != "" {
		t.Errorf("duplicate label handling mismatch (-want +got):\n%s", diff)
	}
}

func TestDictionaryImporterUnknownValueColumn(t *testing.T) {
	tab, err := tabula.Parse("items", itemSheet)
	if err != nil {
		t.Fatal(err)
	}
	_, err = tabula.DictionaryImporter{}.Import(tab, tabula.Options{"value_column": "ghost"})
	if !errors.Is(err, tabula.ErrNotFound) {
		t.Errorf("Import() error = %v, want ErrNotFound", err)
	}
}

func TestImporterRegistry(t *testing.T) {
	for _, name := range []string{"records", "dictionary"} {
		imp, ok := tabula.LookupImporter(name)
		if !ok {
			t.Fatalf("LookupImporter(%q) not found", name)
		}
		if imp.Name() != name {
			t.Errorf("importer registered under %q reports Name() = %q", name, imp.Name())
		}
	}

	if _, ok := tabula.LookupImporter("ghost"); ok {
		t.Error("LookupImporter(ghost) unexpectedly found")
	}

	names := tabula.Importers()
	if len(names) < 2 {
		t.Fatalf("Importers() = %v, want at least the built-ins", names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Importers() not sorted: %v", names)
		}
	}
}

func TestOptionsBool(t *testing.T) {
	opts := tabula.Options{"a": "true", "b": "YES", "c": "0", "d": "nonsense"}
	for key, want := range map[string]bool{"a": true, "b": true, "c": false, "d": false, "missing": false} {
		if got := opts.Bool(key); got != want {
			t.Errorf("Bool(%q) = %v, want %v", key, got, want)
		}
	}
}
