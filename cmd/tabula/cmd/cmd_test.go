package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToSelector(t *testing.T) {
	tests := []struct {
		arg    string
		byName bool
		want   string // Selector.String()
	}{
		{"3", false, "3"},
		{"0", false, "0"},
		{"-1", false, `"-1"`},
		{"Value", false, `"Value"`},
		{"3", true, `"3"`},
	}

	for _, tt := range tests {
		getByName = tt.byName
		if got := toSelector(tt.arg).String(); got != tt.want {
			t.Errorf("toSelector(%q) with names=%v = %s, want %s", tt.arg, tt.byName, got, tt.want)
		}
	}
	getByName = false
}

func TestCollectOptions(t *testing.T) {
	optsFile := filepath.Join(t.TempDir(), "opts.yaml")
	if err := os.WriteFile(optsFile, []byte("trim_space: \"true\"\nvalue_column: name\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := collectOptions(optsFile, []string{"value_column=cost", "skip_labels=yes"})
	if err != nil {
		t.Fatalf("collectOptions() error: %v", err)
	}

	// Flags win over the file on duplicate keys.
	want := map[string]string{
		"trim_space":   "true",
		"value_column": "cost",
		"skip_labels":  "yes",
	}
	if diff := cmp.Diff(want, map[string]string(got)); diff != "" {
		t.Errorf("collectOptions() mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectOptionsMalformedFlag(t *testing.T) {
	if _, err := collectOptions("", []string{"no-equals-sign"}); err == nil {
		t.Error("collectOptions() = nil error, want failure for malformed --opt")
	}
}
