package alias

import "testing"

func TestFindMatchingAliasCascadeScenario(t *testing.T) {
	set := map[string]bool{"- ka": true, "a sa": true, "か": true}

	cases := []struct {
		query string
		want  string
		ok    bool
	}{
		{"ka", "- ka", true},
		{"sa", "a sa", true},
		{"ku", "", false},
		{"か", "か", true},
	}

	for _, c := range cases {
		got, ok := FindMatchingAlias(c.query, set)
		if ok != c.ok || got != c.want {
			t.Fatalf("FindMatchingAlias(%q) = (%q, %v), want (%q, %v)", c.query, got, ok, c.want, c.ok)
		}
	}
}

func TestFindMatchingAliasStripsCVPrefix(t *testing.T) {
	set := map[string]bool{"ka": true}

	got, ok := FindMatchingAlias("- ka", set)
	if !ok || got != "ka" {
		t.Fatalf("FindMatchingAlias(\"- ka\") = (%q, %v), want (\"ka\", true)", got, ok)
	}
}

func TestFindMatchingAliasStripsVCV(t *testing.T) {
	set := map[string]bool{"ka": true}

	got, ok := FindMatchingAlias("a ka", set)
	if !ok || got != "ka" {
		t.Fatalf("FindMatchingAlias(\"a ka\") = (%q, %v), want (\"ka\", true)", got, ok)
	}
}

func TestFindMatchingAliasNoMatch(t *testing.T) {
	set := map[string]bool{"mi": true}

	if _, ok := FindMatchingAlias("zzz", set); ok {
		t.Fatal("expected no match for an alias absent from every cascade form")
	}
}

func TestFindMatchingAliasTerminatesWithinDepth(t *testing.T) {
	set := map[string]bool{}

	// A pathological input that would recurse indefinitely without the
	// depth bound: repeated vowel-context stripping.
	query := "a a a a a ka"

	if _, ok := FindMatchingAlias(query, set); ok {
		t.Fatal("expected no match for an unresolvable deeply nested alias")
	}
}
