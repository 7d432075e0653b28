package shortcut

import (
	"slices"
	"testing"
)

func TestKey_Forms(t *testing.T) {
	t.Parallel()

	seq := Sequence("ctrl", "shift", "enter")
	if !seq.IsSequence() {
		t.Fatal("Sequence key should report IsSequence")
	}
	if got := seq.Text(); got != "ctrl shift enter" {
		t.Fatalf("Sequence Text = %q", got)
	}
	if got := seq.Tokens(); !slices.Equal(got, []string{"ctrl", "shift", "enter"}) {
		t.Fatalf("Sequence Tokens = %v", got)
	}

	joined := Joined("ctrl+s")
	if joined.IsSequence() {
		t.Fatal("Joined key should not report IsSequence")
	}
	if got := joined.Text(); got != "ctrl+s" {
		t.Fatalf("Joined Text = %q", got)
	}
	if got := joined.Tokens(); !slices.Equal(got, []string{"ctrl", "s"}) {
		t.Fatalf("Joined Tokens = %v", got)
	}
}

func TestKey_SequenceDoesNotAliasInput(t *testing.T) {
	t.Parallel()

	tokens := []string{"alt", "x"}
	k := Sequence(tokens...)
	tokens[0] = "meta"
	k.Tokens()[1] = "y"

	if got := k.Text(); got != "alt x" {
		t.Fatalf("Text = %q after mutating caller slices", got)
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   Shortcut
		want []string
	}{
		{"nil titles, no title", Shortcut{Key: Joined("a")}, []string{}},
		{"title only", Shortcut{Title: "Save"}, []string{"Save"}},
		{"title already present", Shortcut{Title: "Save", Titles: []string{"Save"}}, []string{"Save"}},
		{"title appended last", Shortcut{Title: "Store", Titles: []string{"Save"}}, []string{"Save", "Store"}},
		{"titles only", Shortcut{Titles: []string{"Undo", "Revert"}}, []string{"Undo", "Revert"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got.Titles == nil {
				t.Fatal("Titles should never be nil after Normalize")
			}
			if !slices.Equal(got.Titles, tt.want) {
				t.Fatalf("Titles = %v, want %v", got.Titles, tt.want)
			}

			twice := Normalize(got)
			if !slices.Equal(twice.Titles, got.Titles) {
				t.Fatalf("Normalize is not idempotent: %v then %v", got.Titles, twice.Titles)
			}
		})
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	titles := make([]string, 1, 4) // spare capacity would expose aliasing
	titles[0] = "Save"
	in := Shortcut{Title: "Store", Titles: titles}

	out := Normalize(in)
	out.Titles[0] = "changed"

	if len(in.Titles) != 1 || in.Titles[0] != "Save" {
		t.Fatalf("input Titles changed to %v", in.Titles)
	}
	if got := titles[:2][1]; got != "" {
		t.Fatalf("Normalize wrote into the caller's backing array: %q", got)
	}
}

func TestNormalizeModes(t *testing.T) {
	t.Parallel()

	modes := []Mode{
		{Title: "Global", Shortcuts: []Shortcut{{Key: Joined("?"), Title: "Help"}}},
		{Title: "Empty"},
	}

	got := NormalizeModes(modes)
	if len(got) != 2 || got[0].Title != "Global" || got[1].Title != "Empty" {
		t.Fatalf("NormalizeModes modes = %+v", got)
	}
	if !slices.Equal(got[0].Shortcuts[0].Titles, []string{"Help"}) {
		t.Fatalf("Titles = %v", got[0].Shortcuts[0].Titles)
	}
	if modes[0].Shortcuts[0].Titles != nil {
		t.Fatal("NormalizeModes mutated its input")
	}
}
