package shortcut

import "testing"

func TestRegistry_RegisterKeepsModeOrder(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.Register("Global", Shortcut{Key: Joined("?"), Title: "Help"})
	r.Register("Editor", Shortcut{Key: Joined("ctrl+s"), Title: "Save"})
	r.Register("Global", Shortcut{Key: Joined("q"), Title: "Quit"})

	modes := r.Registered()
	if len(modes) != 2 {
		t.Fatalf("got %d modes, want 2", len(modes))
	}
	if modes[0].Title != "Global" || modes[1].Title != "Editor" {
		t.Fatalf("mode order = %q, %q", modes[0].Title, modes[1].Title)
	}
	if len(modes[0].Shortcuts) != 2 || modes[0].Shortcuts[1].Title != "Quit" {
		t.Fatalf("Global shortcuts = %+v", modes[0].Shortcuts)
	}
	if r.Len() != 3 {
		t.Fatalf("Len = %d, want 3", r.Len())
	}
}

func TestRegistry_RegisteredIsACopy(t *testing.T) {
	t.Parallel()

	r := NewRegistry()
	r.RegisterModes(Mode{
		Title:     "Global",
		Shortcuts: []Shortcut{{Key: Joined("q"), Titles: []string{"Quit"}}},
	})

	snapshot := r.Registered()
	snapshot[0].Title = "Changed"
	snapshot[0].Shortcuts[0].Titles[0] = "Changed"
	snapshot[0].Shortcuts = append(snapshot[0].Shortcuts, Shortcut{})

	again := r.Registered()
	if again[0].Title != "Global" {
		t.Fatalf("mode title leaked: %q", again[0].Title)
	}
	if again[0].Shortcuts[0].Titles[0] != "Quit" {
		t.Fatalf("titles leaked: %v", again[0].Shortcuts[0].Titles)
	}
	if len(again[0].Shortcuts) != 1 {
		t.Fatalf("shortcut count leaked: %d", len(again[0].Shortcuts))
	}
}

func TestMergeModes(t *testing.T) {
	t.Parallel()

	in := []Mode{
		{Title: "Global", Shortcuts: []Shortcut{{Key: Joined("?"), Title: "Help"}}},
		{Title: "Editor", Shortcuts: []Shortcut{{Key: Joined("ctrl+s"), Title: "Save"}}},
		{Title: "Global", Shortcuts: []Shortcut{{Key: Joined("q"), Title: "Quit"}}},
	}

	got := MergeModes(in)
	if len(got) != 2 || got[0].Title != "Global" || got[1].Title != "Editor" {
		t.Fatalf("MergeModes = %+v", got)
	}
	if len(got[0].Shortcuts) != 2 || got[0].Shortcuts[1].Title != "Quit" {
		t.Fatalf("Global shortcuts = %+v", got[0].Shortcuts)
	}
	if len(in) != 3 || len(in[0].Shortcuts) != 1 {
		t.Fatal("input modified")
	}
}
