package session

import "testing"

func TestNewTabHasUniqueID(t *testing.T) {
	t.Parallel()

	if NewTab().ID == NewTab().ID {
		t.Fatal("expected distinct tab ids")
	}
}

func TestBackForwardStayInBounds(t *testing.T) {
	t.Parallel()

	tab := NewTab()

	if tab.Back() {
		t.Fatal("Back at Library must not move")
	}
	if tab.Forward() {
		t.Fatal("Forward at tail must not move")
	}

	tab.Navigate(ToFolder("/v/a"))
	tab.Navigate(ToFile("/v/a/n.md"))

	if !tab.Back() || tab.ActiveEntry().Kind != EntryFolder {
		t.Fatalf("expected folder entry after Back, got %+v", tab.ActiveEntry())
	}
	if !tab.Forward() || tab.ActiveEntry().Kind != EntryFile {
		t.Fatalf("expected file entry after Forward, got %+v", tab.ActiveEntry())
	}
	if tab.Forward() {
		t.Fatal("Forward past tail must not move")
	}
}

func TestActiveEntryIsMutable(t *testing.T) {
	t.Parallel()

	tab := NewTab()
	tab.Navigate(ToFile("/v/n.md"))

	tab.ActiveEntry().Preview = true

	if !tab.History()[1].Preview {
		t.Fatal("expected preview flag to persist on the history entry")
	}
}
