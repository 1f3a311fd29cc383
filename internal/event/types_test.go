package event

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindNone, "None"},
		{KindWindowCreate, "WindowCreate"},
		{KindMouseButtonRelease, "MouseButtonRelease"},
		{KindKeyType, "KeyType"},
		{kindCount, "Unknown"},
		{Kind(200), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_Valid(t *testing.T) {
	if KindNone.Valid() {
		t.Error("KindNone should not be valid")
	}
	if kindCount.Valid() {
		t.Error("kindCount should not be valid")
	}
	for _, k := range Kinds() {
		if !k.Valid() {
			t.Errorf("%s should be valid", k)
		}
	}
}

func TestKinds(t *testing.T) {
	kinds := Kinds()
	if len(kinds) != 11 {
		t.Fatalf("expected 11 kinds, got %d", len(kinds))
	}
	if kinds[0] != KindWindowCreate || kinds[len(kinds)-1] != KindKeyType {
		t.Errorf("unexpected order %v", kinds)
	}

	seen := make(map[string]bool)
	for _, k := range kinds {
		name := k.String()
		if seen[name] {
			t.Errorf("duplicate kind name %q", name)
		}
		seen[name] = true
		if k.Category() == CategoryNone {
			t.Errorf("%s has no category", k)
		}
	}
}

func TestCategory_Has(t *testing.T) {
	c := CategoryMouse | CategoryMouseButton

	if !c.Has(CategoryMouse) {
		t.Error("expected Mouse")
	}
	if !c.Has(CategoryMouse | CategoryMouseButton) {
		t.Error("expected both bits")
	}
	if c.Has(CategoryKeyboard) {
		t.Error("did not expect Keyboard")
	}
	if c.Has(CategoryNone) {
		t.Error("Has(CategoryNone) should be false")
	}
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryNone, "None"},
		{CategoryWindow, "Window"},
		{CategoryKeyboard, "Keyboard"},
		{CategoryWindow | CategoryMouse, "Window|Mouse"},
		{CategoryMouse | CategoryMouseButton | CategoryKeyboard, "Mouse|MouseButton|Keyboard"},
	}

	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("Category(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestListenerFunc(t *testing.T) {
	var got Event
	var l Listener = ListenerFunc(func(e Event) { got = e })

	ev := NewKeyType('x')
	l.OnEvent(ev)

	if got != Event(ev) {
		t.Errorf("listener received %v, want %v", got, ev)
	}
}
