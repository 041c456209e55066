package table

import "testing"

type recorder struct{ got []Descriptor }

func (r *recorder) onChange(d Descriptor) { r.got = append(r.got, d) }

func TestRequestSortToggle(t *testing.T) {
	var rec recorder
	c := New(nil, rec.onChange)

	c.RequestSort("Age")
	c.RequestSort("Age")
	c.RequestSort("Age")

	want := []Direction{Ascending, Descending, Ascending}
	if len(rec.got) != len(want) {
		t.Fatalf("callback fired %d times, want %d", len(rec.got), len(want))
	}
	for i, d := range rec.got {
		if d.Key != "Age" || d.Direction != want[i] {
			t.Fatalf("call %d: got %+v", i, d)
		}
	}
}

func TestRequestSortOtherKeyStartsAscending(t *testing.T) {
	var rec recorder
	c := New(nil, rec.onChange, WithDefault("Name", Ascending))

	c.RequestSort("Age")
	if got := c.Descriptor(); got != (Descriptor{Key: "Age", Direction: Ascending}) {
		t.Fatalf("descriptor = %+v", got)
	}

	c.RequestSort("Age")
	c.RequestSort("Name")
	if got := rec.got[len(rec.got)-1]; got != (Descriptor{Key: "Name", Direction: Ascending}) {
		t.Fatalf("switching from a descending column: %+v", got)
	}
}

func TestRequestSortFromDefaultAscending(t *testing.T) {
	var rec recorder
	c := New(nil, rec.onChange, WithDefault("Age", Ascending))
	c.RequestSort("Age")
	if got := rec.got[0]; got != (Descriptor{Key: "Age", Direction: Descending}) {
		t.Fatalf("got %+v", got)
	}
}

func TestControlledNeverWritesLocally(t *testing.T) {
	ext := Descriptor{Key: "Age", Direction: Ascending}
	var rec recorder
	c := New(nil, rec.onChange, WithExternal(&ext), WithDefault("Name", Descending))

	if !c.Controlled() {
		t.Fatal("expected controlled mode")
	}
	c.RequestSort("Age")
	if ext != (Descriptor{Key: "Age", Direction: Ascending}) {
		t.Fatalf("controller wrote the external descriptor: %+v", ext)
	}
	if c.Descriptor() != ext {
		t.Fatalf("controlled descriptor = %+v, want %+v", c.Descriptor(), ext)
	}
	if len(rec.got) != 1 || rec.got[0].Direction != Descending {
		t.Fatalf("callback = %+v", rec.got)
	}

	// the owner applies the change
	ext = rec.got[0]
	if c.Indicator("Age") != DescendingActive {
		t.Fatalf("indicator after owner update = %v", c.Indicator("Age"))
	}
}

func TestWithExternalNilIsUncontrolled(t *testing.T) {
	c := New(nil, nil, WithExternal(nil), WithDefault("Name", Descending))
	if c.Controlled() {
		t.Fatal("nil external pointer must not switch to controlled mode")
	}
	c.RequestSort("Name")
	if got := c.Descriptor(); got.Direction != Ascending {
		t.Fatalf("descriptor = %+v", got)
	}
}

func TestIndicator(t *testing.T) {
	c := New(nil, nil)
	if c.Indicator("Name") != Neutral {
		t.Fatal("unsorted controller should be neutral")
	}
	c.RequestSort("Name")
	if c.Indicator("Name") != AscendingActive || c.Indicator("Age") != Neutral {
		t.Fatalf("after first sort: %v / %v", c.Indicator("Name"), c.Indicator("Age"))
	}
	c.RequestSort("Name")
	if c.Indicator("Name") != DescendingActive {
		t.Fatalf("after second sort: %v", c.Indicator("Name"))
	}
	c.RequestSort("missing")
	if c.Indicator("Name") != Neutral {
		t.Fatal("unknown key should leave every header neutral")
	}
}

func TestActivateSkipsPlainHeaders(t *testing.T) {
	var rec recorder
	c := New(nil, rec.onChange)
	Activate(Column{Key: "actions", Title: "Actions", Unsortable: true}, c)
	Activate(Column{Title: "Notes"}, c)
	if len(rec.got) != 0 {
		t.Fatalf("plain headers requested a sort: %+v", rec.got)
	}
	Activate(Column{Key: "name", Title: "Name"}, c)
	if len(rec.got) != 1 {
		t.Fatal("sortable header did not request a sort")
	}
}

func TestColumnAt(t *testing.T) {
	cols := []Column{{Key: "a", Width: 4}, {Key: "b", Width: 6}, {Key: "c"}}
	cases := []struct {
		x    int
		want string
		ok   bool
	}{
		{0, "a", true},
		{3, "a", true},
		{4, "", false},
		{5, "b", true},
		{10, "b", true},
		{12, "c", true},
		{12 + defaultCellWidth, "", false},
		{-1, "", false},
	}
	for _, tc := range cases {
		col, ok := ColumnAt(cols, tc.x)
		if ok != tc.ok || col.Key != tc.want {
			t.Fatalf("ColumnAt(%d) = %q,%v want %q,%v", tc.x, col.Key, ok, tc.want, tc.ok)
		}
	}
}

func TestRenderHeaderGlyphs(t *testing.T) {
	cols := []Column{{Key: "name", Title: "Name", Width: 10}, {Key: "notes", Title: "Notes", Width: 10, Unsortable: true}}
	c := New(nil, nil, WithDefault("name", Descending))
	out := RenderHeader(cols, c, DefaultStyles())
	if !containsAll(out, "Name", "▼", "Notes") {
		t.Fatalf("header missing parts: %q", out)
	}
	if containsAll(out, "↕") {
		t.Fatalf("plain header should not carry a glyph: %q", out)
	}
}
