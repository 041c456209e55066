package combobox

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var colors = []Option{{Value: "1", Label: "Red"}, {Value: "2", Label: "Blue"}, {Value: "3", Label: "Dark red"}}

func TestPresentUnsetFirst(t *testing.T) {
	unset := Option{Label: "None"}
	for _, f := range []string{"", "red", "zzz"} {
		got := Present(colors, f, unset)
		if got[0] != (Option{Value: "", Label: "None"}) {
			t.Fatalf("filter %q: first row = %+v", f, got[0])
		}
	}
	if got := Present(nil, "", unset); len(got) != 1 {
		t.Fatalf("empty options should present only the unset row, got %v", got)
	}
}

func TestPresentCaseInsensitiveLabelMatch(t *testing.T) {
	got := Present([]Option{{Value: "a", Label: "Apple"}}, "APP", Option{})
	if len(got) != 2 || got[1].Value != "a" {
		t.Fatalf("APP should keep Apple, got %v", got)
	}

	got = Present(colors, "RED", Option{Label: "None"})
	want := []Option{{Label: "None"}, {Value: "1", Label: "Red"}, {Value: "3", Label: "Dark red"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("presented list (-want +got):\n%s", diff)
	}
}

func TestPresentIgnoresValues(t *testing.T) {
	got := Present(colors, "2", Option{})
	if len(got) != 1 {
		t.Fatalf("filter must not match option values, got %v", got)
	}
}

func TestPresentEmptyFilterKeepsAll(t *testing.T) {
	got := Present(colors, "", Option{})
	if diff := cmp.Diff(colors, got[1:]); diff != "" {
		t.Fatalf("unfiltered options (-want +got):\n%s", diff)
	}
}

func TestChangeString(t *testing.T) {
	cases := map[string]Change{
		"cleared": {Cleared: true},
		"blank":   {},
		"7":       {Value: "7"},
	}
	for want, c := range cases {
		if c.String() != want {
			t.Fatalf("%+v.String() = %q, want %q", c, c.String(), want)
		}
	}
	if !(Change{}).Blank() || (Change{Cleared: true}).Blank() {
		t.Fatal("Blank() mismatch")
	}
}
