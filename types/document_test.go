package types

import "testing"

func TestSortImages_PageThenVerticalPosition(t *testing.T) {
	records := []ImageRecord{
		{Name: "b", Page: 0, Y: 100},
		{Name: "a", Page: 0, Y: 50},
		{Name: "c", Page: 1, Y: 0},
	}

	SortImages(records)

	want := []string{"a", "b", "c"}
	for i, name := range want {
		if records[i].Name != name {
			t.Errorf("position %d: expected %s, got %s", i, name, records[i].Name)
		}
	}
}

func TestSortImages_StableForEqualPlacements(t *testing.T) {
	records := []ImageRecord{
		{Name: "first", Page: 2, Y: 0},
		{Name: "second", Page: 2, Y: 0},
	}

	SortImages(records)

	if records[0].Name != "first" || records[1].Name != "second" {
		t.Errorf("equal placements must keep extraction order, got %s then %s",
			records[0].Name, records[1].Name)
	}
}

func TestDescriptionResult_Render(t *testing.T) {
	if got := Ok("uma descrição").Render(); got != "uma descrição" {
		t.Errorf("expected verbatim text, got %q", got)
	}
	if got := Failed("api error").Render(); got != DescriptionUnavailable {
		t.Errorf("expected sentinel, got %q", got)
	}
	if !Failed("api error").Failed() {
		t.Error("Failed result must report Failed()")
	}
	if Ok("x").Failed() {
		t.Error("Ok result must not report Failed()")
	}
}
