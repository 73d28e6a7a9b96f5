package card

import "testing"

func TestHandAdd_SortsBySuitStable(t *testing.T) {
	var h Hand
	h.Add(MustParse("AD"), MustParse("9H"), MustParse("KC"), MustParse("QH"), MustParse("JS"))

	want := []Card{MustParse("9H"), MustParse("QH"), MustParse("JS"), MustParse("KC"), MustParse("AD")}
	if len(h) != len(want) {
		t.Fatalf("unexpected hand length: got=%d want=%d", len(h), len(want))
	}
	for i := range want {
		if h[i] != want[i] {
			t.Fatalf("unexpected card at %d: got=%v want=%v (hand %v)", i, h[i], want[i], h)
		}
	}
}

func TestHandRemove_FirstMatchOnly(t *testing.T) {
	var h Hand
	h.Add(MustParse("KH"), MustParse("KH"), MustParse("QH"))

	if !h.Remove(MustParse("KH")) {
		t.Fatalf("expected KH to be removed")
	}
	if h.Count(MustParse("KH")) != 1 {
		t.Fatalf("expected one KH to remain, hand %v", h)
	}
	if h.Remove(MustParse("AS")) {
		t.Fatalf("removing a missing card must report false")
	}
	if h.Len() != 2 {
		t.Fatalf("unexpected length %d", h.Len())
	}
}

func TestHandSuitQueries(t *testing.T) {
	var h Hand
	h.Add(MustParse("9H"), MustParse("9H"), MustParse("AH"), MustParse("QC"))

	if got := h.CountOfSuit(Heart); got != 3 {
		t.Fatalf("CountOfSuit(Heart) = %d, want 3", got)
	}
	if got := h.CountOfSuit(Spade); got != 0 {
		t.Fatalf("CountOfSuit(Spade) = %d, want 0", got)
	}
	if !h.HasSuit(Club) || h.HasSuit(Diamond) {
		t.Fatalf("unexpected HasSuit results for %v", h)
	}
	if got := h.Count(MustParse("9H")); got != 2 {
		t.Fatalf("Count(9H) = %d, want 2", got)
	}
	if !h.Contains(MustParse("QC")) || h.Contains(MustParse("QD")) {
		t.Fatalf("unexpected Contains results for %v", h)
	}
	if got := h.OfSuit(Heart); len(got) != 3 {
		t.Fatalf("OfSuit(Heart) = %v", got)
	}
}

func TestHandClone_IsIndependent(t *testing.T) {
	var h Hand
	h.Add(MustParse("AS"), MustParse("KS"))
	c := h.Clone()
	c.Remove(MustParse("AS"))
	if h.Len() != 2 {
		t.Fatalf("clone mutation leaked into original: %v", h)
	}
}
