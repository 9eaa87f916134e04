package core

import "testing"

func TestViewportRoundTrip(t *testing.T) {
	v := Viewport{Origin: Pt(1, 2), Cols: 60, Rows: 20, WorldW: 600, WorldH: 400}

	if got := v.ToCell(Pt(0, 0)); got != Pt(1, 2) {
		t.Errorf("ToCell(0, 0) = %v, expected origin", got)
	}
	if got := v.ToCell(Pt(300, 200)); got != Pt(31, 12) {
		t.Errorf("ToCell(300, 200) = %v, expected (31, 12)", got)
	}

	// Converting a cell to world and back lands in the same cell
	for _, c := range []Point{Pt(1, 2), Pt(10, 7), Pt(60, 21)} {
		if got := v.ToCell(v.ToWorld(c)); got != c {
			t.Errorf("ToCell(ToWorld(%v)) = %v", c, got)
		}
	}
}

func TestViewportCellRectMinimumSize(t *testing.T) {
	v := Viewport{Cols: 10, Rows: 5, WorldW: 600, WorldH: 400}

	r := v.CellRect(NewRect(0, 0, 25, 25))
	if r.W < 1 || r.H < 1 {
		t.Errorf("CellRect should be at least 1x1, got %+v", r)
	}
}

func TestViewportDegenerate(t *testing.T) {
	v := Viewport{Origin: Pt(2, 2)}
	if got := v.ToCell(Pt(100, 100)); got != Pt(2, 2) {
		t.Errorf("Zero-sized world should map to origin, got %v", got)
	}
	if v.ScaleX() != 0 || v.ScaleY() != 0 {
		t.Error("Zero-sized world should have zero scale")
	}
}
