package folco

import (
	"image/color"
	"testing"
)

func TestRect(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 100, H: 200}
	if r.Right() != 110 || r.Bottom() != 220 {
		t.Errorf("Right/Bottom = %d/%d, want 110/220", r.Right(), r.Bottom())
	}

	f := RectFromSize(5, 6)
	if f != (Rect{W: 5, H: 6}) {
		t.Errorf("RectFromSize = %+v", f)
	}
}

func TestSizeIsSquare(t *testing.T) {
	if !(Size{W: 100, H: 100}).IsSquare() {
		t.Error("100x100 should be square")
	}
	if (Size{W: 100, H: 200}).IsSquare() {
		t.Error("100x200 should not be square")
	}
}

func TestIconLogicalSize(t *testing.T) {
	ic := FullContentIcon(NewPixmap(64, 64), 2.0)
	w, h := ic.LogicalSize()
	if w != 32 || h != 32 {
		t.Errorf("LogicalSize = %v x %v, want 32 x 32", w, h)
	}
	if ic.Content != RectFromSize(64, 64) {
		t.Errorf("Content = %+v, want full image", ic.Content)
	}
}

func TestIconClone(t *testing.T) {
	ic := FullContentIcon(NewPixmap(2, 2), 1.0)
	c := ic.Clone()
	c.Pix.SetPixel(0, 0, color.NRGBA{R: 1, A: 1})
	if ic.Pix.GetPixel(0, 0) != (color.NRGBA{}) {
		t.Error("mutating the clone changed the original")
	}
}

func TestIconSet(t *testing.T) {
	set := NewIconSet()
	if !set.IsEmpty() {
		t.Error("new set should be empty")
	}

	set.Add(FullContentIcon(NewPixmap(16, 16), 1.0))
	set.Add(FullContentIcon(NewPixmap(32, 32), 1.0))
	if set.Len() != 2 || set.IsEmpty() {
		t.Errorf("Len = %d", set.Len())
	}
}

func TestClosestLogicalSize(t *testing.T) {
	type variant struct {
		px    int
		scale float32
	}
	tests := []struct {
		name      string
		variants  []variant
		target    int
		wantPx    int
		wantScale float32
	}{
		{
			name:     "nearest below wins",
			variants: []variant{{16, 1}, {32, 1}},
			target:   20,
			wantPx:   16,
		},
		{
			name:     "nearest above wins",
			variants: []variant{{16, 1}, {32, 1}},
			target:   30,
			wantPx:   32,
		},
		{
			name:      "scale divides into logical size",
			variants:  []variant{{64, 2}, {16, 1}},
			target:    32,
			wantPx:    64,
			wantScale: 2,
		},
		{
			name:     "tie goes to first added",
			variants: []variant{{16, 1}, {32, 1}},
			target:   24,
			wantPx:   16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := NewIconSet()
			for _, v := range tt.variants {
				set.Add(FullContentIcon(NewPixmap(v.px, v.px), v.scale))
			}
			ic, ok := set.ClosestLogicalSize(tt.target)
			if !ok {
				t.Fatal("ClosestLogicalSize reported empty set")
			}
			if ic.Pix.Width() != tt.wantPx {
				t.Errorf("got %dpx, want %dpx", ic.Pix.Width(), tt.wantPx)
			}
			if tt.wantScale != 0 && ic.Scale != tt.wantScale {
				t.Errorf("got scale %v, want %v", ic.Scale, tt.wantScale)
			}
		})
	}
}

func TestClosestLogicalSizeEmpty(t *testing.T) {
	if _, ok := NewIconSet().ClosestLogicalSize(16); ok {
		t.Error("empty set should report no match")
	}
}

func TestIconSetOf(t *testing.T) {
	set := IconSetOf(
		FullContentIcon(NewPixmap(16, 16), 1.0),
		FullContentIcon(NewPixmap(32, 32), 1.0),
	)
	if set.Len() != 2 {
		t.Errorf("Len = %d, want 2", set.Len())
	}
}
