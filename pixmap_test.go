package scratch

import (
	"image"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	c := RGBA2(0.5, 0.25, 1, 1)
	pm.SetPixel(3, 4, c)
	got := pm.GetPixel(3, 4)
	if !colorsEqual(got, c, 0.01) {
		t.Errorf("GetPixel = %+v, want %+v", got, c)
	}

	// Out of bounds: writes ignored, reads transparent.
	pm.SetPixel(-1, 0, White)
	pm.SetPixel(10, 0, White)
	if got := pm.GetPixel(-1, 0); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v, want transparent", got)
	}
}

func TestPixmapErase(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.Clear(RGB(1, 0, 0))

	pm.Erase(1, 1, 1.0)
	if a := pm.GetPixel(1, 1).A; a != 0 {
		t.Errorf("full erase alpha = %f, want 0", a)
	}

	pm.Erase(2, 2, 0.5)
	if a := pm.GetPixel(2, 2).A; a < 0.45 || a > 0.55 {
		t.Errorf("half erase alpha = %f, want ~0.5", a)
	}

	// Erase never resurrects alpha.
	pm.Erase(2, 2, 0)
	if a := pm.GetPixel(2, 2).A; a > 0.55 {
		t.Errorf("zero-coverage erase changed alpha to %f", a)
	}
}

func TestPixmapCompositeOver(t *testing.T) {
	dst := NewPixmap(4, 4)
	dst.Clear(RGB(0, 0, 1))

	src := NewPixmap(4, 4)
	src.SetPixel(0, 0, RGB(1, 0, 0))        // opaque: replaces
	src.SetPixel(1, 0, RGBA2(1, 0, 0, 0.5)) // translucent: blends
	// (2,0) stays transparent: dst preserved.

	src.CompositeOver(dst)

	if got := dst.GetPixel(0, 0); !colorsEqual(got, RGB(1, 0, 0), 0.01) {
		t.Errorf("opaque composite = %+v, want red", got)
	}
	if got := dst.GetPixel(1, 0); !colorsEqual(got, RGB(0.5, 0, 0.5), 0.02) {
		t.Errorf("translucent composite = %+v, want half red half blue", got)
	}
	if got := dst.GetPixel(2, 0); !colorsEqual(got, RGB(0, 0, 1), 0.01) {
		t.Errorf("transparent composite = %+v, want untouched blue", got)
	}
}

func TestPixmapImageRoundTrip(t *testing.T) {
	pm := NewPixmap(3, 2)
	pm.SetPixel(0, 0, RGB(1, 0, 0))
	pm.SetPixel(2, 1, RGBA2(0, 1, 0, 0.5))

	img := pm.ToImage()
	back := FromImage(img)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if !colorsEqual(pm.GetPixel(x, y), back.GetPixel(x, y), 0.01) {
				t.Errorf("pixel (%d,%d) changed in round trip", x, y)
			}
		}
	}
}

func TestPixmapImplementsImage(t *testing.T) {
	var _ image.Image = NewPixmap(1, 1)
}

func TestPixmapNegativeDimensions(t *testing.T) {
	pm := NewPixmap(-5, -5)
	if pm.Width() != 0 || pm.Height() != 0 {
		t.Errorf("negative dims produced %dx%d, want 0x0", pm.Width(), pm.Height())
	}
}
