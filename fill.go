package scratch

import (
	"image"
	"io"

	xdraw "golang.org/x/image/draw"
)

// Fill defines the paint source for the overlay: what the scratch surface
// looks like before it is rubbed away.
//
// Implementations must be comparable (value types without slices, or
// pointers); the compositor uses fill identity in its shallow change check
// to decide whether a re-render is needed.
type Fill interface {
	// fillMarker is a sealed-interface marker; only fills defined in this
	// package satisfy Fill. Custom overlay content can be supplied as a
	// pre-rendered image via ImageFill.
	fillMarker()

	// ColorAt returns the fill color at the given surface coordinates.
	ColorAt(x, y float64) RGBA
}

// SolidFill paints the overlay with a single color.
type SolidFill struct {
	C RGBA
}

func (SolidFill) fillMarker() {}

// ColorAt returns the solid color regardless of position.
func (f SolidFill) ColorAt(_, _ float64) RGBA {
	return f.C
}

// Solid creates a solid fill from a color.
func Solid(c RGBA) SolidFill {
	return SolidFill{C: c}
}

// SolidHex creates a solid fill from a hex color string.
func SolidHex(hex string) SolidFill {
	return SolidFill{C: Hex(hex)}
}

// preparer is implemented by fills that need the surface size before
// ColorAt sampling; the compositor calls it once per render.
type preparer interface {
	prepare(width, height int)
}

// ImageFill paints the overlay with a raster image scaled to the surface.
// The source image is rescaled lazily when the compositor reports the
// surface size, using bilinear interpolation.
type ImageFill struct {
	src    image.Image
	scaled *image.NRGBA
}

// NewImageFill creates an image fill from a decoded image.
func NewImageFill(src image.Image) *ImageFill {
	return &ImageFill{src: src}
}

// DecodeImageFill decodes an image from r and returns a fill for it.
// On decode failure it reports the error through the package logger and
// returns the fallback fill instead: the scratch interaction must remain
// usable without the texture. Callers are responsible for registering the
// relevant image decoders (image/png, image/jpeg, ...).
func DecodeImageFill(r io.Reader, fallback Fill) Fill {
	img, format, err := image.Decode(r)
	if err != nil {
		Logger().Warn("overlay image decode failed, using fallback fill", "err", err)
		return fallback
	}
	Logger().Debug("overlay image decoded", "format", format, "bounds", img.Bounds())
	return NewImageFill(img)
}

func (*ImageFill) fillMarker() {}

// prepare rescales the source image to the surface size if it is not
// already cached at those dimensions.
func (f *ImageFill) prepare(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if f.scaled != nil {
		b := f.scaled.Bounds()
		if b.Dx() == width && b.Dy() == height {
			return
		}
	}
	f.scaled = image.NewNRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(f.scaled, f.scaled.Bounds(), f.src, f.src.Bounds(), xdraw.Src, nil)
}

// ColorAt samples the scaled image at the nearest pixel. Before the first
// prepare call (or for a zero-size surface) it returns transparent.
func (f *ImageFill) ColorAt(x, y float64) RGBA {
	if f.scaled == nil {
		return Transparent
	}
	b := f.scaled.Bounds()
	ix, iy := int(x), int(y)
	if ix < 0 || ix >= b.Dx() || iy < 0 || iy >= b.Dy() {
		return Transparent
	}
	return FromColor(f.scaled.NRGBAAt(ix, iy))
}
