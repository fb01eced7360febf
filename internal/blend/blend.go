// Package blend implements the Porter-Duff compositing operations the
// scratch overlay needs: coverage-weighted clear for erasing inside the
// overlay's own buffer, and source-over for compositing the overlay onto
// content beneath it.
//
// Pixels are 4-byte RGBA slices with straight (non-premultiplied) alpha,
// matching color.NRGBA.
package blend

// EraseCoverage applies Porter-Duff clear to px weighted by coverage in
// [0, 1]. Full coverage zeroes the pixel; fractional coverage scales the
// alpha down, anti-aliasing the erased edge. Color channels are left alone
// so repeated partial erases stay stable under straight alpha.
func EraseCoverage(px []uint8, coverage float64) {
	if coverage >= 1 {
		px[0] = 0
		px[1] = 0
		px[2] = 0
		px[3] = 0
		return
	}
	if coverage <= 0 {
		return
	}
	keep := 1 - coverage
	px[3] = uint8(float64(px[3])*keep + 0.5)
	if px[3] == 0 {
		px[0] = 0
		px[1] = 0
		px[2] = 0
	}
}

// SourceOver composites src over dst in place.
// Both are straight-alpha RGBA pixels.
func SourceOver(dst, src []uint8) {
	sa := uint32(src[3])
	if sa == 0 {
		return
	}
	if sa == 255 {
		copy(dst, src)
		return
	}
	da := uint32(dst[3])

	// out.a = sa + da*(1-sa)
	outA := sa*255 + da*(255-sa)
	if outA == 0 {
		dst[0], dst[1], dst[2], dst[3] = 0, 0, 0, 0
		return
	}

	// Straight alpha source-over: blend premultiplied, then unpremultiply.
	for i := 0; i < 3; i++ {
		sc := uint32(src[i]) * sa
		dc := uint32(dst[i]) * da * (255 - sa) / 255
		dst[i] = uint8((sc + dc) * 255 / outA)
	}
	dst[3] = uint8(outA / 255)
}
