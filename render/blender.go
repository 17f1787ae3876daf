package render

// BlendMode defines how a source color composites onto a canvas pixel
type BlendMode uint8

const (
	BlendReplace BlendMode = iota // Dst = Src
	BlendAlpha                    // Dst = Src*α + Dst*(1-α)
	BlendAdd                      // Dst = clamp(Dst + Src*α)
	BlendMax                      // Dst = max(Dst, Src) per channel, faded by α
	BlendScreen                   // Dst = 1 - (1-Dst)*(1-Src), faded by α
)

// apply composites src onto dst
func (m BlendMode) apply(dst, src RGB, alpha float64) RGB {
	switch m {
	case BlendReplace:
		return src
	case BlendAlpha:
		return Blend(dst, src, alpha)
	case BlendAdd:
		return Add(dst, src, alpha)
	case BlendMax:
		return Max(dst, src, alpha)
	case BlendScreen:
		return Screen(dst, src, alpha)
	}
	return dst
}
