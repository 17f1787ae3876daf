package parameter

// Chain Stroke
const (
	// EdgeWidthRoot/Tip taper stroke width along the chain in world units
	EdgeWidthRoot = 6.4
	EdgeWidthTip  = 3.2

	// EdgeScaleFactor maps projected scale into a width multiplier clamped to [Min, Max]
	EdgeScaleFactor = 0.02
	EdgeScaleMin    = 0.6
	EdgeScaleMax    = 2.0

	// EdgeDepthAlphaBase is alpha at z=0; alpha moves by z/(2*radius) clamped to [Min, 1]
	EdgeDepthAlphaBase = 0.7
	EdgeDepthAlphaMin  = 0.2

	// EdgeGlowWidth/Alpha is the inner highlight pass relative to the main stroke
	EdgeGlowWidth = 0.6
	EdgeGlowAlpha = 0.6
)

// Core Glow
const (
	CoreGlowLayers       = 3
	CoreGlowSpread       = 0.35
	CoreGlowAlphaFalloff = 0.65
)

// HUD
const (
	HUDMarginX = 2
	HUDMarginY = 1
	HUDWidth   = 36
)

// Background Stars
const (
	StarAlphaBase    = 0.2
	StarAlphaTwinkle = 0.6
	StarSizeBase     = 0.8
	StarSizeTwinkle  = 0.6

	// StarMinPixelRadius keeps distant stars visible on small canvases
	StarMinPixelRadius = 0.35
)

// Core Bridge Halo
// Ring spans radius*(HaloInner+pulse*HaloInnerPulse) to radius*(HaloOuter+pulse*HaloOuterPulse)
const (
	CoreHaloPulseBase  = 0.4
	CoreHaloPulseEase  = 0.35
	CoreHaloInner      = 1.05
	CoreHaloInnerPulse = 0.1
	CoreHaloOuter      = 1.1
	CoreHaloOuterPulse = 0.2
	CoreHaloAlphaBase  = 0.35
	CoreHaloAlphaPulse = 0.3

	// CoreBloomRadius extends a soft perceptual falloff past the outermost layer
	CoreBloomRadius = 1.8
	CoreBloomAlpha  = 0.25
)

// Bridge Strokes
// Width and alpha grow by the ease term on top of the base value
const (
	BridgeOuterWidth     = 2.4
	BridgeOuterWidthEase = 1.6
	BridgeOuterAlpha     = 0.25
	BridgeOuterAlphaEase = 0.35

	BridgeInnerWidth     = 1.2
	BridgeInnerWidthEase = 1.2
	BridgeInnerAlpha     = 0.55
	BridgeInnerAlphaEase = 0.25

	BridgeParticleRadius     = 3.2
	BridgeParticleRadiusGlow = 1.8
	BridgeParticleAlpha      = 0.35
	BridgeParticleAlphaGlow  = 0.55
)

// HUD Panel
const (
	HUDPanelAlpha  = 0.7
	HUDBorderAlpha = 0.4
	HUDHintAlpha   = 0.8
)
