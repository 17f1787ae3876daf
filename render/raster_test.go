package render

import (
	"testing"
)

func TestFillDisc(t *testing.T) {
	c := NewCanvas(20, 10)
	c.FillDisc(10.5, 10.5, 4, white, BlendAlpha, 1)

	if got := c.Pixel(10, 10); got != white {
		t.Errorf("Expected solid center, got %+v", got)
	}
	if got := c.Pixel(15, 10); got != RGBBlack {
		t.Errorf("Expected untouched pixel outside the disc, got %+v", got)
	}
	if got := c.Pixel(14, 10); got.R == 0 || got.R == 255 {
		t.Errorf("Expected antialiased edge pixel, got %+v", got)
	}
}

func TestFillDiscSubPixel(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillDisc(5.5, 5.5, 0.25, white, BlendAlpha, 1)

	if got := c.Pixel(5, 5); got.R != 127 {
		t.Errorf("Expected faded single pixel 127, got %d", got.R)
	}
}

func TestStrokeRing(t *testing.T) {
	c := NewCanvas(20, 10)
	c.StrokeRing(10.5, 10.5, 6, 2, white, BlendAlpha, 1)

	if got := c.Pixel(16, 10); got != white {
		t.Errorf("Expected ring pixel on radius, got %+v", got)
	}
	if got := c.Pixel(10, 10); got != RGBBlack {
		t.Errorf("Expected hollow center, got %+v", got)
	}
}

func TestStrokeLine(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		y     int
		want  uint8
	}{
		{"On line", 2, 5, 255},
		{"Within half width", 3, 4, 255},
		{"Outside", 2, 7, 0},
		{"Thin line fades", 0.5, 5, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(20, 10)
			c.StrokeLine(2, 5.5, 18, 5.5, tt.width, white, BlendAlpha, 1)
			if got := c.Pixel(10, tt.y).R; got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestStrokeQuadBlendsJointsOnce(t *testing.T) {
	c := NewCanvas(20, 10)
	// Straight curve whose polyline joints fall on x=6,10,14
	c.StrokeQuad(2, 5.5, 10, 5.5, 18, 5.5, 4, 1, white, BlendAdd, 0.5)

	if got := c.Pixel(10, 5).R; got != 127 {
		t.Errorf("Expected single additive contribution 127 at a joint, got %d", got)
	}
	if got := c.Pixel(10, 4); got != RGBBlack {
		t.Errorf("Expected nothing one pixel off the curve, got %+v", got)
	}
}

func TestVerticalGradient(t *testing.T) {
	c := NewCanvas(2, 2)
	top, bottom := RGB{}, RGB{B: 255}
	c.VerticalGradient(top, bottom)

	if got := c.Pixel(1, 0); got != top {
		t.Errorf("Expected top row %+v, got %+v", top, got)
	}
	if got := c.Pixel(0, 3); got != bottom {
		t.Errorf("Expected bottom row %+v, got %+v", bottom, got)
	}
	if got := c.Pixel(0, 1).B; got != 85 {
		t.Errorf("Expected one third blend 85, got %d", got)
	}
}

func TestFillRectClips(t *testing.T) {
	c := NewCanvas(4, 1)
	c.FillRect(-5, -5, 2, 1, red, BlendReplace, 1)

	tests := []struct {
		x, y int
		want RGB
	}{
		{0, 0, red},
		{1, 0, red},
		{2, 0, RGBBlack},
		{0, 1, RGBBlack},
	}
	for _, tt := range tests {
		if got := c.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Expected %+v at (%d,%d), got %+v", tt.want, tt.x, tt.y, got)
		}
	}
}

func TestSegmentDistanceDegenerate(t *testing.T) {
	if got := segmentDistance(3, 4, 3, 4, 0, 0); got != 5 {
		t.Errorf("Expected distance to point 5, got %f", got)
	}
}
