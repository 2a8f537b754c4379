package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EnsureLayer returns an offscreen image of exactly w×h, reusing img when the
// size already matches. The returned image is cleared.
//
// Layers are composited every frame, so callers keep the result in a field
// and pass it back in on the next frame.
func EnsureLayer(img *ebiten.Image, w, h int) *ebiten.Image {
	if w <= 0 || h <= 0 {
		return nil
	}
	if img != nil {
		b := img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			img.Clear()
			return img
		}
		img.Deallocate()
	}
	return ebiten.NewImage(w, h)
}

// ClipCircle keeps only the pixels of layer inside the circle (cx, cy, r).
//
// The mask is drawn with BlendDestinationIn, so destination alpha is
// multiplied by the mask alpha. r <= 0 clears the layer.
func ClipCircle(layer, mask *ebiten.Image, cx, cy, r float64) *ebiten.Image {
	if layer == nil {
		return mask
	}
	b := layer.Bounds()
	mask = EnsureLayer(mask, b.Dx(), b.Dy())
	if r <= 0 {
		layer.Clear()
		return mask
	}
	vector.DrawFilledCircle(mask, float32(cx), float32(cy), float32(r), White.NRGBA(), true)

	op := &ebiten.DrawImageOptions{}
	op.Blend = ebiten.BlendDestinationIn
	layer.DrawImage(mask, op)
	return mask
}

// CompositeLayer draws layer onto dst at (x, y) with the given opacity.
// Opacity <= 0 draws nothing.
func CompositeLayer(dst, layer *ebiten.Image, x, y, opacity float64) {
	if dst == nil || layer == nil || opacity <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(float32(Clamp01(opacity)))
	dst.DrawImage(layer, op)
}

// CompositeLayerScaled draws layer scaled by s about the layer center, then
// positioned so the center lands on (cx, cy).
func CompositeLayerScaled(dst, layer *ebiten.Image, cx, cy, s, opacity float64) {
	if dst == nil || layer == nil || opacity <= 0 || s <= 0 {
		return
	}
	b := layer.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(Clamp01(opacity)))
	dst.DrawImage(layer, op)
}
