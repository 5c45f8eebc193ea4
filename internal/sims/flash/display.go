package flash

import "image/color"

// DisplayFlash marks a cell that flashed during the most recent tick in the
// Sim display buffer. Values 0-9 are plain energies.
const DisplayFlash = MaxEnergy + 1

var flashPalette = buildPalette()

// Palette maps display values to colours: a blue ramp for energies and
// yellow for cells that just flashed.
func (s *Sim) Palette() []color.RGBA {
	return flashPalette
}

func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, DisplayFlash+1)
	dim := color.NRGBA{R: 8, G: 16, B: 48, A: 255}
	bright := color.NRGBA{R: 90, G: 150, B: 255, A: 255}
	for e := 0; e <= MaxEnergy; e++ {
		palette[e] = toRGBA(blendColors(dim, bright, float64(e)/MaxEnergy))
	}
	palette[DisplayFlash] = color.RGBA{R: 255, G: 220, B: 40, A: 255}
	return palette
}

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	inv := 1 - overlayWeight
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*inv + float64(b)*overlayWeight + 0.5)
	}
	return color.NRGBA{
		R: mix(base.R, overlay.R),
		G: mix(base.G, overlay.G),
		B: mix(base.B, overlay.B),
		A: mix(base.A, overlay.A),
	}
}

// DisplayValue encodes a cell for the display buffer. Every cell charges once
// per tick, so after at least one tick an energy of zero means the cell
// flashed in that tick.
func DisplayValue(c Cell, ticked bool) uint8 {
	if ticked && c.Energy == 0 {
		return DisplayFlash
	}
	if c.Energy > MaxEnergy {
		return MaxEnergy
	}
	return uint8(c.Energy)
}
