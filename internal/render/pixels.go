package render

import (
	"image/color"

	"lifegrid/internal/core"
)

// fillCellRGBA converts cell liveness and hints into RGBA pixels in
// buf. Live cells carrying a hint use the hint's color; live cells
// without one (placed by the user) use the on color, and dead cells
// the off color.
func fillCellRGBA(buf []byte, cells []uint8, hints []core.Hint, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c == core.Dead {
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
			continue
		}
		if i < len(hints) && hints[i] != core.NoHint {
			r, g, b := hints[i].RGB()
			buf[base+0] = r
			buf[base+1] = g
			buf[base+2] = b
			buf[base+3] = 0xff
			continue
		}
		buf[base+0] = uint8(rOn >> 8)
		buf[base+1] = uint8(gOn >> 8)
		buf[base+2] = uint8(bOn >> 8)
		buf[base+3] = uint8(aOn >> 8)
	}
}
