package canvas

const borderWidth = 5

// Border colours of the diagnostic pattern, named by where they land in the
// picture.
var (
	BottomLeft  = RGB(255, 255, 255)
	Left        = RGB(255, 0, 0)
	TopLeft     = RGB(0, 0, 255)
	BottomRight = RGB(0, 0, 0)
	Right       = RGB(0, 255, 0)
	TopRight    = RGB(255, 0, 255)
	Bottom      = RGB(255, 255, 0)
	Top         = RGB(0, 255, 255)
)

// FillTestPattern paints a diagnostic image: a 5 pixel border whose corners
// and edges each get their own colour, around a grey gradient that brightens
// to the right and upwards.
func (c *Canvas) FillTestPattern() {
	w, h := float32(c.width), float32(c.height)
	i := 0
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			fx, fy := float32(x), float32(y)

			var p Pixel
			switch {
			case fx < borderWidth:
				switch {
				case fy < borderWidth:
					p = BottomLeft
				case fy > h-borderWidth:
					p = TopLeft
				default:
					p = Left
				}
			case fx > w-borderWidth:
				switch {
				case fy < borderWidth:
					p = BottomRight
				case fy > h-borderWidth:
					p = TopRight
				default:
					p = Right
				}
			case fy < borderWidth:
				p = Bottom
			case fy > h-borderWidth:
				p = Top
			default:
				horizontal := uint8(fx / w * 127)
				vertical := uint8(fy / h * 127)
				v := horizontal + vertical
				p = RGB(v, v, v)
			}

			c.pixels[i] = p
			i++
		}
	}
}
