package density

// Function is implemented by every node kind in the density graph. Sample
// and FillArray are the hot paths; Min/Max report static bounds derived
// from a node's arguments (some nodes recompute them on each call) without
// sampling, which is what lets Min/Max/Mul nodes short-circuit without
// sampling both arguments.
type Function interface {
	Sample(pos Pos, ctx *Context) float64
	FillArray(buf []float64, ctx *Context)
	Min() float64
	Max() float64
}

// base provides the default FillArray (iterate and call Sample) so each
// node kind only needs to override it when bulk evaluation can beat that.
type base struct {
	self Function
}

func (b base) FillArray(buf []float64, ctx *Context) {
	// Default bulk fill: iterate ctx's current cell/slice geometry, calling
	// back into self.Sample. The node kinds in this package do not embed
	// base; they call fillArrayDefault directly.
	fillArrayDefault(b.self, buf, ctx)
}

func fillArrayDefault(f Function, buf []float64, ctx *Context) {
	if ctx.Filler == FillerSlice {
		n := ctx.CellCountY + 1
		for i := 0; i < n && i < len(buf); i++ {
			y := ctx.CellNoiseMinY + i
			buf[i] = f.Sample(Pos{X: ctx.CellStartBlockX, Y: y * ctx.CellHeight, Z: ctx.CellStartBlockZ}, ctx)
		}
		return
	}
	w := ctx.CellWidth
	h := ctx.CellHeight
	idx := 0
	for ix := 0; ix <= w && idx < len(buf); ix++ {
		for iy := 0; iy <= h && idx < len(buf); iy++ {
			for iz := 0; iz <= w && idx < len(buf); iz++ {
				pos := Pos{
					X: ctx.CellStartBlockX + ix,
					Y: ctx.CellStartBlockY + iy,
					Z: ctx.CellStartBlockZ + iz,
				}
				buf[idx] = f.Sample(pos, ctx)
				idx++
			}
		}
	}
}

// Const always returns the same value, regardless of position.
type Const struct{ V float64 }

func NewConst(v float64) *Const            { return &Const{V: v} }
func (c *Const) Sample(Pos, *Context) float64 { return c.V }
func (c *Const) FillArray(buf []float64, _ *Context) {
	for i := range buf {
		buf[i] = c.V
	}
}
func (c *Const) Min() float64 { return c.V }
func (c *Const) Max() float64 { return c.V }

// YClampedGradient linearly maps pos.Y, clamped to [FromY, ToY], onto
// [FromV, ToV].
type YClampedGradient struct {
	FromY, ToY int
	FromV, ToV float64
}

func NewYClampedGradient(fromY, toY int, fromV, toV float64) *YClampedGradient {
	return &YClampedGradient{FromY: fromY, ToY: toY, FromV: fromV, ToV: toV}
}

func (g *YClampedGradient) Sample(pos Pos, _ *Context) float64 {
	y := pos.Y
	if y < g.FromY {
		y = g.FromY
	}
	if y > g.ToY {
		y = g.ToY
	}
	t := float64(y-g.FromY) / float64(g.ToY-g.FromY)
	return g.FromV + t*(g.ToV-g.FromV)
}

func (g *YClampedGradient) FillArray(buf []float64, ctx *Context) { fillArrayDefault(g, buf, ctx) }

func (g *YClampedGradient) Min() float64 {
	if g.FromV < g.ToV {
		return g.FromV
	}
	return g.ToV
}
func (g *YClampedGradient) Max() float64 {
	if g.FromV > g.ToV {
		return g.FromV
	}
	return g.ToV
}
