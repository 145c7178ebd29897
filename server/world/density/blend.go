package density

// BlendDensity defers to ctx.Blender to mix Arg's freshly computed density
// with any old-terrain density at pos. With the no-op Blender this always
// returns Arg unchanged, but it still goes through Blend so Alpha/Offset
// observe a consistent pair afterward.
type BlendDensity struct{ Arg Function }

func NewBlendDensity(arg Function) *BlendDensity { return &BlendDensity{Arg: arg} }
func (b *BlendDensity) Sample(pos Pos, ctx *Context) float64 {
	return ctx.Blender.Blend(pos, b.Arg.Sample(pos, ctx))
}
func (b *BlendDensity) FillArray(buf []float64, ctx *Context) { fillArrayDefault(b, buf, ctx) }
func (b *BlendDensity) Min() float64                          { return b.Arg.Min() }
func (b *BlendDensity) Max() float64                          { return b.Arg.Max() }

// BlendAlpha reads ctx.Blender's last-computed blend weight.
type BlendAlpha struct{}

func NewBlendAlpha() *BlendAlpha                                  { return &BlendAlpha{} }
func (BlendAlpha) Sample(pos Pos, ctx *Context) float64           { return ctx.Blender.Alpha() }
func (b BlendAlpha) FillArray(buf []float64, ctx *Context)        { fillArrayDefault(b, buf, ctx) }
func (BlendAlpha) Min() float64                                   { return 0 }
func (BlendAlpha) Max() float64                                   { return 1 }

// BlendOffset reads ctx.Blender's last-computed blend offset.
type BlendOffset struct{}

func NewBlendOffset() *BlendOffset                           { return &BlendOffset{} }
func (BlendOffset) Sample(pos Pos, ctx *Context) float64     { return ctx.Blender.Offset() }
func (b BlendOffset) FillArray(buf []float64, ctx *Context)  { fillArrayDefault(b, buf, ctx) }
func (BlendOffset) Min() float64                             { return 0 }
func (BlendOffset) Max() float64                             { return 0 }
