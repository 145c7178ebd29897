package density

// unary wraps a single argument with a pointwise transform and statically
// derived bounds, covering Abs, Square, Cube, HalfNegative, QuarterNegative
// and Squeeze.
type unary struct {
	Arg    Function
	f      func(float64) float64
	minVal float64
	maxVal float64
}

func (u *unary) Sample(pos Pos, ctx *Context) float64 { return u.f(u.Arg.Sample(pos, ctx)) }
func (u *unary) FillArray(buf []float64, ctx *Context) {
	u.Arg.FillArray(buf, ctx)
	for i, v := range buf {
		buf[i] = u.f(v)
	}
}
func (u *unary) Min() float64 { return u.minVal }
func (u *unary) Max() float64 { return u.maxVal }

func absBounds(lo, hi float64) (float64, float64) {
	a, b := lo, hi
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return 0, a
	}
	return 0, b
}

// NewAbs returns |arg|.
func NewAbs(arg Function) Function {
	lo, hi := absBounds(arg.Min(), arg.Max())
	return &unary{Arg: arg, f: func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}, minVal: lo, maxVal: hi}
}

// NewSquare returns arg * arg.
func NewSquare(arg Function) Function {
	lo, hi := absBounds(arg.Min(), arg.Max())
	maxSq := hi * hi
	minSq := 0.0
	if lo > 0 {
		minSq = lo * lo
	}
	return &unary{Arg: arg, f: func(v float64) float64 { return v * v }, minVal: minSq, maxVal: maxSq}
}

// NewCube returns arg^3.
func NewCube(arg Function) Function {
	lo, hi := arg.Min(), arg.Max()
	c := func(v float64) float64 { return v * v * v }
	vals := []float64{c(lo), c(hi)}
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return &unary{Arg: arg, f: c, minVal: min, maxVal: max}
}

// NewHalfNegative returns x if x > 0 else x/2.
func NewHalfNegative(arg Function) Function {
	f := func(v float64) float64 {
		if v > 0 {
			return v
		}
		return v / 2
	}
	return &unary{Arg: arg, f: f, minVal: f(arg.Min()), maxVal: f(arg.Max())}
}

// NewQuarterNegative returns x if x > 0 else x/4.
func NewQuarterNegative(arg Function) Function {
	f := func(v float64) float64 {
		if v > 0 {
			return v
		}
		return v / 4
	}
	return &unary{Arg: arg, f: f, minVal: f(arg.Min()), maxVal: f(arg.Max())}
}

// NewSqueeze clamps arg to ±1, then returns x/2 − x³/24.
func NewSqueeze(arg Function) Function {
	f := func(v float64) float64 {
		if v < -1 {
			v = -1
		}
		if v > 1 {
			v = 1
		}
		return v/2 - v*v*v/24
	}
	return &unary{Arg: arg, f: f, minVal: f(-1), maxVal: f(1)}
}
