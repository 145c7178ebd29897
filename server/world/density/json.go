package density

import (
	"encoding/json"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// rawNode is the generic JSON shape every density-function node decodes
// from: a "type" discriminator plus whatever fields that type needs, with
// nested functions themselves encoded as rawNode (or, for leaves, a bare
// number literal meaning Const).
type rawNode struct {
	Type   string          `json:"type"`
	Arg    json.RawMessage `json:"argument"`
	Arg1   json.RawMessage `json:"argument1"`
	Arg2   json.RawMessage `json:"argument2"`
	Input  json.RawMessage `json:"input"`
	MinInclusive *float64  `json:"min_inclusive"`
	MaxExclusive *float64  `json:"max_exclusive"`
	WhenInRange  json.RawMessage `json:"when_in_range"`
	WhenOutOfRange json.RawMessage `json:"when_out_of_range"`

	MinValue *float64 `json:"min_value"`
	MaxValue *float64 `json:"max_value"`

	FromY *int     `json:"from_y"`
	ToY   *int     `json:"to_y"`
	FromValue *float64 `json:"from_value"`
	ToValue   *float64 `json:"to_value"`

	NoiseName string    `json:"noise"`
	XZScale   *float64  `json:"xz_scale"`
	YScale    *float64  `json:"y_scale"`

	ShiftX json.RawMessage `json:"shift_x"`
	ShiftY json.RawMessage `json:"shift_y"`
	ShiftZ json.RawMessage `json:"shift_z"`

	RarityValueMapper string `json:"rarity_value_mapper"`

	SplinePoints []rawSplinePoint `json:"points"`
	Coordinate   json.RawMessage  `json:"coordinate"`

	Value float64 `json:"value"`
}

type rawSplinePoint struct {
	Location   float64         `json:"location"`
	Value      json.RawMessage `json:"value"`
	Derivative float64         `json:"derivative"`
}

// Resolver decodes density-function JSON into a live Function graph,
// deduplicating NoiseHolders by tag (via a cache keyed on xxhash of the
// tag so repeated references in the JSON, e.g. "minecraft:continentalness"
// appearing in both the biome router and the terrain router, share one
// holder instance and RNG draw sequence).
type Resolver struct {
	holders map[uint64]*NoiseHolder
}

func NewResolver() *Resolver {
	return &Resolver{holders: make(map[uint64]*NoiseHolder)}
}

func (r *Resolver) holderFor(tag string, firstOctave int, amplitudes []float64) *NoiseHolder {
	key := xxhash.Sum64String(tag)
	if h, ok := r.holders[key]; ok {
		return h
	}
	h := NewNoiseHolder(tag, firstOctave, amplitudes)
	r.holders[key] = h
	return h
}

// Parse decodes a single density-function JSON document into a Function.
func (r *Resolver) Parse(data []byte) (Function, error) {
	var n json.Number
	if err := json.Unmarshal(data, &n); err == nil {
		f, ferr := n.Float64()
		if ferr == nil {
			return NewConst(f), nil
		}
	}
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("density: decode node: %w", err)
	}
	return r.build(&raw)
}

func (r *Resolver) parseSub(data json.RawMessage) (Function, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("density: missing required sub-node")
	}
	return r.Parse(data)
}

func (r *Resolver) build(raw *rawNode) (Function, error) {
	switch raw.Type {
	case "minecraft:constant":
		return NewConst(raw.Value), nil

	case "minecraft:y_clamped_gradient":
		return NewYClampedGradient(*raw.FromY, *raw.ToY, *raw.FromValue, *raw.ToValue), nil

	case "minecraft:noise":
		h := r.holderFor(raw.NoiseName, 0, nil)
		return NewNoise(h, *raw.XZScale, *raw.YScale), nil

	case "minecraft:shift_a":
		return NewShiftA(r.holderFor(raw.NoiseName, 0, nil)), nil
	case "minecraft:shift_b":
		return NewShiftB(r.holderFor(raw.NoiseName, 0, nil)), nil

	case "minecraft:shifted_noise":
		sx, err := r.parseSub(raw.ShiftX)
		if err != nil {
			return nil, err
		}
		sy, err := r.parseSub(raw.ShiftY)
		if err != nil {
			return nil, err
		}
		sz, err := r.parseSub(raw.ShiftZ)
		if err != nil {
			return nil, err
		}
		h := r.holderFor(raw.NoiseName, 0, nil)
		return NewShiftedNoise(h, sx, sy, sz, *raw.XZScale, *raw.YScale), nil

	case "minecraft:old_blended_noise":
		return nil, fmt.Errorf("density: old_blended_noise must be constructed from NoiseSettings, not JSON")

	case "minecraft:weird_scaled_sampler":
		in, err := r.parseSub(raw.Input)
		if err != nil {
			return nil, err
		}
		rarity := RarityType1
		if raw.RarityValueMapper == "type_2" {
			rarity = RarityType2
		}
		h := r.holderFor(raw.NoiseName, 0, nil)
		return NewWeirdScaledSampler(in, h, rarity), nil

	case "minecraft:abs":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewAbs(a), nil
	case "minecraft:square":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewSquare(a), nil
	case "minecraft:cube":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewCube(a), nil
	case "minecraft:half_negative":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewHalfNegative(a), nil
	case "minecraft:quarter_negative":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewQuarterNegative(a), nil
	case "minecraft:squeeze":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewSqueeze(a), nil

	case "minecraft:add":
		a1, err := r.parseSub(raw.Arg1)
		if err != nil {
			return nil, err
		}
		a2, err := r.parseSub(raw.Arg2)
		if err != nil {
			return nil, err
		}
		return NewAdd(a1, a2), nil
	case "minecraft:mul":
		a1, err := r.parseSub(raw.Arg1)
		if err != nil {
			return nil, err
		}
		a2, err := r.parseSub(raw.Arg2)
		if err != nil {
			return nil, err
		}
		return NewMul(a1, a2), nil
	case "minecraft:min":
		a1, err := r.parseSub(raw.Arg1)
		if err != nil {
			return nil, err
		}
		a2, err := r.parseSub(raw.Arg2)
		if err != nil {
			return nil, err
		}
		return NewMin(a1, a2), nil
	case "minecraft:max":
		a1, err := r.parseSub(raw.Arg1)
		if err != nil {
			return nil, err
		}
		a2, err := r.parseSub(raw.Arg2)
		if err != nil {
			return nil, err
		}
		return NewMax(a1, a2), nil

	case "minecraft:clamp":
		in, err := r.parseSub(raw.Input)
		if err != nil {
			return nil, err
		}
		return NewClamp(in, *raw.MinValue, *raw.MaxValue), nil

	case "minecraft:range_choice":
		in, err := r.parseSub(raw.Input)
		if err != nil {
			return nil, err
		}
		whenIn, err := r.parseSub(raw.WhenInRange)
		if err != nil {
			return nil, err
		}
		whenOut, err := r.parseSub(raw.WhenOutOfRange)
		if err != nil {
			return nil, err
		}
		return NewRangeChoice(in, *raw.MinInclusive, *raw.MaxExclusive, whenIn, whenOut), nil

	case "minecraft:blend_density":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewBlendDensity(a), nil
	case "minecraft:blend_alpha":
		return NewBlendAlpha(), nil
	case "minecraft:blend_offset":
		return NewBlendOffset(), nil

	case "minecraft:cache_once":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewCacheOnce(a), nil
	case "minecraft:cache_2d":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewCache2D(a), nil
	case "minecraft:cache_all_in_cell":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewCacheAllInCell(a), nil
	case "minecraft:flat_cache":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewFlatCache(a), nil

	case "minecraft:interpolated":
		a, err := r.parseSub(raw.Arg)
		if err != nil {
			return nil, err
		}
		return NewInterpolated(a), nil

	case "minecraft:spline":
		coord, err := r.parseSub(raw.Coordinate)
		if err != nil {
			return nil, err
		}
		if len(raw.SplinePoints) == 0 {
			return nil, fmt.Errorf("density: spline with no points")
		}
		locs := make([]float64, len(raw.SplinePoints))
		vals := make([]Spline, len(raw.SplinePoints))
		derivs := make([]float64, len(raw.SplinePoints))
		for i, p := range raw.SplinePoints {
			locs[i] = p.Location
			derivs[i] = p.Derivative
			sv, err := r.parseSplineValue(p.Value)
			if err != nil {
				return nil, err
			}
			vals[i] = sv
		}
		return NewSplineNode(NewMultiPoint(coord, locs, vals, derivs)), nil

	default:
		return nil, fmt.Errorf("density: unknown node type %q", raw.Type)
	}
}

// parseSplineValue decodes a spline control point's value, which is either
// a bare number (ConstSpline) or a nested spline node.
func (r *Resolver) parseSplineValue(data json.RawMessage) (Spline, error) {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		return NewConstSpline(n), nil
	}
	var raw rawNode
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("density: decode spline value: %w", err)
	}
	if raw.Type != "minecraft:spline" {
		f, err := r.build(&raw)
		if err != nil {
			return nil, err
		}
		return &functionSpline{f: f}, nil
	}
	node, err := r.build(&raw)
	if err != nil {
		return nil, err
	}
	sn := node.(*SplineNode)
	return sn.S, nil
}

// functionSpline adapts an arbitrary Function used as a spline control
// value (sampled at position zero, matching the reference's "constant
// function as spline value" allowance) into the Spline interface.
type functionSpline struct{ f Function }

func (s *functionSpline) Apply(float64) float64 { return s.f.Sample(Pos{}, &Context{}) }
func (s *functionSpline) MinValue() float64     { return s.f.Min() }
func (s *functionSpline) MaxValue() float64     { return s.f.Max() }
