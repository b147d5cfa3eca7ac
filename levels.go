package adscene

import "sort"

// ScaleLevel is a control point of the depth scale curve: objects at Y are
// drawn at Scale percent.
type ScaleLevel struct {
	Y     int
	Scale float64
}

// RotationLevel is a control point of the horizontal rotation curve: objects
// at X are turned by Rotation degrees.
type RotationLevel struct {
	X        int
	Rotation float64
}

// SetScaleLevels replaces the depth scale curve. Levels are sorted by Y.
func (s *Scene) SetScaleLevels(levels []ScaleLevel) {
	s.scaleLevels = append(s.scaleLevels[:0], levels...)
	sort.SliceStable(s.scaleLevels, func(i, j int) bool {
		return s.scaleLevels[i].Y < s.scaleLevels[j].Y
	})
}

// SetRotationLevels replaces the rotation curve. Levels are sorted by X.
func (s *Scene) SetRotationLevels(levels []RotationLevel) {
	s.rotLevels = append(s.rotLevels[:0], levels...)
	sort.SliceStable(s.rotLevels, func(i, j int) bool {
		return s.rotLevels[i].X < s.rotLevels[j].X
	})
}

// ScaleLevels returns the sorted scale curve. The returned slice MUST NOT be mutated.
func (s *Scene) ScaleLevels() []ScaleLevel {
	return s.scaleLevels
}

// RotationLevels returns the sorted rotation curve. The returned slice MUST NOT be mutated.
func (s *Scene) RotationLevels() []RotationLevel {
	return s.rotLevels
}

// ScaleAt interpolates the depth scale at y between the surrounding levels.
// Outside the curve (or with fewer than two levels) it is DefaultScale.
func (s *Scene) ScaleAt(y int) float64 {
	var prev, next *ScaleLevel
	for i := range s.scaleLevels {
		if s.scaleLevels[i].Y < y {
			prev = &s.scaleLevels[i]
		} else {
			next = &s.scaleLevels[i]
			break
		}
	}
	if prev == nil || next == nil {
		return DefaultScale
	}
	t := float64(y-prev.Y) / float64(next.Y-prev.Y)
	return prev.Scale + (next.Scale-prev.Scale)*t
}

// RotationAt interpolates the rotation at x between the surrounding levels.
// Outside the curve it is 0.
func (s *Scene) RotationAt(x int) float64 {
	var prev, next *RotationLevel
	for i := range s.rotLevels {
		if s.rotLevels[i].X < x {
			prev = &s.rotLevels[i]
		} else {
			next = &s.rotLevels[i]
			break
		}
	}
	if prev == nil || next == nil {
		return 0
	}
	t := float64(x-prev.X) / float64(next.X-prev.X)
	return prev.Rotation + (next.Rotation-prev.Rotation)*t
}
