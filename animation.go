package spiraltree

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FieldTween animates a single float64 field toward a target value. Call
// Update(dt) each frame; the field is written on every call until Done.
//
// There is no global animation manager. The Show owns its tweens and
// advances them at the start of each tick.
type FieldTween struct {
	tween *gween.Tween
	field *float64
	Done  bool
}

// TweenField creates a FieldTween that moves *field from its current value to
// `to` over duration seconds using the easing function.
func TweenField(field *float64, to float64, duration float32, fn ease.TweenFunc) *FieldTween {
	if fn == nil {
		fn = ease.Linear
	}
	return &FieldTween{
		tween: gween.New(float32(*field), float32(to), duration, fn),
		field: field,
	}
}

// Update advances the tween by dt seconds and writes the value.
func (t *FieldTween) Update(dt float32) {
	if t == nil || t.Done {
		return
	}
	val, finished := t.tween.Update(dt)
	*t.field = float64(val)
	t.Done = finished
}

// tweenSet is a flat list of running field tweens, pruned as they finish.
type tweenSet struct {
	active []*FieldTween
}

func (s *tweenSet) add(t *FieldTween) {
	s.active = append(s.active, t)
}

// update advances every tween and drops finished ones in place.
func (s *tweenSet) update(dt float32) {
	kept := s.active[:0]
	for _, t := range s.active {
		t.Update(dt)
		if !t.Done {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.active); i++ {
		s.active[i] = nil
	}
	s.active = kept
}

func (s *tweenSet) len() int {
	return len(s.active)
}
