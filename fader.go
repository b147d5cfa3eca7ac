package adscene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Fader is a full-viewport color overlay whose opacity is tweened, used for
// scene transitions. The scene updates and draws it after everything else.
type Fader struct {
	// Color is the overlay color. Its alpha is replaced by the tween value.
	Color Color
	// Ease shapes FadeIn and FadeOut. Defaults to ease.Linear.
	Ease ease.TweenFunc

	alpha float64
	tween *gween.Tween
}

// NewFader returns a transparent black fader.
func NewFader() *Fader {
	return &Fader{Color: Color{A: 1}, Ease: ease.Linear}
}

// FadeOut tweens the overlay to fully opaque over d.
func (f *Fader) FadeOut(d time.Duration) {
	f.fadeTo(1, d)
}

// FadeIn tweens the overlay to fully transparent over d.
func (f *Fader) FadeIn(d time.Duration) {
	f.fadeTo(0, d)
}

func (f *Fader) fadeTo(to float64, d time.Duration) {
	if d <= 0 {
		f.alpha = to
		f.tween = nil
		return
	}
	f.tween = gween.New(float32(f.alpha), float32(to), float32(d.Seconds()), f.Ease)
}

// Active reports whether a fade is in progress.
func (f *Fader) Active() bool {
	return f.tween != nil
}

// Alpha returns the current overlay opacity in [0, 1].
func (f *Fader) Alpha() float64 {
	return f.alpha
}

// Update advances the running fade by dt.
func (f *Fader) Update(dt time.Duration) {
	if f.tween == nil {
		return
	}
	val, finished := f.tween.Update(float32(dt.Seconds()))
	f.alpha = clamp01(float64(val))
	if finished {
		f.tween = nil
	}
}

// Display covers the frame viewport with the overlay. Nothing is drawn while
// fully transparent.
func (f *Fader) Display(fr *Frame) {
	if fr.Target == nil || f.alpha <= 0 {
		return
	}
	c := f.Color
	c.A *= f.alpha
	vp := fr.Viewport
	vector.DrawFilledRect(fr.Target, float32(vp.X), float32(vp.Y),
		float32(vp.Width), float32(vp.Height), c.NRGBA(), false)
}
