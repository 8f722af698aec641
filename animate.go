package cozyui

import "github.com/go-theft-auto/cozyui/arc"

type animState struct {
	from, to float32
	elapsed  float32
	value    float32
}

var animStore = NewFrameStore[animState]()

// AnimateValue moves linearly towards target over duration seconds and
// returns the value for this frame. A new target restarts the transition from
// wherever the value currently is. The first call for an id returns target.
func (ctx *Context) AnimateValue(id ID, target, duration float32) float32 {
	st := animStore.GetIfExists(id)
	if st == nil {
		animStore.Set(id, animState{from: target, to: target, elapsed: duration, value: target})
		return target
	}
	st = animStore.Get(id, animState{}) // marks the entry as used

	if duration <= 0 {
		*st = animState{from: target, to: target, value: target}
		return target
	}

	if st.to != target {
		st.from = st.value
		st.to = target
		st.elapsed = 0
	}

	st.elapsed += ctx.DeltaTime
	t := clampf(st.elapsed/duration, 0, 1)
	st.value = arc.Lerp(st.from, st.to, t)
	return st.value
}

// AnimateBool animates between 0 and 1 over the style's AnimationTime.
func (ctx *Context) AnimateBool(id ID, on bool) float32 {
	var target float32
	if on {
		target = 1
	}
	return ctx.AnimateValue(id, target, ctx.style.AnimationTime)
}
