package animation

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"livelyicons/internal/motion"
)

func TestIsAnimatedPrecedence(t *testing.T) {
	tests := []struct {
		name     string
		override *bool
		ctx      Context
		want     bool
	}{
		{"defaults animate", nil, Context{Enabled: true}, true},
		{"context disabled", nil, Context{Enabled: false}, false},
		{"reduced motion respected by default", nil, Context{Enabled: true, ReducedMotion: true}, false},
		{"override true beats reduced motion and disabled context", Bool(true), Context{Enabled: false, ReducedMotion: true}, true},
		{"override false beats favourable context", Bool(false), Context{Enabled: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAnimated(tt.override, tt.ctx))
		})
	}
}

func TestResolveTriggerTable(t *testing.T) {
	ctx := DefaultContext()

	hover := Resolve(nil, ctx, motion.Scale, motion.Hover).Descriptor
	assert.Equal(t, LabelInitial, hover.Initial)
	assert.Equal(t, LabelHover, hover.WhileHover)
	assert.Empty(t, hover.Animate)
	assert.Empty(t, hover.WhileInView)
	require.NotNil(t, hover.Transition)
	assert.False(t, hover.Transition.Repeating())

	loop := Resolve(nil, ctx, motion.Spin, motion.Loop).Descriptor
	assert.Equal(t, LabelHover, loop.Animate)
	assert.Empty(t, loop.WhileHover)
	require.NotNil(t, loop.Transition)
	assert.Equal(t, motion.Infinite, loop.Transition.Repeat)
	assert.Equal(t, motion.RepeatLoop, loop.Transition.RepeatType)
	assert.Equal(t, motion.PresetFor(motion.Spin).Transition.Duration, loop.Transition.Duration)

	mount := Resolve(nil, ctx, motion.Bounce, motion.Mount).Descriptor
	assert.Equal(t, LabelHover, mount.Animate)
	require.NotNil(t, mount.Transition)
	assert.Equal(t, motion.PresetFor(motion.Bounce).Transition, *mount.Transition)

	inView := Resolve(nil, ctx, motion.Pulse, motion.InView).Descriptor
	assert.Equal(t, LabelHover, inView.WhileInView)
	assert.Equal(t, &Viewport{Once: true, Amount: 0.5}, inView.Viewport)
	assert.Empty(t, inView.Animate)
}

func TestResolveExtensionTriggersBehaveLikeHover(t *testing.T) {
	ctx := DefaultContext()
	want := Resolve(nil, ctx, motion.Shake, motion.Hover).Descriptor

	for _, trig := range []motion.TriggerType{motion.Click, motion.NoTrigger, "doubletap", ""} {
		got := Resolve(nil, ctx, motion.Shake, trig)
		assert.Equal(t, want, got.Descriptor, "trigger %q", trig)
	}
	assert.Equal(t, motion.Hover, Resolve(nil, ctx, motion.Shake, "doubletap").Trigger)
	assert.Equal(t, motion.Click, Resolve(nil, ctx, motion.Shake, motion.Click).Trigger)
}

func TestResolveDisabledShortCircuit(t *testing.T) {
	for _, trig := range motion.TriggerTypes {
		for _, m := range motion.MotionTypes {
			r := Resolve(Bool(false), DefaultContext(), m, trig)
			assert.False(t, r.Animated)
			assert.False(t, r.Descriptor.Plays(), "%s/%s", m, trig)
			assert.Nil(t, r.Descriptor.Transition)
			assert.Nil(t, r.Descriptor.Viewport)
			assert.True(t, r.Draw.IsEmpty())
			assert.True(t, r.Wrapper.IsEmpty())

			data, err := json.Marshal(r.Descriptor)
			require.NoError(t, err)
			var keys map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(data, &keys))
			assert.Len(t, keys, 2)
			assert.Contains(t, keys, "initial")
			assert.Contains(t, keys, "variants")
		}
	}
}

func TestResolveReducedMotionDisablesByDefault(t *testing.T) {
	r := Resolve(nil, Context{Enabled: true, ReducedMotion: true}, motion.Rotate, motion.Loop)
	assert.False(t, r.Animated)
	assert.False(t, r.Descriptor.Plays())
}

func TestResolveUnknownMotionFallsBackToScale(t *testing.T) {
	for _, trig := range motion.TriggerTypes {
		assert.Equal(t,
			Resolve(nil, DefaultContext(), motion.Scale, trig),
			Resolve(nil, DefaultContext(), motion.MotionType("wiggle"), trig))
	}
}

func TestResolveIsDeterministic(t *testing.T) {
	first, err := json.Marshal(Resolve(nil, DefaultContext(), motion.Draw, motion.Loop))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			again, err := json.Marshal(Resolve(nil, DefaultContext(), motion.Draw, motion.Loop))
			assert.NoError(t, err)
			assert.Equal(t, string(first), string(again))
		}()
	}
	wg.Wait()
}

func TestResolveDoesNotLeakPresetMutation(t *testing.T) {
	r := Resolve(nil, DefaultContext(), motion.Scale, motion.Loop)
	r.Descriptor.Variants.Hover["scale"] = motion.Num(42)

	again := Resolve(nil, DefaultContext(), motion.Scale, motion.Hover)
	assert.Equal(t, 1.15, again.Descriptor.Variants.Hover["scale"].Final())
	assert.False(t, again.Descriptor.Transition.Repeating())
}

func TestDrawDescriptors(t *testing.T) {
	ctx := DefaultContext()

	t.Run("hover", func(t *testing.T) {
		r := Resolve(nil, ctx, motion.Draw, motion.Hover)
		require.NotNil(t, r.Draw.Variants)
		assert.True(t, r.Draw.Variants.Hover["pathLength"].Equal(motion.Keyframes(1, 0, 1)))
		assert.True(t, r.Draw.Variants.Initial["pathLength"].Equal(motion.Num(1)))
		assert.Equal(t, WrapperDescriptor{Initial: LabelInitial, WhileHover: LabelHover}, r.Wrapper)
	})

	t.Run("loop", func(t *testing.T) {
		r := Resolve(nil, ctx, motion.Draw, motion.Loop)
		assert.True(t, r.Draw.Initial["pathLength"].Equal(motion.Num(0)))
		assert.True(t, r.Draw.Initial["opacity"].Equal(motion.Num(0.5)))
		assert.True(t, r.Draw.Animate["pathLength"].Equal(motion.Keyframes(0, 1, 1, 0)))
		assert.True(t, r.Draw.Animate["opacity"].Equal(motion.Keyframes(0.5, 1, 1, 0.5)))
		require.NotNil(t, r.Draw.Transition)
		assert.Equal(t, 3.0, r.Draw.Transition.Duration)
		assert.Equal(t, motion.Infinite, r.Draw.Transition.Repeat)
		assert.Equal(t, []float64{0, 0.4, 0.6, 1}, r.Draw.Transition.Times)
		assert.True(t, r.Wrapper.IsEmpty())
	})

	t.Run("mount", func(t *testing.T) {
		r := Resolve(nil, ctx, motion.Draw, motion.Mount)
		assert.True(t, r.Draw.Initial["opacity"].Equal(motion.Num(0.3)))
		assert.True(t, r.Draw.Animate["pathLength"].Equal(motion.Num(1)))
		require.NotNil(t, r.Draw.Transition)
		assert.False(t, r.Draw.Transition.Repeating())
		assert.True(t, r.Wrapper.IsEmpty())
	})

	t.Run("inView", func(t *testing.T) {
		r := Resolve(nil, ctx, motion.Draw, motion.InView)
		require.NotNil(t, r.Draw.Variants)
		assert.True(t, r.Draw.Variants.Initial["pathLength"].Equal(motion.Num(0)))
		assert.True(t, r.Draw.Variants.Hover["pathLength"].Equal(motion.Num(1)))
		assert.Equal(t, LabelHover, r.Wrapper.WhileInView)
		assert.Equal(t, &Viewport{Once: true, Amount: 0.5}, r.Wrapper.Viewport)
	})

	t.Run("non-draw motion has no draw keys", func(t *testing.T) {
		r := Resolve(nil, ctx, motion.Scale, motion.Hover)
		assert.True(t, r.Draw.IsEmpty())
		assert.True(t, r.Wrapper.IsEmpty())

		data, err := json.Marshal(r.Draw)
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data))
	})
}

func TestResultJSON(t *testing.T) {
	data, err := json.Marshal(Resolve(nil, DefaultContext(), motion.Scale, motion.InView))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"animated": true,
		"motion": "scale",
		"trigger": "inView",
		"descriptor": {
			"initial": "initial",
			"whileInView": "hover",
			"viewport": {"once": true, "amount": 0.5},
			"variants": {"initial": {"scale": 1}, "hover": {"scale": 1.15}},
			"transition": {"duration": 0.2, "ease": "easeOut"}
		},
		"draw": {},
		"wrapper": {}
	}`, string(data))
}
