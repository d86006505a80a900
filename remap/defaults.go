package remap

import "github.com/Alia5/cuamap/key"

var (
	// Modifiers is the watch-set of the default ModifierProbe.
	Modifiers = []key.Code{key.LeftCtrl, key.LeftAlt, key.LeftMeta, key.CapsLock}
	// Toggles is the watch-set of the default ToggleProbe.
	Toggles = []key.Code{key.CapsLock}
)

// DefaultSwap exchanges left Alt and left Ctrl.
func DefaultSwap() Swap {
	return Swap{A: key.LeftAlt, B: key.LeftCtrl}
}

// Options tunes DefaultRules.
type Options struct {
	// Kill, when set, is inserted right after the state probes.
	Kill *KillSequence
}

// DefaultRules returns the stock layout: a CapsLock navigation layer, a Meta
// window layer and an Alt terminal layer, followed by the CapsLock block and
// the passthrough.
func DefaultRules(opts Options) []Rule {
	rules := []Rule{
		ModifierProbe{Keys: Modifiers},
		ToggleProbe{Keys: Toggles},
	}
	if opts.Kill != nil {
		rules = append(rules, *opts.Kill)
	}

	rules = append(rules, capsLayer()...)
	rules = append(rules, metaLayer()...)
	rules = append(rules, altLayer()...)

	return append(rules,
		Block{Key: key.CapsLock},
		Passthrough{},
	)
}

// capsLayer is text navigation while CapsLock is held or latched.
func capsLayer() []Rule {
	bare := []key.Code{key.LeftCtrl, key.LeftAlt, key.LeftMeta}
	caps := func(src key.Code, c Chord) Rule {
		return GuardedRemap{Guard: key.CapsLock, Source: src, Chord: c, Forbidden: bare}
	}
	return []Rule{
		caps(key.I, Tap(key.Up)),
		caps(key.J, Tap(key.Left)),
		caps(key.K, Tap(key.Down)),
		caps(key.L, Tap(key.Right)),

		caps(key.U, Tap(key.PageUp)),
		caps(key.N, Tap(key.PageDown)),

		// line start/end
		caps(key.A, Tap(key.Home)),
		caps(key.D, Tap(key.End)),

		// file start/end
		caps(key.W, Combo(key.Home, key.LeftCtrl)),
		caps(key.S, Combo(key.End, key.LeftCtrl)),

		// word left/right
		caps(key.H, Combo(key.Left, key.LeftCtrl)),
		caps(key.F, Combo(key.Right, key.LeftCtrl)),

		caps(key.O, Combo(key.O, key.LeftAlt)),
	}
}

// metaLayer is tab, workspace and history navigation while Meta is held.
// Meta is lifted around the synthesized shortcut and pressed again after it;
// the trailing Alt tap keeps the desktop from treating the Meta press as a
// lone tap.
func metaLayer() []Rule {
	meta := func(src key.Code, c Chord) Rule {
		return GuardedRemap{Guard: key.LeftMeta, Source: src, Chord: c}
	}
	around := func(c Chord) Chord {
		return c.Then(Press(key.LeftMeta), Tap(key.LeftAlt))
	}
	return []Rule{
		// previous/next tab
		meta(key.J, around(Press(key.LeftCtrl).Then(
			Release(key.LeftMeta),
			Combo(key.Tab, key.LeftShift),
			Release(key.LeftCtrl),
		))),
		meta(key.L, around(Press(key.LeftCtrl).Then(
			Release(key.LeftMeta),
			Tap(key.Tab),
			Release(key.LeftCtrl),
		))),

		// workspace up/down
		meta(key.I, Tap(key.Up)),
		meta(key.K, Tap(key.Down)),

		// back/forward
		meta(key.A, around(Press(key.LeftAlt).Then(
			Release(key.LeftMeta),
			Tap(key.Left),
			Release(key.LeftAlt),
		))),
		meta(key.D, around(Press(key.LeftAlt).Then(
			Release(key.LeftMeta),
			Tap(key.Right),
			Release(key.LeftAlt),
		))),
	}
}

// altLayer keeps the common terminal control shortcuts on the physical Ctrl
// key, which arrives here as LeftAlt after the swap.
func altLayer() []Rule {
	alt := func(src key.Code, c Chord) Rule {
		return GuardedRemap{Guard: key.LeftAlt, Source: src, Chord: Release(key.LeftAlt).Then(c)}
	}
	rules := []Rule{alt(key.C, Combo(key.C, key.LeftCtrl, key.LeftShift))}
	for _, k := range []key.Code{key.L, key.D, key.X, key.K, key.U, key.Z} {
		rules = append(rules, alt(k, Combo(k, key.LeftCtrl)))
	}
	return rules
}
