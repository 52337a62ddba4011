package usecase

import (
	"math"
	"testing"
)

func TestSimilarity(t *testing.T) {
	t.Run("identical strings score one", func(t *testing.T) {
		for _, s := range []string{"a", "milk", "heinz baked beans 415g"} {
			if got := Similarity(s, s); got != 1 {
				t.Errorf("Similarity(%q, %q) = %v, want 1", s, s, got)
			}
		}
	})

	t.Run("empty against nonempty scores zero", func(t *testing.T) {
		if got := Similarity("", "milk"); got != 0 {
			t.Errorf("Similarity(\"\", \"milk\") = %v, want 0", got)
		}
		if got := Similarity("milk", ""); got != 0 {
			t.Errorf("Similarity(\"milk\", \"\") = %v, want 0", got)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		pairs := [][2]string{
			{"baked beans", "beans baked"},
			{"semi skimmed milk", "skimmed milk"},
			{"whisky", "whiskey"},
		}
		for _, p := range pairs {
			ab := Similarity(p[0], p[1])
			ba := Similarity(p[1], p[0])
			if math.Abs(ab-ba) > 1e-12 {
				t.Errorf("Similarity(%q, %q) = %v but reversed = %v", p[0], p[1], ab, ba)
			}
		}
	})

	t.Run("no matching characters scores zero", func(t *testing.T) {
		if got := Similarity("abc", "xyz"); got != 0 {
			t.Errorf("Similarity = %v, want 0", got)
		}
	})

	t.Run("known value with transposition", func(t *testing.T) {
		// 6 matches, 1 transposition, 3-char shared prefix
		got := Similarity("martha", "marhta")
		if math.Abs(got-0.9611111111111111) > 1e-9 {
			t.Errorf("Similarity(martha, marhta) = %v, want ~0.9611", got)
		}
	})

	t.Run("shared prefix outranks equal tail overlap", func(t *testing.T) {
		withPrefix := Similarity("heinz beans", "heinz beanz")
		withoutPrefix := Similarity("beans heinz", "zeans heinx")
		if withPrefix <= withoutPrefix {
			t.Errorf("prefix-sharing pair %v should outscore %v", withPrefix, withoutPrefix)
		}
	})

	t.Run("stays within unit interval", func(t *testing.T) {
		pairs := [][2]string{
			{"heinz baked beans", "branston baked beans"},
			{"a", "ab"},
			{"tesco milk", "asda milk"},
			{"x", "y"},
		}
		for _, p := range pairs {
			got := Similarity(p[0], p[1])
			if got < 0 || got > 1 {
				t.Errorf("Similarity(%q, %q) = %v, out of [0,1]", p[0], p[1], got)
			}
		}
	})
}
