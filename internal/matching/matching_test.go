package matching

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Napoleon  ", "napoleon"},
		{"The Great Gatsby", "great gatsby"},
		{"A   Tale of Two    Cities", "tale of two cities"},
		{"An Apple", "apple"},
		{"Who's There?", "whos there"},
		{"1984", "1984"},
		{"", ""},
		{"the ", ""},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestScoreIdenticalCaseInsensitive(t *testing.T) {
	pairs := [][2]string{
		{"Napoleon", "napoleon"},
		{"PARIS", "Paris"},
		{"the moon", "The Moon"},
		{"42", "42"},
	}
	for _, p := range pairs {
		if got := Score(p[0], p[1]); got != 100 {
			t.Errorf("Score(%q, %q) = %d, want 100", p[0], p[1], got)
		}
		if ok, _ := Match(p[0], p[1]); !ok {
			t.Errorf("Match(%q, %q) should be correct", p[0], p[1])
		}
	}
}

func TestScoreDisjoint(t *testing.T) {
	ok, score := Match("zzzz", "briefly")
	if ok {
		t.Fatalf("disjoint strings classified correct (score %d)", score)
	}
	if score >= AcceptThreshold {
		t.Fatalf("disjoint strings scored %d, want < %d", score, AcceptThreshold)
	}
}

func TestScoreMisspelling(t *testing.T) {
	ok, score := Match("Napolean", "Napoleon")
	if !ok {
		t.Fatalf("Napolean vs Napoleon classified incorrect (score %d)", score)
	}
	if score < AcceptThreshold {
		t.Fatalf("Napolean vs Napoleon scored %d, want >= %d", score, AcceptThreshold)
	}
}

func TestScorePunctuationAndArticles(t *testing.T) {
	cases := []struct {
		guess, want string
	}{
		{"Great Gatsby", "The Great Gatsby"},
		{"mona lisa", "The Mona Lisa!"},
		{"o'brien", "OBrien"},
	}
	for _, tc := range cases {
		if got := Score(tc.guess, tc.want); got != 100 {
			t.Errorf("Score(%q, %q) = %d, want 100", tc.guess, tc.want, got)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	cases := [][2]string{
		{"", ""},
		{"a", ""},
		{"", "b"},
		{"abcdef", "abcdef"},
		{"abc", "xyz"},
		{"mississippi", "misisippi"},
	}
	for _, p := range cases {
		got := Score(p[0], p[1])
		if got < 0 || got > 100 {
			t.Errorf("Score(%q, %q) = %d, out of [0,100]", p[0], p[1], got)
		}
	}
}

func TestScoreEmptyAgainstEmpty(t *testing.T) {
	if got := Score("", ""); got != 100 {
		t.Fatalf("Score of two empty strings = %d, want 100", got)
	}
	if got := Score("something", ""); got != 0 {
		t.Fatalf("Score against empty = %d, want 0", got)
	}
}

func TestScoreSymmetric(t *testing.T) {
	a, b := "constantinople", "constantinopel"
	if Score(a, b) != Score(b, a) {
		t.Fatalf("Score is not symmetric: %d vs %d", Score(a, b), Score(b, a))
	}
}
