package bot

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"  Ja!  ", "ja"},
		{"SOMS", "soms"},
		{"1️⃣", "1"},
		{"✅ ja", "ja"},
		{"menu.", "menu"},
	}
	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Fatalf("Normalize(%q)=%q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsStop(t *testing.T) {
	for _, in := range []string{"stop", "STOP", "0", "terug", "Menu", " stop "} {
		if !IsStop(in) {
			t.Fatalf("IsStop(%q)=false, want true", in)
		}
	}
	for _, in := range []string{"1", "ja", "stoppen", ""} {
		if IsStop(in) {
			t.Fatalf("IsStop(%q)=true, want false", in)
		}
	}
}

func TestNormalizeAnswer(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"ja", "ja", true},
		{"1", "ja", true},
		{"yes", "ja", true},
		{"soms", "soms", true},
		{"2", "soms", true},
		{"Nee", "nee", true},
		{"3", "nee", true},
		{"no", "nee", true},
		{"misschien", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		got, ok := NormalizeAnswer(c.in)
		if got != c.want || ok != c.ok {
			t.Fatalf("NormalizeAnswer(%q)=(%q,%v), want (%q,%v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestParseTaskSelection(t *testing.T) {
	cases := []struct {
		in   string
		max  int
		want []int
		ok   bool
	}{
		{"1,3", 4, []int{0, 2}, true},
		{"2 4", 4, []int{1, 3}, true},
		{"1;2;3", 3, []int{0, 1, 2}, true},
		{"3,1,3", 4, []int{2, 0}, true}, // duplicates collapse, order preserved
		{"0", 4, nil, false},
		{"5", 4, nil, false},
		{"1,5", 4, nil, false}, // one bad token invalidates all
		{"abc", 4, nil, false},
		{"", 4, nil, false},
	}
	for _, c := range cases {
		got, ok := parseTaskSelection(c.in, c.max)
		if ok != c.ok {
			t.Fatalf("parseTaskSelection(%q,%d) ok=%v, want %v", c.in, c.max, ok, c.ok)
		}
		if ok && !reflect.DeepEqual(got, c.want) {
			t.Fatalf("parseTaskSelection(%q,%d)=%v, want %v", c.in, c.max, got, c.want)
		}
	}
}
