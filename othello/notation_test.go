package othello

import (
	"testing"
)

func TestParseCoord(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Coord
	}{
		{"a1", Coord{0, 0}},
		{"h8", Coord{7, 7}},
		{"d3", Coord{2, 3}},
		{"D3", Coord{2, 3}},
		{" e6 ", Coord{5, 4}},
	} {
		got, err := ParseCoord(tc.in)
		if err != nil {
			t.Errorf("ParseCoord(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseCoord(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseCoordRejects(t *testing.T) {
	for _, in := range []string{
		"",
		"d",
		"d33",
		"3d", // swapped letter/digit order
		"i3", // column out of range
		"d9", // row out of range
		"d0",
		"!!",
		"pass",
	} {
		if got, err := ParseCoord(in); err == nil {
			t.Errorf("ParseCoord(%q) = %v, expected error", in, got)
		}
	}
}

func TestCoordString(t *testing.T) {
	for _, tc := range []struct {
		in   Coord
		want string
	}{
		{Coord{0, 0}, "a1"},
		{Coord{2, 3}, "d3"},
		{Coord{7, 7}, "h8"},
	} {
		if got := tc.in.String(); got != tc.want {
			t.Errorf("%v.String() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseCoordRoundTrip(t *testing.T) {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			pos := Coord{row, col}
			got, err := ParseCoord(pos.String())
			if err != nil {
				t.Fatalf("ParseCoord(%q) returned error: %v", pos.String(), err)
			}
			if got != pos {
				t.Fatalf("round trip of %v gave %v", pos, got)
			}
		}
	}
}
