package game

import (
	"reflect"
	"testing"
)

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  []string
	}{
		{"empty", "", 10, nil},
		{"single word", "Mercury", 10, []string{"Mercury"}},
		{"wraps at width", "smallest planet closest to sun", 16, []string{"smallest planet", "closest to sun"}},
		{"long word overflows alone", "extraordinarily hot", 8, []string{"extraordinarily", "hot"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := wrapText(c.in, c.width)
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("wrapText(%q, %d)=%v want %v", c.in, c.width, got, c.want)
			}
		})
	}
}

func TestButtonContains(t *testing.T) {
	b := &button{x: 100, y: 50, w: 110, h: 32}

	if !b.contains(100, 50) || !b.contains(210, 82) || !b.contains(150, 60) {
		t.Error("points on or inside the rect should hit")
	}
	if b.contains(99, 60) || b.contains(150, 83) {
		t.Error("points outside the rect should miss")
	}
}
