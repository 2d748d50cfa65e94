package game

import "testing"

func TestEntityStartsCentered(t *testing.T) {
	opts := DefaultOptions()
	e := NewEntity(opts)

	expected := opts.FieldHeight/2 - opts.EntitySize/2
	if e.Y != expected {
		t.Errorf("start Y = %v, expected %v", e.Y, expected)
	}
}

func TestEntityStep(t *testing.T) {
	opts := DefaultOptions() // height 500, size 20, gravity 6

	tests := []struct {
		name      string
		y         float64
		expectedY float64
		floor     bool
	}{
		{"free fall", 100, 106, false},
		{"one pixel above floor", 473, 479, false},
		{"lands exactly on floor", 474, 480, true},
		{"overshoots floor", 478, 480, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity(opts)
			e.Y = tc.y
			floor := e.Step()
			if floor != tc.floor {
				t.Errorf("Step() floor = %v, expected %v", floor, tc.floor)
			}
			if e.Y != tc.expectedY {
				t.Errorf("Y = %v, expected %v", e.Y, tc.expectedY)
			}
		})
	}
}

func TestEntityJump(t *testing.T) {
	opts := DefaultOptions() // jump impulse 60

	tests := []struct {
		name      string
		y         float64
		expectedY float64
	}{
		{"normal jump", 200, 140},
		{"clamped at ceiling", 30, 0},
		{"already at ceiling", 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity(opts)
			e.Y = tc.y
			e.Jump()
			if e.Y != tc.expectedY {
				t.Errorf("Y = %v, expected %v", e.Y, tc.expectedY)
			}
		})
	}
}

func TestEntitySpans(t *testing.T) {
	opts := DefaultOptions()
	e := NewEntity(opts)
	e.Y = 100

	if h := e.HSpan(); h.Start != opts.EntityX || h.End != opts.EntityX+opts.EntitySize {
		t.Errorf("HSpan() = %+v", h)
	}
	if v := e.VSpan(); v.Start != 100 || v.End != 100+opts.EntitySize {
		t.Errorf("VSpan() = %+v", v)
	}
}

func TestEntityReset(t *testing.T) {
	opts := DefaultOptions()
	e := NewEntity(opts)
	for !e.Step() {
	}

	e.Reset()
	if e.Y != opts.StartY() {
		t.Errorf("Y after Reset = %v, expected %v", e.Y, opts.StartY())
	}
}
