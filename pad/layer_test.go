package pad

import "testing"

func TestRotateWithThreeLayers(t *testing.T) {
	s := newLayerState(3)

	up := []uint8{1, 2, 3, 1, 2}
	for i, want := range up {
		s.rotate(1)
		if s.active != want {
			t.Fatalf("step %d: layer = %d, want %d", i, s.active, want)
		}
	}

	down := []uint8{1, 3, 2, 1, 3}
	for i, want := range down {
		s.rotate(-1)
		if s.active != want {
			t.Fatalf("step %d: layer = %d, want %d", i, s.active, want)
		}
	}
}

func TestRotateFromLayerZeroLandsOnOne(t *testing.T) {
	// Layer 0 sits outside the 1..3 rotation band, so the first detent in
	// either direction enters the band at 1.
	for _, dir := range []int8{1, -1} {
		s := newLayerState(3)
		s.rotate(dir)
		if s.active != 1 {
			t.Fatalf("dir %d: layer = %d, want 1", dir, s.active)
		}
	}
}

func TestRotateWithOneExtraLayer(t *testing.T) {
	s := newLayerState(1)
	s.rotate(1)
	if s.active != 3 {
		t.Fatalf("layer = %d, want 3", s.active)
	}
	s.rotate(-1)
	if s.active != 3 {
		t.Fatalf("layer = %d, want 3", s.active)
	}
}

func TestRotateWithTwoExtraLayers(t *testing.T) {
	s := newLayerState(2)
	s.rotate(1)
	if s.active != 2 {
		t.Fatalf("positive detent: layer = %d, want 2", s.active)
	}
	s.rotate(-1)
	if s.active != 3 {
		t.Fatalf("negative detent: layer = %d, want 3", s.active)
	}
}

func TestRotateWithoutLayers(t *testing.T) {
	s := newLayerState(0)
	for i := 0; i < 5; i++ {
		s.rotate(1)
		s.rotate(-1)
	}
	if s.active != 0 {
		t.Fatalf("layer = %d, want 0", s.active)
	}
}

func TestLayerCountClamped(t *testing.T) {
	if s := newLayerState(200); s.max != 3 {
		t.Fatalf("max = %d, want 3", s.max)
	}
}

func TestResetReportsChange(t *testing.T) {
	s := newLayerState(3)
	s.rotate(1)
	s.rotate(1)
	if !s.reset() {
		t.Fatal("reset from layer 2 must report a change")
	}
	if s.active != 0 {
		t.Fatalf("layer = %d, want 0", s.active)
	}
	if s.reset() {
		t.Fatal("reset at layer 0 must not report a change")
	}
}
