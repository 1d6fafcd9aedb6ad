package waves

import "testing"

func TestMapPositionToIndex(t *testing.T) {
	tests := []struct {
		name    string
		pixelX  float64
		segment float64
		n       int
		want    int
	}{
		{"origin", 0, 2, 300, 0},
		{"inside first segment", 1.9, 2, 300, 0},
		{"second segment", 2, 2, 300, 1},
		{"last pixel", 599, 2, 300, 299},
		{"past the end", 650, 2, 300, 299},
		{"negative", -5, 2, 300, 0},
		{"coarse", 451, 3, 300, 150},
		{"zero segment", 10, 0, 300, 0},
		{"empty chain", 10, 2, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MapPositionToIndex(tt.pixelX, tt.segment, tt.n); got != tt.want {
				t.Fatalf("MapPositionToIndex(%v, %v, %d) = %d, expected %d", tt.pixelX, tt.segment, tt.n, got, tt.want)
			}
		})
	}
}

func TestInjectorIndexAtHonoursOrigin(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OriginX = 100
	cfg.EndX = 700
	c, _ := newTestController(t, cfg, false)
	in := NewInjector(c, cfg)

	if got := in.IndexAt(100); got != 0 {
		t.Fatalf("left edge should map to 0, got %d", got)
	}
	if got := in.IndexAt(405); got != 152 {
		t.Fatalf("x=405 should map to 152, got %d", got)
	}
	if got := in.IndexAt(50); got != 0 {
		t.Fatalf("left of the domain should clamp to 0, got %d", got)
	}
}

func TestInjectorPreservesWavesInFlight(t *testing.T) {
	cfg := DefaultConfig()
	c, f := newTestController(t, cfg, false)
	in := NewInjector(c, cfg)

	if err := in.PointerDown(200, 50); err != nil {
		t.Fatalf("first PointerDown: %v", err)
	}
	for i := 0; i < 20; i++ {
		c.Tick()
	}
	before := c.Snapshot()

	if err := in.PointerDown(400, 50); err != nil {
		t.Fatalf("second PointerDown: %v", err)
	}
	after := c.Snapshot()

	hit := in.IndexAt(400)
	for i := range before.Velocity {
		if i == hit {
			continue
		}
		if after.Velocity[i] != before.Velocity[i] || after.Displacement[i] != before.Displacement[i] {
			t.Fatalf("spring %d lost energy across rebuild: before (%v, %v) after (%v, %v)",
				i, before.Displacement[i], before.Velocity[i], after.Displacement[i], after.Velocity[i])
		}
	}
	if got := f.Springs()[hit].Velocity; got != cfg.InitialSpeed {
		t.Fatalf("hit spring velocity %f, expected %f", got, cfg.InitialSpeed)
	}
	if c.State() != Running {
		t.Fatalf("expected cycle to keep running, got %v", c.State())
	}
}

func TestInjectorWithoutRebuild(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RebuildOnImpulse = false
	c, f := newTestController(t, cfg, false)
	in := NewInjector(c, cfg)

	springsBefore := &f.Springs()[0]
	if err := in.Impulse(10, -40); err != nil {
		t.Fatalf("Impulse: %v", err)
	}
	if &f.Springs()[0] != springsBefore {
		t.Fatal("field should not be rebuilt when rebuilding is disabled")
	}
	if got := f.Springs()[5].Velocity; got != -40 {
		t.Fatalf("expected velocity -40 at index 5, got %f", got)
	}
}
