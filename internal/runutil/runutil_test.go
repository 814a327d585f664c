package runutil

import "testing"

func TestEffectiveWorkers_AutoUsesCPUs(t *testing.T) {
	n, w := EffectiveWorkers(0, 8, 100)
	if n != 8 || len(w) != 0 {
		t.Fatalf("want 8 workers without warnings, got %d %v", n, w)
	}
}

func TestEffectiveWorkers_ClampToDim(t *testing.T) {
	n, w := EffectiveWorkers(0, 8, 3)
	if n != 3 || len(w) != 1 {
		t.Fatalf("want 3 workers with one warning, got %d %v", n, w)
	}
}

func TestEffectiveWorkers_Oversubscribed(t *testing.T) {
	n, w := EffectiveWorkers(16, 4, 100)
	if n != 16 || len(w) != 1 {
		t.Fatalf("want 16 workers with one warning, got %d %v", n, w)
	}
	n, w = EffectiveWorkers(16, 4, 5)
	if n != 5 || len(w) != 2 {
		t.Fatalf("want 5 workers with two warnings, got %d %v", n, w)
	}
}

func TestEffectiveWorkers_Explicit(t *testing.T) {
	n, w := EffectiveWorkers(2, 4, 10)
	if n != 2 || len(w) != 0 {
		t.Fatalf("want 2 workers, got %d %v", n, w)
	}
	if n, _ := EffectiveWorkers(3, 0, 10); n != 3 {
		t.Fatalf("cpus<1 treated as 1, got %d", n)
	}
}
