package status

import (
	"math"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestMetricMapGetCachesPointer(t *testing.T) {
	reg := NewRegistry()
	a := reg.Ints.Get(KeyFrame)
	b := reg.Ints.Get(KeyFrame)
	if a != b {
		t.Errorf("Expected same pointer for repeated Get")
	}
	a.Store(7)
	if got := reg.Ints.Get(KeyFrame).Load(); got != 7 {
		t.Errorf("Expected 7, got %d", got)
	}
	if !reg.Ints.Has(KeyFrame) || reg.Ints.Has(KeyFPS) {
		t.Errorf("Expected Has to reflect registered keys only")
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	var wg sync.WaitGroup
	ptrs := make([]*AtomicFloat, 32)
	for i := range ptrs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ptrs[i] = m.Get("shared")
		}(i)
	}
	wg.Wait()

	for i, p := range ptrs {
		if p != ptrs[0] {
			t.Fatalf("Expected one shared pointer, goroutine %d got another", i)
		}
	}
	if m.Count() != 1 {
		t.Errorf("Expected 1 metric, got %d", m.Count())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	reg := NewRegistry()
	for _, k := range []string{KeyStatusLine, KeyChains, KeyCooldown} {
		reg.Strings.Get(k)
	}
	reg.Bools.Get(KeyMuted)

	var keys []string
	reg.Strings.Range(func(key string, _ *AtomicString) {
		keys = append(keys, key)
	})
	want := []string{KeyCooldown, KeyStatusLine, KeyChains}
	if strings.Join(keys, ",") != strings.Join(want, ",") {
		t.Errorf("Expected %v, got %v", want, keys)
	}
	if reg.TotalCount() != 4 {
		t.Errorf("Expected 4 metrics total, got %d", reg.TotalCount())
	}
}

func TestAtomicFloatSmooth(t *testing.T) {
	var f AtomicFloat
	if got := f.Smooth(60, 0.25); got != 60 {
		t.Errorf("Expected first sample taken directly, got %f", got)
	}
	if got := f.Smooth(20, 0.25); got != 50 {
		t.Errorf("Expected 50, got %f", got)
	}
	f.Set(1.5)
	if f.Get() != 1.5 {
		t.Errorf("Expected 1.5, got %f", f.Get())
	}
}

func TestAtomicStringTruncatesOnRuneBoundary(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"Short", "Neon Tide · ready", len("Neon Tide · ready")},
		{"ASCII overflow", strings.Repeat("a", 60), MaxStringLen},
		// 47 ASCII bytes then a 2-byte rune straddling the limit
		{"Split rune dropped", strings.Repeat("a", 47) + "·", 47},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s AtomicString
			s.Store(tt.in)
			if got := len(s.Load()); got != tt.want {
				t.Errorf("Expected %d bytes, got %d", tt.want, got)
			}
		})
	}

	var empty AtomicString
	if empty.Load() != "" {
		t.Errorf("Expected zero value to load empty string")
	}
}

func TestFrameMeter(t *testing.T) {
	reg := NewRegistry()
	start := time.Unix(0, 0)
	m := NewFrameMeter(reg, time.Second, start)

	for i := 1; i <= 30; i++ {
		m.Tick(start.Add(time.Duration(i) * time.Second / 30))
	}

	if got := reg.Ints.Get(KeyFrame).Load(); got != 30 {
		t.Errorf("Expected 30 frames, got %d", got)
	}
	if got := reg.Floats.Get(KeyFPS).Get(); math.Abs(got-30) > 1e-6 {
		t.Errorf("Expected 30 fps, got %f", got)
	}
}
