package hand

import (
	"fmt"
	"testing"
	"time"

	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//fakeDetector hands out a fixed sequence of results, then errors forever
type fakeDetector struct {
	results [][][]V.Vec32
	calls   int
	closed  bool
}

func (d *fakeDetector) Detect() ([][]V.Vec32, error) {
	if d.calls >= len(d.results) {
		return nil, fmt.Errorf("inference backend gone")
	}
	r := d.results[d.calls]
	d.calls++
	return r, nil
}

func (d *fakeDetector) Close() error {
	d.closed = true
	return nil
}

func TestSourceLatest(t *testing.T) {
	one := SynthLandmarks(SynthPose{Center: V.Vec32{0.5, 0.5, 0}, HandScale: 0.3, PinchRel: 0.5, Open: true})
	det := &fakeDetector{results: [][][]V.Vec32{{one}}}

	src := NewSource(det, DefaultExtractorConfig(), time.Millisecond)
	if err := src.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	//wait for the slot to fill
	deadline := time.Now().Add(time.Second)
	for len(src.Latest()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	got := src.Latest()
	if len(got) != 1 {
		t.Fatalf("want 1 hand in the slot, got %d", len(got))
	}

	//detector now errors every call: the slot must keep serving the
	//stale result instead of blocking or clearing
	time.Sleep(20 * time.Millisecond)
	stale := src.Latest()
	if len(stale) != 1 {
		t.Errorf("stale result dropped on detector failure")
	}

	if err := src.Stop(); err != nil {
		t.Errorf("stop failed: %v", err)
	}
	if !det.closed {
		t.Errorf("detector not closed on stop")
	}
}

func TestSourceDoubleStart(t *testing.T) {
	src := NewSource(&fakeDetector{}, DefaultExtractorConfig(), time.Millisecond)
	if err := src.Start(); err != nil {
		t.Fatalf("first start failed: %v", err)
	}
	if err := src.Start(); err == nil {
		t.Errorf("second start must fail")
	}
	src.Stop()
}

func TestSourceStopTwice(t *testing.T) {
	det := &fakeDetector{}
	src := NewSource(det, DefaultExtractorConfig(), time.Millisecond)
	if err := src.Start(); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	if err := src.Stop(); err != nil {
		t.Fatalf("first stop failed: %v", err)
	}
	//lifecycle must be idempotent, a deferred Stop after a manual one
	//is a no-op rather than a panic
	if err := src.Stop(); err != nil {
		t.Errorf("second stop must be a no-op: %v", err)
	}
	if !det.closed {
		t.Errorf("detector not closed")
	}
}

func TestSourceLatestNeverBlocks(t *testing.T) {
	//un-started source still answers with the empty idle state
	src := NewSource(&fakeDetector{}, DefaultExtractorConfig(), time.Millisecond)
	done := make(chan struct{})
	go func() {
		src.Latest()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Latest blocked")
	}
}

func TestScriptedDetector(t *testing.T) {
	lm := make([][]float32, LandmarkCount)
	for i := range lm {
		lm[i] = []float32{0.5, 0.5, 0}
	}
	file := &ScriptFile{Frames: []ScriptFrame{
		{Hands: [][][]float32{lm}},
		{Hands: [][][]float32{}},
	}}

	det, err := NewScriptedDetector(file)
	if err != nil {
		t.Fatalf("script rejected: %v", err)
	}

	//frames replay in order and wrap
	for loop := 0; loop < 2; loop++ {
		f0, _ := det.Detect()
		if len(f0) != 1 {
			t.Errorf("loop %d: frame 0 want 1 hand, got %d", loop, len(f0))
		}
		f1, _ := det.Detect()
		if len(f1) != 0 {
			t.Errorf("loop %d: frame 1 want 0 hands, got %d", loop, len(f1))
		}
	}
}

func TestScriptValidation(t *testing.T) {
	if _, err := NewScriptedDetector(&ScriptFile{}); err == nil {
		t.Errorf("empty script must be rejected")
	}

	short := &ScriptFile{Frames: []ScriptFrame{
		{Hands: [][][]float32{{{0.5, 0.5, 0}}}},
	}}
	if _, err := NewScriptedDetector(short); err == nil {
		t.Errorf("wrong landmark count must be rejected")
	}
}
