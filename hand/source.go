package hand

import (
	"fmt"
	"sync"
	"time"

	V "github.com/Vacayy/hand-controlled-3d-particles/vector"
)

//Vision boundary. Detection runs in its own goroutine off the render thread,
//the simulation reads whatever result finished last. A single most recent
//value slot couples the two, not a queue: the frame loop never blocks on
//inference and stale metrics are reused until the detector catches up.

//Detector - one blocking inference call per invocation. Implementations
//return the raw landmark sets for every hand visible this instant.
type Detector interface {
	Detect() ([][]V.Vec32, error)
	Close() error
}

//Source runs a Detector asynchronously and holds the latest extracted
//metrics. Construct with NewSource, then Start once. Latest never blocks.
type Source struct {
	det      Detector
	cfg      ExtractorConfig
	interval time.Duration

	mu     sync.Mutex
	latest []HandMetrics

	stop    chan struct{}
	done    chan struct{}
	started bool
	stopped bool
}

func NewSource(det Detector, cfg ExtractorConfig, interval time.Duration) *Source {
	return &Source{
		det:      det,
		cfg:      cfg,
		interval: interval,
		latest:   []HandMetrics{},
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

//Start - spawns the detection loop. Returns an error on double start.
func (s *Source) Start() error {
	if s.started {
		return fmt.Errorf("hand source already started")
	}
	s.started = true
	go s.run()
	return nil
}

func (s *Source) run() {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			raw, err := s.det.Detect()
			if err != nil {
				//single frame failure degrades to the previous result
				continue
			}
			metrics := ExtractAll(s.cfg, raw)
			s.mu.Lock()
			s.latest = metrics
			s.mu.Unlock()
		}
	}
}

//Latest - most recent completed detection, possibly stale, never blocking.
//An empty slice means no hands which is a valid idle state.
func (s *Source) Latest() []HandMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

//Stop - halts the loop and closes the detector. Safe to call more than
//once, repeat calls are no-ops.
func (s *Source) Stop() error {
	if s.stopped {
		return nil
	}
	s.stopped = true
	if !s.started {
		return s.det.Close()
	}
	close(s.stop)
	<-s.done
	return s.det.Close()
}
