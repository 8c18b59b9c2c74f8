package repeat

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNewAppliesDefaults(t *testing.T) {
	r := New(0, -1)
	if r.Delay != DefaultDelay || r.Interval != DefaultInterval {
		t.Fatalf("expected defaults, got %v / %v", r.Delay, r.Interval)
	}
}

func TestNothingFiresBeforeDelay(t *testing.T) {
	var n atomic.Int32
	r := New(time.Hour, time.Hour)
	r.Start(func() { n.Add(1) })
	time.Sleep(20 * time.Millisecond)
	r.Stop()
	if n.Load() != 0 {
		t.Fatalf("expected no calls before the delay, got %d", n.Load())
	}
}

func TestFiresRepeatedlyUntilStopped(t *testing.T) {
	fired := make(chan struct{}, 16)
	r := New(time.Millisecond, time.Millisecond)
	r.Start(func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	for i := 0; i < 3; i++ {
		select {
		case <-fired:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for call %d", i+1)
		}
	}
	r.Stop()
	if r.Running() {
		t.Fatal("repeater still running after Stop")
	}
	for len(fired) > 0 {
		<-fired
	}
	time.Sleep(20 * time.Millisecond)
	if len(fired) != 0 {
		t.Fatal("callback fired after Stop returned")
	}
}

func TestStartReplacesPreviousRun(t *testing.T) {
	var first, second atomic.Int32
	r := New(time.Millisecond, time.Millisecond)
	r.Start(func() { first.Add(1) })
	r.Start(func() { second.Add(1) })
	deadline := time.Now().Add(2 * time.Second)
	for second.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	r.Stop()
	if second.Load() == 0 {
		t.Fatal("second callback never fired")
	}
	before := first.Load()
	time.Sleep(10 * time.Millisecond)
	if first.Load() != before {
		t.Fatal("first callback kept firing after restart")
	}
}

func TestStopWithoutStart(t *testing.T) {
	r := New(0, 0)
	r.Stop()
	if r.Running() {
		t.Fatal("idle repeater reports running")
	}
}
