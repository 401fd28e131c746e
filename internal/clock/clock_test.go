package clock

import (
	"testing"
	"time"
)

func TestTick_CountsDownWholeSeconds(t *testing.T) {
	start := time.Now()
	c := New(DefaultPreview)
	c.Start(start, 90)

	tests := []struct {
		offset time.Duration
		expect int
	}{
		{0, 90},
		{999 * time.Millisecond, 90},
		{time.Second, 89},
		{30*time.Second + 500*time.Millisecond, 60},
		{89 * time.Second, 1},
		{90 * time.Second, 0},
		{5 * time.Minute, 0},
	}
	for _, tt := range tests {
		c.Tick(start.Add(tt.offset))
		if c.Remaining() != tt.expect {
			t.Errorf("at %v: remaining = %d, expected %d", tt.offset, c.Remaining(), tt.expect)
		}
	}
}

func TestTick_NeverIncreases(t *testing.T) {
	start := time.Now()
	c := New(0)
	c.Start(start, 10)

	c.Tick(start.Add(5 * time.Second))
	c.Tick(start.Add(2 * time.Second))
	if c.Remaining() != 5 {
		t.Errorf("remaining went back up to %d", c.Remaining())
	}
	c.Tick(start.Add(-time.Hour))
	if c.Remaining() != 5 {
		t.Errorf("tick before start changed remaining to %d", c.Remaining())
	}
}

func TestExpired(t *testing.T) {
	start := time.Now()
	c := New(0)
	c.Start(start, 3)

	prev := c.Remaining()
	for ms := 0; ms <= 4000; ms += 100 {
		c.Tick(start.Add(time.Duration(ms) * time.Millisecond))
		if c.Remaining() > prev {
			t.Fatalf("remaining increased at %dms", ms)
		}
		prev = c.Remaining()
		if c.Expired() != (c.Remaining() == 0) {
			t.Fatalf("Expired() = %v with remaining %d", c.Expired(), c.Remaining())
		}
		if ms < 3000 && c.Expired() {
			t.Fatalf("expired too early at %dms", ms)
		}
	}
	if !c.Expired() {
		t.Error("expected clock to be expired")
	}
}

func TestPreviewEndsExactlyOnce(t *testing.T) {
	start := time.Now()
	c := New(10 * time.Second)
	c.Start(start, 90)

	if !c.PreviewActive() {
		t.Fatal("preview should be active right after Start")
	}

	ended := 0
	for ms := 0; ms <= 12000; ms += 16 {
		if c.Tick(start.Add(time.Duration(ms) * time.Millisecond)) {
			ended++
			if ms < 10000 {
				t.Errorf("preview ended early at %dms", ms)
			}
		}
	}
	if ended != 1 {
		t.Errorf("preview ended %d times, expected 1", ended)
	}
	if c.PreviewActive() {
		t.Error("preview should stay inactive")
	}
}

func TestPreviewLeft(t *testing.T) {
	start := time.Now()
	c := New(10 * time.Second)
	c.Start(start, 90)

	if got := c.PreviewLeft(start.Add(4 * time.Second)); got != 6*time.Second {
		t.Errorf("PreviewLeft = %v, expected 6s", got)
	}
	c.Tick(start.Add(11 * time.Second))
	if got := c.PreviewLeft(start.Add(11 * time.Second)); got != 0 {
		t.Errorf("PreviewLeft after preview = %v", got)
	}
}

func TestNoPreview(t *testing.T) {
	c := New(0)
	c.Start(time.Now(), 10)
	if c.PreviewActive() {
		t.Error("zero preview should never be active")
	}
}
