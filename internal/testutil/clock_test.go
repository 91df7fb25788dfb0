package testutil

import (
	"testing"
	"time"
)

var start = time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

func TestClock_NowAdvances(t *testing.T) {
	c := NewClock(start, time.Minute)

	if got := c.Now(); !got.Equal(start) {
		t.Errorf("first Now() = %v, want %v", got, start)
	}
	if got := c.Now(); !got.Equal(start.Add(time.Minute)) {
		t.Errorf("second Now() = %v, want %v", got, start.Add(time.Minute))
	}
}

func TestClock_CurrentDoesNotAdvance(t *testing.T) {
	c := NewClock(start, time.Minute)

	c.Current()
	if got := c.Current(); !got.Equal(start) {
		t.Errorf("Current() = %v, want %v", got, start)
	}
}

func TestClock_Reset(t *testing.T) {
	c := NewClock(start, time.Minute)
	c.Now()
	c.Now()

	c.Reset(start)
	if got := c.Now(); !got.Equal(start) {
		t.Errorf("Now() after Reset = %v, want %v", got, start)
	}
}

func TestClock_ConcurrentUse(t *testing.T) {
	c := NewClock(start, time.Second)

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				c.Now()
			}
			done <- struct{}{}
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}

	want := start.Add(1000 * time.Second)
	if got := c.Current(); !got.Equal(want) {
		t.Errorf("Current() after 1000 calls = %v, want %v", got, want)
	}
}
