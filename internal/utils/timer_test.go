package utils

import (
	"testing"
	"time"
)

func TestTimer_StopFreezesReading(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)

	first := timer.Stop()
	if first <= 0 {
		t.Fatalf("Stop() = %v, want positive duration", first)
	}

	time.Sleep(2 * time.Millisecond)
	if second := timer.Stop(); second != first {
		t.Errorf("second Stop() = %v, want frozen %v", second, first)
	}
	if timer.Elapsed() != first {
		t.Errorf("Elapsed() after Stop = %v, want %v", timer.Elapsed(), first)
	}
}

func TestTimer_ElapsedWhileRunning(t *testing.T) {
	timer := NewTimer()
	time.Sleep(time.Millisecond)

	if timer.Elapsed() <= 0 {
		t.Errorf("running timer reported %v", timer.Elapsed())
	}
}
