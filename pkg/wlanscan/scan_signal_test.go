package wlanscan

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestScanSignalWaitCompletes(t *testing.T) {
	signal := NewScanSignal()
	timeout := time.Second

	go func() {
		time.Sleep(10 * time.Millisecond)
		signal.Notify()
	}()

	result, elapsed := signal.Wait(context.Background(), timeout)

	if result != WaitCompleted {
		t.Fatalf("result = %v, want WaitCompleted", result)
	}

	if elapsed >= timeout {
		t.Errorf("elapsed %s is not below the %s timeout", elapsed, timeout)
	}
}

func TestScanSignalWaitTimesOut(t *testing.T) {
	signal := NewScanSignal()
	timeout := 30 * time.Millisecond

	result, elapsed := signal.Wait(context.Background(), timeout)

	if result != WaitTimedOut {
		t.Fatalf("result = %v, want WaitTimedOut", result)
	}

	if elapsed < timeout {
		t.Errorf("elapsed %s is below the %s timeout", elapsed, timeout)
	}
}

func TestScanSignalStaysSet(t *testing.T) {
	signal := NewScanSignal()
	signal.Notify()

	for i := 0; i < 3; i++ {
		result, elapsed := signal.Wait(context.Background(), time.Second)
		if result != WaitCompleted {
			t.Fatalf("wait %d: result = %v, want WaitCompleted", i, result)
		}

		if elapsed > 100*time.Millisecond {
			t.Errorf("wait %d took %s, want immediate", i, elapsed)
		}
	}
}

func TestScanSignalReset(t *testing.T) {
	signal := NewScanSignal()
	signal.Notify()
	signal.Reset()

	if signal.Complete() {
		t.Fatal("signal still complete after Reset")
	}

	if result, _ := signal.Wait(context.Background(), 10*time.Millisecond); result != WaitTimedOut {
		t.Fatalf("result = %v, want WaitTimedOut", result)
	}

	signal.Notify()
	if result, _ := signal.Wait(context.Background(), time.Second); result != WaitCompleted {
		t.Fatalf("result = %v, want WaitCompleted", result)
	}

	// resetting an unset signal is a no-op
	signal.Reset()
	signal.Reset()
	if signal.Complete() {
		t.Fatal("signal complete after double Reset")
	}
}

func TestScanSignalWaitCancelled(t *testing.T) {
	signal := NewScanSignal()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if result, _ := signal.Wait(ctx, time.Second); result != WaitCancelled {
		t.Fatalf("result = %v, want WaitCancelled", result)
	}
}

func TestScanSignalConcurrentNotify(t *testing.T) {
	signal := NewScanSignal()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			signal.Notify()
		}()
	}

	wg.Wait()

	if !signal.Complete() {
		t.Fatal("signal not complete after concurrent Notify")
	}
}
