package output

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withFakeTerminal forces the terminal path and replaces the terminal
// animation with a plain wait, so the surrounding goroutine plumbing
// runs exactly as it would on a real terminal.
func withFakeTerminal(t *testing.T) {
	t.Helper()

	prevTTY := isTerminal
	prevSpin := runSpinner
	isTerminal = func() bool { return true }
	runSpinner = func(title string, wait func()) error {
		wait()
		return nil
	}
	t.Cleanup(func() {
		isTerminal = prevTTY
		runSpinner = prevSpin
	})
}

func TestRunWithSpinner_NonTerminalRunsDirectly(t *testing.T) {
	prev := isTerminal
	isTerminal = func() bool { return false }
	t.Cleanup(func() { isTerminal = prev })

	ran := false
	err := RunWithSpinner(context.Background(), func() error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestRunWithSpinner_TerminalReturnsActionError(t *testing.T) {
	withFakeTerminal(t)

	wantErr := errors.New("deliverable repair failed")

	result := make(chan error, 1)
	go func() {
		result <- RunWithSpinner(context.Background(), func() error {
			return wantErr
		})
	}()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, wantErr)
	case <-time.After(5 * time.Second):
		t.Fatal("RunWithSpinner did not return after the action finished")
	}
}

func TestRunWithSpinner_TerminalReturnsNilOnSuccess(t *testing.T) {
	withFakeTerminal(t)

	result := make(chan error, 1)
	go func() {
		result <- RunWithSpinner(context.Background(), func() error { return nil },
			WithTitle("Checking deliverables..."))
	}()

	select {
	case err := <-result:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunWithSpinner did not return after the action finished")
	}
}

func TestRunWithSpinner_TimeoutCancelsWait(t *testing.T) {
	withFakeTerminal(t)

	blocked := make(chan struct{})
	t.Cleanup(func() { close(blocked) })

	result := make(chan error, 1)
	go func() {
		result <- RunWithSpinner(context.Background(), func() error {
			<-blocked
			return nil
		}, WithTimeout(20*time.Millisecond))
	}()

	select {
	case err := <-result:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(5 * time.Second):
		t.Fatal("RunWithSpinner did not return after the timeout")
	}
}
