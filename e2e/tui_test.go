//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartupExpandsHeader(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	defer tf.DumpTailOnFail(t, "startup", 4096)

	require.NoError(t, tf.StartApp())

	require.True(t, tf.SeePlain("scrollhead"), "should show the title in the header")
	require.True(t, tf.SeePlain("Item 0"), "should list the first row")
	require.True(t, tf.SeePlain("header expanded"), "first layout at the top expands the header")
	require.True(t, tf.SeePlain("strategy offset"), "offset is the default strategy")
}

func TestScrollCollapsesAndExpands(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	defer tf.DumpTailOnFail(t, "scroll", 4096)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("header expanded"))

	// Let the expand animation finish so the next sample is not dropped
	time.Sleep(500 * time.Millisecond)
	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyDown))
	require.True(t, tf.SeePlain("header collapsed"), "scrolling forward collapses the header")

	time.Sleep(500 * time.Millisecond)
	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyUp))
	require.True(t, tf.SeePlain("header expanded"), "scrolling back expands the header")
}

func TestStrategyToggle(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	defer tf.DumpTailOnFail(t, "strategy", 4096)

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("strategy offset"))

	require.NoError(t, tf.SendKeys(KeyStrategy))
	require.True(t, tf.SeePlain("strategy index"))

	// Once the first window has fired, jumping to the bottom reveals higher
	// rows and the next throttled decision collapses
	time.Sleep(800 * time.Millisecond)
	tf.Reset()
	require.NoError(t, tf.SendKeys(KeyBottom))
	require.True(t, tf.OutputContainsPlain("header collapsed", 3*time.Second))
}

func TestConfigFileSelectsStrategy(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()
	defer tf.DumpTailOnFail(t, "config", 4096)

	tf.WriteConfig("strategy = \"index\"\nitems = 12\n")
	require.NoError(t, tf.StartApp())

	require.True(t, tf.SeePlain("strategy index"))
	require.True(t, tf.SeePlain("Item 11"))
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	require.NoError(t, tf.StartApp())
	require.True(t, tf.SeePlain("scrollhead"), "Should show scrollhead title")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	select {
	case err := <-done:
		require.NoError(t, err, "process should exit cleanly")
	case <-time.After(1500 * time.Millisecond):
		t.Logf("'q' didn't work within 1.5 seconds, using Ctrl+C")
		tf.SendKeys(KeyCtrlC)
		select {
		case <-done:
			t.Fatal("application only exited on Ctrl+C")
		case <-time.After(2 * time.Second):
			t.Fatal("application did not exit")
		}
	}
}
