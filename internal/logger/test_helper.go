package logger

import (
	"bytes"
	"io"
	"strings"
	"sync"
)

// syncBuffer lets the logger write while a test reads
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	b.buf.Reset()
	b.mu.Unlock()
}

// TestHelper captures global log output for assertions
type TestHelper struct {
	originalLevel  LogLevel
	originalOutput io.Writer
	buffer         *syncBuffer
}

// NewTestHelper redirects the global logger into a buffer.
// Call Cleanup (usually deferred) to restore it.
func NewTestHelper() *TestHelper {
	th := &TestHelper{
		originalLevel: GetLevel(),
		buffer:        &syncBuffer{},
	}
	th.originalOutput = SetOutput(th.buffer)
	return th
}

// SetLevel sets the logging level for the test
func (th *TestHelper) SetLevel(level LogLevel) {
	SetLevel(level)
}

// SetQuiet sets the logging level to ERROR to minimize test output
func (th *TestHelper) SetQuiet() {
	SetLevel(ERROR)
}

// SetVerbose sets the logging level to DEBUG
func (th *TestHelper) SetVerbose() {
	SetLevel(DEBUG)
}

// GetOutput returns all captured log output
func (th *TestHelper) GetOutput() string {
	return th.buffer.String()
}

// GetOutputLines returns the non-empty captured lines
func (th *TestHelper) GetOutputLines() []string {
	lines := []string{}
	for _, line := range strings.Split(th.GetOutput(), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// ClearOutput clears the captured log output
func (th *TestHelper) ClearOutput() {
	th.buffer.Reset()
}

// Cleanup restores the original writer and level
func (th *TestHelper) Cleanup() {
	SetLevel(th.originalLevel)
	SetOutput(th.originalOutput)
}

// QuietTests raises the level to ERROR and returns a restore func
func QuietTests() func() {
	originalLevel := GetLevel()
	SetLevel(ERROR)
	return func() {
		SetLevel(originalLevel)
	}
}

// CaptureLogsFor runs fn at the given level and returns what it logged
func CaptureLogsFor(level LogLevel, fn func()) string {
	th := NewTestHelper()
	defer th.Cleanup()

	th.SetLevel(level)
	fn()

	return th.GetOutput()
}

// AssertContainsLog fails t unless a line with the level prefix and message was logged
func (th *TestHelper) AssertContainsLog(t interface {
	Errorf(format string, args ...interface{})
}, level LogLevel, message string) {
	prefix := "[" + level.String() + "]"
	for _, line := range th.GetOutputLines() {
		if strings.HasPrefix(line, prefix) && strings.Contains(line, message) {
			return
		}
	}
	t.Errorf("Expected a %s log line containing %q, got: %s", level.String(), message, th.GetOutput())
}

// AssertDoesNotContainLog fails t if a line with the level prefix and message was logged
func (th *TestHelper) AssertDoesNotContainLog(t interface {
	Errorf(format string, args ...interface{})
}, level LogLevel, message string) {
	prefix := "[" + level.String() + "]"
	for _, line := range th.GetOutputLines() {
		if strings.HasPrefix(line, prefix) && strings.Contains(line, message) {
			t.Errorf("Expected no %s log line containing %q, got: %s", level.String(), message, line)
			return
		}
	}
}
