package logx

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	fileField  = "file"
	stackField = "error_stack"
)

// CallerHook adds the error stack of pkg/errors errors and, when
// maxCallerDepth > 0, the calling location to every entry.
type CallerHook struct {
	maxCallerDepth int
}

func NewCallerHook(maxDepth int) *CallerHook {
	return &CallerHook{maxCallerDepth: maxDepth}
}

func (h *CallerHook) Levels() []logrus.Level {
	return []logrus.Level{logrus.DebugLevel, logrus.InfoLevel, logrus.WarnLevel, logrus.ErrorLevel}
}

func (h *CallerHook) Fire(entry *logrus.Entry) error {
	if err, ok := entry.Data[logrus.ErrorKey].(error); ok {
		if stack := errorStack(err); stack != "" {
			entry.Data[stackField] = stack
		}
		return nil
	}
	if h.maxCallerDepth == 0 {
		return nil
	}
	if call := h.caller(); call != "" {
		entry.Data[fileField] = call
	}
	return nil
}

func (h *CallerHook) caller() string {
	pcs := make([]uintptr, h.maxCallerDepth+20)
	n := runtime.Callers(0, pcs)
	if n == 0 {
		return ""
	}

	frames := runtime.CallersFrames(pcs[:n])
	var stack []string
	for {
		frame, more := frames.Next()
		if !skipFrame(frame.File) {
			stack = append(stack, fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line))
			if len(stack) >= h.maxCallerDepth {
				break
			}
		}
		if !more {
			break
		}
	}

	return strings.Join(stack, " <- ")
}

func skipFrame(file string) bool {
	if strings.HasSuffix(file, "_test.go") {
		return false
	}
	for _, s := range []string{"sirupsen/logrus", "/runtime/", "/pkg/logx/"} {
		if strings.Contains(file, s) {
			return true
		}
	}
	return false
}

func errorStack(err error) string {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	var st stackTracer
	if !errors.As(err, &st) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprintf("%+v", st.StackTrace()))
}
