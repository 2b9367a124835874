package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	prog.done("Rendered SVG")

	if !strings.Contains(buf.String(), "Rendered SVG (") {
		t.Errorf("progress.done() output = %q, want message with elapsed time", buf.String())
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	ctx := withLogger(context.Background(), custom)
	if loggerFromContext(ctx) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}

	h.OnDragStart("console", 0)
	h.OnDrop("console", "REGION", 0)
	h.OnCancel("files", "refused")
	h.OnExtract("console", 400, 300)
	h.OnPrune("0123456789abcdef", "leaf")
	h.OnCollapse("split", "child", true)

	out := buf.String()
	for _, want := range []string{"drag start", "outcome=REGION", "reason=refused", "width=400", "layout=01234567", "collapsed=true"} {
		if !strings.Contains(out, want) {
			t.Errorf("hook output missing %q:\n%s", want, out)
		}
	}
}
