package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

// consoleHandler writes a header line per record followed by one indented
// line per field:
//
//	2026-03-04 05:06:07 INFO [cloud] – document written
//	    - Output Path: out/cloud.html
//
// Attributes are flattened to dotted keys when they are added, so Handle only
// merges the record's own fields.
type consoleHandler struct {
	out    *lockedWriter
	level  slog.Leveler
	source bool
	prefix string
	fields []field
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

type field struct {
	key   string
	value slog.Value
}

func newConsoleHandler(w io.Writer, level slog.Leveler, source bool) *consoleHandler {
	return &consoleHandler{out: &lockedWriter{w: w}, level: level, source: source}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.fields = appendFields(append([]field(nil), h.fields...), h.prefix, attrs)
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	fields := append([]field(nil), h.fields...)
	record.Attrs(func(attr slog.Attr) bool {
		fields = appendFields(fields, h.prefix, []slog.Attr{attr})
		return true
	})

	var component string
	shown := make([]field, 0, len(fields))
	index := make(map[string]int, len(fields))
	for _, f := range fields {
		if f.key == FieldComponent {
			if component == "" {
				component = plainString(f.value)
			}
			continue
		}
		if i, seen := index[f.key]; seen {
			shown[i].value = f.value
			continue
		}
		index[f.key] = len(shown)
		shown = append(shown, f)
	}

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}

	var buf bytes.Buffer
	buf.WriteString(formatTimestamp(ts))
	buf.WriteString(" " + levelName(record.Level))
	if component != "" {
		buf.WriteString(" [" + component + "]")
	}
	buf.WriteString(" – " + message)
	if loc := sourceLocation(record.Source()); h.source && loc != "" {
		buf.WriteString(" [" + loc + "]")
	}
	buf.WriteByte('\n')
	for _, f := range shown {
		buf.WriteString("    - " + fieldLabel(f.key) + ": " + consoleValue(f.key, f.value) + "\n")
	}

	h.out.mu.Lock()
	defer h.out.mu.Unlock()
	_, err := h.out.w.Write(buf.Bytes())
	return err
}

func appendFields(dst []field, prefix string, attrs []slog.Attr) []field {
	for _, attr := range attrs {
		value := attr.Value.Resolve()
		switch {
		case attr.Equal(slog.Attr{}):
		case value.Kind() == slog.KindGroup:
			inner := prefix
			if attr.Key != "" {
				inner = prefix + attr.Key + "."
			}
			dst = appendFields(dst, inner, value.Group())
		default:
			dst = append(dst, field{key: prefix + attr.Key, value: value})
		}
	}
	return dst
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	}
	return "DEBUG"
}
