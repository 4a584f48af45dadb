package logging

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

var fieldLabels = map[string]string{
	FieldEventType: "Event",
	FieldErrorHint: "Hint",
	FieldRunID:     "Run",
}

// fieldLabel turns a snake_case key into a title: "output_path" -> "Output Path".
func fieldLabel(key string) string {
	if label, ok := fieldLabels[key]; ok {
		return label
	}
	words := strings.FieldsFunc(key, func(r rune) bool { return r == '_' || r == '-' })
	if len(words) == 0 {
		return key
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// consoleValue renders v for humans. Byte counts (*_bytes) are humanized,
// durations rounded to milliseconds and booleans shown as yes/no.
func consoleValue(key string, v slog.Value) string {
	switch v.Kind() {
	case slog.KindInt64:
		if strings.HasSuffix(key, "_bytes") && v.Int64() >= 0 {
			return humanize.Bytes(uint64(v.Int64()))
		}
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		if strings.HasSuffix(key, "_bytes") {
			return humanize.Bytes(v.Uint64())
		}
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindDuration:
		return v.Duration().Round(time.Millisecond).String()
	case slog.KindBool:
		if v.Bool() {
			return "yes"
		}
		return "no"
	case slog.KindTime:
		return formatTimestamp(v.Time())
	}
	s := plainString(v)
	if s == "" || strings.ContainsFunc(s, func(r rune) bool { return r < ' ' || r == '"' }) {
		return strconv.Quote(s)
	}
	return s
}

func plainString(v slog.Value) string {
	if v.Kind() == slog.KindAny {
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
		return fmt.Sprint(v.Any())
	}
	return v.String()
}
