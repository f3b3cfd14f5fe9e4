package logging

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// prettyHandler renders one line per record. Component, stage, and item are
// lifted out of the attributes into the line header:
//
//	2026-01-02T15:04:05Z INFO [mover] applying a.pdf – moved file destination=Documents/a.pdf
//
// The item is shown by base name; the full path stays available in JSON logs.
type prettyHandler struct {
	mu        *sync.Mutex
	writer    io.Writer
	level     *slog.LevelVar
	attrs     []slog.Attr
	groups    []string
	addSource bool
}

func newPrettyHandler(w io.Writer, lvl *slog.LevelVar, addSource bool) slog.Handler {
	return &prettyHandler{mu: &sync.Mutex{}, writer: w, level: lvl, addSource: addSource}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// header holds the fields printed before the message.
type header struct {
	component string
	stage     string
	item      string
}

// take claims key for the header and reports whether it did. The first value
// seen wins, so handler-level attributes beat record attributes.
func (hd *header) take(key string, v slog.Value) bool {
	var slot *string
	switch key {
	case FieldComponent:
		slot = &hd.component
	case FieldStage:
		slot = &hd.stage
	case FieldItem:
		slot = &hd.item
	default:
		return false
	}
	if *slot == "" {
		*slot = attrString(v)
	}
	return true
}

func (h *prettyHandler) Handle(_ context.Context, record slog.Record) error {
	if record.Level < h.level.Level() {
		return nil
	}

	var hd header
	fields := newFieldSet(record.NumAttrs() + len(h.attrs))
	add := func(attr slog.Attr) {
		for _, f := range flatten(h.groups, attr) {
			if !hd.take(f.key, f.value) {
				fields.set(f.key, f.value)
			}
		}
	}
	for _, attr := range h.attrs {
		add(attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		add(attr)
		return true
	})

	var buf bytes.Buffer
	buf.Grow(128 + len(fields.order)*24)
	h.writeHeader(&buf, record, hd)
	for _, f := range fields.order {
		buf.WriteByte(' ')
		buf.WriteString(f.key)
		buf.WriteByte('=')
		buf.WriteString(formatValue(f.value))
	}
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

func (h *prettyHandler) writeHeader(buf *bytes.Buffer, record slog.Record, hd header) {
	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(formatTimestamp(ts))
	buf.WriteByte(' ')
	buf.WriteString(levelLabel(record.Level))
	if hd.component != "" {
		buf.WriteString(" [" + hd.component + "]")
	}
	if hd.stage != "" {
		buf.WriteString(" " + hd.stage)
	}
	if hd.item != "" {
		buf.WriteString(" " + formatValue(slog.StringValue(filepath.Base(hd.item))))
	}

	message := strings.TrimSpace(record.Message)
	if message == "" {
		message = "(no message)"
	}
	buf.WriteString(" – ")
	buf.WriteString(message)

	if h.addSource {
		if src := record.Source(); src != nil {
			buf.WriteString(" [" + filepath.Base(src.File) + ":" + strconv.Itoa(src.Line) + "]")
		}
	}
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = append(append([]string(nil), h.groups...), name)
	return &clone
}

type field struct {
	key   string
	value slog.Value
}

// fieldSet keeps insertion order; a repeated key overwrites in place.
type fieldSet struct {
	order []field
	index map[string]int
}

func newFieldSet(capacity int) *fieldSet {
	return &fieldSet{order: make([]field, 0, capacity), index: make(map[string]int, capacity)}
}

func (s *fieldSet) set(key string, v slog.Value) {
	if key == "" {
		return
	}
	if i, ok := s.index[key]; ok {
		s.order[i].value = v
		return
	}
	s.index[key] = len(s.order)
	s.order = append(s.order, field{key: key, value: v})
}

// flatten expands groups into dotted keys.
func flatten(prefix []string, attr slog.Attr) []field {
	if attr.Equal(slog.Attr{}) {
		return nil
	}
	v := attr.Value.Resolve()
	if v.Kind() != slog.KindGroup {
		return []field{{key: joinKey(prefix, attr.Key), value: v}}
	}
	next := prefix
	if attr.Key != "" {
		next = append(append([]string(nil), prefix...), attr.Key)
	}
	var out []field
	for _, child := range v.Group() {
		out = append(out, flatten(next, child)...)
	}
	return out
}

func joinKey(prefix []string, key string) string {
	if len(prefix) == 0 {
		return key
	}
	if key == "" {
		return strings.Join(prefix, ".")
	}
	return strings.Join(prefix, ".") + "." + key
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
