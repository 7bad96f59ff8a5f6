package logger

import (
	"context"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/typeget/internal/ui/output"
	"go.trai.ch/typeget/internal/ui/style"
)

// PrettyHandler is a slog.Handler that prints one colored line per record,
// prefixed with the level's icon. Attributes and groups are not rendered:
// structured data goes through the JSON handler.
type PrettyHandler struct {
	out *termenv.Output
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer) *PrettyHandler {
	return &PrettyHandler{out: output.New(w)}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelInfo
}

// Handle formats and outputs the log record.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	icon, color := levelStyle(r.Level)

	msg := r.Message
	if icon != "" {
		msg = icon + " " + msg
	}

	styled := h.out.String(msg).Foreground(termenv.RGBColor(string(color)))
	_, err := h.out.WriteString(styled.String() + "\n")
	return err
}

// WithAttrs returns h.
func (h *PrettyHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

// WithGroup returns h.
func (h *PrettyHandler) WithGroup(string) slog.Handler { return h }

func levelStyle(level slog.Level) (string, lipgloss.Color) {
	switch {
	case level >= slog.LevelError:
		return style.Cross, style.Red
	case level >= slog.LevelWarn:
		return style.Warning, style.Yellow
	default:
		return "", style.Slate
	}
}
