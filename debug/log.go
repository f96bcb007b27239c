package debug

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/versa-format/versa/encode"
	"github.com/versa-format/versa/ir"
)

var (
	loggerMu sync.Mutex
	logger   *slog.Logger
)

// NewHandler returns a slog handler writing human readable records to w.
func NewHandler(w io.Writer, level slog.Level) slog.Handler {
	l := log.NewWithOptions(w, log.Options{
		Prefix: "versa",
		Level:  log.Level(level),
	})
	return l
}

// Logger returns the process wide diagnostic logger, writing to stderr
// unless SetOutput says otherwise. Records are dropped while output is
// disabled with SetEnabled.
func Logger() *slog.Logger {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	if logger == nil {
		logger = newLogger(os.Stderr)
	}
	return logger
}

// SetOutput redirects the diagnostic logger to w.
func SetOutput(w io.Writer) {
	loggerMu.Lock()
	defer loggerMu.Unlock()
	logger = newLogger(w)
}

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(&switchHandler{NewHandler(w, slog.LevelDebug)})
}

type switchHandler struct {
	slog.Handler
}

func (h *switchHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return Enabled() && h.Handler.Enabled(ctx, level)
}

func (h *switchHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &switchHandler{h.Handler.WithAttrs(attrs)}
}

func (h *switchHandler) WithGroup(name string) slog.Handler {
	return &switchHandler{h.Handler.WithGroup(name)}
}

// Logf formats a diagnostic message and logs it at debug level through
// Logger. Branches and values in args are rendered as Versa text, maps and
// slices as JSON.
func Logf(msg string, args ...any) {
	if !Enabled() {
		return
	}
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Branch:
			buf := bytes.NewBuffer(nil)
			if err := encode.Encode(x, buf); err != nil {
				args[i] = fmt.Sprintf("<%v>", err)
				continue
			}
			args[i] = buf.String()
		case *ir.Value:
			buf := bytes.NewBuffer(nil)
			if err := encode.EncodeValue(x, buf); err != nil {
				args[i] = fmt.Sprintf("<%v>", err)
				continue
			}
			args[i] = buf.String()
		default:
		}
	}
	Logger().Debug(strings.TrimRight(fmt.Sprintf(msg, args...), "\n"))
}
