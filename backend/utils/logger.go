package utils

import (
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
)

// LoggerConfig определяет конфигурацию для логгера
type LoggerConfig struct {
	// Формат логов (text/json)
	Format string
	// Выходной поток (os.Stdout, файл и т.д.)
	Output io.Writer
	// Включить/выключить цвета для консоли
	EnableColors bool
}

// InitLogger инициализирует и возвращает логгер
func InitLogger(config ...LoggerConfig) *log.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	// В формате json каждая запись - отдельная строка JSON
	if cfg.Format == "json" {
		return log.New(&jsonLineWriter{out: cfg.Output, now: time.Now}, "", 0)
	}

	prefix := "[taskbar] "
	if cfg.EnableColors {
		prefix = color.New(color.FgCyan).Sprint(prefix)
	}
	return log.New(cfg.Output, prefix, log.LstdFlags|log.Lshortfile|log.LUTC)
}

// DiscardLogger возвращает логгер, который ничего не пишет (для тестов и CLI).
func DiscardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// LogEvent - одна запись лога в формате json
type LogEvent struct {
	Timestamp string `json:"ts"`
	Level     string `json:"level"`
	Component string `json:"component"`
	Message   string `json:"msg"`
}

// jsonLineWriter превращает строки log.Logger в записи LogEvent.
// Компонент берется из префикса сообщения вида "tracker: ...".
type jsonLineWriter struct {
	out io.Writer
	now func() time.Time
}

func (w *jsonLineWriter) Write(p []byte) (int, error) {
	msg := strings.TrimRight(string(p), "\n")
	component := "taskbar"
	if head, rest, ok := strings.Cut(msg, ": "); ok && head != "" && !strings.ContainsAny(head, " \t") {
		component, msg = head, rest
	}

	data, err := json.Marshal(LogEvent{
		Timestamp: w.now().UTC().Format(time.RFC3339),
		Level:     "info",
		Component: component,
		Message:   msg,
	})
	if err != nil {
		return 0, err
	}
	if _, err := w.out.Write(append(data, '\n')); err != nil {
		return 0, err
	}
	return len(p), nil
}
