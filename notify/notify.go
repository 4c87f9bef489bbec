// Package notify delivers notifications raised by guest scripts.
package notify

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/grngxd/tiramisu/key"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Backend identifiers accepted by the notifications.backend setting.
const (
	BackendDesktop = "desktop"
	BackendLog     = "log"
	BackendNone    = "none"
)

// Backends returns the accepted backend identifiers.
func Backends() []string {
	return []string{BackendDesktop, BackendLog, BackendNone}
}

// Notifier shows a message to the user. icon may be empty.
type Notifier interface {
	Notify(message, icon string) error
}

// Func adapts a plain function to Notifier.
type Func func(message, icon string) error

// Notify calls f.
func (f Func) Notify(message, icon string) error {
	return f(message, icon)
}

// None drops every notification.
var None Notifier = Func(func(string, string) error { return nil })

// Log writes notifications as log entries. Useful headless and in CI.
type Log struct {
	Logger *logrus.Logger
}

// NewLog returns a Log notifier writing text entries to w.
func NewLog(w io.Writer) *Log {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return &Log{Logger: logger}
}

// Notify implements Notifier.
func (n *Log) Notify(message, icon string) error {
	entry := n.Logger.WithField("source", "notification")
	if icon != "" {
		entry = entry.WithField("icon", icon)
	}
	entry.Info(message)
	return nil
}

// FromConfig builds the notifier selected by the notifications.backend setting.
func FromConfig() (Notifier, error) {
	switch backend := strings.ToLower(viper.GetString(key.NotificationsBackend)); backend {
	case BackendDesktop:
		return &Desktop{Title: viper.GetString(key.NotificationsTitle)}, nil
	case BackendLog:
		return NewLog(os.Stderr), nil
	case BackendNone:
		return None, nil
	default:
		return nil, fmt.Errorf("unknown notifications backend %q, available: %s", backend, strings.Join(Backends(), ", "))
	}
}
