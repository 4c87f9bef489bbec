package notify

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/gen2brain/beeep"
	"github.com/grngxd/tiramisu/constant"
	"github.com/samber/lo"
)

// Desktop shows notifications through the platform's notification service.
type Desktop struct {
	Title string
}

var (
	// send delivers through beeep: D-Bus on unix, osascript on darwin, toast on windows.
	send = beeep.Notify
	// termux delivers on android, where beeep has no backend.
	termux = func(title, message, icon string) error {
		cmd := termuxCommand(title, message, icon)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s: %w: %s", cmd.Args[0], err, strings.TrimSpace(string(out)))
		}
		return nil
	}
)

// Notify implements Notifier.
func (d *Desktop) Notify(message, icon string) error {
	return d.notify(runtime.GOOS, message, icon)
}

func (d *Desktop) notify(goos, message, icon string) error {
	if !Supported(goos) {
		return fmt.Errorf("desktop notifications are not supported on %s", goos)
	}

	deliver := send
	if goos == constant.Android {
		deliver = termux
	}

	if err := deliver(d.title(), message, icon); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

func (d *Desktop) title() string {
	if d.Title == "" {
		return constant.Tiramisu
	}
	return d.Title
}

var supported = []string{
	constant.Linux,
	constant.Darwin,
	constant.Windows,
	constant.Android,
	"freebsd",
	"netbsd",
	"openbsd",
}

// Supported reports whether Desktop can deliver notifications on goos.
func Supported(goos string) bool {
	return lo.Contains(supported, goos)
}

// Binary returns the external command Desktop requires on goos, if any.
func Binary(goos string) (string, bool) {
	switch goos {
	case constant.Darwin:
		return "osascript", true
	case constant.Android:
		return "termux-notification", true
	default:
		return "", false
	}
}

// termuxCommand passes the message as a flag value so it is never parsed as a flag.
func termuxCommand(title, message, icon string) *exec.Cmd {
	args := []string{"--title", title, "--content", message}
	if icon != "" {
		args = append(args, "--icon", icon)
	}
	return exec.Command("termux-notification", args...)
}
