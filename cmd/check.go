package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/icon"
	"github.com/grngxd/tiramisu/log"
	"github.com/grngxd/tiramisu/notify"
	"github.com/grngxd/tiramisu/style"
	"github.com/grngxd/tiramisu/util"
)

// checkNotifier warns when the desktop backend cannot deliver on this platform.
// Scripts still run; their notify calls reject with the delivery error.
func checkNotifier(backend string) {
	if backend != notify.BackendDesktop {
		return
	}

	if !notify.Supported(runtime.GOOS) {
		log.Warnf("desktop notifications are not supported on %s", runtime.GOOS)
		return
	}

	bin, ok := notify.Binary(runtime.GOOS)
	if !ok {
		return
	}

	if _, err := exec.LookPath(bin); err != nil {
		log.Warnf("notification command %s not found", bin)
		printMissingNotifier(bin)
	}
}

func printMissingNotifier(bin string) {
	var install string
	switch runtime.GOOS {
	case constant.Android:
		install = "pkg install termux-api"
	}

	body := fmt.Sprintf(
		"Scripts calling notifications.notify will fail because '%s' was not found in your PATH. Set notifications.backend to log or none to silence this.",
		bin,
	)

	if install != "" {
		body += "\n\nTo install it, try running:\n  " + style.New().Foreground(color.Ladyfinger).Bold(true).Render(install)
	}

	width := util.Max(40, util.TerminalWidth(80)-4)
	fmt.Println(style.Box(
		color.HiYellow,
		fmt.Sprintf("%s Notifications unavailable", icon.Get(icon.Warn)),
		util.Wrap(body, width-6),
		0,
	))
}
