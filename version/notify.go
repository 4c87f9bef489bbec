package version

import (
	"fmt"

	"github.com/grngxd/tiramisu/color"
	"github.com/grngxd/tiramisu/constant"
	"github.com/grngxd/tiramisu/icon"
	"github.com/grngxd/tiramisu/key"
	"github.com/grngxd/tiramisu/log"
	"github.com/grngxd/tiramisu/style"
	"github.com/grngxd/tiramisu/util"
	"github.com/spf13/viper"
)

// Notify prints a hint when a newer release than the running one exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking for a newer version...", icon.Get(icon.Progress)))
	latest, err := Latest()
	erase()

	if err != nil {
		log.Warnf("version check failed: %s", err)
		return
	}

	if comp, err := Compare(latest, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s %s %s %s
%s

`,
		style.Fg(color.Ladyfinger)("▇▇▇"),
		"tiramisu",
		style.Bold(latest),
		style.Faint(fmt.Sprintf("is available (you're on %s)", constant.Version)),
		style.Faint("https://github.com/grngxd/tiramisu/releases/tag/v"+latest),
	)
}
