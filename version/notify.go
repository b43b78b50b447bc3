package version

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/icon"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/log"
	"github.com/twshades/twshades/style"
	"github.com/twshades/twshades/util"
)

// Notify prints a notice to w when a newer release exists.
// It does nothing unless cli.version_check is enabled.
func Notify(ctx context.Context, w io.Writer) {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	latest, err := Latest(ctx)
	erase()

	if err != nil {
		log.Warnf("version check: %v", err)
		return
	}

	if !Newer(latest, constant.Version) {
		return
	}

	_, _ = fmt.Fprintf(w, `
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(latest),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/twshades/twshades/releases/tag/v"+latest),
	)
}
