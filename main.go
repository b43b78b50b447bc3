package main

import (
	"github.com/samber/lo"
	"github.com/twshades/twshades/cmd"
	"github.com/twshades/twshades/config"
	"github.com/twshades/twshades/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())
	cmd.Execute()
}
