package main

import (
	"github.com/acorn-io/cmd"
	"github.com/acorn-io/strsub/cli/pkg/cmds"
)

func main() {
	cmd.Main(cmds.NewRootCommand())
}
