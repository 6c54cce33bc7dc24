package main

import (
	"os"

	"github.com/alecthomas/kong"

	"github.com/echolabx/docsite/cmd/docsite/commands"
	derrors "github.com/echolabx/docsite/internal/foundation/errors"
	"github.com/echolabx/docsite/internal/version"
)

func main() {
	var cli commands.CLI
	global := commands.NewGlobal()
	ctx := kong.Parse(&cli,
		kong.Name("docsite"),
		kong.Description("Generate documentation site configuration from a declarative site definition."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
		kong.Bind(global),
	)
	err := ctx.Run(&cli)
	os.Exit(derrors.NewCLIErrorAdapter(cli.Verbose, global.Logger).HandleError(err))
}
