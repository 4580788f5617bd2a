package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	Serve   ServeCmd         `cmd:"" help:"Run the bingo host server"`
	Client  ClientCmd        `cmd:"" help:"Connect as an interactive operator console"`
	Check   CheckCmd         `cmd:"" help:"Validate a card file against the word banks"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wordbingo"),
		kong.Description("Multi-language word bingo host: card validation, round scheduling, and win adjudication"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
