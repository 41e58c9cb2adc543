package main

import (
	"github.com/decker502/folio/internal/cli"
	"github.com/decker502/folio/pkg/embedded"
)

func main() {
	// dataFS 在 embed.go 中声明
	embedded.Init(dataFS)
	cli.ExitOnError(cli.Execute())
}
