package main

import (
	"fmt"
	"os"

	"github.com/de-tools/asset-atlas/pkg/runtime/terminal"
	"github.com/de-tools/asset-atlas/pkg/services/source"
	"github.com/de-tools/asset-atlas/pkg/services/source/fixture"
	"github.com/de-tools/asset-atlas/pkg/services/source/opencost"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Registry: source.NewRegistry(map[string]source.Factory{
			source.KindOpenCost: opencost.SourceFactory,
			source.KindFixture:  fixture.SourceFactory,
		}),
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
