// Command dosecalc converts drink and vape parameters into standard drinks
// and nicotine pack-per-day equivalents.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/rshade/dosecalc/internal/cli"
	"github.com/rshade/dosecalc/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env is fine.
	_ = godotenv.Load()

	root := cli.NewRootCmd(version.GetVersion())
	err := root.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return cli.ExitCode(err)
}
