// subxt is an offline client for substrate runtimes. It resolves dispatch errors,
// composes utility batches and builds storage keys from a JSON metadata registry.
package main

import (
	"os"

	"github.com/spf13/afero"

	"github.com/spacemeshos/go-subxt/cmd"
)

var (
	version string
	commit  string
	branch  string
)

func main() { // run the app
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := newRootCommand(afero.NewOsFs()).Execute(); err != nil {
		// the error was already printed by cobra
		os.Exit(1)
	}
}
