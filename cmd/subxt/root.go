package main

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/spacemeshos/go-subxt/cmd"
	"github.com/spacemeshos/go-subxt/log"
	"github.com/spacemeshos/go-subxt/metadata"
	"github.com/spacemeshos/go-subxt/metrics"
	"github.com/spacemeshos/go-subxt/nodeapi"
)

// app holds the state shared by the subcommands.
type app struct {
	*cmd.BaseApp
	fs       afero.Fs
	gatherer prometheus.Gatherer
	md       *metadata.Metadata
}

func newRootCommand(fs afero.Fs) *cobra.Command {
	a := &app{BaseApp: cmd.NewBaseApp(), fs: fs, gatherer: prometheus.DefaultGatherer}
	root := &cobra.Command{
		Use:           "subxt",
		Short:         "Offline client for substrate runtime metadata",
		Version:       fmt.Sprintf("%s (%s@%s)", cmd.Version, cmd.Branch, cmd.Commit),
		SilenceUsage:  true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			return a.initialize(c)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.pushMetrics()
		},
	}
	cmd.AddCommands(root)
	root.AddCommand(
		resolveCommand(a),
		batchCommand(a),
		payoutCommand(a),
		storageKeyCommand(a),
		decodeCommand(a),
	)
	return root
}

func (a *app) initialize(c *cobra.Command) error {
	if err := a.Initialize(c); err != nil {
		return err
	}
	md, err := metadata.LoadFile(a.fs, a.Config.MetadataFile)
	if err != nil {
		return report(err)
	}
	a.Logger("metadata").With().Info("loaded metadata",
		log.String("path", a.Config.MetadataFile),
		log.Stringer("version", md.Version()),
		log.Int("pallets", len(md.Pallets())),
	)
	a.md = md
	return nil
}

func (a *app) pushMetrics() error {
	if !a.Config.CollectMetrics {
		return nil
	}
	return metrics.Push(cmd.Ctx(), a.Config.Push, a.gatherer, a.Logger("metrics"))
}

// report classifies err into the client error taxonomy.
func report(err error) error {
	if err == nil {
		return nil
	}
	return nodeapi.Wrap(err)
}
