// Package cli implements characterctl, the operator command line for the
// character API. Commands talk to a running service through a
// ports.CharacterClient.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/character-service/internal/ports"
)

// Output formats accepted by --output.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// ClientFactory builds the client used by a command. An empty baseURL keeps
// the configured one.
type ClientFactory func(baseURL string) (ports.CharacterClient, error)

// SeederFactory builds a SeedService that creates through client using
// workers concurrent requests.
type SeederFactory func(client ports.CharacterClient, workers int) ports.SeedService

// runner carries the state shared by every subcommand of one invocation.
type runner struct {
	newClient ClientFactory
	newSeeder SeederFactory

	baseURL string
	output  string

	client ports.CharacterClient
}

// NewRootCommand assembles the characterctl command tree.
func NewRootCommand(newClient ClientFactory, newSeeder SeederFactory) *cobra.Command {
	r := &runner{newClient: newClient, newSeeder: newSeeder}

	root := &cobra.Command{
		Use:           "characterctl",
		Short:         "Manage characters through the character API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return r.connect()
		},
	}

	root.PersistentFlags().StringVar(&r.baseURL, "base-url", "", "character API base URL (overrides client.base_url)")
	root.PersistentFlags().StringVarP(&r.output, "output", "o", OutputTable, "output format: table or json")

	root.AddCommand(
		r.listCommand(),
		r.getCommand(),
		r.createCommand(),
		r.renameCommand(),
		r.deleteCommand(),
		r.seedCommand(),
	)

	return root
}

func (r *runner) connect() error {
	if !slices.Contains([]string{OutputTable, OutputJSON}, r.output) {
		return fmt.Errorf("unsupported output format %q (want %s or %s)", r.output, OutputTable, OutputJSON)
	}
	if r.newClient == nil {
		return errors.New("character client not configured")
	}

	client, err := r.newClient(r.baseURL)
	if err != nil {
		return fmt.Errorf("creating character client: %w", err)
	}
	r.client = client
	return nil
}
