package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/character-service/internal/app"
	"github.com/jsamuelsen11/character-service/internal/domain/character"
	"github.com/jsamuelsen11/character-service/internal/ports"
)

// errSeedFailures is returned when at least one character could not be created.
var errSeedFailures = errors.New("some characters were not created")

func (r *runner) seedCommand() *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "seed [NAME[:CLASS]...]",
		Short: "Create many characters concurrently",
		Long: `Create one character per argument. Each argument is a name, optionally
followed by a colon and a class ("Korva:warrior"). With no arguments the
names are read from standard input, one per line.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := seedInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if len(inputs) == 0 {
				return errors.New("nothing to seed")
			}
			if r.newSeeder == nil {
				return errors.New("seeder not configured")
			}

			results, err := r.newSeeder(r.client, workers).Seed(cmd.Context(), inputs)
			if err != nil {
				return fmt.Errorf("seeding characters: %w", err)
			}
			return printSeedResults(cmd, results)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", app.DefaultSeedWorkers, "number of concurrent create requests")
	return cmd
}

// seedInputs parses args, or the lines of in when args is empty. Blank lines
// and lines starting with '#' are skipped.
func seedInputs(args []string, in io.Reader) ([]character.CreateCommand, error) {
	specs := args
	if len(specs) == 0 {
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			specs = append(specs, line)
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("reading names: %w", err)
		}
	}

	inputs := make([]character.CreateCommand, 0, len(specs))
	for _, spec := range specs {
		cmd, err := parseSeedSpec(spec)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, cmd)
	}
	return inputs, nil
}

func parseSeedSpec(spec string) (character.CreateCommand, error) {
	name, rawClass, _ := strings.Cut(spec, ":")
	cls, err := parseClass(rawClass)
	if err != nil {
		return character.CreateCommand{}, fmt.Errorf("%q: %w", spec, err)
	}
	return character.CreateCommand{Name: strings.TrimSpace(name), Class: cls}, nil
}

func printSeedResults(cmd *cobra.Command, results []ports.SeedResult) error {
	out := cmd.OutOrStdout()
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			_, _ = fmt.Fprintf(out, "FAILED  %s: %v\n", res.Input.Name, res.Err)
			continue
		}
		_, _ = fmt.Fprintf(out, "CREATED %s %s\n", res.Character.ID, res.Character.Name)
	}
	_, _ = fmt.Fprintf(out, "%d created, %d failed\n", len(results)-failed, failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errSeedFailures, failed, len(results))
	}
	return nil
}
