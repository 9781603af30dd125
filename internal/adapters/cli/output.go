package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

// characterView is the JSON shape printed with --output json. It matches the
// API's character payload.
type characterView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class,omitempty"`
}

func toView(c character.Character) characterView {
	return characterView{ID: c.ID.String(), Name: c.Name, Class: c.Class.String()}
}

func (r *runner) printCharacter(cmd *cobra.Command, c character.Character) error {
	if r.output == OutputJSON {
		return writeJSON(cmd, toView(c))
	}
	return writeTable(cmd, []character.Character{c})
}

func (r *runner) printCharacters(cmd *cobra.Command, cs []character.Character) error {
	if r.output == OutputJSON {
		return writeJSON(cmd, lo.Map(cs, func(c character.Character, _ int) characterView { return toView(c) }))
	}
	if len(cs) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No characters found.")
		return nil
	}
	return writeTable(cmd, cs)
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}

func writeTable(cmd *cobra.Command, cs []character.Character) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "ID\tNAME\tCLASS")
	for _, c := range cs {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", c.ID, c.Name, lo.Ternary(c.Class == character.ClassNone, "-", c.Class.String()))
	}
	return tw.Flush()
}
