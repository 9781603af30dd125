package cli

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

func (r *runner) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List characters ordered by name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cs, err := r.client.ListCharacters(cmd.Context())
			if err != nil {
				return fmt.Errorf("listing characters: %w", err)
			}
			return r.printCharacters(cmd, cs)
		},
	}
}

func (r *runner) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := r.client.GetCharacter(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("getting character %s: %w", id, err)
			}
			return r.printCharacter(cmd, *c)
		},
	}
}

func (r *runner) createCommand() *cobra.Command {
	var class string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cls, err := parseClass(class)
			if err != nil {
				return err
			}

			c, err := r.client.CreateCharacter(cmd.Context(), character.CreateCommand{Name: args[0], Class: cls})
			if err != nil {
				return fmt.Errorf("creating character: %w", err)
			}
			return r.printCharacter(cmd, *c)
		},
	}

	cmd.Flags().StringVar(&class, "class", "", "character class: "+strings.Join(classNames(), ", "))
	return cmd
}

func (r *runner) renameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a character",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			c, err := r.client.UpdateCharacter(cmd.Context(), character.UpdateCommand{ID: id, Name: args[1]})
			if err != nil {
				return fmt.Errorf("renaming character %s: %w", id, err)
			}
			return r.printCharacter(cmd, *c)
		},
	}
}

func (r *runner) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a character (succeeds when it does not exist)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			if err := r.client.DeleteCharacter(cmd.Context(), id); err != nil {
				return fmt.Errorf("deleting character %s: %w", id, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted character %s\n", id)
			return nil
		},
	}
}

func parseID(raw string) (character.ID, error) {
	id, err := character.ParseID(raw)
	if err != nil {
		return character.ID{}, fmt.Errorf("invalid character id %q: %w", raw, err)
	}
	return id, nil
}

func parseClass(raw string) (character.Class, error) {
	cls := character.Class(strings.ToLower(strings.TrimSpace(raw)))
	if !cls.IsValid() {
		return character.ClassNone, fmt.Errorf("unknown class %q (want one of: %s)", raw, strings.Join(classNames(), ", "))
	}
	return cls, nil
}

func classNames() []string {
	return lo.Map(character.Classes(), func(c character.Class, _ int) string { return c.String() })
}
