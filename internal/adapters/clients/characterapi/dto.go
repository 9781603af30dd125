package characterapi

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/jsamuelsen11/character-service/internal/domain/character"
)

// characterDTO is the API's representation of a character.
type characterDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Class string `json:"class,omitempty"`
}

type listResponseDTO struct {
	Items []characterDTO `json:"items"`
}

type createRequestDTO struct {
	Name  string `json:"name"`
	Class string `json:"class,omitempty"`
}

type updateRequestDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d characterDTO) toDomain() (character.Character, error) {
	id, err := character.ParseID(d.ID)
	if err != nil {
		return character.Character{}, fmt.Errorf("character API returned %w", err)
	}
	return character.Character{ID: id, Name: d.Name, Class: character.Class(d.Class)}, nil
}

func (l listResponseDTO) toDomain() ([]character.Character, error) {
	out := make([]character.Character, 0, len(l.Items))
	for _, item := range l.Items {
		c, err := item.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func toCreateRequest(cmd character.CreateCommand) createRequestDTO {
	return createRequestDTO{Name: cmd.Name, Class: cmd.Class.String()}
}

func toUpdateRequest(cmd character.UpdateCommand) updateRequestDTO {
	return updateRequestDTO{ID: cmd.ID.String(), Name: cmd.Name}
}

// firstMessages keeps the first message per field, the shape
// domain.ValidationError carries.
func firstMessages(errs map[string][]string) map[string]string {
	return lo.OmitByValues(
		lo.MapValues(errs, func(msgs []string, _ string) string { return lo.FirstOrEmpty(msgs) }),
		[]string{""},
	)
}
