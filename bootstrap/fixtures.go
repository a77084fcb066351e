package bootstrap

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"topphysics/internal/models"
)

// AssistantSeed is an administrator account provisioned on every run.
// Password is the plaintext; only its hash is stored.
type AssistantSeed struct {
	ID       string      `validate:"required"`
	Name     string      `validate:"required"`
	Phone    string      `validate:"required,numeric,len=11"`
	Role     models.Role `validate:"oneof=admin"`
	Password string      `validate:"required"`
}

type CenterSeed struct {
	ID   int    `validate:"gt=0"`
	Name string `validate:"required"`
}

var DefaultAssistants = []AssistantSeed{
	{ID: "admin", Name: "Admin", Phone: "01275584931", Role: models.RoleAdmin, Password: "#$admin$#"},
	{ID: "tony", Name: "Tony Joseph", Phone: "01211172756", Role: models.RoleAdmin, Password: "#$tony$#"},
}

var DefaultCenters = []CenterSeed{
	{ID: 1, Name: "Future Center"},
	{ID: 2, Name: "MCC Center"},
	{ID: 3, Name: "Gaint Center"},
	{ID: 4, Name: "St. Mary Ch. Nozha Center"},
	{ID: 5, Name: "St. Mary Ch. Amiryah Center"},
}

var validate = validator.New()

// validateFixtures checks every entry and rejects duplicate ids.
func validateFixtures(assistants []AssistantSeed, centers []CenterSeed) error {
	seenAssistants := make(map[string]bool, len(assistants))
	for i, a := range assistants {
		if err := validate.Struct(a); err != nil {
			return fmt.Errorf("assistant fixture %d: %w", i, err)
		}
		if seenAssistants[a.ID] {
			return fmt.Errorf("assistant fixture %d: duplicate id %q", i, a.ID)
		}
		seenAssistants[a.ID] = true
	}

	seenCenters := make(map[int]bool, len(centers))
	for i, c := range centers {
		if err := validate.Struct(c); err != nil {
			return fmt.Errorf("center fixture %d: %w", i, err)
		}
		if seenCenters[c.ID] {
			return fmt.Errorf("center fixture %d: duplicate id %d", i, c.ID)
		}
		seenCenters[c.ID] = true
	}
	return nil
}
