package validate

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"evergreen-ops/internal/domain/entity"
)

// Validator gate-checks a generated item set before anything is
// written or synced. Check returns human-readable errors; a non-empty
// result means the run must stop with no file or network effect.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Check runs the rules in order: duplicate ids, per-field presence and
// bounds, item type, purchasable/cost consistency.
func (v *Validator) Check(items []entity.EconomyItem) []string {
	var errs []string

	errs = append(errs, v.checkDuplicates(items)...)

	for i, item := range items {
		errs = append(errs, v.checkFields(i, item)...)
	}

	for i, item := range items {
		if item.IsPurchasable && !item.HasCost() {
			errs = append(errs, fmt.Sprintf("item[%d] %s: purchasable item has zero cost", i, item.ID))
		}
	}

	return errs
}

func (v *Validator) checkDuplicates(items []entity.EconomyItem) []string {
	var errs []string

	seen := make(map[string]int, len(items))

	for i, item := range items {
		if first, ok := seen[item.ID]; ok {
			errs = append(errs, fmt.Sprintf("item[%d] duplicates id %q of item[%d]", i, item.ID, first))
			continue
		}
		seen[item.ID] = i
	}

	return errs
}

func (v *Validator) checkFields(index int, item entity.EconomyItem) []string {
	var errs []string

	if err := v.validate.Struct(item); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok { //nolint:errorlint
			for _, fe := range fieldErrs {
				errs = append(errs, fmt.Sprintf(
					"item[%d] %s: field %s fails %q", index, item.ID, fe.Field(), fe.Tag(),
				))
			}
		} else {
			errs = append(errs, fmt.Sprintf("item[%d] %s: %v", index, item.ID, err))
		}
	}

	if item.Type != "" && !item.Type.Valid() {
		errs = append(errs, fmt.Sprintf("item[%d] %s: unknown type %q", index, item.ID, item.Type))
	}

	return errs
}
