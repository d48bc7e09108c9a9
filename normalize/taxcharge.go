package normalize

import (
	"strings"

	"gateway/entity"
)

func Tax(raw Raw) entity.Tax {
	return entity.Tax{
		ID:       Str(raw, "id", "_id", "tax_id"),
		Name:     Str(raw, "name", "tax_name"),
		Type:     strings.ToUpper(Str(raw, "type", "tax_type")),
		Value:    Num(raw, "value", "tax_value"),
		IsActive: Bool(raw, "isActive", "is_active", "active"),
	}
}

func Taxes(raws []Raw) []entity.Tax {
	out := make([]entity.Tax, 0, len(raws))
	for _, r := range raws {
		out = append(out, Tax(r))
	}
	return out
}

func Charge(raw Raw) entity.Charge {
	applies := strings.ToUpper(Str(raw, "applies_to", "apply_to", "appliesTo"))
	if applies == "" {
		applies = entity.AppliesAll
	}
	// Tolerate "Dine-In" style values from older upstream versions.
	applies = strings.ReplaceAll(applies, "-", "_")
	applies = strings.ReplaceAll(applies, " ", "_")

	return entity.Charge{
		ID:        Str(raw, "id", "_id", "charge_id"),
		Name:      Str(raw, "name", "charge_name"),
		Type:      strings.ToUpper(Str(raw, "type", "charge_type")),
		Value:     Num(raw, "value", "charge_value"),
		AppliesTo: applies,
		IsActive:  Bool(raw, "isActive", "is_active", "active"),
	}
}

func Charges(raws []Raw) []entity.Charge {
	out := make([]entity.Charge, 0, len(raws))
	for _, r := range raws {
		out = append(out, Charge(r))
	}
	return out
}
