package ingredient

import "encoding/json"

// CreateIngredientRequest payload de cadastro.
// swagger:model CreateIngredientRequest
type CreateIngredientRequest struct {
	ProductName string  `json:"nome_produto" example:"Chocolate"`
	Base        *string `json:"base"         example:"Massa branca"`
	Filling     *string `json:"recheio"      example:"Brigadeiro"`
}

// UpdateIngredientRequest payload of partial update; omitted fields keep the stored value,
// an explicit null clears base or recheio.
// swagger:model UpdateIngredientRequest
type UpdateIngredientRequest struct {
	ProductName *string `json:"nome_produto"`
	Base        *string `json:"base"`
	Filling     *string `json:"recheio"`

	nulls map[string]bool
}

func (r *UpdateIngredientRequest) UnmarshalJSON(b []byte) error {
	type fields UpdateIngredientRequest
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*r = UpdateIngredientRequest(f)
	for k, v := range raw {
		if string(v) == "null" {
			if r.nulls == nil {
				r.nulls = make(map[string]bool)
			}
			r.nulls[k] = true
		}
	}
	return nil
}

// IsNull reports whether key was present in the body with a null value.
func (r UpdateIngredientRequest) IsNull(key string) bool { return r.nulls[key] }
