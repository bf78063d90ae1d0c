package order

import "encoding/json"

// CreateOrderRequest payload de criação de encomenda.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	Client string `json:"cliente" example:"Maria"`
	Cake   string `json:"bolo"    example:"Floresta Negra"`
	Price  *int   `json:"preco"   example:"120"`
	Date   string `json:"data"    example:"2024-05-20"`
}

// UpdateOrderRequest payload of partial update; nil fields keep the stored value.
// A key sent as an explicit null is recorded separately, see IsNull.
// swagger:model UpdateOrderRequest
type UpdateOrderRequest struct {
	Client *string `json:"cliente"`
	Cake   *string `json:"bolo"`
	Price  *int    `json:"preco"`
	Date   *string `json:"data"`

	nulls map[string]bool
}

func (r *UpdateOrderRequest) UnmarshalJSON(b []byte) error {
	type fields UpdateOrderRequest
	var f fields
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	nulls, err := nullKeys(b)
	if err != nil {
		return err
	}
	*r = UpdateOrderRequest(f)
	r.nulls = nulls
	return nil
}

// IsNull reports whether key was present in the body with a null value.
func (r UpdateOrderRequest) IsNull(key string) bool { return r.nulls[key] }

func nullKeys(b []byte) (map[string]bool, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, err
	}
	var out map[string]bool
	for k, v := range raw {
		if string(v) != "null" {
			continue
		}
		if out == nil {
			out = make(map[string]bool)
		}
		out[k] = true
	}
	return out, nil
}
