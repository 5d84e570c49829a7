package domain

import (
	"encoding/json"
	"time"
)

type Shop struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	OwnerID   string    `json:"owner,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ShopRef is a reference to a shop as it appears on the wire: either a bare
// id string or a fully populated shop object, depending on whether the
// endpoint populated the relation. All callers go through ID() instead of
// inspecting the raw shape.
type ShopRef struct {
	id   string
	shop *Shop
}

func ShopID(id string) ShopRef {
	return ShopRef{id: id}
}

func PopulatedShop(s Shop) ShopRef {
	return ShopRef{id: s.ID, shop: &s}
}

// ID returns the shop id regardless of which shape the reference carries.
func (r ShopRef) ID() string {
	if r.shop != nil {
		return r.shop.ID
	}
	return r.id
}

// Shop returns the populated record, if the reference carries one.
func (r ShopRef) Shop() (*Shop, bool) {
	return r.shop, r.shop != nil
}

func (r *ShopRef) UnmarshalJSON(b []byte) error {
	var id string
	if err := json.Unmarshal(b, &id); err == nil {
		*r = ShopRef{id: id}
		return nil
	}
	var s Shop
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*r = ShopRef{id: s.ID, shop: &s}
	return nil
}

func (r ShopRef) MarshalJSON() ([]byte, error) {
	if r.shop != nil {
		return json.Marshal(r.shop)
	}
	return json.Marshal(r.id)
}
