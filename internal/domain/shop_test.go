package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShopRef_UnmarshalsBothWireShapes(t *testing.T) {
	// managedShops arrives either as bare ids or as populated objects
	var u User
	raw := `{"_id":"u-1","email":"a@b.c","role":"shop_admin","managedShops":["s-1",{"_id":"s-2","name":"Second"}]}`
	require.NoError(t, json.Unmarshal([]byte(raw), &u))

	require.Len(t, u.ManagedShops, 2)
	assert.Equal(t, "s-1", u.ManagedShops[0].ID())
	_, populated := u.ManagedShops[0].Shop()
	assert.False(t, populated)

	assert.Equal(t, "s-2", u.ManagedShops[1].ID())
	shop, populated := u.ManagedShops[1].Shop()
	require.True(t, populated)
	assert.Equal(t, "Second", shop.Name)
}

func TestShopRef_MarshalKeepsShape(t *testing.T) {
	refs := []ShopRef{ShopID("s-1"), PopulatedShop(Shop{ID: "s-2", Name: "Second"})}
	raw, err := json.Marshal(refs)
	require.NoError(t, err)
	assert.JSONEq(t, `["s-1",{"_id":"s-2","name":"Second"}]`, string(raw))
}

func TestUser_FirstShopID(t *testing.T) {
	u := User{}
	_, ok := u.FirstShopID()
	assert.False(t, ok)
	assert.False(t, u.HasShop())

	u.ManagedShops = []ShopRef{ShopID("s-1"), ShopID("s-2")}
	id, ok := u.FirstShopID()
	require.True(t, ok)
	assert.Equal(t, "s-1", id)
}
