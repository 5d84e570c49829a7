package domain

import "time"

type Role string

const (
	RoleCustomer   Role = "customer"
	RoleWorker     Role = "worker"
	RoleShopAdmin  Role = "shop_admin"
	RoleSuperAdmin Role = "super_admin"
)

// ValidSignupRole reports whether a role may be requested at registration.
// super_admin accounts are only ever created by the seeder.
func ValidSignupRole(r Role) bool {
	switch r {
	case RoleCustomer, RoleWorker, RoleShopAdmin:
		return true
	}
	return false
}

type User struct {
	ID           string    `json:"_id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	Role         Role      `json:"role"`
	ManagedShops []ShopRef `json:"managedShops,omitempty"`
	AssignedShop *ShopRef  `json:"assignedShop,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitzero"`
	UpdatedAt    time.Time `json:"updatedAt,omitzero"`
}

// HasShop reports whether the user manages at least one shop.
func (u *User) HasShop() bool {
	return len(u.ManagedShops) > 0
}

// FirstShopID returns the id of the first managed shop.
func (u *User) FirstShopID() (string, bool) {
	if len(u.ManagedShops) == 0 {
		return "", false
	}
	return u.ManagedShops[0].ID(), true
}
