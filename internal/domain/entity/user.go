package entity

// Roles que entrega el servidor. El rol es autoritativo del backend.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Address dirección guardada por el cliente para pedidos delivery.
type Address struct {
	ID      int64  `json:"id"`
	Address string `json:"address"`
	Default Flag   `json:"default"`
}

// User representa a un usuario autenticado o a un cliente visto en pedidos.
type User struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Username       string    `json:"username"`
	Role           string    `json:"role"`
	Addresses      []Address `json:"addresses"`
	RegisteredDate string    `json:"registered_date,omitempty"`
}

// IsAdmin indica si el usuario tiene rol de administrador.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// DefaultAddress devuelve la dirección marcada como predeterminada, si existe.
func (u *User) DefaultAddress() *Address {
	if u == nil {
		return nil
	}
	for i := range u.Addresses {
		if u.Addresses[i].Default {
			a := u.Addresses[i]
			return &a
		}
	}
	return nil
}

// FindAddress busca una dirección guardada por ID.
func (u *User) FindAddress(id int64) *Address {
	if u == nil {
		return nil
	}
	for i := range u.Addresses {
		if u.Addresses[i].ID == id {
			a := u.Addresses[i]
			return &a
		}
	}
	return nil
}
