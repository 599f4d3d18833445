package entity

// SessionStatus ciclo de vida de la sesión del cliente.
type SessionStatus string

const (
	SessionUninitialized SessionStatus = "uninitialized"
	SessionLoading       SessionStatus = "loading"
	SessionAuthenticated SessionStatus = "authenticated"
	SessionAnonymous     SessionStatus = "anonymous"
)
