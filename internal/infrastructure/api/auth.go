package api

import (
	"context"
	"net/http"

	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/application/dto"
	"github.com/TONY-TUP4P1/TONY-TUP4P1-juancho-burger-front-public/internal/domain/entity"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// registerPayload lo que viaja al backend; la confirmación de contraseña es solo local.
type registerPayload struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login POST /login → {token, user}.
func (c *Client) Login(ctx context.Context, username, password string) (*dto.AuthResponse, error) {
	res, err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/login",
		body:   loginPayload{Username: username, Password: password},
	})
	if err != nil {
		return nil, err
	}
	var out dto.AuthResponse
	if err := decodeInto(res, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register POST /register → {token, user}.
func (c *Client) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	res, err := c.do(ctx, call{
		method: http.MethodPost,
		path:   "/register",
		body: registerPayload{
			Name:     in.Name,
			Username: in.Username,
			Email:    in.Email,
			Password: in.Password,
		},
	})
	if err != nil {
		return nil, err
	}
	var out dto.AuthResponse
	if err := decodeInto(res, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout POST /logout. Invalida el token en el servidor.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, call{method: http.MethodPost, path: "/logout"})
	return err
}

// CurrentUser GET /user.
func (c *Client) CurrentUser(ctx context.Context) (*entity.User, error) {
	res, err := c.do(ctx, call{method: http.MethodGet, path: "/user"})
	if err != nil {
		return nil, err
	}
	var u entity.User
	if err := decodeInto(res, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
