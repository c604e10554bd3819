// Package auth handles the login flow: exchange credentials for a token,
// persist it in the session store, and build the capability object the
// views are constructed with.
package auth

import (
	"context"
	"encoding/json"
	"errors"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/permission"
	"go-travel-agency/internal/session"
)

var ErrBadLoginResponse = errors.New("login response missing token")

// Identity is who signed in.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	Data    struct {
		Identity
		Permissions     permission.Set `json:"permissions"`
		PermissionsList []string       `json:"permissionsList"`
	} `json:"data"`
}

// Login authenticates, stores the access token, and returns the identity
// with a loaded permission evaluator. The permission map is preferred;
// the flat list is the fallback when the API sent only that.
func Login(ctx context.Context, client *api.Client, store session.Store, email, password string) (*Identity, *permission.Evaluator, error) {
	body := map[string]string{"email": email, "password": password}
	raw, err := client.PostRaw(ctx, api.Login(), body)
	if err != nil {
		return nil, nil, err
	}

	var resp loginResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, nil, err
	}
	if resp.Token == "" {
		return nil, nil, ErrBadLoginResponse
	}
	if err := store.SetToken(resp.Token); err != nil {
		return nil, nil, err
	}

	set := resp.Data.Permissions
	if len(set) == 0 {
		set = permission.FromList(resp.Data.PermissionsList)
	}

	identity := resp.Data.Identity
	return &identity, permission.NewEvaluator(set), nil
}

// Logout clears the stored token.
func Logout(store session.Store) error {
	return store.Clear()
}
