package service

import (
	"context"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
	"go-travel-agency/internal/permission"
)

type CreateUserRequest struct {
	Name             string         `json:"name" validate:"required"`
	Email            string         `json:"email" validate:"required,email"`
	IdentificationNo string         `json:"identificationNo" validate:"required"`
	Role             string         `json:"role" validate:"required,oneof=Admin Manager User"`
	Status           string         `json:"status" validate:"required,oneof=Active Inactive"`
	Password         string         `json:"password" validate:"required,min=6"`
	Permissions      permission.Set `json:"permissions"`
	PermissionsList  []string       `json:"permissionsList"`
}

// UpdateUserRequest carries no password at all: editing a user never
// shows or requires one.
type UpdateUserRequest struct {
	ID               string         `json:"id"`
	Name             string         `json:"name" validate:"required"`
	Email            string         `json:"email" validate:"required,email"`
	IdentificationNo string         `json:"identificationNo" validate:"required"`
	Role             string         `json:"role" validate:"required,oneof=Admin Manager User"`
	Status           string         `json:"status" validate:"required,oneof=Active Inactive"`
	Permissions      permission.Set `json:"permissions"`
	PermissionsList  []string       `json:"permissionsList"`
}

// UserFormValues is the editable field set bound to the user form.
type UserFormValues struct {
	Name             string
	Email            string
	IdentificationNo string
	Role             string
	Status           string
	Password         string // ignored when editing
	Permissions      permission.Set
}

// UserForm drives the user create/edit dialog.
type UserForm struct {
	submitGuard
	client   *api.Client
	notifier notify.Notifier
	editing  *model.User
}

// NewUserForm builds a form; a non-nil editing record switches it to
// update mode.
func NewUserForm(client *api.Client, notifier notify.Notifier, editing *model.User) *UserForm {
	return &UserForm{client: client, notifier: notifier, editing: editing}
}

// Values returns the initial field values: the editing record's fields,
// or defaults with every known module present and empty.
func (f *UserForm) Values() UserFormValues {
	base := permission.Set{}
	for _, m := range permission.Modules {
		base[m] = nil
	}
	if f.editing == nil {
		return UserFormValues{Permissions: base}
	}
	for m, actions := range f.editing.Permissions {
		if permission.KnownModule(m) {
			base[m] = actions
		}
	}
	return UserFormValues{
		Name:             f.editing.Name,
		Email:            f.editing.Email,
		IdentificationNo: f.editing.IdentificationNo,
		Role:             f.editing.Role,
		Status:           f.editing.Status,
		Permissions:      base,
	}
}

// ShowsPassword reports whether the password field is part of the form.
// It is rendered only when creating.
func (f *UserForm) ShowsPassword() bool {
	return f.editing == nil
}

// Submit validates, shapes the permission payload (pruned map plus flat
// list, so the API may use either) and posts it.
func (f *UserForm) Submit(ctx context.Context, values UserFormValues) (*model.User, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	pruned := values.Permissions.Prune()
	flat := pruned.Flatten()

	var saved model.User
	if f.editing != nil {
		req := UpdateUserRequest{
			ID:               f.editing.ID,
			Name:             values.Name,
			Email:            values.Email,
			IdentificationNo: values.IdentificationNo,
			Role:             values.Role,
			Status:           values.Status,
			Permissions:      pruned,
			PermissionsList:  flat,
		}
		if err := validate(&req); err != nil {
			return nil, err
		}
		if err := f.client.Put(ctx, api.User(f.editing.ID), &req, &saved); err != nil {
			f.notifier.Error(api.Message(err, "Failed to save user. Please try again."))
			return nil, err
		}
		f.notifier.Success("User updated successfully!")
	} else {
		req := CreateUserRequest{
			Name:             values.Name,
			Email:            values.Email,
			IdentificationNo: values.IdentificationNo,
			Role:             values.Role,
			Status:           values.Status,
			Password:         values.Password,
			Permissions:      pruned,
			PermissionsList:  flat,
		}
		if err := validate(&req); err != nil {
			return nil, err
		}
		if err := f.client.Post(ctx, api.Users(), &req, &saved); err != nil {
			f.notifier.Error(api.Message(err, "Failed to save user. Please try again."))
			return nil, err
		}
		f.notifier.Success("User created successfully!")
	}
	return &saved, nil
}
