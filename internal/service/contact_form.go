package service

import (
	"context"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
)

type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

type ContactForm struct {
	submitGuard
	client   *api.Client
	notifier notify.Notifier
	editing  *model.Contact
}

func NewContactForm(client *api.Client, notifier notify.Notifier, editing *model.Contact) *ContactForm {
	return &ContactForm{client: client, notifier: notifier, editing: editing}
}

func (f *ContactForm) Submit(ctx context.Context, req ContactRequest) (*model.Contact, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := validate(&req); err != nil {
		return nil, err
	}

	var saved model.Contact
	var err error
	if f.editing != nil {
		err = f.client.Put(ctx, api.Contact(f.editing.ID), &req, &saved)
	} else {
		err = f.client.Post(ctx, api.Contacts(), &req, &saved)
	}
	if err != nil {
		f.notifier.Error(api.Message(err, "Failed to send message. Please try again."))
		return nil, err
	}
	if f.editing != nil {
		f.notifier.Success("Contact updated successfully!")
	} else {
		f.notifier.Success("Message sent successfully!")
	}
	return &saved, nil
}
