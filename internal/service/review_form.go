package service

import (
	"context"

	"go-travel-agency/internal/api"
	"go-travel-agency/internal/model"
	"go-travel-agency/internal/notify"
)

type ReviewRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Rating  string `json:"rating" validate:"required,rating_string"`
	Comment string `json:"comment" validate:"required"`
	Visible bool   `json:"visible"`
}

type ReviewForm struct {
	submitGuard
	client   *api.Client
	notifier notify.Notifier
	editing  *model.Review
}

func NewReviewForm(client *api.Client, notifier notify.Notifier, editing *model.Review) *ReviewForm {
	return &ReviewForm{client: client, notifier: notifier, editing: editing}
}

func (f *ReviewForm) Submit(ctx context.Context, req ReviewRequest) (*model.Review, error) {
	if err := f.begin(); err != nil {
		return nil, err
	}
	defer f.end()

	if err := validate(&req); err != nil {
		return nil, err
	}

	var saved model.Review
	var err error
	if f.editing != nil {
		err = f.client.Put(ctx, api.Review(f.editing.ID), &req, &saved)
	} else {
		err = f.client.Post(ctx, api.Reviews(), &req, &saved)
	}
	if err != nil {
		f.notifier.Error(api.Message(err, "Failed to save review. Please try again."))
		return nil, err
	}
	if f.editing != nil {
		f.notifier.Success("Review updated successfully!")
	} else {
		f.notifier.Success("Review submitted successfully!")
	}
	return &saved, nil
}
