package service

import (
	"context"

	"swirl/internal/domain/entity"
)

// EmailData is the view model handed to email templates.
type EmailData struct {
	Recipient    *entity.User
	Actor        *entity.User
	Notification *entity.Notification
	URL          string
}

// RenderedEmail holds both parts of a rendered email body.
type RenderedEmail struct {
	HTML string
	Text string
}

// TemplateRenderer renders the email body for an action. Actions without
// a dedicated template use the default one.
type TemplateRenderer interface {
	RenderEmail(ctx context.Context, action entity.ActionKind, data *EmailData) (*RenderedEmail, error)
}
