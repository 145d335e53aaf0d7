// Package mailtemplate renders notification emails from HTML templates.
package mailtemplate

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"strings"

	"swirl/config"
	"swirl/internal/domain/entity"
	"swirl/internal/domain/lifecycle"
	"swirl/internal/domain/service"
	"swirl/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// template buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// template buckets
	"gocloud.dev/gcerrors"
)

const (
	defaultTemplate = "default.html"
	overridePrefix  = "emails/"
)

//go:embed templates/emails/*.html
var embedded embed.FS

// actionLabels are the human readable names shown in email bodies.
var actionLabels = map[entity.ActionKind]string{
	entity.ActionFollow:   "Follow",
	entity.ActionComment:  "Comment",
	entity.ActionReply:    "Reply",
	entity.ActionReaction: "Reaction",
	entity.ActionBookmark: "Bookmark",
	entity.ActionSignUp:   "Sign Up",
	entity.ActionLogIn:    "Log In",
}

// viewData is what the templates see.
type viewData struct {
	RecipientName string
	ActorName     string
	ActorEmail    string
	ActionType    string
	ActionLabel   string
	URL           string
	CreatedAt     string
}

type renderer struct {
	templates *template.Template
	overrides *blob.Bucket
	logger    *slog.Logger
}

// RendererParams holds dependencies for the template renderer, injected by Fx.
type RendererParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTemplateRenderer parses the embedded templates and, when configured,
// opens the bucket whose emails/<action>.html objects override them.
func NewTemplateRenderer(params RendererParams) (service.TemplateRenderer, error) {
	var bucket *blob.Bucket
	if params.Config.Notification != nil && params.Config.Notification.TemplateBucket != "" {
		ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
		defer cancel()

		opened, err := blob.OpenBucket(ctx, params.Config.Notification.TemplateBucket)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open template bucket")
		}
		bucket = opened

		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				return bucket.Close()
			},
		})
	}

	return newRenderer(bucket, params.Logger)
}

func newRenderer(overrides *blob.Bucket, logger *slog.Logger) (*renderer, error) {
	templates, err := template.ParseFS(embedded, "templates/emails/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse email templates")
	}

	return &renderer{
		templates: templates,
		overrides: overrides,
		logger:    logger,
	}, nil
}

// RenderEmail renders <action>.html, falling back to default.html.
func (r *renderer) RenderEmail(ctx context.Context, action entity.ActionKind, data *service.EmailData) (*service.RenderedEmail, error) {
	if data == nil {
		return nil, errors.New("email data is required")
	}

	tmpl, err := r.lookup(ctx, string(action)+".html")
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, buildViewData(action, data)); err != nil {
		return nil, errors.Wrapf(err, "failed to execute template for %s", action)
	}

	htmlBody := buf.String()

	return &service.RenderedEmail{
		HTML: htmlBody,
		Text: HTMLToText(htmlBody),
	}, nil
}

func (r *renderer) lookup(ctx context.Context, name string) (*template.Template, error) {
	if r.overrides != nil {
		tmpl, err := r.loadOverride(ctx, name)
		if err != nil {
			return nil, err
		}
		if tmpl != nil {
			return tmpl, nil
		}
	}

	if tmpl := r.templates.Lookup(name); tmpl != nil {
		return tmpl, nil
	}

	tmpl := r.templates.Lookup(defaultTemplate)
	if tmpl == nil {
		return nil, errors.New("default email template missing")
	}

	return tmpl, nil
}

// loadOverride returns nil without error when the bucket has no such object.
func (r *renderer) loadOverride(ctx context.Context, name string) (*template.Template, error) {
	content, err := r.overrides.ReadAll(ctx, overridePrefix+name)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, nil
		}

		return nil, errors.Wrapf(err, "failed to read template override %s", name)
	}

	tmpl, err := template.New(name).Parse(string(content))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse template override %s", name)
	}

	if r.logger != nil {
		r.logger.DebugContext(ctx, "Using email template override", slog.String("template", name))
	}

	return tmpl, nil
}

func buildViewData(action entity.ActionKind, data *service.EmailData) viewData {
	view := viewData{
		RecipientName: data.Recipient.Name(),
		ActorName:     "Someone",
		ActionType:    string(action),
		ActionLabel:   actionLabels[action],
		URL:           data.URL,
	}

	if data.Actor != nil {
		view.ActorName = data.Actor.Name()
		view.ActorEmail = data.Actor.Email
	}
	if strings.TrimSpace(view.ActorName) == "" {
		view.ActorName = "Someone"
	}
	if view.ActionLabel == "" {
		view.ActionLabel = string(action)
	}
	if data.Notification != nil && !data.Notification.CreatedAt.IsZero() {
		view.CreatedAt = data.Notification.CreatedAt.UTC().Format("Jan 2, 2006 15:04 UTC")
	}

	return view
}
