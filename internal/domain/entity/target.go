package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TargetKind names the kind of object a notification points at.
type TargetKind string

const (
	TargetKindPost    TargetKind = "post"
	TargetKindComment TargetKind = "comment"
)

// ErrInvalidTarget is returned when a target kind/id pair cannot be decoded.
var ErrInvalidTarget = errors.New("invalid notification target")

// Target is the object an action applied to. A nil Target means the
// notification concerns the account itself (sign up, log in, follow).
type Target interface {
	Kind() TargetKind
	TargetID() uuid.UUID
	// DefaultPath is the frontend path used when the object exposes no URL of its own.
	DefaultPath() string
}

// PostTarget points at a post.
type PostTarget struct {
	PostID uuid.UUID
}

func (t PostTarget) Kind() TargetKind    { return TargetKindPost }
func (t PostTarget) TargetID() uuid.UUID { return t.PostID }
func (t PostTarget) DefaultPath() string { return "/posts/" + t.PostID.String() }

// CommentTarget points at a comment.
type CommentTarget struct {
	CommentID uuid.UUID
}

func (t CommentTarget) Kind() TargetKind    { return TargetKindComment }
func (t CommentTarget) TargetID() uuid.UUID { return t.CommentID }
func (t CommentTarget) DefaultPath() string { return "/comments/" + t.CommentID.String() }

// NewTarget rebuilds a Target from its stored kind and id.
// Both must be present or both absent.
func NewTarget(kind *string, id *uuid.UUID) (Target, error) {
	switch {
	case kind == nil && id == nil:
		return nil, nil
	case kind == nil || id == nil:
		return nil, ErrInvalidTarget
	}

	switch TargetKind(*kind) {
	case TargetKindPost:
		return PostTarget{PostID: *id}, nil
	case TargetKindComment:
		return CommentTarget{CommentID: *id}, nil
	default:
		return nil, errors.Wrapf(ErrInvalidTarget, "unknown kind %q", *kind)
	}
}

// SplitTarget is the inverse of NewTarget.
func SplitTarget(t Target) (kind *string, id *uuid.UUID) {
	if t == nil {
		return nil, nil
	}

	k := string(t.Kind())
	tid := t.TargetID()

	return &k, &tid
}
