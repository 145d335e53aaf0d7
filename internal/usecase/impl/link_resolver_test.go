package impl

import (
	"context"
	"testing"

	"swirl/config"
	"swirl/internal/domain/entity"
	"swirl/internal/domain/repository"
	mockRepo "swirl/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLinkResolver_Resolve(t *testing.T) {
	postRepo := mockRepo.NewMockPostRepository(t)
	cfg := &config.Config{Notification: &config.NotificationConfig{FrontendURL: "https://swirl.example"}}
	resolver := NewLinkResolver(cfg, postRepo, discardLogger())
	ctx := context.Background()

	slugged := &entity.Post{ID: uuid.New(), Slug: "hello-world"}
	bare := &entity.Post{ID: uuid.New()}
	missing := uuid.New()
	commentID := uuid.New()

	postRepo.EXPECT().FindByID(ctx, slugged.ID).Return(slugged, nil)
	postRepo.EXPECT().FindByID(ctx, bare.ID).Return(bare, nil)
	postRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrPostNotFound)

	assert.Equal(t, "https://swirl.example/notifications", resolver.Resolve(ctx, nil))
	assert.Equal(t, "https://swirl.example/posts/hello-world", resolver.Resolve(ctx, entity.PostTarget{PostID: slugged.ID}))
	assert.Equal(t, "https://swirl.example/posts/"+bare.ID.String(), resolver.Resolve(ctx, entity.PostTarget{PostID: bare.ID}))
	assert.Equal(t, "https://swirl.example/posts/"+missing.String(), resolver.Resolve(ctx, entity.PostTarget{PostID: missing}))
	assert.Equal(t, "https://swirl.example/comments/"+commentID.String(), resolver.Resolve(ctx, entity.CommentTarget{CommentID: commentID}))
}
