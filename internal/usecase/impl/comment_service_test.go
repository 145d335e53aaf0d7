package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"swirl/internal/domain/entity"
	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/repository"
	mockRepo "swirl/internal/mocks/repository"
	mockUsecase "swirl/internal/mocks/usecase"
	"swirl/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// commentServiceFixtures holds all test dependencies for comment service tests.
type commentServiceFixtures struct {
	service  usecase.CommentUsecase
	store    *memoryStore
	notifier *mockUsecase.MockNotificationUsecase
}

func createTestCommentService(t *testing.T) commentServiceFixtures {
	store := newMemoryStore()
	notifier := mockUsecase.NewMockNotificationUsecase(t)

	service := NewCommentService(CommentServiceParams{
		TxManager:   store,
		CommentRepo: &memoryCommentRepo{store: store},
		PostRepo:    &memoryPostRepo{store: store},
		Notifier:    notifier,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return commentServiceFixtures{
		service:  service,
		store:    store,
		notifier: notifier,
	}
}

func (fx commentServiceFixtures) allowNotifications() {
	fx.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return(nil, nil).Maybe()
}

func TestCommentService_CreateComment_NotifiesPostAuthor(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	postAuthor := uuid.New()
	commenter := uuid.New()
	post := fx.store.addPost(postAuthor)

	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(req *usecase.NotifyRequest) bool {
			return req.RecipientID == postAuthor &&
				req.ActorID == commenter &&
				req.Action == entity.ActionComment &&
				req.Target == entity.PostTarget{PostID: post.ID}
		})).
		Return(&entity.Notification{ID: uuid.New()}, nil).
		Once()

	comment, err := fx.service.CreateComment(ctx, post.ID, commenter, "  nice post  ")
	require.NoError(t, err)
	assert.Equal(t, "nice post", comment.Content)
	assert.Nil(t, comment.ParentID)
	assert.Equal(t, 0, comment.ReplyCount)
}

func TestCommentService_CreateComment_PostNotFound(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.CreateComment(context.Background(), uuid.New(), uuid.New(), "hello")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPostNotFound))
}

func TestCommentService_CreateComment_EmptyContent(t *testing.T) {
	fx := createTestCommentService(t)
	post := fx.store.addPost(uuid.New())

	_, err := fx.service.CreateComment(context.Background(), post.ID, uuid.New(), "   ")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	assert.Equal(t, 0, fx.store.commentCount())
}

func TestCommentService_CreateReply_IncrementsParentAndNotifiesParentAuthor(t *testing.T) {
	fx := createTestCommentService(t)
	ctx := context.Background()
	parentAuthor := uuid.New()
	replier := uuid.New()
	post := fx.store.addPost(uuid.New())

	var captured *usecase.NotifyRequest
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(req *usecase.NotifyRequest) bool { return req.Action == entity.ActionComment })).
		Return(nil, nil).
		Once()
	fx.notifier.EXPECT().
		Notify(ctx, mock.MatchedBy(func(req *usecase.NotifyRequest) bool { return req.Action == entity.ActionReply })).
		Run(func(_ context.Context, req *usecase.NotifyRequest) { captured = req }).
		Return(nil, nil).
		Once()

	parent, err := fx.service.CreateComment(ctx, post.ID, parentAuthor, "parent")
	require.NoError(t, err)

	reply, err := fx.service.CreateReply(ctx, parent.ID, replier, "reply")
	require.NoError(t, err)
	require.NotNil(t, reply.ParentID)
	assert.Equal(t, parent.ID, *reply.ParentID)
	assert.Equal(t, post.ID, reply.PostID)

	stored, ok := fx.store.comment(parent.ID)
	require.True(t, ok)
	assert.Equal(t, 1, stored.ReplyCount)

	require.NotNil(t, captured)
	assert.Equal(t, parentAuthor, captured.RecipientID)
	assert.Equal(t, replier, captured.ActorID)
	assert.Equal(t, entity.ActionReply, captured.Action)
	assert.Equal(t, entity.CommentTarget{CommentID: reply.ID}, captured.Target)
}

func TestCommentService_CreateReply_ParentNotFound(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.CreateReply(context.Background(), uuid.New(), uuid.New(), "reply")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
	assert.Equal(t, 0, fx.store.commentCount())
}

func TestCommentService_CreateReply_ConcurrentRepliesAreAllCounted(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	post := fx.store.addPost(uuid.New())

	parent, err := fx.service.CreateComment(ctx, post.ID, uuid.New(), "parent")
	require.NoError(t, err)

	const replies = 64
	var wg sync.WaitGroup
	errs := make(chan error, replies)
	for range replies {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := fx.service.CreateReply(ctx, parent.ID, uuid.New(), "concurrent reply")
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	stored, ok := fx.store.comment(parent.ID)
	require.True(t, ok)
	assert.Equal(t, replies, stored.ReplyCount)
	assert.Equal(t, replies, fx.store.liveChildren(parent.ID))
}

func TestCommentService_DeleteComment_RemovesSubtreeAndDecrementsImmediateParent(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	author := uuid.New()
	post := fx.store.addPost(uuid.New())

	root, err := fx.service.CreateComment(ctx, post.ID, author, "root")
	require.NoError(t, err)
	target, err := fx.service.CreateReply(ctx, root.ID, author, "target")
	require.NoError(t, err)

	// K = 3 descendants: two direct replies, one nested
	first, err := fx.service.CreateReply(ctx, target.ID, uuid.New(), "first")
	require.NoError(t, err)
	_, err = fx.service.CreateReply(ctx, target.ID, uuid.New(), "second")
	require.NoError(t, err)
	_, err = fx.service.CreateReply(ctx, first.ID, uuid.New(), "nested")
	require.NoError(t, err)
	sibling, err := fx.service.CreateReply(ctx, root.ID, uuid.New(), "sibling")
	require.NoError(t, err)

	before, _ := fx.store.comment(root.ID)
	require.Equal(t, 2, before.ReplyCount)

	removed, err := fx.service.DeleteComment(ctx, target.ID, author)
	require.NoError(t, err)
	assert.Equal(t, int64(4), removed)

	after, ok := fx.store.comment(root.ID)
	require.True(t, ok)
	assert.Equal(t, 1, after.ReplyCount)
	assert.Equal(t, after.ReplyCount, fx.store.liveChildren(root.ID))

	_, ok = fx.store.comment(sibling.ID)
	assert.True(t, ok)
	assert.Equal(t, 3, fx.store.commentCount())
}

func TestCommentService_DeleteComment_TopLevelTouchesNoCounter(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	author := uuid.New()
	post := fx.store.addPost(uuid.New())

	root, err := fx.service.CreateComment(ctx, post.ID, author, "root")
	require.NoError(t, err)
	_, err = fx.service.CreateReply(ctx, root.ID, uuid.New(), "child")
	require.NoError(t, err)

	removed, err := fx.service.DeleteComment(ctx, root.ID, author)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)
	assert.Equal(t, 0, fx.store.commentCount())
}

func TestCommentService_DeleteComment_NotOwner(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	post := fx.store.addPost(uuid.New())

	root, err := fx.service.CreateComment(ctx, post.ID, uuid.New(), "root")
	require.NoError(t, err)

	_, err = fx.service.DeleteComment(ctx, root.ID, uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentOwnershipViolation))
	assert.Equal(t, 1, fx.store.commentCount())
}

func TestCommentService_DeleteComment_NotFound(t *testing.T) {
	fx := createTestCommentService(t)

	_, err := fx.service.DeleteComment(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_GetComment(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	post := fx.store.addPost(uuid.New())

	root, err := fx.service.CreateComment(ctx, post.ID, uuid.New(), "root")
	require.NoError(t, err)

	found, err := fx.service.GetComment(ctx, root.ID)
	require.NoError(t, err)
	assert.Equal(t, "root", found.Content)

	_, err = fx.service.GetComment(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_UpdateComment_KeepsThreadState(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	author := uuid.New()
	post := fx.store.addPost(uuid.New())

	root, err := fx.service.CreateComment(ctx, post.ID, author, "first draft")
	require.NoError(t, err)
	_, err = fx.service.CreateReply(ctx, root.ID, uuid.New(), "reply")
	require.NoError(t, err)

	updated, err := fx.service.UpdateComment(ctx, root.ID, author, "  second draft ")
	require.NoError(t, err)
	assert.Equal(t, "second draft", updated.Content)
	assert.Equal(t, 1, updated.ReplyCount)
	assert.False(t, updated.UpdatedAt.Before(root.UpdatedAt))

	stored, ok := fx.store.comment(root.ID)
	require.True(t, ok)
	assert.Equal(t, "second draft", stored.Content)
	assert.Equal(t, 1, stored.ReplyCount)
}

func TestCommentService_UpdateComment_Rejects(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	author := uuid.New()
	post := fx.store.addPost(uuid.New())

	root, err := fx.service.CreateComment(ctx, post.ID, author, "mine")
	require.NoError(t, err)

	tests := []struct {
		name        string
		commentID   uuid.UUID
		requesterID uuid.UUID
		content     string
		want        error
	}{
		{name: "not the author", commentID: root.ID, requesterID: uuid.New(), content: "hijack", want: domainerrors.ErrCommentOwnershipViolation},
		{name: "missing comment", commentID: uuid.New(), requesterID: author, content: "edit", want: domainerrors.ErrCommentNotFound},
		{name: "blank content", commentID: root.ID, requesterID: author, content: "   ", want: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.service.UpdateComment(ctx, tt.commentID, tt.requesterID, tt.content)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want))
		})
	}

	stored, ok := fx.store.comment(root.ID)
	require.True(t, ok)
	assert.Equal(t, "mine", stored.Content)
}

func TestCommentService_ConcurrentRepliesAndDeletesKeepCounterExact(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	post := fx.store.addPost(uuid.New())

	parent, err := fx.service.CreateComment(ctx, post.ID, uuid.New(), "parent")
	require.NoError(t, err)

	author := uuid.New()
	seeded := make([]*entity.Comment, 0, 16)
	for range 16 {
		reply, err := fx.service.CreateReply(ctx, parent.ID, author, "seed")
		require.NoError(t, err)
		seeded = append(seeded, reply)
	}

	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				_, _ = fx.service.DeleteComment(ctx, seeded[i/2].ID, author)

				return
			}
			_, _ = fx.service.CreateReply(ctx, parent.ID, uuid.New(), "late")
		}()
	}
	wg.Wait()

	stored, ok := fx.store.comment(parent.ID)
	require.True(t, ok)
	assert.Equal(t, fx.store.liveChildren(parent.ID), stored.ReplyCount)
	assert.Equal(t, 16, stored.ReplyCount)
}

func TestCommentService_ListTopLevelAndReplies(t *testing.T) {
	fx := createTestCommentService(t)
	fx.allowNotifications()
	ctx := context.Background()
	post := fx.store.addPost(uuid.New())

	first, err := fx.service.CreateComment(ctx, post.ID, uuid.New(), "first")
	require.NoError(t, err)
	time.Sleep(time.Millisecond)
	second, err := fx.service.CreateComment(ctx, post.ID, uuid.New(), "second")
	require.NoError(t, err)
	reply, err := fx.service.CreateReply(ctx, first.ID, uuid.New(), "reply")
	require.NoError(t, err)

	top, err := fx.service.ListTopLevel(ctx, post.ID)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, first.ID, top[0].ID)
	assert.Equal(t, second.ID, top[1].ID)

	replies, err := fx.service.ListReplies(ctx, first.ID)
	require.NoError(t, err)
	require.Len(t, replies, 1)
	assert.Equal(t, reply.ID, replies[0].ID)

	_, err = fx.service.ListReplies(ctx, uuid.New())
	assert.True(t, errors.Is(err, domainerrors.ErrCommentNotFound))
}

func TestCommentService_CreateReply_TransactionErrorIsWrapped(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := NewCommentService(CommentServiceParams{
		TxManager: txManager,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	parentID := uuid.New()
	dbErr := errors.New("connection reset")

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockCommentRepo := mockRepo.NewMockCommentRepository(t)

			mockFactory.EXPECT().NewCommentRepository().Return(mockCommentRepo)
			mockCommentRepo.EXPECT().FindCommentByID(ctx, parentID).Return(nil, dbErr)

			return fn(mockFactory)
		})

	_, err := service.CreateReply(ctx, parentID, uuid.New(), "reply")
	require.Error(t, err)
	assert.ErrorIs(t, err, dbErr)
}
