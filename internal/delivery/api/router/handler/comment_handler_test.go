package handler

import (
	"net/http"
	"testing"

	domainerrors "swirl/internal/domain/errors"
	"swirl/internal/domain/entity"
	mockUsecase "swirl/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type commentHandlerFixtures struct {
	echo      *echo.Echo
	commentUC *mockUsecase.MockCommentUsecase
	userID    uuid.UUID
}

func createTestCommentHandler(t *testing.T) commentHandlerFixtures {
	commentUC := mockUsecase.NewMockCommentUsecase(t)
	h := NewCommentHandler(CommentHandlerParams{CommentUC: commentUC, Logger: discardLogger()})
	userID := uuid.New()

	e := newTestEcho(userID)
	e.GET("/posts/:id/comments", h.ListComments)
	e.POST("/posts/:id/comments", h.CreateComment)
	e.GET("/comments/:id/replies", h.ListReplies)
	e.POST("/comments/:id/replies", h.CreateReply)
	e.GET("/comments/:id", h.GetComment)
	e.PATCH("/comments/:id", h.UpdateComment)
	e.DELETE("/comments/:id", h.DeleteComment)

	return commentHandlerFixtures{echo: e, commentUC: commentUC, userID: userID}
}

func TestCommentHandler_CreateComment(t *testing.T) {
	fx := createTestCommentHandler(t)
	postID := uuid.New()

	fx.commentUC.EXPECT().
		CreateComment(mock.Anything, postID, fx.userID, "Nice post").
		Return(&entity.Comment{ID: uuid.New(), PostID: postID, AuthorID: fx.userID, Content: "Nice post"}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodPost, "/posts/"+postID.String()+"/comments", `{"content":"Nice post"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data entity.Comment
	decodeData(t, envelope, &data)
	assert.Equal(t, postID, data.PostID)
	assert.Nil(t, data.ParentID)
}

func TestCommentHandler_CreateComment_PostNotFound(t *testing.T) {
	fx := createTestCommentHandler(t)
	postID := uuid.New()

	fx.commentUC.EXPECT().
		CreateComment(mock.Anything, postID, fx.userID, "hi").
		Return(nil, errors.Wrap(domainerrors.ErrPostNotFound, "post not found"))

	rec, envelope := doRequest(t, fx.echo, http.MethodPost, "/posts/"+postID.String()+"/comments", `{"content":"hi"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "POST_NOT_FOUND", envelope.Error.Code)
}

func TestCommentHandler_CreateComment_EmptyContent(t *testing.T) {
	fx := createTestCommentHandler(t)

	rec, envelope := doRequest(t, fx.echo, http.MethodPost, "/posts/"+uuid.NewString()+"/comments", `{"content":""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
}

func TestCommentHandler_CreateReply(t *testing.T) {
	fx := createTestCommentHandler(t)
	parentID := uuid.New()

	fx.commentUC.EXPECT().
		CreateReply(mock.Anything, parentID, fx.userID, "Agreed").
		Return(&entity.Comment{ID: uuid.New(), ParentID: &parentID, AuthorID: fx.userID, Content: "Agreed"}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodPost, "/comments/"+parentID.String()+"/replies", `{"content":"Agreed"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var data entity.Comment
	decodeData(t, envelope, &data)
	require.NotNil(t, data.ParentID)
	assert.Equal(t, parentID, *data.ParentID)
}

func TestCommentHandler_CreateReply_ParentNotFound(t *testing.T) {
	fx := createTestCommentHandler(t)
	parentID := uuid.New()

	fx.commentUC.EXPECT().
		CreateReply(mock.Anything, parentID, fx.userID, "Agreed").
		Return(nil, errors.Wrap(domainerrors.ErrCommentNotFound, "parent comment not found"))

	rec, envelope := doRequest(t, fx.echo, http.MethodPost, "/comments/"+parentID.String()+"/replies", `{"content":"Agreed"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COMMENT_NOT_FOUND", envelope.Error.Code)
}

func TestCommentHandler_ListComments(t *testing.T) {
	fx := createTestCommentHandler(t)
	postID := uuid.New()

	fx.commentUC.EXPECT().
		ListTopLevel(mock.Anything, postID).
		Return([]*entity.Comment{{ID: uuid.New(), PostID: postID, ReplyCount: 2}}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodGet, "/posts/"+postID.String()+"/comments", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data []entity.Comment
	decodeData(t, envelope, &data)
	require.Len(t, data, 1)
	assert.Equal(t, 2, data[0].ReplyCount)
}

func TestCommentHandler_ListReplies(t *testing.T) {
	fx := createTestCommentHandler(t)
	parentID := uuid.New()

	fx.commentUC.EXPECT().
		ListReplies(mock.Anything, parentID).
		Return([]*entity.Comment{}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodGet, "/comments/"+parentID.String()+"/replies", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(envelope.Data))
}

func TestCommentHandler_DeleteComment(t *testing.T) {
	fx := createTestCommentHandler(t)
	commentID := uuid.New()

	fx.commentUC.EXPECT().
		DeleteComment(mock.Anything, commentID, fx.userID).
		Return(int64(4), nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodDelete, "/comments/"+commentID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data map[string]int64
	decodeData(t, envelope, &data)
	assert.Equal(t, int64(4), data["deleted"])
}

func TestCommentHandler_DeleteComment_NotOwner(t *testing.T) {
	fx := createTestCommentHandler(t)
	commentID := uuid.New()

	fx.commentUC.EXPECT().
		DeleteComment(mock.Anything, commentID, fx.userID).
		Return(int64(0), errors.Wrap(domainerrors.ErrCommentOwnershipViolation, "comment does not belong to user"))

	rec, envelope := doRequest(t, fx.echo, http.MethodDelete, "/comments/"+commentID.String(), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "COMMENT_OWNERSHIP_VIOLATION", envelope.Error.Code)
}

func TestCommentHandler_InternalError(t *testing.T) {
	fx := createTestCommentHandler(t)
	postID := uuid.New()

	fx.commentUC.EXPECT().
		ListTopLevel(mock.Anything, postID).
		Return(nil, errors.New("connection reset"))

	rec, envelope := doRequest(t, fx.echo, http.MethodGet, "/posts/"+postID.String()+"/comments", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", envelope.Error.Code)
	assert.NotContains(t, envelope.Error.Message, "connection reset")
}

func TestCommentHandler_GetComment(t *testing.T) {
	fx := createTestCommentHandler(t)
	commentID := uuid.New()

	fx.commentUC.EXPECT().
		GetComment(mock.Anything, commentID).
		Return(&entity.Comment{ID: commentID, Content: "hello", ReplyCount: 2}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodGet, "/comments/"+commentID.String(), "")
	require.Equal(t, http.StatusOK, rec.Code)

	var data entity.Comment
	decodeData(t, envelope, &data)
	assert.Equal(t, commentID, data.ID)
	assert.Equal(t, 2, data.ReplyCount)
}

func TestCommentHandler_GetComment_NotFound(t *testing.T) {
	fx := createTestCommentHandler(t)
	commentID := uuid.New()

	fx.commentUC.EXPECT().
		GetComment(mock.Anything, commentID).
		Return(nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found"))

	rec, envelope := doRequest(t, fx.echo, http.MethodGet, "/comments/"+commentID.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "COMMENT_NOT_FOUND", envelope.Error.Code)
}

func TestCommentHandler_UpdateComment(t *testing.T) {
	fx := createTestCommentHandler(t)
	commentID := uuid.New()

	fx.commentUC.EXPECT().
		UpdateComment(mock.Anything, commentID, fx.userID, "edited").
		Return(&entity.Comment{ID: commentID, AuthorID: fx.userID, Content: "edited"}, nil)

	rec, envelope := doRequest(t, fx.echo, http.MethodPatch, "/comments/"+commentID.String(), `{"content":"edited"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var data entity.Comment
	decodeData(t, envelope, &data)
	assert.Equal(t, "edited", data.Content)
}

func TestCommentHandler_UpdateComment_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		body   string
		ucErr  error
		status int
		code   string
	}{
		{name: "bad id", path: "/comments/nope", body: `{"content":"x"}`, status: http.StatusBadRequest, code: "INVALID_ID"},
		{name: "empty content", path: "/comments/" + uuid.NewString(), body: `{"content":""}`, status: http.StatusBadRequest, code: "VALIDATION_ERROR"},
		{
			name:   "not the author",
			path:   "/comments/" + uuid.NewString(),
			body:   `{"content":"x"}`,
			ucErr:  errors.Wrap(domainerrors.ErrCommentOwnershipViolation, "comment does not belong to user"),
			status: http.StatusForbidden,
			code:   "COMMENT_OWNERSHIP_VIOLATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCommentHandler(t)
			if tt.ucErr != nil {
				fx.commentUC.EXPECT().UpdateComment(mock.Anything, mock.Anything, fx.userID, "x").Return(nil, tt.ucErr)
			}

			rec, envelope := doRequest(t, fx.echo, http.MethodPatch, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, envelope.Error.Code)
		})
	}
}
