package impl

import (
	"context"
	"slices"
	"sync"
	"time"

	"swirl/internal/domain/entity"
	"swirl/internal/domain/repository"

	"github.com/google/uuid"
)

// memoryStore is a map-backed store whose transactions are fully serialized.
type memoryStore struct {
	mu       sync.Mutex
	posts    map[uuid.UUID]*entity.Post
	comments map[uuid.UUID]*entity.Comment
	tokens   map[string]*entity.PushToken
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		posts:    make(map[uuid.UUID]*entity.Post),
		comments: make(map[uuid.UUID]*entity.Comment),
		tokens:   make(map[string]*entity.PushToken),
	}
}

func (s *memoryStore) addPost(authorID uuid.UUID) *entity.Post {
	s.mu.Lock()
	defer s.mu.Unlock()

	post := &entity.Post{ID: uuid.New(), AuthorID: authorID, Title: "post"}
	s.posts[post.ID] = post

	return post
}

func (s *memoryStore) comment(id uuid.UUID) (entity.Comment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.comments[id]
	if !ok {
		return entity.Comment{}, false
	}

	return *c, true
}

func (s *memoryStore) commentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.comments)
}

func (s *memoryStore) liveChildren(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, c := range s.comments {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}

	return n
}

func (s *memoryStore) Execute(ctx context.Context, fn func(txRepoFactory repository.RepositoryFactory) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make(map[uuid.UUID]entity.Comment, len(s.comments))
	for id, c := range s.comments {
		snapshot[id] = *c
	}

	if err := fn(memoryFactory{store: s}); err != nil {
		// rollback
		s.comments = make(map[uuid.UUID]*entity.Comment, len(snapshot))
		for id, c := range snapshot {
			s.comments[id] = &c
		}

		return err
	}

	return nil
}

type memoryFactory struct {
	store *memoryStore
}

func (f memoryFactory) NewCommentRepository() repository.CommentRepository {
	return &memoryCommentRepo{store: f.store, inTx: true}
}

func (f memoryFactory) NewPostRepository() repository.PostRepository {
	return &memoryPostRepo{store: f.store, inTx: true}
}

type memoryPostRepo struct {
	store *memoryStore
	inTx  bool
}

func (r *memoryPostRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	if !r.inTx {
		r.store.mu.Lock()
		defer r.store.mu.Unlock()
	}

	post, ok := r.store.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	cp := *post

	return &cp, nil
}

type memoryCommentRepo struct {
	store *memoryStore
	inTx  bool
}

func (r *memoryCommentRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()

	return r.store.mu.Unlock
}

func (r *memoryCommentRepo) CreateComment(ctx context.Context, comment *entity.Comment) error {
	defer r.lock()()

	if _, ok := r.store.posts[comment.PostID]; !ok {
		return repository.ErrPostNotFound
	}
	if comment.ParentID != nil {
		if _, ok := r.store.comments[*comment.ParentID]; !ok {
			return repository.ErrCommentNotFound
		}
	}
	cp := *comment
	r.store.comments[comment.ID] = &cp

	return nil
}

func (r *memoryCommentRepo) FindCommentByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	defer r.lock()()

	c, ok := r.store.comments[id]
	if !ok {
		return nil, repository.ErrCommentNotFound
	}
	cp := *c

	return &cp, nil
}

func (r *memoryCommentRepo) UpdateCommentContent(ctx context.Context, comment *entity.Comment) error {
	defer r.lock()()

	c, ok := r.store.comments[comment.ID]
	if !ok {
		return repository.ErrCommentNotFound
	}
	c.Content = comment.Content
	c.UpdatedAt = comment.UpdatedAt

	return nil
}

func (r *memoryCommentRepo) AdjustReplyCount(ctx context.Context, id uuid.UUID, delta int) error {
	defer r.lock()()

	c, ok := r.store.comments[id]
	if !ok {
		return repository.ErrCommentNotFound
	}
	if c.ReplyCount+delta < 0 {
		return repository.ErrNegativeReplyCount
	}
	c.ReplyCount += delta
	c.UpdatedAt = time.Now()

	return nil
}

func (r *memoryCommentRepo) DeleteCommentTree(ctx context.Context, id uuid.UUID) (int64, error) {
	defer r.lock()()

	if _, ok := r.store.comments[id]; !ok {
		return 0, nil
	}

	queue := []uuid.UUID{id}
	var removed int64
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for cid, c := range r.store.comments {
			if c.ParentID != nil && *c.ParentID == current {
				queue = append(queue, cid)
			}
		}
		delete(r.store.comments, current)
		removed++
	}

	return removed, nil
}

func (r *memoryCommentRepo) FindTopLevelByPost(ctx context.Context, postID uuid.UUID) ([]*entity.Comment, error) {
	defer r.lock()()

	return r.collect(func(c *entity.Comment) bool { return c.PostID == postID && c.ParentID == nil }), nil
}

func (r *memoryCommentRepo) FindRepliesByParent(ctx context.Context, parentID uuid.UUID) ([]*entity.Comment, error) {
	defer r.lock()()

	return r.collect(func(c *entity.Comment) bool { return c.ParentID != nil && *c.ParentID == parentID }), nil
}

func (r *memoryCommentRepo) collect(match func(*entity.Comment) bool) []*entity.Comment {
	result := make([]*entity.Comment, 0)
	for _, c := range r.store.comments {
		if match(c) {
			cp := *c
			result = append(result, &cp)
		}
	}
	slices.SortFunc(result, func(a, b *entity.Comment) int { return a.CreatedAt.Compare(b.CreatedAt) })

	return result
}

type memoryPushTokenRepo struct {
	store *memoryStore
}

func (r *memoryPushTokenRepo) UpsertToken(ctx context.Context, token *entity.PushToken) (*entity.PushToken, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing, ok := r.store.tokens[token.Token]; ok {
		existing.OwnerID = token.OwnerID
		existing.Device = token.Device
		existing.IsActive = true
		existing.UpdatedAt = time.Now()
		cp := *existing

		return &cp, nil
	}

	cp := *token
	r.store.tokens[token.Token] = &cp
	out := cp

	return &out, nil
}

func (r *memoryPushTokenRepo) DeactivateOwnedToken(ctx context.Context, ownerID uuid.UUID, token string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.tokens[token]
	if !ok || existing.OwnerID != ownerID {
		return repository.ErrPushTokenNotFound
	}
	existing.IsActive = false

	return nil
}

func (r *memoryPushTokenRepo) DeactivateTokens(ctx context.Context, tokens []string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, token := range tokens {
		if existing, ok := r.store.tokens[token]; ok {
			existing.IsActive = false
		}
	}

	return nil
}

func (r *memoryPushTokenRepo) FindActiveTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	return r.find(ownerID, true), nil
}

func (r *memoryPushTokenRepo) FindTokensByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.PushToken, error) {
	return r.find(ownerID, false), nil
}

func (r *memoryPushTokenRepo) find(ownerID uuid.UUID, activeOnly bool) []*entity.PushToken {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*entity.PushToken, 0)
	for _, t := range r.store.tokens {
		if t.OwnerID != ownerID || (activeOnly && !t.IsActive) {
			continue
		}
		cp := *t
		result = append(result, &cp)
	}

	return result
}
