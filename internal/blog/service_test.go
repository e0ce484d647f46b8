package blog

import (
	"context"
	"testing"

	"portfolio/internal/apperr"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testService(t *testing.T) *Service {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(&BlogPost{}, &Comment{}))
	return NewService(gdb)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Hello World", "hello-world"},
		{"  Go 1.24 — what's new?  ", "go-1-24-what-s-new"},
		{"already-a-slug", "already-a-slug"},
		{"!!!", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCreatePost_DerivesSlug(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	p := BlogPost{Title: "My First Post", Content: "hello", Published: true}
	require.NoError(t, s.CreatePost(ctx, &p))
	assert.Equal(t, "my-first-post", p.Slug)

	got, err := s.GetBySlug(ctx, "my-first-post")
	require.NoError(t, err)
	assert.Equal(t, p.ID, got.ID)
}

func TestCreatePost_ExplicitSlugKept(t *testing.T) {
	s := testService(t)

	p := BlogPost{Title: "My First Post", Slug: "custom", Content: "hello"}
	require.NoError(t, s.CreatePost(context.Background(), &p))
	assert.Equal(t, "custom", p.Slug)
}

func TestCreatePost_SlugCollision(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	require.NoError(t, s.CreatePost(ctx, &BlogPost{Title: "Same Title", Content: "a"}))
	err := s.CreatePost(ctx, &BlogPost{Title: "Same Title", Content: "b"})
	assert.Equal(t, apperr.CodeAlreadyExists, apperr.From(err).Code)
}

func TestCreatePost_UnsluggableTitle(t *testing.T) {
	s := testService(t)

	err := s.CreatePost(context.Background(), &BlogPost{Title: "???", Content: "x"})
	assert.Equal(t, apperr.CodeInvalidInput, apperr.From(err).Code)
}

func TestPublished_FiltersDrafts(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	require.NoError(t, s.CreatePost(ctx, &BlogPost{Title: "Live", Content: "x", Published: true}))
	require.NoError(t, s.CreatePost(ctx, &BlogPost{Title: "Draft", Content: "x", Published: false}))

	got, err := s.Published(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Live", got[0].Title)
}

func TestComments(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	p := BlogPost{Title: "Post", Content: "x", Published: true}
	require.NoError(t, s.CreatePost(ctx, &p))

	require.NoError(t, s.AddComment(ctx, p.ID, &Comment{AuthorName: "Sam", Content: "first"}))
	require.NoError(t, s.AddComment(ctx, p.ID, &Comment{AuthorName: "Alex", Content: "second"}))

	got, err := s.Comments(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Content, "oldest first")

	bySlug, err := s.GetBySlug(ctx, p.Slug)
	require.NoError(t, err)
	assert.Len(t, bySlug.Comments, 2, "comments are preloaded on slug lookup")
}

func TestAddComment_MissingPost(t *testing.T) {
	s := testService(t)

	err := s.AddComment(context.Background(), 404, &Comment{AuthorName: "Sam", Content: "x"})
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestCounters(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	p := BlogPost{Title: "Post", Content: "x", Published: true}
	require.NoError(t, s.CreatePost(ctx, &p))

	require.NoError(t, s.IncrementView(ctx, p.ID, "203.0.113.9", "curl/8.0"))
	require.NoError(t, s.IncrementView(ctx, p.ID, "203.0.113.9", "curl/8.0"))
	require.NoError(t, s.IncrementShare(ctx, p.ID))

	got, err := s.Get(ctx, p.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, got.Views, "repeat views are not deduplicated")
	assert.EqualValues(t, 1, got.Shares)
}

func TestCounters_MissingPost(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	err := s.IncrementView(ctx, 404, "", "")
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)

	err = s.IncrementShare(ctx, 404)
	assert.Equal(t, apperr.CodeNotFound, apperr.From(err).Code)
}

func TestGetStats(t *testing.T) {
	s := testService(t)
	ctx := context.Background()

	a := BlogPost{Title: "A", Content: "x", Published: true}
	b := BlogPost{Title: "B", Content: "x", Published: false}
	require.NoError(t, s.CreatePost(ctx, &a))
	require.NoError(t, s.CreatePost(ctx, &b))

	require.NoError(t, s.IncrementView(ctx, a.ID, "", ""))
	require.NoError(t, s.IncrementView(ctx, b.ID, "", ""))
	require.NoError(t, s.IncrementShare(ctx, a.ID))
	require.NoError(t, s.AddComment(ctx, a.ID, &Comment{AuthorName: "Sam", Content: "hi"}))

	st, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, Stats{Posts: 2, Views: 2, Shares: 1, Comments: 1}, st)
}

func TestGetStats_Empty(t *testing.T) {
	s := testService(t)

	st, err := s.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Stats{}, st)
}
