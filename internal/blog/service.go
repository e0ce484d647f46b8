package blog

import (
	"context"
	"errors"
	"log"

	"portfolio/internal/apperr"
	"portfolio/internal/crud"

	"gorm.io/gorm"
)

type Service struct {
	crud.Store[BlogPost]
}

func NewService(db *gorm.DB) *Service {
	return &Service{crud.Store[BlogPost]{DB: db}}
}

// CreatePost fills the slug from the title when absent; a colliding slug is
// ALREADY_EXISTS.
func (s *Service) CreatePost(ctx context.Context, p *BlogPost) error {
	if p.Slug == "" {
		p.Slug = Slugify(p.Title)
	}
	if p.Slug == "" {
		return apperr.New(apperr.CodeInvalidInput, "cannot derive slug from title")
	}
	if err := s.Create(ctx, p); err != nil {
		var ae *apperr.Error
		if errors.As(err, &ae) && ae.Code == apperr.CodeAlreadyExists {
			return apperr.New(apperr.CodeAlreadyExists, "slug already in use")
		}
		return err
	}
	return nil
}

// Published lists publicly visible posts, newest first.
func (s *Service) Published(ctx context.Context) ([]BlogPost, error) {
	var out []BlogPost
	err := s.DB.WithContext(ctx).
		Where("published = ?", true).
		Order("created_at desc").
		Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (BlogPost, error) {
	var p BlogPost
	err := s.DB.WithContext(ctx).Preload("Comments").First(&p, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return BlogPost{}, apperr.New(apperr.CodeNotFound, "post not found")
	}
	if err != nil {
		return BlogPost{}, apperr.Wrap(apperr.CodeDatabase, "lookup failed", err)
	}
	return p, nil
}

func (s *Service) AddComment(ctx context.Context, postID uint64, c *Comment) error {
	if _, err := s.Get(ctx, postID); err != nil {
		return err
	}
	c.PostID = postID
	if err := s.DB.WithContext(ctx).Create(c).Error; err != nil {
		return apperr.Wrap(apperr.CodeDatabase, "comment failed", err)
	}
	return nil
}

func (s *Service) Comments(ctx context.Context, postID uint64) ([]Comment, error) {
	if _, err := s.Get(ctx, postID); err != nil {
		return nil, err
	}
	var out []Comment
	err := s.DB.WithContext(ctx).Where("post_id = ?", postID).Order("created_at asc").Find(&out).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "list failed", err)
	}
	return out, nil
}

// IncrementView bumps the view counter. The visitor IP and user agent are
// recorded in the log only; repeat views are not deduplicated.
func (s *Service) IncrementView(ctx context.Context, id uint64, visitorIP, userAgent string) error {
	res := s.DB.WithContext(ctx).Model(&BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1"))
	if res.Error != nil {
		return apperr.Wrap(apperr.CodeDatabase, "view update failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "post not found")
	}
	log.Printf("blog view post=%d ip=%s ua=%q\n", id, visitorIP, userAgent)
	return nil
}

func (s *Service) IncrementShare(ctx context.Context, id uint64) error {
	res := s.DB.WithContext(ctx).Model(&BlogPost{}).
		Where("id = ?", id).
		UpdateColumn("shares", gorm.Expr("shares + 1"))
	if res.Error != nil {
		return apperr.Wrap(apperr.CodeDatabase, "share update failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "post not found")
	}
	return nil
}

func (s *Service) GetStats(ctx context.Context) (Stats, error) {
	var st Stats
	db := s.DB.WithContext(ctx)

	if err := db.Model(&BlogPost{}).Count(&st.Posts).Error; err != nil {
		return Stats{}, apperr.Wrap(apperr.CodeDatabase, "stats failed", err)
	}
	type sums struct {
		Views  int64
		Shares int64
	}
	var agg sums
	if err := db.Model(&BlogPost{}).
		Select("coalesce(sum(views),0) as views, coalesce(sum(shares),0) as shares").
		Scan(&agg).Error; err != nil {
		return Stats{}, apperr.Wrap(apperr.CodeDatabase, "stats failed", err)
	}
	st.Views = agg.Views
	st.Shares = agg.Shares

	if err := db.Model(&Comment{}).Count(&st.Comments).Error; err != nil {
		return Stats{}, apperr.Wrap(apperr.CodeDatabase, "stats failed", err)
	}
	return st, nil
}
