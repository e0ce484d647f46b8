package settings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"portfolio/internal/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Service struct {
	DB *gorm.DB

	// LocalOverrides is the middle tier of the profile fallback chain,
	// supplied from configuration at startup.
	LocalOverrides map[string]string
}

func (s *Service) Get(ctx context.Context, key string) (json.RawMessage, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, apperr.New(apperr.CodeInvalidInput, "empty setting key")
	}

	var row Setting
	err := s.DB.WithContext(ctx).First(&row, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.New(apperr.CodeNotFound, "setting not found")
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "setting lookup failed", err)
	}
	return row.Value, nil
}

// Set upserts one key. Value must be a JSON object or value; it is stored
// verbatim.
func (s *Service) Set(ctx context.Context, key string, value json.RawMessage) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return apperr.New(apperr.CodeInvalidInput, "empty setting key")
	}
	if !json.Valid(value) {
		return apperr.New(apperr.CodeInvalidInput, "value is not valid JSON")
	}

	row := Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return apperr.Wrap(apperr.CodeDatabase, "setting write failed", err)
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, key string) error {
	res := s.DB.WithContext(ctx).Where("key = ?", key).Delete(&Setting{})
	if res.Error != nil {
		return apperr.Wrap(apperr.CodeDatabase, "setting delete failed", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.New(apperr.CodeNotFound, "setting not found")
	}
	return nil
}

// All returns every stored setting as a key→value map.
func (s *Service) All(ctx context.Context) (map[string]json.RawMessage, error) {
	var rows []Setting
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "settings list failed", err)
	}

	out := make(map[string]json.RawMessage, len(rows))
	for _, r := range rows {
		out[r.Key] = r.Value
	}
	return out, nil
}

// Effective builds the merged profile view: stored settings are the
// authoritative tier, configured overrides the local tier, compiled defaults
// the bottom tier.
func (s *Service) Effective(ctx context.Context) (EffectiveProfile, error) {
	api, err := s.apiTier(ctx)
	if err != nil {
		return EffectiveProfile{}, err
	}

	p, _ := Resolve(api, s.LocalOverrides, Defaults)
	return p, nil
}

// apiTier collects the profile, socialLinks and seo rows into one field set.
// Returns nil when none of the keys exist.
func (s *Service) apiTier(ctx context.Context) (*Fields, error) {
	var rows []Setting
	err := s.DB.WithContext(ctx).
		Where("key IN ?", []string{KeyProfile, KeySocialLinks, KeySEO}).
		Find(&rows).Error
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeDatabase, "settings lookup failed", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	merged := &Fields{}
	for _, r := range rows {
		var f Fields
		if err := json.Unmarshal(r.Value, &f); err != nil {
			// a malformed row must not take the whole profile down
			continue
		}
		merged.merge(&f)
	}
	return merged, nil
}

func (f *Fields) merge(o *Fields) {
	dst := f.ptrs()
	src := o.ptrs()
	for i := range dst {
		if *dst[i] == nil {
			*dst[i] = *src[i]
		}
	}
}

func (f *Fields) ptrs() []**string {
	return []**string{
		&f.Name, &f.Email, &f.Title, &f.Location, &f.Bio, &f.Avatar, &f.Phone, &f.Brand,
		&f.GitHub, &f.LinkedIn, &f.Twitter, &f.Website,
		&f.SiteTitle, &f.MetaDescription, &f.Keywords, &f.OGImage, &f.OGTitle, &f.OGType,
	}
}
