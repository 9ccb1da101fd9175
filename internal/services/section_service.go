package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"autopage/internal/compose"
	"autopage/internal/models/store_models"
	"autopage/internal/repositories"
	"autopage/pkg/utils"
)

type SectionService interface {
	ReorderSections(ctx context.Context, pageRef, ownerRef, identityKey string, sectionIDs []string) ([]store_models.Section, error)
	ToggleSection(ctx context.Context, sectionRef, ownerRef, identityKey string, enabled bool) (*store_models.Section, error)
}

type sectionService struct {
	pages    repositories.PageRepository
	sections repositories.SectionRepository
	logger   *zap.Logger
}

func NewSectionService(
	pages repositories.PageRepository,
	sections repositories.SectionRepository,
	logger *zap.Logger,
) SectionService {
	return &sectionService{
		pages:    pages,
		sections: sections,
		logger:   logger,
	}
}

// ReorderSections applies the requested order to the page's sections and
// persists every section whose position changed. Unknown ids are ignored;
// sections left out keep their relative order after the listed ones.
func (s *sectionService) ReorderSections(ctx context.Context, pageRef, ownerRef, identityKey string, sectionIDs []string) ([]store_models.Section, error) {
	if err := s.checkPageScope(ctx, pageRef, ownerRef, identityKey); err != nil {
		return nil, err
	}

	current, err := s.sections.ListByPage(ctx, pageRef)
	if err != nil {
		return nil, err
	}

	before := map[string]int{}
	for _, section := range current {
		before[section.ID] = section.Order
	}

	reordered := compose.Reorder(current, sectionIDs)
	for _, section := range reordered {
		if before[section.ID] == section.Order {
			continue
		}
		if _, err := s.sections.Update(ctx, section.ID, map[string]interface{}{
			"order": section.Order,
		}); err != nil {
			return nil, err
		}
	}

	s.logger.Info("sections reordered",
		zap.String("page", pageRef),
		zap.Int("count", len(reordered)))
	return reordered, nil
}

func (s *sectionService) ToggleSection(ctx context.Context, sectionRef, ownerRef, identityKey string, enabled bool) (*store_models.Section, error) {
	_, pageRef, err := s.sections.FindByRef(ctx, sectionRef)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return nil, utils.ErrSectionNotFound
		}
		return nil, err
	}
	if err := s.checkPageScope(ctx, pageRef, ownerRef, identityKey); err != nil {
		return nil, err
	}

	updated, err := s.sections.Update(ctx, sectionRef, map[string]interface{}{
		"enabled": enabled,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("section toggled",
		zap.String("section", sectionRef),
		zap.Bool("enabled", enabled))
	return updated, nil
}

func (s *sectionService) checkPageScope(ctx context.Context, pageRef, ownerRef, identityKey string) error {
	page, err := s.pages.FindByRef(ctx, pageRef)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return utils.ErrPageNotFound
		}
		return err
	}
	if !ownedBy(page, ownerRef, identityKey) {
		return utils.ErrInvalidScope
	}
	return nil
}
