package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"autopage/internal/compose"
	"autopage/internal/extract"
	"autopage/internal/models/request_models"
	"autopage/internal/models/response_models"
	"autopage/internal/models/store_models"
	"autopage/internal/repositories"
	"autopage/pkg/utils"
)

// slugAttempts bounds regeneration after a store-level unique violation.
const slugAttempts = 3

type PageService interface {
	CreatePage(ctx context.Context, ownerRef, identityKey string, req *request_models.CreatePageRequest) (*response_models.CreatePageResponse, error)
	GetPage(ctx context.Context, ref, ownerRef, identityKey string) (*response_models.PageDetail, error)
	GetPageBySlug(ctx context.Context, slug string) (*response_models.PageDetail, error)
}

type pageService struct {
	pages    repositories.PageRepository
	sections repositories.SectionRepository
	owners   OwnershipService
	logger   *zap.Logger
}

func NewPageService(
	pages repositories.PageRepository,
	sections repositories.SectionRepository,
	owners OwnershipService,
	logger *zap.Logger,
) PageService {
	return &pageService{
		pages:    pages,
		sections: sections,
		owners:   owners,
		logger:   logger,
	}
}

// CreatePage extracts metadata from the submitted content, composes the
// section list and persists the page with both ownership channels set.
// Creation is all-or-nothing: if section persistence fails the page is
// deleted again.
func (p *pageService) CreatePage(ctx context.Context, ownerRef, identityKey string, req *request_models.CreatePageRequest) (*response_models.CreatePageResponse, error) {
	if req.RawContent == "" && len(req.FormData) == 0 {
		return nil, fmt.Errorf("%w: rawContent or formData required", utils.ErrValidation)
	}
	// A page is never created without an owner identity on at least one
	// channel; orphans only arise from legacy data, not from this path.
	if ownerRef == "" && identityKey == "" {
		return nil, fmt.Errorf("%w: owner identity required", utils.ErrValidation)
	}

	meta := extract.Extract(req.RawContent, store_models.PageType(req.PageType))
	applyFormData(&meta, req.FormData)

	// Resolve the relation channel when the caller only carries a key, so
	// new pages always get both channels.
	if ownerRef == "" && identityKey != "" {
		owner, err := p.owners.CreateOrFind(ctx, identityKey, "", "")
		if err != nil {
			p.logger.Warn("owner resolution failed, key channel only",
				zap.String("identityKey", identityKey), zap.Error(err))
		} else {
			ownerRef = owner.ID
		}
	}

	sections := compose.Compose(meta.PageType, meta, req.OptionalSections)
	for i := range meta.Products {
		meta.Products[i].ID = uuid.New().String()
	}

	page, err := p.createWithSlug(ctx, ownerRef, identityKey, req, meta)
	if err != nil {
		return nil, err
	}

	if _, err := p.sections.CreateForPage(ctx, page.Ref(), sections); err != nil {
		p.rollback(ctx, page.Ref())
		return nil, fmt.Errorf("persisting sections: %w", err)
	}

	p.logger.Info("page created",
		zap.String("page", page.Ref()),
		zap.String("slug", page.Slug),
		zap.String("pageType", string(meta.PageType)))

	return &response_models.CreatePageResponse{
		PageID:     page.ID,
		DocumentID: page.DocumentID,
		Slug:       page.Slug,
		PageURL:    "/p/" + page.Slug,
	}, nil
}

func (p *pageService) createWithSlug(ctx context.Context, ownerRef, identityKey string, req *request_models.CreatePageRequest, meta extract.Result) (*store_models.Page, error) {
	data := map[string]interface{}{
		"title":       req.Title,
		"pageType":    meta.PageType,
		"description": meta.Description,
		"phone":       meta.Contact.Phone,
		"email":       meta.Contact.Email,
		"city":        meta.Contact.City,
		"address":     meta.Contact.Address,
		"products":    meta.Products,
		"isActive":    true,
		"ownerKey":    identityKey,
	}
	if ownerRef != "" {
		data["owner"] = ownerRef
	}
	if req.Metadata != nil {
		data["metadata"] = req.Metadata
	}

	var lastErr error
	for attempt := 0; attempt < slugAttempts; attempt++ {
		data["slug"] = utils.GenerateSlug(req.Title, identityKey)
		page, err := p.pages.Create(ctx, data)
		if err == nil {
			return page, nil
		}
		if !errors.Is(err, utils.ErrSlugConflict) {
			return nil, err
		}
		lastErr = err
		p.logger.Warn("slug collision, regenerating", zap.String("slug", data["slug"].(string)))
	}
	return nil, lastErr
}

// rollback undoes a half-created page: best effort, failures only logged.
func (p *pageService) rollback(ctx context.Context, pageRef string) {
	if err := p.sections.DeleteByPage(ctx, pageRef); err != nil {
		p.logger.Error("rollback: deleting sections", zap.String("page", pageRef), zap.Error(err))
	}
	if err := p.pages.Delete(ctx, pageRef); err != nil {
		p.logger.Error("rollback: deleting page", zap.String("page", pageRef), zap.Error(err))
	}
}

func (p *pageService) GetPage(ctx context.Context, ref, ownerRef, identityKey string) (*response_models.PageDetail, error) {
	page, err := p.pages.FindByRef(ctx, ref)
	if err != nil {
		if errors.Is(err, utils.ErrRecordNotFound) {
			return nil, utils.ErrPageNotFound
		}
		return nil, err
	}
	if !ownedBy(page, ownerRef, identityKey) {
		return nil, utils.ErrInvalidScope
	}
	return p.detail(ctx, page)
}

// GetPageBySlug serves the public render path: no ownership check, only
// active pages.
func (p *pageService) GetPageBySlug(ctx context.Context, slug string) (*response_models.PageDetail, error) {
	page, err := p.pages.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if page == nil || !page.IsActive {
		return nil, utils.ErrPageNotFound
	}
	return p.detail(ctx, page)
}

func (p *pageService) detail(ctx context.Context, page *store_models.Page) (*response_models.PageDetail, error) {
	sections := page.Sections
	if sections == nil {
		loaded, err := p.sections.ListByPage(ctx, page.Ref())
		if err != nil {
			return nil, err
		}
		sections = loaded
	}
	compose.Sort(sections)

	return &response_models.PageDetail{
		ID:          page.ID,
		DocumentID:  page.DocumentID,
		Title:       page.Title,
		Slug:        page.Slug,
		PageType:    page.PageType,
		Description: page.Description,
		Phone:       page.Phone,
		Email:       page.Email,
		City:        page.City,
		Address:     page.Address,
		IsActive:    page.IsActive,
		Sections:    sections,
		Products:    page.Products,
		CreatedAt:   page.CreatedAt,
		UpdatedAt:   page.UpdatedAt,
	}, nil
}

// applyFormData lets explicit form fields win over heuristic extraction.
func applyFormData(meta *extract.Result, form map[string]interface{}) {
	set := func(dst *string, key string) {
		if v, ok := form[key].(string); ok && v != "" {
			*dst = v
		}
	}
	set(&meta.Contact.Phone, "phone")
	set(&meta.Contact.Email, "email")
	set(&meta.Contact.City, "city")
	set(&meta.Contact.Address, "address")
	set(&meta.Description, "description")
}

// ownedBy checks both ownership channels; either one grants scope.
func ownedBy(page *store_models.Page, ownerRef, identityKey string) bool {
	if ownerRef != "" && page.OwnerRef == ownerRef {
		return true
	}
	if identityKey != "" && page.OwnerKey == identityKey {
		return true
	}
	return false
}
