package services

import (
	"context"
	"fmt"
	"sync"

	"autopage/internal/models/store_models"
	"autopage/pkg/utils"
)

// In-memory repository doubles. They mimic the store contract the real
// repositories expose: sentinel errors on missing records, nil on missing
// list filters, ref = document id.

type fakePageRepo struct {
	mu     sync.Mutex
	pages  map[string]*store_models.Page
	nextID int

	slugConflicts int
	listErr       error
	listByKeyErr  error

	deleted []string
}

func newFakePageRepo() *fakePageRepo {
	return &fakePageRepo{pages: map[string]*store_models.Page{}}
}

func (f *fakePageRepo) add(page *store_models.Page) *store_models.Page {
	f.mu.Lock()
	defer f.mu.Unlock()
	if page.DocumentID == "" {
		f.nextID++
		page.ID = fmt.Sprintf("%d", f.nextID)
		page.DocumentID = fmt.Sprintf("page-%d", f.nextID)
	}
	f.pages[page.Ref()] = page
	return page
}

func (f *fakePageRepo) Create(_ context.Context, data map[string]interface{}) (*store_models.Page, error) {
	f.mu.Lock()
	if f.slugConflicts > 0 {
		f.slugConflicts--
		f.mu.Unlock()
		return nil, utils.ErrSlugConflict
	}
	f.mu.Unlock()

	page := &store_models.Page{
		Title:    str(data, "title"),
		Slug:     str(data, "slug"),
		OwnerKey: str(data, "ownerKey"),
		OwnerRef: str(data, "owner"),
	}
	if pt, ok := data["pageType"].(store_models.PageType); ok {
		page.PageType = pt
	}
	if products, ok := data["products"].([]store_models.Product); ok {
		page.Products = products
	}
	if active, ok := data["isActive"].(bool); ok {
		page.IsActive = active
	}
	return f.add(page), nil
}

func (f *fakePageRepo) FindByRef(_ context.Context, ref string) (*store_models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	page, ok := f.pages[ref]
	if !ok {
		return nil, utils.ErrRecordNotFound
	}
	clone := *page
	return &clone, nil
}

func (f *fakePageRepo) FindBySlug(_ context.Context, slug string) (*store_models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, page := range f.pages {
		if page.Slug == slug {
			clone := *page
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakePageRepo) ListByOwnerRef(_ context.Context, ownerRef string) ([]store_models.Page, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store_models.Page
	for _, page := range f.pages {
		if page.OwnerRef == ownerRef {
			out = append(out, *page)
		}
	}
	return out, nil
}

func (f *fakePageRepo) ListByOwnerKey(_ context.Context, identityKey string) ([]store_models.Page, error) {
	if f.listByKeyErr != nil {
		return nil, f.listByKeyErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []store_models.Page
	for _, page := range f.pages {
		if page.OwnerKey == identityKey {
			out = append(out, *page)
		}
	}
	return out, nil
}

func (f *fakePageRepo) Update(_ context.Context, ref string, data map[string]interface{}) (*store_models.Page, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	page, ok := f.pages[ref]
	if !ok {
		return nil, utils.ErrRecordNotFound
	}
	if v, ok := data["owner"].(string); ok {
		page.OwnerRef = v
	}
	if v, ok := data["ownerKey"].(string); ok {
		page.OwnerKey = v
	}
	clone := *page
	return &clone, nil
}

func (f *fakePageRepo) Delete(_ context.Context, ref string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pages, ref)
	f.deleted = append(f.deleted, ref)
	return nil
}

type fakeSectionRepo struct {
	mu       sync.Mutex
	byPage    map[string][]store_models.Section
	nextID    int
	createErr error
	updated   map[string]map[string]interface{}
}

func newFakeSectionRepo() *fakeSectionRepo {
	return &fakeSectionRepo{
		byPage:  map[string][]store_models.Section{},
		updated: map[string]map[string]interface{}{},
	}
}

func (f *fakeSectionRepo) CreateForPage(_ context.Context, pageRef string, sections []store_models.Section) ([]store_models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := make([]store_models.Section, 0, len(sections))
	for _, section := range sections {
		f.nextID++
		section.ID = fmt.Sprintf("sec-%d", f.nextID)
		f.byPage[pageRef] = append(f.byPage[pageRef], section)
		created = append(created, section)
	}
	return created, nil
}

func (f *fakeSectionRepo) ListByPage(_ context.Context, pageRef string) ([]store_models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]store_models.Section(nil), f.byPage[pageRef]...), nil
}

func (f *fakeSectionRepo) FindByRef(_ context.Context, ref string) (*store_models.Section, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pageRef, sections := range f.byPage {
		for _, section := range sections {
			if section.ID == ref {
				clone := section
				return &clone, pageRef, nil
			}
		}
	}
	return nil, "", utils.ErrRecordNotFound
}

func (f *fakeSectionRepo) Update(_ context.Context, ref string, data map[string]interface{}) (*store_models.Section, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pageRef, sections := range f.byPage {
		for i := range sections {
			if sections[i].ID != ref {
				continue
			}
			if v, ok := data["order"].(int); ok {
				sections[i].Order = v
			}
			if v, ok := data["enabled"].(bool); ok {
				sections[i].Enabled = v
			}
			f.byPage[pageRef] = sections
			f.updated[ref] = data
			clone := sections[i]
			return &clone, nil
		}
	}
	return nil, utils.ErrRecordNotFound
}

func (f *fakeSectionRepo) DeleteByPage(_ context.Context, pageRef string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.byPage, pageRef)
	return nil
}

type fakeOwnerRepo struct {
	mu     sync.Mutex
	owners map[string]*store_models.Owner
	nextID int
}

func newFakeOwnerRepo() *fakeOwnerRepo {
	return &fakeOwnerRepo{owners: map[string]*store_models.Owner{}}
}

func (f *fakeOwnerRepo) Create(_ context.Context, owner *store_models.Owner) (*store_models.Owner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	owner.ID = fmt.Sprintf("owner-%d", f.nextID)
	f.owners[owner.ID] = owner
	clone := *owner
	return &clone, nil
}

func (f *fakeOwnerRepo) FindByRef(_ context.Context, ref string) (*store_models.Owner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	owner, ok := f.owners[ref]
	if !ok {
		return nil, utils.ErrRecordNotFound
	}
	clone := *owner
	return &clone, nil
}

func (f *fakeOwnerRepo) FindByIdentityKey(_ context.Context, identityKey string) (*store_models.Owner, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, owner := range f.owners {
		if owner.IdentityKey == identityKey {
			clone := *owner
			return &clone, nil
		}
	}
	return nil, nil
}

type fakePurchaseRepo struct {
	mu      sync.Mutex
	byPage  map[string][]store_models.Purchase
	nextID  int
	listErr map[string]error
	updated map[string]map[string]interface{}
}

func newFakePurchaseRepo() *fakePurchaseRepo {
	return &fakePurchaseRepo{
		byPage:  map[string][]store_models.Purchase{},
		listErr: map[string]error{},
		updated: map[string]map[string]interface{}{},
	}
}

func (f *fakePurchaseRepo) add(purchase store_models.Purchase) store_models.Purchase {
	f.mu.Lock()
	defer f.mu.Unlock()
	if purchase.ID == "" {
		f.nextID++
		purchase.ID = fmt.Sprintf("pur-%d", f.nextID)
	}
	f.byPage[purchase.PageID] = append(f.byPage[purchase.PageID], purchase)
	return purchase
}

func (f *fakePurchaseRepo) Create(_ context.Context, purchase *store_models.Purchase) (*store_models.Purchase, error) {
	created := f.add(*purchase)
	return &created, nil
}

func (f *fakePurchaseRepo) FindByRef(_ context.Context, ref string) (*store_models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, purchases := range f.byPage {
		for _, purchase := range purchases {
			if purchase.ID == ref {
				clone := purchase
				return &clone, nil
			}
		}
	}
	return nil, utils.ErrRecordNotFound
}

func (f *fakePurchaseRepo) ListByPage(_ context.Context, pageRef string) ([]store_models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.listErr[pageRef]; err != nil {
		return nil, err
	}
	return append([]store_models.Purchase(nil), f.byPage[pageRef]...), nil
}

func (f *fakePurchaseRepo) Update(_ context.Context, ref string, data map[string]interface{}) (*store_models.Purchase, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pageRef, purchases := range f.byPage {
		for i := range purchases {
			if purchases[i].ID != ref {
				continue
			}
			if v, ok := data["purchaseStatus"].(store_models.PurchaseStatus); ok {
				purchases[i].Status = v
			}
			f.byPage[pageRef] = purchases
			f.updated[ref] = data
			clone := purchases[i]
			return &clone, nil
		}
	}
	return nil, utils.ErrRecordNotFound
}

type fakeLeadRepo struct {
	mu      sync.Mutex
	byPage  map[string][]store_models.Lead
	nextID  int
	listErr map[string]error
	updated map[string]map[string]interface{}
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{
		byPage:  map[string][]store_models.Lead{},
		listErr: map[string]error{},
		updated: map[string]map[string]interface{}{},
	}
}

func (f *fakeLeadRepo) Create(_ context.Context, lead *store_models.Lead) (*store_models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	lead.ID = fmt.Sprintf("lead-%d", f.nextID)
	f.byPage[lead.PageID] = append(f.byPage[lead.PageID], *lead)
	clone := *lead
	return &clone, nil
}

func (f *fakeLeadRepo) FindByRef(_ context.Context, ref string) (*store_models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, leads := range f.byPage {
		for _, lead := range leads {
			if lead.ID == ref {
				clone := lead
				return &clone, nil
			}
		}
	}
	return nil, utils.ErrRecordNotFound
}

func (f *fakeLeadRepo) ListByPage(_ context.Context, pageRef string) ([]store_models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.listErr[pageRef]; err != nil {
		return nil, err
	}
	return append([]store_models.Lead(nil), f.byPage[pageRef]...), nil
}

func (f *fakeLeadRepo) Update(_ context.Context, ref string, data map[string]interface{}) (*store_models.Lead, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for pageRef, leads := range f.byPage {
		for i := range leads {
			if leads[i].ID != ref {
				continue
			}
			if v, ok := data["appointmentStatus"].(store_models.LeadStatus); ok {
				leads[i].AppointmentStatus = v
			}
			f.byPage[pageRef] = leads
			f.updated[ref] = data
			clone := leads[i]
			return &clone, nil
		}
	}
	return nil, utils.ErrRecordNotFound
}

func str(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}
