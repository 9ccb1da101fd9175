package repositories

import (
	"context"
	"net/url"

	"autopage/internal/infra"
	"autopage/internal/models/store_models"
)

type OwnerRepository interface {
	Create(ctx context.Context, owner *store_models.Owner) (*store_models.Owner, error)
	FindByRef(ctx context.Context, ref string) (*store_models.Owner, error)
	FindByIdentityKey(ctx context.Context, identityKey string) (*store_models.Owner, error)
}

type ownerRepository struct {
	store *infra.StoreClient
}

func NewOwnerRepository(store *infra.StoreClient) OwnerRepository {
	return &ownerRepository{store: store}
}

func (o *ownerRepository) Create(ctx context.Context, owner *store_models.Owner) (*store_models.Owner, error) {
	rec, err := o.store.Create(ctx, "owners", map[string]interface{}{
		"identityKey":        owner.IdentityKey,
		"displayName":        owner.DisplayName,
		"email":              owner.Email,
		"subscriptionStatus": owner.SubscriptionStatus,
	})
	if err != nil {
		return nil, err
	}
	return ownerFromRecord(rec), nil
}

func (o *ownerRepository) FindByRef(ctx context.Context, ref string) (*store_models.Owner, error) {
	rec, err := o.store.Get(ctx, "owners", ref, nil)
	if err != nil {
		return nil, err
	}
	return ownerFromRecord(rec), nil
}

func (o *ownerRepository) FindByIdentityKey(ctx context.Context, identityKey string) (*store_models.Owner, error) {
	params := url.Values{}
	params.Set("filters[identityKey][$eq]", identityKey)
	records, err := o.store.List(ctx, "owners", params)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	return ownerFromRecord(&records[0]), nil
}

func ownerFromRecord(rec *infra.Record) *store_models.Owner {
	return &store_models.Owner{
		ID:                 rec.Ref(),
		IdentityKey:        rec.Str("identityKey"),
		DisplayName:        rec.Str("displayName"),
		Email:              rec.Str("email"),
		SubscriptionStatus: store_models.SubscriptionStatus(rec.Str("subscriptionStatus")),
	}
}
