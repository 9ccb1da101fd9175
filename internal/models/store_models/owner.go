package store_models

type Owner struct {
	ID          string
	IdentityKey string
	DisplayName string
	Email       string

	SubscriptionStatus SubscriptionStatus
}
