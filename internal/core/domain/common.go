package domain

import "time"

// AuditFields holds standard audit information for domain entities.
// The actor fields carry the scoping account ID when a request was
// account-scoped, or "system" otherwise.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
