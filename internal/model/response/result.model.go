package response

// Typed write-result DTOs. Handlers return these instead of the driver's
// native InsertOneResult/UpdateResult structs so the wire format stays stable
// across driver upgrades.

type InsertResult struct {
	InsertedID   string `json:"insertedId"`
	Acknowledged bool   `json:"acknowledged"`
}

type UpdateResult struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64 `json:"deletedCount"`
}

// TokenStatus is the body of the access-token and delete-token endpoints.
type TokenStatus struct {
	Status bool `json:"status"`
}
