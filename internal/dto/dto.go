package dto

// InsertResult mirrors a document-store insert acknowledgement. InsertedID is
// null when the insert was skipped (e.g. duplicate user email).
type InsertResult struct {
	Message    string `json:"message,omitempty"`
	InsertedID any    `json:"insertedId"`
}

type UpdateResult struct {
	ModifiedCount int64 `json:"modifiedCount"`
}

type DeleteResult struct {
	DeletedCount int64  `json:"deletedCount"`
	Message      string `json:"message,omitempty"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type AdminCheckResponse struct {
	Admin bool `json:"admin"`
}

type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SettleResult reports the two settlement sub-steps independently so callers
// can detect a written payment record with an uncleared cart.
type SettleResult struct {
	PaymentResult InsertResult `json:"paymentResult"`
	DeleteResult  DeleteResult `json:"deleteResult"`
}

type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}

type CategoryStat struct {
	Category string  `json:"category"`
	Quantity int64   `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}
