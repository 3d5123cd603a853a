package models

// HelixError is the standard error payload returned by both the identity
// service and the Helix API, e.g. {"error":"Unauthorized","status":401,
// "message":"Invalid OAuth token"}.
type HelixError struct {
	Error   string `json:"error"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}
