package utils

// Envelope is the success body shape shared by every endpoint.
type Envelope struct {
	Status  int    `json:"status"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// ErrorEnvelope is the failure shape; it deliberately carries no data field.
type ErrorEnvelope struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}
