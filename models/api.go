package models

import "encoding/json"

// APIResponse is the envelope every drive API endpoint answers with.
//
// Status is false for business failures; Message carries a human readable
// description and Code a stable machine readable identifier such as
// "api_key_not_found". Data holds the endpoint specific payload and is
// decoded by the adapter only when Status is true.
type APIResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data,omitempty"`
}
