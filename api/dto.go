/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. Settlement records
  themselves serialize straight from the settlement package (their keys are
  the warehouse contract and must not be re-mapped); DTOs here cover the
  request shapes and the roster/targets management surface.

NAMING CONVENTION:
  - *Request: Request body types from clients
  - *DTO: Response types returned to clients

SEE ALSO:
  - handlers.go: Uses these types
  - settlement/types.go: SettlementRecord wire shape
*/
package api

import (
	"github.com/barq/settlement-engine/settlement"
)

// CalculateRequest asks for one settlement run. Category is one of the seven
// names or "All". The customParams key is part of the dashboard request
// contract.
type CalculateRequest struct {
	Category     string                             `json:"category"`
	Month        int                                `json:"month"`
	Year         int                                `json:"year"`
	CustomParams map[string]settlement.CustomParams `json:"customParams,omitempty"`
}

// CourierDTO represents a roster entry in API responses.
type CourierDTO struct {
	BarqID      int64  `json:"barq_id"`
	Name        string `json:"name"`
	IBAN        string `json:"iban"`
	IDNumber    string `json:"id_number"`
	JoiningDate string `json:"joining_date"`
	Status      string `json:"status"`
	Sponsorship string `json:"sponsorship_status"`
	Project     string `json:"project"`
	Supervisor  string `json:"supervisor"`
}

// CreateCourierRequest is the request to add a roster entry.
type CreateCourierRequest struct {
	BarqID      int64  `json:"barq_id"`
	Name        string `json:"name"`
	IBAN        string `json:"iban"`
	IDNumber    string `json:"id_number"`
	JoiningDate string `json:"joining_date"`
	Status      string `json:"status"`
	Sponsorship string `json:"sponsorship_status"`
	Project     string `json:"project"`
	Supervisor  string `json:"supervisor"`
}

// MetricRequest is the request to record one courier-day of activity.
type MetricRequest struct {
	BarqID   int64   `json:"barq_id"`
	Date     string  `json:"date"`
	Orders   float64 `json:"orders"`
	Revenue  float64 `json:"revenue"`
	GasUsage float64 `json:"gas_usage"`
}

// TargetRequest is the request to upsert the target row for one
// day-of-month.
type TargetRequest struct {
	Day         int     `json:"day"`
	Motorcycle  float64 `json:"motorcycle"`
	FoodTrial   float64 `json:"food_trial"`
	FoodInhouse float64 `json:"food_inhouse"`
	EcommerceWH float64 `json:"ecommerce_wh"`
	Ecommerce   float64 `json:"ecommerce"`
	Ajeer       float64 `json:"ajeer"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// MessageResponse is the standard non-error informational response.
type MessageResponse struct {
	Message string `json:"message"`
}
