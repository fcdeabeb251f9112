package response_models

import (
	"net/http"
	"strconv"

	"pinpoint/internal/models/db_models"
)

// Document is the JSON:API envelope every admin endpoint renders. Exactly
// one of Data/Errors is set; Meta and Included ride along when relevant.
type Document struct {
	Data     interface{}   `json:"data,omitempty"`
	Errors   []ErrorObject `json:"errors,omitempty"`
	Meta     *Meta         `json:"meta,omitempty"`
	Included []Resource    `json:"included,omitempty"`
}

type Meta struct {
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
	TotalPages  int `json:"totalPages"`
}

type ErrorObject struct {
	Title  string       `json:"title"`
	Detail string       `json:"detail,omitempty"`
	Status string       `json:"status,omitempty"`
	Source *ErrorSource `json:"source,omitempty"`
}

type ErrorSource struct {
	Pointer string `json:"pointer,omitempty"`
}

type Resource struct {
	Type          string                  `json:"type"`
	ID            string                  `json:"id"`
	Attributes    map[string]interface{}  `json:"attributes,omitempty"`
	Relationships map[string]Relationship `json:"relationships,omitempty"`
}

type ResourceID struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// Relationship.Data holds either a ResourceID or a []ResourceID.
type Relationship struct {
	Data interface{} `json:"data"`
}

// IncludeSet enumerates the allowed relationship inclusion shapes. The set
// is closed per endpoint; clients cannot request arbitrary include paths.
type IncludeSet int

const (
	NoIncludes IncludeSet = iota
	// FirmListIncludes: owner, users, posts.reports.
	FirmListIncludes
	// FirmDetailIncludes: owner, users, pins, posts.reports.
	FirmDetailIncludes
	// TicketIncludes: ticketable.
	TicketIncludes
)

// ValidationErrors renders model field errors as a JSON:API errors array.
// These documents ship with HTTP 200: validation failures are data for the
// admin console, not transport errors.
func ValidationErrors(errs []db_models.FieldError) Document {
	out := make([]ErrorObject, 0, len(errs))
	for _, e := range errs {
		out = append(out, ErrorObject{
			Title:  e.Title,
			Detail: e.Detail,
			Source: &ErrorSource{Pointer: "/data/attributes/" + e.Field},
		})
	}
	return Document{Errors: out}
}

func NotFound(kind string) Document {
	return Document{Errors: []ErrorObject{{
		Title:  kind + " not found",
		Status: strconv.Itoa(http.StatusNotFound),
	}}}
}
