package response_models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pinpoint/internal/models/db_models"
)

func buildFirm() *db_models.Firm {
	firm := &db_models.Firm{
		Name:        "Blue Bottle",
		PhoneNumber: "555-0100",
		Status:      db_models.FirmStatusActive,
		OwnerID:     uuid.New(),
	}
	firm.ID = uuid.New()
	firm.Owner = db_models.Business{Username: "owner", Email: "owner@example.com"}
	firm.Owner.ID = firm.OwnerID

	pin := db_models.Pin{FirmID: firm.ID, IsHome: true}
	pin.ID = uuid.New()
	firm.Pins = []db_models.Pin{pin}

	post := db_models.Post{FirmID: firm.ID, Body: "grand opening"}
	post.ID = uuid.New()
	report := db_models.Report{PostID: post.ID, Reason: "spam"}
	report.ID = uuid.New()
	post.Reports = []db_models.Report{report}
	firm.Posts = []db_models.Post{post}

	return firm
}

func includedTypes(doc Document) map[string]int {
	types := make(map[string]int)
	for _, res := range doc.Included {
		types[res.Type]++
	}
	return types
}

func TestFirmDocumentNoIncludes(t *testing.T) {
	doc := FirmDocument(buildFirm(), NoIncludes)
	assert.Empty(t, doc.Included)

	res, ok := doc.Data.(Resource)
	require.True(t, ok)
	assert.Equal(t, "firms", res.Type)
	assert.Equal(t, "Blue Bottle", res.Attributes["name"])
}

func TestFirmDocumentListIncludesSkipPins(t *testing.T) {
	doc := FirmDocument(buildFirm(), FirmListIncludes)

	types := includedTypes(doc)
	assert.Equal(t, 1, types["businesses"])
	assert.Equal(t, 1, types["posts"])
	assert.Equal(t, 1, types["reports"])
	assert.Zero(t, types["pins"])
}

func TestFirmDocumentDetailIncludesPins(t *testing.T) {
	doc := FirmDocument(buildFirm(), FirmDetailIncludes)

	types := includedTypes(doc)
	assert.Equal(t, 1, types["pins"])
	assert.Equal(t, 1, types["businesses"])
}

func TestFirmDocumentSkipsUnloadedOwner(t *testing.T) {
	firm := buildFirm()
	firm.Owner = db_models.Business{}

	doc := FirmDocument(firm, FirmDetailIncludes)
	assert.Zero(t, includedTypes(doc)["businesses"])
}

func TestValidationErrorsDocument(t *testing.T) {
	doc := ValidationErrors([]db_models.FieldError{
		db_models.InvalidField("name", "can't be blank"),
		db_models.InvalidField("status", "is not a valid status"),
	})

	require.Len(t, doc.Errors, 2)
	assert.Equal(t, "Invalid name", doc.Errors[0].Title)
	assert.Equal(t, "can't be blank", doc.Errors[0].Detail)
	require.NotNil(t, doc.Errors[0].Source)
	assert.Equal(t, "/data/attributes/name", doc.Errors[0].Source.Pointer)
	assert.Nil(t, doc.Data)
}
