package handlers

import (
	"encoding/json"
	"errors"
	"strconv"

	"luxpackers-admin/internal/core/domain"
	"luxpackers-admin/internal/core/services"
	"luxpackers-admin/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RecordHandler is the generic HTTP surface over a RecordService.
// Each entity page of the console gets one instance; the per-entity
// differences are the labels and the allowed query filters.
type RecordHandler[T any] struct {
	svc  *services.RecordService[T]
	name string // singular, for messages ("customer")
	key  string // plural, data key in responses ("customers")
	// query param -> column for equality filters on List
	filters map[string]string
}

// NewRecordHandler creates a record handler for entity type T
func NewRecordHandler[T any](svc *services.RecordService[T], name, key string, filters map[string]string) *RecordHandler[T] {
	return &RecordHandler[T]{svc: svc, name: name, key: key, filters: filters}
}

// List handles GET /<entities>
func (h *RecordHandler[T]) List(c *fiber.Ctx) error {
	filters := map[string]interface{}{}
	for param, column := range h.filters {
		if value := c.Query(param); value != "" {
			filters[column] = value
		}
	}

	records, err := h.svc.List(c.Context(), filters)
	if err != nil {
		return response.InternalServerError(c, "Failed to list "+h.key)
	}

	return response.Success(c, "Retrieved "+h.key, fiber.Map{
		h.key: records,
	})
}

// ListByParent returns a handler for a nested detail route, filtering by
// the parent id path parameter (e.g. flights of one booking)
func (h *RecordHandler[T]) ListByParent(column string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		parentID, err := strconv.ParseUint(c.Params("id"), 10, 32)
		if err != nil {
			return response.BadRequest(c, "Invalid ID")
		}

		records, err := h.svc.List(c.Context(), map[string]interface{}{column: uint(parentID)})
		if err != nil {
			return response.InternalServerError(c, "Failed to list "+h.key)
		}

		return response.Success(c, "Retrieved "+h.key, fiber.Map{
			h.key: records,
		})
	}
}

// Get handles GET /<entities>/:id
func (h *RecordHandler[T]) Get(c *fiber.Ctx) error {
	pk, err := h.paramPK(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	record, err := h.svc.Get(c.Context(), pk)
	if err != nil {
		return response.NotFound(c, capitalized(h.name)+" not found")
	}

	return response.Success(c, "Retrieved "+h.name, fiber.Map{
		h.name: record,
	})
}

// Create handles POST /<entities>. The client re-runs List after a
// successful insert; nothing is patched optimistically.
func (h *RecordHandler[T]) Create(c *fiber.Ctx) error {
	record := new(T)
	if err := c.BodyParser(record); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.svc.Create(c.Context(), record); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return response.BadRequest(c, err.Error())
		}
		// Remote write failure: message passed through verbatim
		return response.InternalServerError(c, err.Error())
	}

	return response.Created(c, capitalized(h.name)+" created successfully", fiber.Map{
		h.name: record,
	})
}

// Update handles PUT /<entities>/:id with a partial field patch
func (h *RecordHandler[T]) Update(c *fiber.Ctx) error {
	pk, err := h.paramPK(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	patch := map[string]interface{}{}
	if err := json.Unmarshal(c.Body(), &patch); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if len(patch) == 0 {
		return response.BadRequest(c, "Empty patch")
	}

	if err := h.svc.Update(c.Context(), pk, patch); err != nil {
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, capitalized(h.name)+" updated successfully", nil)
}

// Delete handles DELETE /<entities>/:id?confirm=true. Without the
// explicit confirmation no database call is issued.
func (h *RecordHandler[T]) Delete(c *fiber.Ctx) error {
	pk, err := h.paramPK(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	confirmed := c.Query("confirm") == "true"

	if err := h.svc.Delete(c.Context(), pk, confirmed); err != nil {
		if errors.Is(err, domain.ErrConfirmationRequired) {
			return response.BadRequest(c, "Deletion not confirmed")
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, capitalized(h.name)+" deleted successfully", nil)
}

// ============================================================
// Edit sub-state routes
// ============================================================

// StartEdit handles POST /<entities>/:id/edit, returning the scratch copy
func (h *RecordHandler[T]) StartEdit(c *fiber.Ctx) error {
	pk, err := h.paramPK(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	scratch, err := h.svc.StartEdit(c.Context(), pk)
	if err != nil {
		return response.NotFound(c, capitalized(h.name)+" not found")
	}

	return response.Success(c, "Editing "+h.name, fiber.Map{
		"scratch": scratch,
	})
}

// UpdateScratch handles PUT /<entities>/:id/edit, merging fields into the
// scratch copy without writing remotely
func (h *RecordHandler[T]) UpdateScratch(c *fiber.Ctx) error {
	fields := map[string]interface{}{}
	if err := json.Unmarshal(c.Body(), &fields); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	scratch, err := h.svc.UpdateScratch(fields)
	if err != nil {
		return response.BadRequest(c, "No edit in progress")
	}

	return response.Success(c, "Scratch updated", fiber.Map{
		"scratch": scratch,
	})
}

// SaveEdit handles POST /<entities>/:id/edit/save. The path id must be
// the row whose edit is open; a save posted under another row's URL
// does not commit it.
func (h *RecordHandler[T]) SaveEdit(c *fiber.Ctx) error {
	pk, err := h.paramPK(c)
	if err != nil {
		return response.BadRequest(c, "Invalid ID")
	}

	if err := h.svc.SaveEdit(c.Context(), pk); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return response.BadRequest(c, "No edit in progress for this "+h.name)
		}
		return response.InternalServerError(c, err.Error())
	}

	return response.Success(c, capitalized(h.name)+" updated successfully", nil)
}

// CancelEdit handles DELETE /<entities>/:id/edit
func (h *RecordHandler[T]) CancelEdit(c *fiber.Ctx) error {
	h.svc.CancelEdit()
	return response.Success(c, "Edit cancelled", nil)
}

// paramPK parses the :id path parameter
func (h *RecordHandler[T]) paramPK(c *fiber.Ctx) (uint, error) {
	pk, err := strconv.ParseUint(c.Params("id"), 10, 32)
	return uint(pk), err
}

func capitalized(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
