package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pinkdoor/guestguide-backend/internal/models"
	"github.com/pinkdoor/guestguide-backend/internal/services"
)

// GuideHandler handles guide item CRUD, the grouped sidebar view and
// drag-and-drop reordering.
type GuideHandler struct {
	guideService *services.GuideService
}

// NewGuideHandler creates a new guide handler.
func NewGuideHandler(guideService *services.GuideService) *GuideHandler {
	return &GuideHandler{guideService: guideService}
}

// CreateGuideRequest is the payload for creating a guide item.
type CreateGuideRequest struct {
	Title            string         `json:"title"`
	ShortDescription string         `json:"short_description"`
	Content          string         `json:"content"`
	IsHTMLContent    bool           `json:"is_html_content"`
	HeadImageURL     string         `json:"head_image_url"`
	TabCode          models.TabCode `json:"tab_code"`
	SectionName      string         `json:"section_name"`
	Category         string         `json:"category"`
	SequenceNumber   int            `json:"sequence_number"`

	PurchaseSettings         *models.PurchaseSettings       `json:"purchase_settings"`
	FilterByListingTags      *models.PropertyFilter         `json:"filter_by_listing_tags"`
	FilterByReservationStage *models.ReservationStageFilter `json:"filter_by_reservation_stage"`
}

// ReorderRequest is the payload for a drag-and-drop move.
type ReorderRequest struct {
	GuideID       int    `json:"guide_id"`
	TargetSection string `json:"target_section"`
	TargetIndex   int    `json:"target_index"`
}

// ListGuides returns all guide items, or the grouped section view of one
// tab when ?tab= is given.
// GET /api/v1/guides
func (h *GuideHandler) ListGuides(c *gin.Context) {
	if tab := c.Query("tab"); tab != "" {
		sections, err := h.guideService.SectionsForTab(models.TabCode(tab))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"tab":      tab,
			"sections": sections,
		})
		return
	}

	guides := h.guideService.ListGuides()
	c.JSON(http.StatusOK, gin.H{
		"guides": guides,
		"count":  len(guides),
	})
}

// GetGuide returns one guide item.
// GET /api/v1/guides/:id
func (h *GuideHandler) GetGuide(c *gin.Context) {
	id, ok := h.guideID(c)
	if !ok {
		return
	}

	guide, err := h.guideService.GetGuide(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"guide": guide})
}

// CreateGuide creates a new guide item.
// POST /api/v1/guides
func (h *GuideHandler) CreateGuide(c *gin.Context) {
	var req CreateGuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body is not valid JSON",
		})
		return
	}

	item := models.GuideItem{
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Content:          req.Content,
		IsHTMLContent:    req.IsHTMLContent,
		HeadImageURL:     req.HeadImageURL,
		TabCode:          req.TabCode,
		SectionName:      req.SectionName,
		Category:         req.Category,
		SequenceNumber:   req.SequenceNumber,
		PurchaseSettings: req.PurchaseSettings,
	}
	if req.FilterByListingTags != nil {
		item.FilterByListingTags = *req.FilterByListingTags
	}
	if req.FilterByReservationStage != nil {
		item.FilterByReservationStage = *req.FilterByReservationStage
	}

	created, err := h.guideService.CreateGuide(item)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"guide":    created,
		"warnings": guideWarnings(created),
	})
}

// UpdateGuide merges a partial update over an existing guide item.
// PUT /api/v1/guides/:id
func (h *GuideHandler) UpdateGuide(c *gin.Context) {
	id, ok := h.guideID(c)
	if !ok {
		return
	}

	var upd models.GuideUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body is not valid JSON",
		})
		return
	}

	updated, err := h.guideService.UpdateGuide(id, upd)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guide":    updated,
		"warnings": guideWarnings(updated),
	})
}

// DeleteGuide removes a guide item. Deletion is idempotent; the response
// reports whether anything was removed.
// DELETE /api/v1/guides/:id
func (h *GuideHandler) DeleteGuide(c *gin.Context) {
	id, ok := h.guideID(c)
	if !ok {
		return
	}

	deleted := h.guideService.DeleteGuide(id)
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

// GetSections returns the grouped sidebar view for one tab.
// GET /api/v1/guides/sections?tab=home
func (h *GuideHandler) GetSections(c *gin.Context) {
	tab := c.Query("tab")
	sections, err := h.guideService.SectionsForTab(models.TabCode(tab))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tab":      tab,
		"sections": sections,
	})
}

// GetTemplate returns the template-summary view over the whole guide.
// GET /api/v1/guides/template
func (h *GuideHandler) GetTemplate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"template": h.guideService.Template()})
}

// ReorderGuides applies a drag-and-drop move and returns the freshly
// grouped view of the affected tab.
// POST /api/v1/guides/reorder
func (h *GuideHandler) ReorderGuides(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Request body is not valid JSON",
		})
		return
	}
	if req.GuideID <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "guide_id is required",
		})
		return
	}

	sections, err := h.guideService.ReorderGuides(req.GuideID, req.TargetSection, req.TargetIndex)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

func (h *GuideHandler) guideID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "invalid_request",
			Message: "Guide id must be a positive integer",
		})
		return 0, false
	}
	return id, true
}
