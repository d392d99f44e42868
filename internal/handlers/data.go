package handlers

import (
	"net/http"

	"family_expenses/internal/service"

	"github.com/gin-gonic/gin"
)

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"res": true})
}

// deleteRequest identifies the record to remove.
type deleteRequest struct {
	ID string `json:"_id"`
}

// @Summary      Query records
// @Description  Records with buyDate in [fromDate, toDate) plus a per-category sum summary. Filter columns: buyer, category, product; "*" or empty means no filter.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body  service.QueryParams  true  "range and filter"
// @Success      200   {object}  map[string]interface{}  "res, summary"
// @Router       /data [post]
// @Security     SessionCookie
func (h *Handler) fetchData(c *gin.Context) {
	var params service.QueryParams
	if err := c.ShouldBindJSON(&params); err != nil {
		h.fail(c, "data_bad_request_body", wrapValidation(err))
		return
	}

	items, summary, err := h.services.Records.Query(c.Request.Context(), params)
	if err != nil {
		h.fail(c, "data_query_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": items, "summary": summary})
}

// @Summary      Add a record
// @Description  Requires the full field set; creator/created are stamped from the session identity.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body  service.RecordInput  true  "record without _id"
// @Success      200   {object}  map[string]interface{}  "res, text, row"
// @Router       /adddata [post]
// @Security     SessionCookie
func (h *Handler) addData(c *gin.Context) {
	var input service.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, "adddata_bad_request_body", wrapValidation(err))
		return
	}

	row, err := h.services.Records.Create(c.Request.Context(), identityFrom(c), input)
	if err != nil {
		h.fail(c, "adddata_failed", err)
		return
	}

	h.feed.publish(feedEvent{Type: "added", Data: row})
	c.JSON(http.StatusOK, gin.H{"res": true, "text": "item added:" + row.ID, "row": row})
}

// @Summary      Edit a record
// @Description  Full-record replace: every field must be resent, editor/edited are stamped.
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body  service.RecordInput  true  "record with _id"
// @Success      200   {object}  map[string]interface{}  "res, text"
// @Router       /editdata [post]
// @Security     SessionCookie
func (h *Handler) editData(c *gin.Context) {
	var input service.RecordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, "editdata_bad_request_body", wrapValidation(err))
		return
	}

	if err := h.services.Records.Update(c.Request.Context(), identityFrom(c), input); err != nil {
		h.fail(c, "editdata_failed", err, "id", input.ID)
		return
	}

	h.feed.publish(feedEvent{Type: "edited", Data: gin.H{"_id": input.ID}})
	c.JSON(http.StatusOK, gin.H{"res": true, "text": "item edited"})
}

// @Summary      Delete a record
// @Tags         data
// @Accept       json
// @Produce      json
// @Param        body  body  deleteRequest  true  "record id"
// @Success      200   {object}  map[string]interface{}  "res, text"
// @Router       /deldata [post]
// @Security     SessionCookie
func (h *Handler) delData(c *gin.Context) {
	var input deleteRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		h.fail(c, "deldata_bad_request_body", wrapValidation(err))
		return
	}

	if err := h.services.Records.Delete(c.Request.Context(), input.ID); err != nil {
		h.fail(c, "deldata_failed", err, "id", input.ID)
		return
	}

	h.feed.publish(feedEvent{Type: "deleted", Data: gin.H{"_id": input.ID}})
	c.JSON(http.StatusOK, gin.H{"res": true, "text": input.ID + " deleted"})
}

// @Summary      List categories
// @Description  Non-archived categories with usage counts, most used first.
// @Tags         data
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "res"
// @Router       /categories [get]
// @Security     SessionCookie
func (h *Handler) getCategories(c *gin.Context) {
	cats, err := h.services.Categories.List(c.Request.Context())
	if err != nil {
		h.fail(c, "categories_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"res": cats})
}
