package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"billbook/internal/domain"
	"billbook/internal/middleware"
	"billbook/internal/service"
)

// BillHandler handles bill endpoints. Bills are immutable once created, so
// there is no update route.
type BillHandler struct {
	billService service.BillService
}

// NewBillHandler creates a new BillHandler.
func NewBillHandler(billService service.BillService) *BillHandler {
	return &BillHandler{billService: billService}
}

// Create handles POST /api/v1/bills
func (h *BillHandler) Create(c *gin.Context) {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	var input service.CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	bill, err := h.billService.Create(c.Request.Context(), userID, input)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, bill)
}

// List handles GET /api/v1/bills
func (h *BillHandler) List(c *gin.Context) {
	offset, limit := pagination(c)

	bills, total, err := h.billService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, bills, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetByID handles GET /api/v1/bills/:id
func (h *BillHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, bill)
}

// HTML handles GET /api/v1/bills/:id/html
func (h *BillHandler) HTML(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	html, err := h.billService.RenderHTML(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// PDF handles GET /api/v1/bills/:id/pdf
func (h *BillHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	bill, err := h.billService.GetByID(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	pdf, err := h.billService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=invoice_%s.pdf", bill.InvoiceNo))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// Email handles POST /api/v1/bills/:id/email
func (h *BillHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid bill ID")
		return
	}

	var input service.EmailBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	if err := h.billService.Email(c.Request.Context(), id, input); err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, gin.H{"sent": true})
}

// Export handles GET /api/v1/bills/export
func (h *BillHandler) Export(c *gin.Context) {
	format := domain.ExportFormat(c.DefaultQuery("format", string(domain.ExportXLSX)))

	data, err := h.billService.Export(c.Request.Context(), format)
	if err != nil {
		HandleError(c, err)
		return
	}

	switch format {
	case domain.ExportCSV:
		c.Header("Content-Disposition", "attachment; filename=bills.csv")
		c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
	default:
		c.Header("Content-Disposition", "attachment; filename=bills.xlsx")
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
	}
}
