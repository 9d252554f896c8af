package handler

import (
	"github.com/treasurehunt/payment-orchestrator/internal/adapter/http/dto"
	"github.com/treasurehunt/payment-orchestrator/internal/core/domain"
	"github.com/treasurehunt/payment-orchestrator/internal/core/ports"
	"github.com/treasurehunt/payment-orchestrator/pkg/apperror"
	"github.com/treasurehunt/payment-orchestrator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// InvoiceHandler exposes invoice computation and lookup.
type InvoiceHandler struct {
	svc ports.InvoiceEngine
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(svc ports.InvoiceEngine) *InvoiceHandler {
	return &InvoiceHandler{svc: svc}
}

// CreateInvoice handles POST /api/v1/invoices.
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	decimals, err := parseInvoiceDecimals(req)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	inv, err := h.svc.CreateInvoice(c.Request.Context(), ports.CreateInvoiceRequest{
		InvoiceNumber:  req.InvoiceNumber,
		EnrollmentID:   req.EnrollmentID,
		RegistrationID: req.RegistrationID,
		PlanID:         req.PlanID,
		UserID:         req.UserID,
		EnrollmentType: domain.EnrollmentType(req.EnrollmentType),
		BaseAmount:     decimals.base,
		DiscountAmount: decimals.discount,
		TaxAmount:      decimals.tax,
		ConvenienceFee: decimals.convenience,
		PlatformFee:    decimals.platform,
		Currency:       req.Currency,
		BillingName:    req.BillingName,
		BillingEmail:   req.BillingEmail,
		BillingPhone:   req.BillingPhone,
		BillingAddress: req.BillingAddress,
		VendorID:       req.VendorID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, toInvoiceResponse(inv))
}

// GetInvoice handles GET /api/v1/invoices/:invoiceNumber.
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.svc.GetInvoice(c.Request.Context(), c.Param("invoiceNumber"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, toInvoiceResponse(inv))
}

type invoiceDecimals struct {
	base, discount, tax, convenience, platform decimal.Decimal
}

func parseInvoiceDecimals(req dto.CreateInvoiceRequest) (invoiceDecimals, error) {
	var d invoiceDecimals
	var err error
	if d.base, err = decimal.NewFromString(req.BaseAmount); err != nil {
		return d, err
	}
	if d.discount, err = parseOptionalDecimal(req.DiscountAmount); err != nil {
		return d, err
	}
	if d.tax, err = parseOptionalDecimal(req.TaxAmount); err != nil {
		return d, err
	}
	if d.convenience, err = parseOptionalDecimal(req.ConvenienceFee); err != nil {
		return d, err
	}
	if d.platform, err = parseOptionalDecimal(req.PlatformFee); err != nil {
		return d, err
	}
	return d, nil
}

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

func toInvoiceResponse(inv *domain.Invoice) dto.InvoiceResponse {
	return dto.InvoiceResponse{
		InvoiceNumber:  inv.InvoiceNumber,
		EnrollmentID:   inv.EnrollmentID,
		TotalAmount:    inv.TotalAmount.StringFixed(2),
		Currency:       inv.Currency,
		PaymentStatus:  string(inv.PaymentStatus),
		GatewayOrderID: inv.GatewayOrderID,
		CreatedAt:      inv.CreatedAt.Format(timeLayout),
	}
}
