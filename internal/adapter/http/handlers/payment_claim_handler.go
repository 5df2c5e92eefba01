package handlers

import (
	"errors"
	"net/http"

	request "tuition_billing/internal/adapter/http/dto/request"
	response "tuition_billing/internal/adapter/http/dto/response"
	"tuition_billing/internal/adapter/http/middleware"
	"tuition_billing/internal/usecase"
	"tuition_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidClaimPayload = pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", "Invalid payment claim payload", http.StatusBadRequest)
)

// PaymentClaimHandler serves the student-facing proof intake and status reads.
type PaymentClaimHandler struct {
	usecase usecase.IPaymentClaimUseCase
}

func NewPaymentClaimHandler(uc usecase.IPaymentClaimUseCase) *PaymentClaimHandler {
	return &PaymentClaimHandler{usecase: uc}
}

// CreatePaymentClaim godoc
// @Summary      Submit a payment proof
// @Description  Creates a payment claim for the authenticated student, attaches the proof and sends it to the validator. A failed dispatch leaves the claim pending_verification.
// @Tags         payment-claims
// @Accept       json
// @Produce      json
// @Param        payload  body      request.PaymentClaimRequest  true  "Proof submission"
// @Success      201      {object}  response.PaymentClaimCreatedResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment-claims [post]
func (h *PaymentClaimHandler) CreatePaymentClaim(c *gin.Context) {
	var payload request.PaymentClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidClaimPayload.HTTPStatus, errInvalidClaimPayload.ToHTTPError())
		return
	}

	cmd, err := payload.ToCommand(middleware.UserID(c))
	if err != nil {
		appErr := mapPaymentClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	claim, err := h.usecase.Submit(c.Request.Context(), cmd)
	if err != nil {
		appErr := mapPaymentClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentClaimCreated(claim))
}

// GetPaymentClaim godoc
// @Summary      Get a payment claim
// @Tags         payment-claims
// @Produce      json
// @Param        payment_id  path      string  true  "Payment claim id"
// @Success      200         {object}  response.PaymentClaimResponse
// @Failure      401         {object}  pkg.HTTPError
// @Failure      404         {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment-claims/{payment_id} [get]
func (h *PaymentClaimHandler) GetPaymentClaim(c *gin.Context) {
	claim, err := h.usecase.GetForUser(c.Request.Context(), middleware.UserID(c), c.Param("payment_id"))
	if err != nil {
		appErr := mapPaymentClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentClaim(claim))
}

// ListPaymentClaims godoc
// @Summary      List the caller's payment claims
// @Tags         payment-claims
// @Produce      json
// @Param        fee_type  query     string  false  "Filter by fee type"
// @Success      200       {array}   response.PaymentClaimResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      401       {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /payment-claims [get]
func (h *PaymentClaimHandler) ListPaymentClaims(c *gin.Context) {
	claims, err := h.usecase.ListForUser(c.Request.Context(), middleware.UserID(c), c.Query("fee_type"))
	if err != nil {
		appErr := mapPaymentClaimError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPaymentClaims(claims))
}

func mapPaymentClaimError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrInvalidFeeType):
		return pkg.NewDomainErrorSimple("INVALID_FEE_TYPE", "Unknown fee_type", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_AMOUNT", "amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingScholarshipIDs):
		return pkg.NewDomainErrorSimple("MISSING_SCHOLARSHIP_IDS", "application_fee claims require scholarship_ids", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidRecipient),
		errors.Is(err, usecase.ErrInvalidProofURL),
		errors.Is(err, usecase.ErrInvalidConfirmationCode),
		errors.Is(err, usecase.ErrInvalidPaymentDate),
		errors.Is(err, request.ErrInvalidPaymentDate),
		errors.Is(err, usecase.ErrInvalidPaymentClaimID):
		return pkg.NewDomainErrorSimple("INVALID_CLAIM_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentClaimNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_CLAIM_NOT_FOUND", "Payment claim not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
