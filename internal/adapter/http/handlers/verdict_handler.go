package handlers

import (
	"errors"
	"net/http"

	request "tuition_billing/internal/adapter/http/dto/request"
	response "tuition_billing/internal/adapter/http/dto/response"
	"tuition_billing/internal/usecase"
	"tuition_billing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidVerdictPayload = pkg.NewDomainErrorSimple("INVALID_VERDICT_INPUT", "Invalid verdict payload", http.StatusBadRequest)
)

// VerdictHandler receives the validator's asynchronous callbacks. Both
// contracts acknowledge once the verdict is recorded; downstream
// reconciliation failures never turn into a non-2xx answer.
type VerdictHandler struct {
	usecase usecase.IVerdictUseCase
}

func NewVerdictHandler(uc usecase.IVerdictUseCase) *VerdictHandler {
	return &VerdictHandler{usecase: uc}
}

// IngestProofVerdict godoc
// @Summary      Proof-scoped verdict callback
// @Description  Marks the user's fee as paid when is_valid is true. Negative verdicts are acknowledged without state change.
// @Tags         verdicts
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ProofVerdictRequest  true  "Verdict"
// @Success      200      {object}  response.ProofVerdictResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Router       /verdicts/proof [post]
func (h *VerdictHandler) IngestProofVerdict(c *gin.Context) {
	var payload request.ProofVerdictRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVerdictPayload.HTTPStatus, errInvalidVerdictPayload.ToHTTPError())
		return
	}

	if err := h.usecase.IngestProofVerdict(c.Request.Context(), payload.ToCommand()); err != nil {
		appErr := mapVerdictError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ProofVerdictResponse{Accepted: true})
}

// IngestClaimVerdict godoc
// @Summary      Claim-scoped verdict callback
// @Description  Records verified or rejected on the claim. A claim that is already verified or rejected keeps its status.
// @Tags         verdicts
// @Accept       json
// @Produce      json
// @Param        payload  body      request.ClaimVerdictRequest  true  "Verdict"
// @Success      200      {object}  response.ClaimVerdictResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      401      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /verdicts/claims [post]
func (h *VerdictHandler) IngestClaimVerdict(c *gin.Context) {
	var payload request.ClaimVerdictRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidVerdictPayload.HTTPStatus, errInvalidVerdictPayload.ToHTTPError())
		return
	}

	claim, err := h.usecase.IngestClaimVerdict(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapVerdictError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClaimVerdict(claim))
}

func mapVerdictError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidVerdictUserID),
		errors.Is(err, usecase.ErrInvalidVerdictProofType),
		errors.Is(err, usecase.ErrInvalidVerdictPaymentID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentClaimNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_CLAIM_NOT_FOUND", "Payment claim not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
