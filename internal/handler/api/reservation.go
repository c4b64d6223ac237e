package api

import (
	"context"
	"net/http"

	"estate-marketplace/internal/domain/user"
	reqdto "estate-marketplace/internal/handler/dto/request"
	resdto "estate-marketplace/internal/handler/dto/response"
	"estate-marketplace/internal/handler/httperr"
	"estate-marketplace/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	reservations commands.ReservationCommands
}

func NewReservationHandler(reservations commands.ReservationCommands) *ReservationHandler {
	reqdto.RegisterValidators()
	return &ReservationHandler{
		reservations: reservations,
	}
}

// @Summary Book unit
// @Description Place a time-limited hold on an available unit
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.BookUnitRequest false "Requested deposit"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/units/{id}/book [post]
func (h *ReservationHandler) Book(c *gin.Context) {
	var req reqdto.BookUnitRequest
	h.run(c, &req, true, func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.ReservationResult, error) {
		return h.reservations.Book(ctx, id, actor, req.Deposit())
	})
}

// @Summary Confirm deposit
// @Description Owner or admin records the deposit payment of a booked unit
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.ConfirmDepositRequest true "Payment reference"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/units/{id}/confirm-deposit [post]
func (h *ReservationHandler) ConfirmDeposit(c *gin.Context) {
	var req reqdto.ConfirmDepositRequest
	h.run(c, &req, false, func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.ReservationResult, error) {
		return h.reservations.ConfirmDeposit(ctx, id, actor, req.PaymentReference)
	})
}

// @Summary Cancel booking
// @Description Holder, owner or admin releases the hold
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.CancelBookingRequest false "Reason"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/units/{id}/cancel-booking [post]
func (h *ReservationHandler) CancelBooking(c *gin.Context) {
	var req reqdto.CancelBookingRequest
	h.run(c, &req, true, func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.ReservationResult, error) {
		return h.reservations.CancelBooking(ctx, id, actor, req.Reason)
	})
}

// @Summary Mark under contract
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/units/{id}/under-contract [post]
func (h *ReservationHandler) MarkUnderContract(c *gin.Context) {
	h.run(c, nil, true, func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.ReservationResult, error) {
		return h.reservations.MarkUnderContract(ctx, id, actor)
	})
}

// @Summary Mark sold
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Success 200 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/units/{id}/mark-sold [post]
func (h *ReservationHandler) MarkSold(c *gin.Context) {
	h.run(c, nil, true, func(ctx context.Context, id uuid.UUID, actor user.Actor) (*commands.ReservationResult, error) {
		return h.reservations.MarkSold(ctx, id, actor)
	})
}

// @Summary Request visit
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Unit ID"
// @Param request body reqdto.VisitRequest true "Contact details"
// @Success 201 {object} map[string]any
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /api/units/{id}/visit [post]
func (h *ReservationHandler) RequestVisit(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.VisitRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.reservations.RequestVisit(c.Request.Context(), id, actor, req.ToContact())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	d, err := resdto.FromDeal(result.Deal)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	success(c, http.StatusCreated, gin.H{
		"message": "Visit request sent",
		"deal":    d,
	})
}

type reservationCall func(ctx context.Context, unitID uuid.UUID, actor user.Actor) (*commands.ReservationResult, error)

// run is the shared shape of the status transition endpoints.
func (h *ReservationHandler) run(c *gin.Context, req any, optionalBody bool, call reservationCall) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if req != nil {
		bound := false
		if optionalBody {
			bound = bindOptionalJSON(c, req)
		} else {
			bound = bindJSON(c, req)
		}
		if !bound {
			return
		}
	}

	result, err := call(c.Request.Context(), id, actor)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	u, err := resdto.FromUnit(result.Unit, result.Project)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	payload := gin.H{"unit": u}
	if result.Deal != nil {
		d, err := resdto.FromDeal(result.Deal)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		payload["deal"] = d
	}
	success(c, http.StatusOK, payload)
}
