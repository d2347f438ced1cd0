package controllers

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/pibuilder/pibuilder/internal/middlewares"
	"github.com/pibuilder/pibuilder/pkg/domain"
)

type PaymentController struct {
	gateway domain.PaymentGateway
}

type PaymentControllerDependencies struct {
	Gateway domain.PaymentGateway
}

func NewPaymentController(deps PaymentControllerDependencies) *PaymentController {
	return &PaymentController{
		gateway: deps.Gateway,
	}
}

type createPaymentRequest struct {
	Amount   float64        `json:"amount"`
	Memo     string         `json:"memo"`
	Metadata map[string]any `json:"metadata"`
}

type completePaymentRequest struct {
	PaymentID string `json:"payment_id"`
	TxID      string `json:"txid"`
}

func (c *PaymentController) CreatePayment(ctx fiber.Ctx) error {
	var req createPaymentRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Amount <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Payment amount must be positive")
	}

	payment, err := c.gateway.CreatePayment(ctx.RequestCtx(), domain.CreatePaymentParams{
		Amount:   req.Amount,
		Memo:     req.Memo,
		Metadata: req.Metadata,
		UserUID:  middlewares.CallerID(ctx),
	})
	if err != nil {
		log.Error().Err(err).Str("user_id", middlewares.CallerID(ctx)).Msg("Payment creation failed")

		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Payment creation failed",
		})
	}

	return ctx.Status(fiber.StatusCreated).JSON(payment)
}

func (c *PaymentController) CompletePayment(ctx fiber.Ctx) error {
	var req completePaymentRequest

	if err := ctx.Bind().Body(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.PaymentID == "" || req.TxID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "payment_id and txid are required")
	}

	if !c.gateway.CompletePayment(ctx.RequestCtx(), req.PaymentID, req.TxID) {
		return ctx.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Payment completion failed",
		})
	}

	return ctx.JSON(fiber.Map{
		"success":    true,
		"payment_id": req.PaymentID,
	})
}
