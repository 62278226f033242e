package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/u-santos1/barbearia-backend-sub000/internal/payment"
	"github.com/u-santos1/barbearia-backend-sub000/internal/usecase/plan"
)

// WebhookHandler recebe o aviso de pagamento do Mercado Pago. O corpo só
// traz o id; status e referência vêm sempre da API do provedor.
type WebhookHandler struct {
	payments *payment.Client
	upgrade  *plan.UpgradePlan
	log      zerolog.Logger
}

func NewWebhookHandler(
	payments *payment.Client,
	upgrade *plan.UpgradePlan,
	log zerolog.Logger,
) *WebhookHandler {
	return &WebhookHandler{
		payments: payments,
		upgrade:  upgrade,
		log:      log,
	}
}

type mercadoPagoNotification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (h *WebhookHandler) MercadoPago(c *gin.Context) {
	var notif mercadoPagoNotification
	if err := c.ShouldBindJSON(&notif); err != nil || notif.Type != "payment" {
		// webhook sempre responde 200 para o provedor não reenviar lixo
		c.Status(http.StatusOK)
		return
	}

	paymentID, err := strconv.Atoi(notif.Data.ID)
	if err != nil {
		c.Status(http.StatusOK)
		return
	}

	approval, err := h.payments.GetApproval(c.Request.Context(), paymentID)
	if err != nil {
		h.log.Warn().Err(err).Int("payment_id", paymentID).Msg("payment lookup failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	if !approval.Approved {
		c.Status(http.StatusOK)
		return
	}

	professionalID, err := strconv.ParseUint(approval.ExternalReference, 10, 32)
	if err != nil {
		h.log.Warn().
			Str("external_reference", approval.ExternalReference).
			Msg("unparseable external reference")
		c.Status(http.StatusOK)
		return
	}

	if _, err := h.upgrade.Execute(c.Request.Context(), uint(professionalID)); err != nil {
		h.log.Error().Err(err).Uint64("professional_id", professionalID).Msg("plan upgrade failed")
		c.Status(http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusOK)
}
