package payment

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
)

// Approval é a visão mínima que o motor precisa de um pagamento: aprovado
// ou não, e a referência externa que aponta para o tenant.
type Approval struct {
	Approved          bool
	ExternalReference string
}

type Client struct {
	payments mppayment.Client
}

func NewClient(accessToken string) (*Client, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, err
	}

	return &Client{payments: mppayment.NewClient(cfg)}, nil
}

// GetApproval busca o pagamento no provedor. O webhook só manda o id;
// o status vem sempre da API, nunca do corpo do webhook.
func (c *Client) GetApproval(ctx context.Context, paymentID int) (*Approval, error) {
	p, err := c.payments.Get(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return &Approval{
		Approved:          p.Status == "approved",
		ExternalReference: p.ExternalReference,
	}, nil
}
