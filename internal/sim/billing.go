package sim

import (
	"context"

	"github.com/flirtshaala/flirtshaala/internal/logger"
	"github.com/flirtshaala/flirtshaala/internal/model"
)

var _ model.Purchaser = (*Billing)(nil)

// Billing is the demo purchase collaborator. Purchases always settle.
type Billing struct {
	delays Delays
	logger *logger.Logger
}

func NewBilling(delays Delays, logger *logger.Logger) *Billing {
	return &Billing{
		delays: delays,
		logger: logger,
	}
}

func (b *Billing) Purchase(ctx context.Context) error {
	if err := sleep(ctx, b.delays.Purchase); err != nil {
		return err
	}

	b.logger.Debug("demo billing: purchase settled")

	return nil
}
