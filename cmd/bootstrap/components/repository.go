package components

import (
	"royal-stay/internal/domain/invoice"
	"royal-stay/internal/infra/memory"
	"royal-stay/internal/infra/payment"
	"royal-stay/internal/usecase/shared"

	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		fx.Annotate(
			memory.NewStore,
			fx.As(new(shared.Store)),
		),
		// Outbound payment collaborator
		fx.Annotate(
			payment.NewAlwaysApprove,
			fx.As(new(invoice.Gateway)),
		),
	),
)
