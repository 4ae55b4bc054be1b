package components

import (
	infraadapter "hotel-booking-core/internal/infra/adapter"
	"hotel-booking-core/internal/usecase/adapter"
	"hotel-booking-core/internal/usecase/shared"

	"go.uber.org/fx"
)

var AdapterModule = fx.Module("adapter",
	fx.Provide(
		fx.Annotate(
			infraadapter.NewOwnerInventoryAdapter,
			fx.As(new(shared.OwnerInventoryAdapter)),
		),
		// Suppliers
		fx.Annotate(
			infraadapter.NewHotelbedsAdapter,
			fx.As(new(shared.SupplierBookingAdapter)),
			fx.ResultTags(`group:"suppliers"`),
		),
		fx.Annotate(
			infraadapter.NewTravellandaAdapter,
			fx.As(new(shared.SupplierBookingAdapter)),
			fx.ResultTags(`group:"suppliers"`),
		),
		fx.Annotate(
			adapter.NewRegistry,
			fx.ParamTags(``, `group:"suppliers"`),
		),
	),
)
