//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"github.com/Omiixx-nova/Bloom-Heaven/internal/auth"
	"github.com/Omiixx-nova/Bloom-Heaven/internal/bouquet"
)

// InitializeApplication wires the whole API server. Wire generates the
// real body in wire_gen.go.
func InitializeApplication() (*Application, error) {
	wire.Build(
		ProvideConfig,
		ProvideTokenManager,
		ProvideStorage,
		ProvideFileStore,
		ProvideUploadsDir,
		auth.NewService,
		bouquet.NewService,
		ProvideServer,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
