package config

import "go.uber.org/fx"

// Module returns an Fx module providing *T, loaded by Provider from the section at path.
// The module expects a Parser and a DataFetcher in the container.
//
// The section is loaded when the container is built even if nothing depends
// on *T, so a bad section always fails startup.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func Module[T any](name string, target *T, path string) fx.Option {
	return fx.Module(name,
		fx.Provide(Provider(target, path)),
		fx.Invoke(func(*T) {}),
	)
}
