package main

import (
	"go.uber.org/fx"
)

func main() {
	fx.New(appOptions()...).Run()
}

// appOptions assembles the application graph.
func appOptions() []fx.Option {
	return []fx.Option{
		fx.NopLogger,
		coreModule,
		storeModule,
		serviceModule,
		httpModule,
		fx.Invoke(startServer),
	}
}
