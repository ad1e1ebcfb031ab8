// Package conf wires configuration loading into an Fx application.
//
// Configuration sections are loaded while the container is built. A missing
// required key or a mistyped value stops startup: App.Run reports the error
// as one diagnostic line and exits with a failure status, so the application
// never runs on a partial configuration.
//
//	app := conf.NewApp(
//	    conf.WithConfigFile("config.json"),
//	    conf.WithConfig("server", &ServerConfig{}, "server"),
//	    conf.WithModules(serviceModule),
//	)
//	app.Run()
package conf
