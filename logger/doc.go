// Package logger applies a rendered logging configuration to zap.
//
// New accepts the map produced by logconfig.LogConfig.Render, or the
// decoded JSON or YAML form of LogConfig.Portable, and builds one zap
// core per handler listed under root. Each core renders entries with the
// handler's formatter template and writes to the handler's stream or
// file:
//
//	cfg, err := logconfig.NewBuilder().
//	    WithFileHandler("audit", "Default", core.InfoLevel, "/var/log/app.log").
//	    WithRootHandlers("Default", "audit").
//	    Build()
//	if err != nil {
//	    log.Fatal(core.Describe(err))
//	}
//	l, err := logger.FromConfig(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer l.Close()
//	l.Named("a").Info("ready")
//
// A record reaches a handler when its severity is at least both the root
// level and the handler level. zap's DPanic, Panic and Fatal levels are
// reported as CRITICAL.
//
// The package initializes a default Logger from logconfig.New in init().
// Apply replaces it and hands back the previous default, which the caller
// closes once nothing logs through it. Get returns a named child of the
// default, which is what the %(name)s attribute prints.
package logger
