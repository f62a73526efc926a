package app

import (
	"net"
	"net/http"
	"net/http/pprof"
)

// pprofServer builds the debug HTTP server, or (nil, nil, nil) when no pprof
// address is configured.
func (a *App) pprofServer() (*http.Server, net.Listener, error) {
	if a.config.PprofAddr == "" {
		return nil, nil, nil
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)
	for _, profile := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		mux.Handle("/debug/pprof/"+profile, pprof.Handler(profile))
	}
	return newHTTPServer(a.config.PprofAddr, "pprof", mux)
}
