package endpoints

import (
	"embed"
	"io/fs"
	"net/http"

	"contactbook/pkg/server"
)

//go:embed static/css
var staticFiles embed.FS

// RegisterStaticFiles serves the embedded stylesheet tree.
func RegisterStaticFiles(s *server.Server) {
	staticFS, _ := fs.Sub(staticFiles, "static")

	cssFS, _ := fs.Sub(staticFS, "css")
	s.Router.PathPrefix("/css/").Handler(
		http.StripPrefix("/css/", http.FileServer(http.FS(cssFS))),
	)

	s.Router.HandleFunc("/favicon.ico", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})
}
