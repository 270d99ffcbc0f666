package endpoints

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"

	"contactbook/pkg/server"
)

//go:embed help.md
var helpMarkdown []byte

// RegisterHelpEndpoint registers the /help page. The page body is
// authored in Markdown and converted once at startup.
func RegisterHelpEndpoint(s *server.Server) {
	var buf bytes.Buffer
	if err := goldmark.Convert(helpMarkdown, &buf); err != nil {
		log.WithError(err).Error("could not render help page")
	}
	body := template.HTML(buf.String())

	s.Router.HandleFunc("/help", func(w http.ResponseWriter, r *http.Request) {
		data := pageData(w, r, "Help")
		data.Model = body
		s.Views.Render(w, http.StatusOK, "help.html", data)
	}).Methods("GET")
}
