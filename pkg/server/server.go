package server

import (
	"net/http"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"contactbook/pkg/server/session"
	"contactbook/pkg/server/store"
	"contactbook/pkg/server/views"
)

type Server struct {
	Router   *mux.Router
	DB       *gorm.DB
	Users    store.UserStore
	Contacts store.ContactStore
	Sessions *session.Manager
	Views    *views.Renderer
	srv      *http.Server
}

func NewServer(
	db *gorm.DB,
	users store.UserStore,
	contacts store.ContactStore,
	sessions *session.Manager,
	renderer *views.Renderer,
	addr string,
) *Server {

	router := mux.NewRouter()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(log.StandardLogger().Writer(), router),
		Addr:    addr,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Router:   router,
		DB:       db,
		Users:    users,
		Contacts: contacts,
		Sessions: sessions,
		Views:    renderer,
		srv:      srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
