package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Miol-Mor/battle-game/auth"
	"github.com/Miol-Mor/battle-game/game/session"
	"github.com/Miol-Mor/battle-game/storage"
	"github.com/Miol-Mor/battle-game/transport/websocket"
)

// Server is the HTTP server: the websocket endpoint plus the REST stubs.
type Server struct {
	session   *session.Session
	users     *storage.UserStore
	jwtSecret string
	version   string
	router    *mux.Router
}

// NewServer wires the routes.
func NewServer(sess *session.Session, users *storage.UserStore, jwtSecret, version string) *Server {
	s := &Server{
		session:   sess,
		users:     users,
		jwtSecret: jwtSecret,
		version:   version,
		router:    mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.HandleFunc("/health", s.handleHealth).Methods("GET")

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/user", s.handleGetUsers).Methods("GET")
	api.HandleFunc("/user/{id}", s.handleGetUser).Methods("GET")
	api.HandleFunc("/login", s.handleLogin).Methods("POST")

	s.router.HandleFunc("/ws", s.handleWebSocket)
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: s.version,
	})
}

// UserResponse is a stored user without its credentials.
type UserResponse struct {
	ID     string `json:"id"`
	Handle string `json:"handle"`
	Email  string `json:"email"`
}

func newUserResponse(user storage.User) UserResponse {
	return UserResponse{
		ID:     user.ID,
		Handle: user.Handle,
		Email:  user.Email,
	}
}

func (s *Server) handleGetUsers(w http.ResponseWriter, r *http.Request) {
	users := s.users.All()

	response := make([]UserResponse, 0, len(users))
	for _, user := range users {
		response = append(response, newUserResponse(user))
	}

	respondJSON(w, http.StatusOK, response)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	log.Printf("User id: %s", id)

	user, err := s.users.Find(id)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			respondError(w, http.StatusNotFound, "user not found")
			return
		}
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, newUserResponse(user))
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Handle   string `json:"handle"`
	Password string `json:"password"`
}

// LoginResponse carries the signed token for a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.users.FindByHandle(req.Handle)
	if err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		respondError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := auth.NewToken(s.jwtSecret, user.ID, user.Handle)
	if err != nil {
		log.Printf("Failed to sign token for %s: %v", user.Handle, err)
		respondError(w, http.StatusInternalServerError, "failed to sign token")
		return
	}

	respondJSON(w, http.StatusOK, LoginResponse{
		Token: token,
		User:  newUserResponse(user),
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWS(s.session, w, r)
}
