// Package api provides the HTTP surface of the battle-game server.
//
// The api package implements:
//   - The websocket endpoint that enrolls clients into the session
//   - A health check
//   - The stub user endpoints and login
//
// Endpoints:
//
//   - GET  /ws                — upgrade to the game websocket
//   - GET  /health            — service status and version
//   - GET  /api/v1/user       — list users (id, handle, email)
//   - GET  /api/v1/user/{id}  — fetch one user
//   - POST /api/v1/login      — exchange handle+password for a JWT
//
// All REST endpoints return JSON; errors come back as
// {"error": "message"} with the matching HTTP status code. The game itself
// speaks only over the websocket — see the transport/protocol package for
// the frame format.
package api
