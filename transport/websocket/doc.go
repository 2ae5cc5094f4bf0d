// Package websocket carries the bidirectional text-frame transport between
// clients and the session.
//
// Each connection gets two goroutines: readPump forwards inbound frames to
// the session and announces the disconnect when the peer goes away;
// writePump drains the buffered send channel and keeps the connection
// alive with pings. The session never touches the socket directly — it
// only sees the Client as a sendable handle.
package websocket
