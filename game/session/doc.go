// Package session coordinates one match: who is connected, whose turn it
// is, and which outbound events go to whom.
//
// The Session is a single-writer actor. Connections post typed commands
// (clicks, turn skips, joins, disconnects) onto its channel; the Run loop
// processes them one at a time in arrival order, drives the rules engine,
// and composes the outbound event choreography. No game state is touched
// outside that loop, so the engine needs no locking.
//
// The first clients to join, in insertion order, become the players when a
// game starts; everyone who joins later spectates.
package session
