// Package storage is the stub user store. Users live in a JSON file; a
// fresh install gets a handful of generated accounts so the API has
// something to serve.
package storage
