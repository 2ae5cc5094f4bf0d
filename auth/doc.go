// Package auth hashes user passwords and signs login tokens.
package auth
