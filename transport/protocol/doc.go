// Package protocol defines the JSON frames exchanged with clients over the
// websocket transport.
//
// Every frame, inbound and outbound, is a JSON object carrying a "cmd"
// discriminator. Decode reads the discriminator first and re-parses the
// payload into the typed request. Outbound events are plain structs with
// their cmd pre-filled by the New* constructors; the session layer marshals
// them with Encode.
package protocol
