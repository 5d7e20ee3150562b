// Package uci defines the UCI vocabulary shared by the dispatch layer, the
// notification bridge and protocol manager implementations: status codes,
// protocol errors, session and device enums, command parameters, typed
// notifications, and the Manager and NotificationManager contracts.
//
// The UCI command/response state machine itself lives behind Manager; this
// package only describes what crosses that boundary.
package uci
