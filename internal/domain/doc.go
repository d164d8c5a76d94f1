// Package domain holds the portfolio entities (projects, clients, team
// members, users), the two-sided Edge model that links them, the opaque
// Document envelope exchanged with the document store, and the sentinel
// errors shared by every layer.
//
// Action lives here so that write plans can be described without importing
// the application layer.
package domain
