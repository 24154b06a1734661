// Package cli provides the interactive VMIS command-line client.
//
// It wires configuration, the persisted session, the HTTP API client and the
// per-kind record services into a REPL. On start the stored session is
// restored; a storage problem simply means starting signed out.
//
// Key features:
//   - Login / Register / Logout
//   - Dashboard counts
//   - List, search (local filter) and show records of any kind
//   - Add a record through an interactive form that keeps input on failure
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See runREPL for the command set.
package cli
