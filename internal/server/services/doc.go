// Package services contains the server-side business logic: account
// registration and login (UserService) and owner-scoped record storage
// (RecordService).
package services
