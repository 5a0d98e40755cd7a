// utils/authz.go
package utils

import "github.com/laudep/ItemCatalog/models"

// CanMutate reports whether the session may modify a record created by
// ownerID. Every edit and delete entry point evaluates this independently.
func CanMutate(ownerID uint, sess *models.Session) bool {
	return sess != nil && sess.UserID != 0 && sess.UserID == ownerID
}
