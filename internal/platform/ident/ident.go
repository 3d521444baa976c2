// Package ident generates the short prefixed identifiers used as primary
// keys across every record store.
package ident

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Prefixes mark the entity kind an identifier belongs to.
const (
	PrefixUser        = "USR"
	PrefixDoctor      = "DOC"
	PrefixAppointment = "APP"
)

// New returns an identifier of the form "<PREFIX>-<6 uppercase hex chars>".
// The hex part is drawn from a fresh random UUID.
func New(prefix string) string {
	u := uuid.New()
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(hex.EncodeToString(u[:3])))
}
