// Package entity defines the domain entities for the doctors feature.
package entity

// Doctor represents an entry in the specialist directory.
//
// Availability is an ordered list of human-readable time slots
// (e.g. "Mon 9-5"). The relational backend stores it as a JSON-encoded
// string column; the key-value backend keeps it as a native JSON array.
// Either way it round-trips through the API as a JSON array.
type Doctor struct {
	// ID is the generated identifier ("DOC-" prefix).
	ID         string `gorm:"primaryKey;size:16" json:"id"`
	Name       string `gorm:"size:255;not null" json:"name"`
	Specialty  string `gorm:"size:255;not null" json:"specialty"`
	Experience string `gorm:"size:255" json:"experience"`
	Bio        string `gorm:"type:text" json:"bio"`
	ImageURL   string `gorm:"size:512" json:"imageUrl"`

	Availability []string `gorm:"serializer:json" json:"availability"`
}
