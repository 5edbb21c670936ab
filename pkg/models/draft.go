package models

// NoteDraft keeps the note input a user is assembling across several
// messages, before anything is written to the database.
type NoteDraft struct {
	CategoryID   uint
	CategoryName string
}
