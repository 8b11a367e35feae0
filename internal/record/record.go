// Package record contains the follower record model shared by the loader,
// differ and reporter.
package record

import "fmt"

// Record is one follower row. UserID is the identity key; UserName is a
// display attribute and never takes part in equality.
type Record struct {
	UserID   string
	UserName string
}

// New creates a Record.
func New(userID, userName string) Record {
	return Record{UserID: userID, UserName: userName}
}

// Key returns the identity key of the record.
func (r Record) Key() string {
	return r.UserID
}

// Equal reports whether r and other denote the same follower.
func (r Record) Equal(other Record) bool {
	return r.UserID == other.UserID
}

func (r Record) String() string {
	return fmt.Sprintf("%s (%s)", r.UserID, r.UserName)
}
