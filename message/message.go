package message

import "fmt"

// Message is one reported finding: a check observed something about one
// object in the graph. Messages are comparable values; two messages from the
// same check, at the same location, with the same text are considered the
// same finding for deduplication purposes.
type Message struct {
	// CheckName is the unique name of the check that produced the finding.
	CheckName string `json:"check_name"`

	// Text is the human-readable description of the finding.
	Text string `json:"text"`

	// Importance ranks the finding. If a check returns a message without
	// one, the driver stamps the check's registered importance.
	Importance Importance `json:"importance"`

	// Severity optionally ranks the finding within its importance level.
	Severity Severity `json:"severity,omitempty"`

	// ObjectType is the type name of the object the finding is about.
	ObjectType string `json:"object_type,omitempty"`

	// ObjectName is the name of the object the finding is about.
	ObjectName string `json:"object_name,omitempty"`

	// Location is the dot-joined path of the object from the graph root.
	// The root itself has location "". If a check returns a message
	// without one, the driver stamps the traversal path.
	Location string `json:"location"`

	// File identifies the data file the finding came from. Stamped by the
	// batch runner; empty for single in-memory runs without a file.
	File string `json:"file,omitempty"`
}

// Key returns the identity of the finding used for deduplication:
// same check, same location, same text means same message.
func (m Message) Key() string {
	return fmt.Sprintf("%s\x00%s\x00%s", m.CheckName, m.Location, m.Text)
}

// New returns a Message carrying only text. Checks that rely on the driver
// to stamp importance, location, and object identity can use this form.
func New(text string) Message {
	return Message{Text: text}
}
