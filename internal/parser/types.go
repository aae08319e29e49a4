package parser

// Email is the in-memory record produced from one input file. Fields other
// than Identifier may be empty but are never absent; an Email is not
// mutated after it is built.
type Email struct {
	// Identifier is the source-relative file path, unique within a run.
	Identifier string
	Subject    string
	Sender     string
	Body       string
}
