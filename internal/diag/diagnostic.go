package diag

// Note attaches secondary context to a diagnostic.
type Note struct {
	Msg string
}

// Diagnostic is one finding about a program. This layer carries no
// source positions; findings are anchored to the top-level definition
// they occur in (Def is its display name, empty for book-level
// findings).
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Def      string
	Notes    []Note
}
