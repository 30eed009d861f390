package intercept

import "fmt"

// DeclarationError reports a declaration routine that raised, either on its
// own or because the real parser rejected a declaration.
type DeclarationError struct {
	// Identifier is the option being declared when the parser rejected it;
	// empty when the routine raised on its own.
	Identifier string
	Err        error
}

func (e *DeclarationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Identifier == "" {
		return fmt.Sprintf("declaration routine failed: %v", e.Err)
	}
	return fmt.Sprintf("declaring %s: %v", e.Identifier, e.Err)
}

func (e *DeclarationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ConventionMismatchError reports a config unit the selected calling
// convention cannot drive.
type ConventionMismatchError struct {
	Convention string
	Reason     string
}

func (e *ConventionMismatchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s convention: %s", e.Convention, e.Reason)
}
