// Package errors provides typed errors with exit codes for configuranator.
//
// # Error Types
//
// ConfiguranatorError is the base error type that wraps an error with an exit code:
//
//	type ConfiguranatorError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess         = 0 // Success
//	ExitGeneralError    = 1 // General/unknown errors
//	ExitIOError         = 2 // Configuration file could not be read or written
//	ExitDecodeError     = 3 // Document does not match the schema
//	ExitEncodeError     = 4 // Configuration could not be serialized
//	ExitValidationError = 5 // A field failed validation
//	ExitInputError      = 6 // Operator input stream failed or ended
//
// Parse and validation failures raised while prompting never reach the
// caller: the prompt loop recovers from them by asking again. The
// constructors here are for the failures that end a run:
//
//	errors.IOError("read", path, err)
//	errors.DecodeError(path, err)
//	errors.EncodeError(err)
//	errors.InputError(err)
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
