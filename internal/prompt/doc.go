// Package prompt collects typed values from an operator one line at a time.
//
// A Prompter reads from any io.Reader, so tests drive it with a scripted
// strings.Reader while the CLI uses the terminal:
//
//	p := prompt.New(strings.NewReader("abc\n42\n"), &out, &errOut)
//	n, err := prompt.Ask(p, "Enter the input size: ", prompt.Int32)
//	// "abc" is rejected with "Invalid input. Please enter a valid integer."
//	// n == 42
//
// # Retry Loop
//
// Ask runs a small state machine per question: read a line, parse it,
// validate it. Parse and validation failures are reported on the error
// stream and the question is asked again. There is no attempt limit
// unless WithMaxAttempts is given. The only other way out is an input
// failure (including end of input), which is returned as an
// errors.InputError.
//
// # Scalars
//
// A Scalar pairs a type name with a parse function. Bool, Int32, Float64,
// IP and String are provided; TupleOf lifts any Scalar to a
// comma-separated pair. Tuple answers that fail to parse are reported
// with the reason, such as "error parsing second value".
//
// # Compound Values
//
//	fov, err := prompt.AskTuple(p, "Enter the FOV: ", prompt.Float64)
//	pt, err := prompt.AskPoint(p)
//	area, err := prompt.AskArea(p, "TARGET")
//
// AskArea keeps adding points while the operator answers exactly "yes".
// Declining the first question produces an empty area.
package prompt
