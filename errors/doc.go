/*
Package errors implements the error kinds used across the quorum module.

The outcome codes an entry point may return form a closed enumeration, so
every error produced by the decision logic must wrap one of the root errors
declared here. Create instances with ErrXyz.New("...") or by wrapping with
errors.Wrap(err, "...") so a stacktrace is attached at the point of creation.
If you wrap multiple times, only the first wrap records the stacktrace.

Root errors registered with a wire code in the -1..-8 range map directly to
the outcome codes handed back to the host. ErrInput and ErrOverflow exist
for the low level parsers and must be translated into a wire kind before
they reach an entry point boundary.

Once you have an error you can use fmt.Printf/Sprintf to get more context:

	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
