// Package job parses job descriptions: ordered tasks of named processes with
// success and failure continuations, silent markers, and log monitors.
//
// # Syntax
//
//	job        := task+
//	task       := concurrent | single
//	concurrent := '[' single single+ ']'
//	single     := silent | plain
//	silent     := '(' plain ')'
//	plain      := name predicate? ';' monitor*
//	predicate  := ('?' name)? (':' name)?
//	monitor    := '@' name
//	name       := [A-Za-z0-9_-]*
//
// Whitespace, including newlines, is insignificant between tokens, except
// that the ';' ending a statement must immediately follow the last name.
//
// For example:
//
//	[
//	    (loop1 ? loop2 : loop3;)
//	    loop2 ? loop3 : loop4; @errors
//	]
//	loop3 ? loop4 : loop5;
//	loop6;
//
// describes three tasks. The first runs loop1 and loop2 concurrently, with
// loop1 silenced and loop2 watched by the log monitor "errors".
//
// # Parsing
//
// [ParseString] and [ParseReader] parse a complete source. Success requires
// the whole input to be consumed; otherwise a [*SyntaxError] reports the
// line, column, and surrounding text of the first character the grammar
// could not accept (see [Locate]). The grammar rules themselves are exported
// as [combinator.Parser] values ([NameParser], [ProcessParser],
// [ConcurrentParser], [TaskParser], [JobParser]) for callers that embed job
// syntax in a larger grammar.
//
// Successor names are not resolved. A [Job] is a static syntax tree; it is up
// to the caller to link names to processes.
//
// # Inspection
//
// [Job.Format], [Job.FormatJSON], and [Job.FormatYAML] render a job as
// canonical source, JSON, or YAML. [Job.Query] selects processes with a
// boolean expression and [Job.Find] ranks process names by fuzzy match.
package job
