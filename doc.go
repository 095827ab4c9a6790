/*
Package spof validates structured plain-text files against a schema. Such
files consist of lines that start with a keyword followed by the tokens of
the line body, all separated by whitespace:

	color 255 0 42
	# some comment
	position 1 2 3 4 # another comment
	name my object

A schema declares for each keyword a human readable description, the
format of the line body and how often the keyword may occur in a file:

	var objectSchema = spof.MustSchema(
		spof.Line("color", "the color of the object", spof.Fixed("R G B"), spof.Once),
		spof.Line("position", "the position of the object", spof.Range("X Y Z W", 3, 4), spof.Once),
		spof.Line("name", "the name of the object", spof.Unbounded("string"), spof.Optional),
	)

The format only restricts the number of tokens. Fixed takes the count from
its template, i.e. "R G B" expects exactly 3 tokens. The template is also
used to tell users how the line has to look. Range expects between min and
max tokens and Unbounded accepts any number of tokens, even none.

# Validating Files

Validation scans a file line by line. Each line is stripped of a trailing
comment, if a comment marker is configured, and of surrounding whitespace.
Lines that are empty after stripping are skipped. Otherwise the first token
selects the rule of the schema and the remaining tokens must match the
rule's format. Matching lines are collected per keyword in file order.

Only after all lines were scanned without error, the number of lines of each
keyword is checked against its occurrence. Validation stops at the first
error unless Spof.ErrorLimit says otherwise.

	sp := spof.Spof{Comment: "#"}
	f, err := sp.OpenFile("cube.obj", objectSchema)
	if err != nil {
		// err is a *diag.Diagnostic or a diag.List
	}
	rgb, err := spof.ParseOnce(f, "color", strconv.Atoi)

Errors are reported as structured diagnostics from package diag. They carry
the file name and line index, the offending line with the parts that caused
the error and a help text derived from the schema. They do not contain any
terminal formatting.

# Schema Definitions

Schemas can also be loaded from YAML, see Definition. The command
cmd/spof uses such definitions to check files from the command line.
*/
package spof
