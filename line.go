package spof

// ParsedLine holds the tokens that follow the keyword of a validated line.
type ParsedLine struct {
	Tokens []string
	// Index is the 0-based index of the line in its file.
	Index int
}

// Token returns the i-th token of the line body.
func (pl ParsedLine) Token(i int) (string, bool) {
	if i < 0 || i >= len(pl.Tokens) {
		return "", false
	}
	return pl.Tokens[i], true
}

// FoundLine collects all lines of one keyword in file order.
type FoundLine []ParsedLine

func (fl FoundLine) Len() int { return len(fl) }

// Once returns the first line, which is the only one for keywords that
// must occur once.
func (fl FoundLine) Once() (ParsedLine, bool) {
	if len(fl) == 0 {
		return ParsedLine{}, false
	}
	return fl[0], true
}

// FirstToken returns the first token of the first line.
func (fl FoundLine) FirstToken() (string, bool) {
	pl, ok := fl.Once()
	if !ok {
		return "", false
	}
	return pl.Token(0)
}
