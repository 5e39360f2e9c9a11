package peglex

// Convenience matchers for the usual lexical suspects.  Each call
// builds a fresh little tree, so grab one once when assembling a
// grammar instead of calling these in a hot loop.

// EOF matches end of input without consuming it (the terminator is
// never advanced past).  Append it to a grammar to require that the
// whole input was matched.
func EOF() Matcher { return Char(Terminator) }

func Space() Matcher          { return Char(' ') }
func Tab() Matcher            { return Char('\t') }
func CarriageReturn() Matcher { return Char('\r') }
func Newline() Matcher        { return Char('\n') }

// Whitespace matches one space, tab, carriage return or newline.
func Whitespace() Matcher {
	return Choice(Space(), Tab(), CarriageReturn(), Newline())
}

func Digit() Matcher { return Range('0', '9') }
func Lower() Matcher { return Range('a', 'z') }
func Upper() Matcher { return Range('A', 'Z') }

func HexDigit() Matcher {
	return Choice(Range('0', '9'), Range('a', 'f'), Range('A', 'F'))
}

func Alpha() Matcher    { return Choice(Lower(), Upper()) }
func Alphanum() Matcher { return Choice(Alpha(), Digit()) }

// Digits matches a non-empty run of decimal digits.
func Digits() Matcher { return OneOrMore(Digit()) }

// Sign matches a single '+' or '-'.
func Sign() Matcher { return Choice(Char('+'), Char('-')) }

// Integer matches an optionally signed run of digits.
func Integer() Matcher { return Sequence(Optional(Sign()), Digits()) }

// Real matches an optionally signed decimal number with a mandatory
// point and an optional exponent: [+-]digits.(digits)?([eE][+-]?digits)?.
// Note the integral part of a Real is itself an Integer, so a choice
// offering both must list Real first.
func Real() Matcher {
	return Sequence(
		Optional(Sign()),
		Digits(),
		Char('.'),
		Optional(Digits()),
		Optional(Sequence(
			Choice(Char('e'), Char('E')),
			Optional(Sign()),
			Digits(),
		)),
	)
}
