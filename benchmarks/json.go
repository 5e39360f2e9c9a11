package benchmarks

import "github.com/jamesgregson/peglex"

// newJSONMatcher assembles a JSON recognizer (RFC 8259 grammar, byte
// level) from the engine's combinators.  It validates without
// building any value tree, so the fair standard library comparison
// is json.Valid rather than json.Unmarshal.
func newJSONMatcher() peglex.Matcher {
	rules := peglex.NewRegistry[string]()
	element := rules.Lookup("element")

	ws := peglex.ZeroOrMore(peglex.Whitespace())

	// Strings.  Plain characters are everything but '"', '\' and
	// control bytes; escapes cover the short forms and \uXXXX.
	hex := peglex.HexDigit()
	escape := peglex.Sequence(peglex.Char('\\'), peglex.Choice(
		peglex.Char('"'), peglex.Char('\\'), peglex.Char('/'),
		peglex.Char('b'), peglex.Char('f'), peglex.Char('n'),
		peglex.Char('r'), peglex.Char('t'),
		peglex.Sequence(peglex.Char('u'), hex, hex, hex, hex),
	))
	plain := peglex.Choice(
		peglex.Range(0x20, 0x21),
		peglex.Range(0x23, 0x5b),
		peglex.Range(0x5d, 0xff),
	)
	str := peglex.Sequence(
		peglex.Char('"'),
		peglex.ZeroOrMore(peglex.Choice(escape, plain)),
		peglex.Char('"'),
	)

	// Numbers.  No leading '+', no leading zeros, optional fraction
	// and exponent.
	digit := peglex.Digit()
	number := peglex.Sequence(
		peglex.Optional(peglex.Char('-')),
		peglex.Choice(
			peglex.Char('0'),
			peglex.Sequence(peglex.Range('1', '9'), peglex.ZeroOrMore(digit)),
		),
		peglex.Optional(peglex.Sequence(peglex.Char('.'), peglex.OneOrMore(digit))),
		peglex.Optional(peglex.Sequence(
			peglex.Choice(peglex.Char('e'), peglex.Char('E')),
			peglex.Optional(peglex.Sign()),
			peglex.OneOrMore(digit),
		)),
	)

	member := peglex.Sequence(ws, str, ws, peglex.Char(':'), element)
	object := peglex.Sequence(peglex.Char('{'), peglex.Choice(
		peglex.Sequence(member, peglex.ZeroOrMore(peglex.Sequence(peglex.Char(','), member)), peglex.Char('}')),
		peglex.Sequence(ws, peglex.Char('}')),
	))
	array := peglex.Sequence(peglex.Char('['), peglex.Choice(
		peglex.Sequence(element, peglex.ZeroOrMore(peglex.Sequence(peglex.Char(','), element)), peglex.Char(']')),
		peglex.Sequence(ws, peglex.Char(']')),
	))

	value := peglex.Choice(
		object, array, str, number,
		peglex.Literal("true"), peglex.Literal("false"), peglex.Literal("null"),
	)
	rules.Bind("element", peglex.Sequence(ws, value, ws))

	return peglex.Sequence(element, peglex.EOF())
}

var jsonMatcher = newJSONMatcher()

// validJSON reports whether data is a single well formed JSON text.
func validJSON(data []byte) bool {
	_, err := peglex.Match(jsonMatcher, data)
	return err == nil
}
