package glyph

// Letters and digits.
var (
	K = Glyph{
		1, 0, 0, 1, 0,
		1, 0, 1, 0, 0,
		1, 1, 0, 0, 0,
		1, 0, 1, 0, 0,
		1, 0, 0, 1, 0,
	}

	L = Glyph{
		1, 0, 0, 0, 0,
		1, 0, 0, 0, 0,
		1, 0, 0, 0, 0,
		1, 0, 0, 0, 0,
		1, 1, 1, 1, 0,
	}

	M = Glyph{
		1, 0, 0, 0, 1,
		1, 1, 0, 1, 1,
		1, 0, 1, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
	}

	N = Glyph{
		1, 0, 0, 0, 1,
		1, 1, 0, 0, 1,
		1, 0, 1, 0, 1,
		1, 0, 0, 1, 1,
		1, 0, 0, 0, 1,
	}

	O = Glyph{
		0, 1, 1, 1, 0,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		0, 1, 1, 1, 0,
	}

	P = Glyph{
		1, 1, 1, 1, 0,
		1, 0, 0, 1, 0,
		1, 1, 1, 1, 0,
		1, 0, 0, 0, 0,
		1, 0, 0, 0, 0,
	}

	Q = Glyph{
		0, 1, 1, 1, 0,
		1, 0, 0, 0, 1,
		1, 0, 1, 0, 1,
		1, 0, 0, 1, 1,
		0, 1, 1, 1, 1,
	}

	R = Glyph{
		1, 1, 1, 1, 0,
		1, 0, 0, 1, 0,
		1, 1, 1, 1, 0,
		1, 0, 1, 0, 0,
		1, 0, 0, 1, 0,
	}

	S = Glyph{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 0,
		1, 1, 1, 1, 1,
		0, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}

	T = Glyph{
		1, 1, 1, 1, 1,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
	}

	E = Glyph{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 0,
		1, 1, 1, 0, 0,
		1, 0, 0, 0, 0,
		1, 1, 1, 1, 1,
	}

	D = Glyph{
		1, 1, 1, 1, 0,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 0,
	}

	Five = Glyph{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 0,
		1, 1, 1, 1, 1,
		0, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}

	Six = Glyph{
		1, 1, 1, 1, 0,
		1, 0, 0, 0, 0,
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}

	Seven = Glyph{
		1, 1, 1, 1, 1,
		0, 0, 0, 0, 1,
		0, 0, 0, 1, 0,
		0, 0, 1, 0, 0,
		0, 1, 0, 0, 0,
	}

	Eight = Glyph{
		0, 1, 1, 1, 0,
		1, 0, 0, 0, 1,
		0, 1, 1, 1, 0,
		1, 0, 0, 0, 1,
		0, 1, 1, 1, 0,
	}

	Nine = Glyph{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
		0, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}
)

// Symbols.
var (
	// Square lights every pixel.
	Square = Glyph{
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
		1, 1, 1, 1, 1,
	}

	// Border lights the outer ring.
	Border = Glyph{
		1, 1, 1, 1, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 0, 0, 0, 1,
		1, 1, 1, 1, 1,
	}

	// Arrow points down.
	Arrow = Glyph{
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		0, 0, 1, 0, 0,
		1, 0, 1, 0, 1,
		0, 1, 1, 1, 0,
	}

	// End is the condensed word mark of the closing animation: E, a gap, then D.
	End = Glyph{
		1, 1, 0, 1, 0,
		1, 0, 0, 1, 1,
		1, 1, 0, 1, 1,
		1, 0, 0, 1, 1,
		1, 1, 0, 1, 0,
	}

	// Blank leaves every pixel off.
	Blank = Glyph{}
)

// Sequences shown by the keypad commands.
var (
	KLMNO      = MustParse("KLMNO")
	PQRST      = MustParse("PQRST")
	FiveToNine = MustParse("56789")
)

var chars = map[rune]Glyph{
	'K': K,
	'L': L,
	'M': M,
	'N': N,
	'O': O,
	'P': P,
	'Q': Q,
	'R': R,
	'S': S,
	'T': T,
	'E': E,
	'D': D,
	'5': Five,
	'6': Six,
	'7': Seven,
	'8': Eight,
	'9': Nine,
}
