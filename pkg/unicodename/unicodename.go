// Package unicodename names invisible and control characters for diagnostics.
// Characters like bidirectional overrides or zero width joiners render as
// nothing in a terminal; naming the code point is the only way to make the
// resulting error debuggable.
package unicodename

// Lookup returns the human readable name for well known invisible and control
// characters. The second return is false for characters without an entry.
func Lookup(r rune) (string, bool) {
	name, ok := names[r]
	return name, ok
}

var names = map[rune]string{
	// C0 control characters (U+0000 - U+001F)
	'\u0000': "NULL",
	'\u0001': "START OF HEADING",
	'\u0002': "START OF TEXT",
	'\u0003': "END OF TEXT",
	'\u0004': "END OF TRANSMISSION",
	'\u0005': "ENQUIRY",
	'\u0006': "ACKNOWLEDGE",
	'\u0007': "BELL",
	'\u0008': "BACKSPACE",
	'\u0009': "HORIZONTAL TAB",
	'\u000A': "LINE FEED",
	'\u000B': "VERTICAL TAB",
	'\u000C': "FORM FEED",
	'\u000D': "CARRIAGE RETURN",
	'\u000E': "SHIFT OUT",
	'\u000F': "SHIFT IN",
	'\u0010': "DATA LINK ESCAPE",
	'\u0011': "DEVICE CONTROL ONE",
	'\u0012': "DEVICE CONTROL TWO",
	'\u0013': "DEVICE CONTROL THREE",
	'\u0014': "DEVICE CONTROL FOUR",
	'\u0015': "NEGATIVE ACKNOWLEDGE",
	'\u0016': "SYNCHRONOUS IDLE",
	'\u0017': "END OF TRANSMISSION BLOCK",
	'\u0018': "CANCEL",
	'\u0019': "END OF MEDIUM",
	'\u001A': "SUBSTITUTE",
	'\u001B': "ESCAPE",
	'\u001C': "FILE SEPARATOR",
	'\u001D': "GROUP SEPARATOR",
	'\u001E': "RECORD SEPARATOR",
	'\u001F': "UNIT SEPARATOR",

	// C1 control characters and special (U+007F - U+00A0)
	'\u007F': "DELETE",
	'\u0080': "PADDING CHARACTER",
	'\u0081': "HIGH OCTET PRESET",
	'\u0082': "BREAK PERMITTED HERE",
	'\u0083': "NO BREAK HERE",
	'\u0084': "INDEX",
	'\u0085': "NEXT LINE",
	'\u0086': "START OF SELECTED AREA",
	'\u0087': "END OF SELECTED AREA",
	'\u0088': "CHARACTER TABULATION SET",
	'\u0089': "CHARACTER TABULATION WITH JUSTIFICATION",
	'\u008A': "LINE TABULATION SET",
	'\u008B': "PARTIAL LINE FORWARD",
	'\u008C': "PARTIAL LINE BACKWARD",
	'\u008D': "REVERSE LINE FEED",
	'\u008E': "SINGLE SHIFT TWO",
	'\u008F': "SINGLE SHIFT THREE",
	'\u0090': "DEVICE CONTROL STRING",
	'\u0091': "PRIVATE USE ONE",
	'\u0092': "PRIVATE USE TWO",
	'\u0093': "SET TRANSMIT STATE",
	'\u0094': "CANCEL CHARACTER",
	'\u0095': "MESSAGE WAITING",
	'\u0096': "START OF GUARDED AREA",
	'\u0097': "END OF GUARDED AREA",
	'\u0098': "START OF STRING",
	'\u0099': "SINGLE GRAPHIC CHARACTER INTRODUCER",
	'\u009A': "SINGLE CHARACTER INTRODUCER",
	'\u009B': "CONTROL SEQUENCE INTRODUCER",
	'\u009C': "STRING TERMINATOR",
	'\u009D': "OPERATING SYSTEM COMMAND",
	'\u009E': "PRIVACY MESSAGE",
	'\u009F': "APPLICATION PROGRAM COMMAND",
	'\u00A0': "NO-BREAK SPACE",
	'\u00AD': "SOFT HYPHEN",

	// General punctuation, spaces (U+2000 - U+200A)
	'\u2000': "EN QUAD",
	'\u2001': "EM QUAD",
	'\u2002': "EN SPACE",
	'\u2003': "EM SPACE",
	'\u2004': "THREE-PER-EM SPACE",
	'\u2005': "FOUR-PER-EM SPACE",
	'\u2006': "SIX-PER-EM SPACE",
	'\u2007': "FIGURE SPACE",
	'\u2008': "PUNCTUATION SPACE",
	'\u2009': "THIN SPACE",
	'\u200A': "HAIR SPACE",

	// Zero-width and formatting characters (U+200B - U+200F)
	'\u200B': "ZERO WIDTH SPACE",
	'\u200C': "ZERO WIDTH NON-JOINER",
	'\u200D': "ZERO WIDTH JOINER",
	'\u200E': "LEFT-TO-RIGHT MARK",
	'\u200F': "RIGHT-TO-LEFT MARK",

	// Bidirectional text formatting (U+202A - U+202F)
	'\u202A': "LEFT-TO-RIGHT EMBEDDING",
	'\u202B': "RIGHT-TO-LEFT EMBEDDING",
	'\u202C': "POP DIRECTIONAL FORMATTING",
	'\u202D': "LEFT-TO-RIGHT OVERRIDE",
	'\u202E': "RIGHT-TO-LEFT OVERRIDE",
	'\u202F': "NARROW NO-BREAK SPACE",

	// More formatting (U+2060 - U+206F)
	'\u2060': "WORD JOINER",
	'\u2061': "FUNCTION APPLICATION",
	'\u2062': "INVISIBLE TIMES",
	'\u2063': "INVISIBLE SEPARATOR",
	'\u2064': "INVISIBLE PLUS",
	'\u2066': "LEFT-TO-RIGHT ISOLATE",
	'\u2067': "RIGHT-TO-LEFT ISOLATE",
	'\u2068': "FIRST STRONG ISOLATE",
	'\u2069': "POP DIRECTIONAL ISOLATE",
	'\u206A': "INHIBIT SYMMETRIC SWAPPING",
	'\u206B': "ACTIVATE SYMMETRIC SWAPPING",
	'\u206C': "INHIBIT ARABIC FORM SHAPING",
	'\u206D': "ACTIVATE ARABIC FORM SHAPING",
	'\u206E': "NATIONAL DIGIT SHAPES",
	'\u206F': "NOMINAL DIGIT SHAPES",

	// Other special spaces
	'\u2028': "LINE SEPARATOR",
	'\u2029': "PARAGRAPH SEPARATOR",
	'\u205F': "MEDIUM MATHEMATICAL SPACE",
	'\u3000': "IDEOGRAPHIC SPACE",

	// Special characters
	'\u034F': "COMBINING GRAPHEME JOINER",
	'\u061C': "ARABIC LETTER MARK",
	'\u115F': "HANGUL CHOSEONG FILLER",
	'\u1160': "HANGUL JUNGSEONG FILLER",
	'\u17B4': "KHMER VOWEL INHERENT AQ",
	'\u17B5': "KHMER VOWEL INHERENT AA",
	'\u180E': "MONGOLIAN VOWEL SEPARATOR",

	// BOM and noncharacters
	'\uFEFF': "BYTE ORDER MARK",
	'\uFFFE': "NONCHARACTER",
	'\uFFFF': "NONCHARACTER",

	// Interlinear annotation
	'\uFFF9': "INTERLINEAR ANNOTATION ANCHOR",
	'\uFFFA': "INTERLINEAR ANNOTATION SEPARATOR",
	'\uFFFB': "INTERLINEAR ANNOTATION TERMINATOR",

	// Tag characters (U+E0000 - U+E007F)
	'\U000E0001': "LANGUAGE TAG",
	'\U000E0020': "TAG SPACE",
}
