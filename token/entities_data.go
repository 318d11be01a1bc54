package token

// entity is one row of the named-character-reference table (spec.md §4.2,
// §9 "Entity table size"). Legacy marks the 106 names that predate the
// requirement for a trailing semicolon and may therefore match without one
// (subject to the "next character" exclusion rule in
// consumeNamedCharacterReference).
type entity struct {
	value  string
	legacy bool
}

// namedEntities is the full WHATWG named character reference table
// (https://html.spec.whatwg.org/multipage/named-characters.html), sourced
// mechanically from the Go standard library's own copy of the same table
// (src/html/entity.go's entity/entity2 maps) rather than hand-transcribed,
// since both are derived from the same WHATWG source list; only the
// key shape (no trailing ';' — lookupNamed looks names up without it) and
// the legacy flag are specific to this package. The table is a flat map so
// swapping in a trie or perfect hash later, per spec.md §9's suggestion for
// reducing lookup cost at this row count, is a data-structure-only change.
var namedEntities = map[string]entity{
	// Legacy (semicolon optional) — the HTML4/Latin-1 entity set.
	"AElig": {"Æ", true},
	"AMP": {"&", true},
	"Aacute": {"Á", true},
	"Acirc": {"Â", true},
	"Agrave": {"À", true},
	"Aring": {"Å", true},
	"Atilde": {"Ã", true},
	"Auml": {"Ä", true},
	"COPY": {"©", true},
	"Ccedil": {"Ç", true},
	"ETH": {"Ð", true},
	"Eacute": {"É", true},
	"Ecirc": {"Ê", true},
	"Egrave": {"È", true},
	"Euml": {"Ë", true},
	"GT": {">", true},
	"Iacute": {"Í", true},
	"Icirc": {"Î", true},
	"Igrave": {"Ì", true},
	"Iuml": {"Ï", true},
	"LT": {"<", true},
	"Ntilde": {"Ñ", true},
	"Oacute": {"Ó", true},
	"Ocirc": {"Ô", true},
	"Ograve": {"Ò", true},
	"Oslash": {"Ø", true},
	"Otilde": {"Õ", true},
	"Ouml": {"Ö", true},
	"QUOT": {"\"", true},
	"REG": {"®", true},
	"THORN": {"Þ", true},
	"Uacute": {"Ú", true},
	"Ucirc": {"Û", true},
	"Ugrave": {"Ù", true},
	"Uuml": {"Ü", true},
	"Yacute": {"Ý", true},
	"aacute": {"á", true},
	"acirc": {"â", true},
	"acute": {"´", true},
	"aelig": {"æ", true},
	"agrave": {"à", true},
	"amp": {"&", true},
	"aring": {"å", true},
	"atilde": {"ã", true},
	"auml": {"ä", true},
	"brvbar": {"¦", true},
	"ccedil": {"ç", true},
	"cedil": {"¸", true},
	"cent": {"¢", true},
	"copy": {"©", true},
	"curren": {"¤", true},
	"deg": {"°", true},
	"divide": {"÷", true},
	"eacute": {"é", true},
	"ecirc": {"ê", true},
	"egrave": {"è", true},
	"eth": {"ð", true},
	"euml": {"ë", true},
	"frac12": {"½", true},
	"frac14": {"¼", true},
	"frac34": {"¾", true},
	"gt": {">", true},
	"iacute": {"í", true},
	"icirc": {"î", true},
	"iexcl": {"¡", true},
	"igrave": {"ì", true},
	"iquest": {"¿", true},
	"iuml": {"ï", true},
	"laquo": {"«", true},
	"lt": {"<", true},
	"macr": {"¯", true},
	"micro": {"µ", true},
	"middot": {"·", true},
	"nbsp": {" ", true},
	"not": {"¬", true},
	"ntilde": {"ñ", true},
	"oacute": {"ó", true},
	"ocirc": {"ô", true},
	"ograve": {"ò", true},
	"ordf": {"ª", true},
	"ordm": {"º", true},
	"oslash": {"ø", true},
	"otilde": {"õ", true},
	"ouml": {"ö", true},
	"para": {"¶", true},
	"plusmn": {"±", true},
	"pound": {"£", true},
	"quot": {"\"", true},
	"raquo": {"»", true},
	"reg": {"®", true},
	"sect": {"§", true},
	"shy": {"­", true},
	"sup1": {"¹", true},
	"sup2": {"²", true},
	"sup3": {"³", true},
	"szlig": {"ß", true},
	"thorn": {"þ", true},
	"times": {"×", true},
	"uacute": {"ú", true},
	"ucirc": {"û", true},
	"ugrave": {"ù", true},
	"uml": {"¨", true},
	"uuml": {"ü", true},
	"yacute": {"ý", true},
	"yen": {"¥", true},
	"yuml": {"ÿ", true},

	// Semicolon-required — the remainder of the WHATWG named-character table.
	"Abreve": {"Ă", false},
	"Acy": {"А", false},
	"Afr": {"𝔄", false},
	"Alpha": {"Α", false},
	"Amacr": {"Ā", false},
	"And": {"⩓", false},
	"Aogon": {"Ą", false},
	"Aopf": {"𝔸", false},
	"ApplyFunction": {"⁡", false},
	"Ascr": {"𝒜", false},
	"Assign": {"≔", false},
	"Backslash": {"∖", false},
	"Barv": {"⫧", false},
	"Barwed": {"⌆", false},
	"Bcy": {"Б", false},
	"Because": {"∵", false},
	"Bernoullis": {"ℬ", false},
	"Beta": {"Β", false},
	"Bfr": {"𝔅", false},
	"Bopf": {"𝔹", false},
	"Breve": {"˘", false},
	"Bscr": {"ℬ", false},
	"Bumpeq": {"≎", false},
	"CHcy": {"Ч", false},
	"Cacute": {"Ć", false},
	"Cap": {"⋒", false},
	"CapitalDifferentialD": {"ⅅ", false},
	"Cayleys": {"ℭ", false},
	"Ccaron": {"Č", false},
	"Ccirc": {"Ĉ", false},
	"Cconint": {"∰", false},
	"Cdot": {"Ċ", false},
	"Cedilla": {"¸", false},
	"CenterDot": {"·", false},
	"Cfr": {"ℭ", false},
	"Chi": {"Χ", false},
	"CircleDot": {"⊙", false},
	"CircleMinus": {"⊖", false},
	"CirclePlus": {"⊕", false},
	"CircleTimes": {"⊗", false},
	"ClockwiseContourIntegral": {"∲", false},
	"CloseCurlyDoubleQuote": {"”", false},
	"CloseCurlyQuote": {"’", false},
	"Colon": {"∷", false},
	"Colone": {"⩴", false},
	"Congruent": {"≡", false},
	"Conint": {"∯", false},
	"ContourIntegral": {"∮", false},
	"Copf": {"ℂ", false},
	"Coproduct": {"∐", false},
	"CounterClockwiseContourIntegral": {"∳", false},
	"Cross": {"⨯", false},
	"Cscr": {"𝒞", false},
	"Cup": {"⋓", false},
	"CupCap": {"≍", false},
	"DD": {"ⅅ", false},
	"DDotrahd": {"⤑", false},
	"DJcy": {"Ђ", false},
	"DScy": {"Ѕ", false},
	"DZcy": {"Џ", false},
	"Dagger": {"‡", false},
	"Darr": {"↡", false},
	"Dashv": {"⫤", false},
	"Dcaron": {"Ď", false},
	"Dcy": {"Д", false},
	"Del": {"∇", false},
	"Delta": {"Δ", false},
	"Dfr": {"𝔇", false},
	"DiacriticalAcute": {"´", false},
	"DiacriticalDot": {"˙", false},
	"DiacriticalDoubleAcute": {"˝", false},
	"DiacriticalGrave": {"`", false},
	"DiacriticalTilde": {"˜", false},
	"Diamond": {"⋄", false},
	"DifferentialD": {"ⅆ", false},
	"Dopf": {"𝔻", false},
	"Dot": {"¨", false},
	"DotDot": {"⃜", false},
	"DotEqual": {"≐", false},
	"DoubleContourIntegral": {"∯", false},
	"DoubleDot": {"¨", false},
	"DoubleDownArrow": {"⇓", false},
	"DoubleLeftArrow": {"⇐", false},
	"DoubleLeftRightArrow": {"⇔", false},
	"DoubleLeftTee": {"⫤", false},
	"DoubleLongLeftArrow": {"⟸", false},
	"DoubleLongLeftRightArrow": {"⟺", false},
	"DoubleLongRightArrow": {"⟹", false},
	"DoubleRightArrow": {"⇒", false},
	"DoubleRightTee": {"⊨", false},
	"DoubleUpArrow": {"⇑", false},
	"DoubleUpDownArrow": {"⇕", false},
	"DoubleVerticalBar": {"∥", false},
	"DownArrow": {"↓", false},
	"DownArrowBar": {"⤓", false},
	"DownArrowUpArrow": {"⇵", false},
	"DownBreve": {"̑", false},
	"DownLeftRightVector": {"⥐", false},
	"DownLeftTeeVector": {"⥞", false},
	"DownLeftVector": {"↽", false},
	"DownLeftVectorBar": {"⥖", false},
	"DownRightTeeVector": {"⥟", false},
	"DownRightVector": {"⇁", false},
	"DownRightVectorBar": {"⥗", false},
	"DownTee": {"⊤", false},
	"DownTeeArrow": {"↧", false},
	"Downarrow": {"⇓", false},
	"Dscr": {"𝒟", false},
	"Dstrok": {"Đ", false},
	"ENG": {"Ŋ", false},
	"Ecaron": {"Ě", false},
	"Ecy": {"Э", false},
	"Edot": {"Ė", false},
	"Efr": {"𝔈", false},
	"Element": {"∈", false},
	"Emacr": {"Ē", false},
	"EmptySmallSquare": {"◻", false},
	"EmptyVerySmallSquare": {"▫", false},
	"Eogon": {"Ę", false},
	"Eopf": {"𝔼", false},
	"Epsilon": {"Ε", false},
	"Equal": {"⩵", false},
	"EqualTilde": {"≂", false},
	"Equilibrium": {"⇌", false},
	"Escr": {"ℰ", false},
	"Esim": {"⩳", false},
	"Eta": {"Η", false},
	"Exists": {"∃", false},
	"ExponentialE": {"ⅇ", false},
	"Fcy": {"Ф", false},
	"Ffr": {"𝔉", false},
	"FilledSmallSquare": {"◼", false},
	"FilledVerySmallSquare": {"▪", false},
	"Fopf": {"𝔽", false},
	"ForAll": {"∀", false},
	"Fouriertrf": {"ℱ", false},
	"Fscr": {"ℱ", false},
	"GJcy": {"Ѓ", false},
	"Gamma": {"Γ", false},
	"Gammad": {"Ϝ", false},
	"Gbreve": {"Ğ", false},
	"Gcedil": {"Ģ", false},
	"Gcirc": {"Ĝ", false},
	"Gcy": {"Г", false},
	"Gdot": {"Ġ", false},
	"Gfr": {"𝔊", false},
	"Gg": {"⋙", false},
	"Gopf": {"𝔾", false},
	"GreaterEqual": {"≥", false},
	"GreaterEqualLess": {"⋛", false},
	"GreaterFullEqual": {"≧", false},
	"GreaterGreater": {"⪢", false},
	"GreaterLess": {"≷", false},
	"GreaterSlantEqual": {"⩾", false},
	"GreaterTilde": {"≳", false},
	"Gscr": {"𝒢", false},
	"Gt": {"≫", false},
	"HARDcy": {"Ъ", false},
	"Hacek": {"ˇ", false},
	"Hat": {"^", false},
	"Hcirc": {"Ĥ", false},
	"Hfr": {"ℌ", false},
	"HilbertSpace": {"ℋ", false},
	"Hopf": {"ℍ", false},
	"HorizontalLine": {"─", false},
	"Hscr": {"ℋ", false},
	"Hstrok": {"Ħ", false},
	"HumpDownHump": {"≎", false},
	"HumpEqual": {"≏", false},
	"IEcy": {"Е", false},
	"IJlig": {"Ĳ", false},
	"IOcy": {"Ё", false},
	"Icy": {"И", false},
	"Idot": {"İ", false},
	"Ifr": {"ℑ", false},
	"Im": {"ℑ", false},
	"Imacr": {"Ī", false},
	"ImaginaryI": {"ⅈ", false},
	"Implies": {"⇒", false},
	"Int": {"∬", false},
	"Integral": {"∫", false},
	"Intersection": {"⋂", false},
	"InvisibleComma": {"⁣", false},
	"InvisibleTimes": {"⁢", false},
	"Iogon": {"Į", false},
	"Iopf": {"𝕀", false},
	"Iota": {"Ι", false},
	"Iscr": {"ℐ", false},
	"Itilde": {"Ĩ", false},
	"Iukcy": {"І", false},
	"Jcirc": {"Ĵ", false},
	"Jcy": {"Й", false},
	"Jfr": {"𝔍", false},
	"Jopf": {"𝕁", false},
	"Jscr": {"𝒥", false},
	"Jsercy": {"Ј", false},
	"Jukcy": {"Є", false},
	"KHcy": {"Х", false},
	"KJcy": {"Ќ", false},
	"Kappa": {"Κ", false},
	"Kcedil": {"Ķ", false},
	"Kcy": {"К", false},
	"Kfr": {"𝔎", false},
	"Kopf": {"𝕂", false},
	"Kscr": {"𝒦", false},
	"LJcy": {"Љ", false},
	"Lacute": {"Ĺ", false},
	"Lambda": {"Λ", false},
	"Lang": {"⟪", false},
	"Laplacetrf": {"ℒ", false},
	"Larr": {"↞", false},
	"Lcaron": {"Ľ", false},
	"Lcedil": {"Ļ", false},
	"Lcy": {"Л", false},
	"LeftAngleBracket": {"⟨", false},
	"LeftArrow": {"←", false},
	"LeftArrowBar": {"⇤", false},
	"LeftArrowRightArrow": {"⇆", false},
	"LeftCeiling": {"⌈", false},
	"LeftDoubleBracket": {"⟦", false},
	"LeftDownTeeVector": {"⥡", false},
	"LeftDownVector": {"⇃", false},
	"LeftDownVectorBar": {"⥙", false},
	"LeftFloor": {"⌊", false},
	"LeftRightArrow": {"↔", false},
	"LeftRightVector": {"⥎", false},
	"LeftTee": {"⊣", false},
	"LeftTeeArrow": {"↤", false},
	"LeftTeeVector": {"⥚", false},
	"LeftTriangle": {"⊲", false},
	"LeftTriangleBar": {"⧏", false},
	"LeftTriangleEqual": {"⊴", false},
	"LeftUpDownVector": {"⥑", false},
	"LeftUpTeeVector": {"⥠", false},
	"LeftUpVector": {"↿", false},
	"LeftUpVectorBar": {"⥘", false},
	"LeftVector": {"↼", false},
	"LeftVectorBar": {"⥒", false},
	"Leftarrow": {"⇐", false},
	"Leftrightarrow": {"⇔", false},
	"LessEqualGreater": {"⋚", false},
	"LessFullEqual": {"≦", false},
	"LessGreater": {"≶", false},
	"LessLess": {"⪡", false},
	"LessSlantEqual": {"⩽", false},
	"LessTilde": {"≲", false},
	"Lfr": {"𝔏", false},
	"Ll": {"⋘", false},
	"Lleftarrow": {"⇚", false},
	"Lmidot": {"Ŀ", false},
	"LongLeftArrow": {"⟵", false},
	"LongLeftRightArrow": {"⟷", false},
	"LongRightArrow": {"⟶", false},
	"Longleftarrow": {"⟸", false},
	"Longleftrightarrow": {"⟺", false},
	"Longrightarrow": {"⟹", false},
	"Lopf": {"𝕃", false},
	"LowerLeftArrow": {"↙", false},
	"LowerRightArrow": {"↘", false},
	"Lscr": {"ℒ", false},
	"Lsh": {"↰", false},
	"Lstrok": {"Ł", false},
	"Lt": {"≪", false},
	"Map": {"⤅", false},
	"Mcy": {"М", false},
	"MediumSpace": {" ", false},
	"Mellintrf": {"ℳ", false},
	"Mfr": {"𝔐", false},
	"MinusPlus": {"∓", false},
	"Mopf": {"𝕄", false},
	"Mscr": {"ℳ", false},
	"Mu": {"Μ", false},
	"NJcy": {"Њ", false},
	"Nacute": {"Ń", false},
	"Ncaron": {"Ň", false},
	"Ncedil": {"Ņ", false},
	"Ncy": {"Н", false},
	"NegativeMediumSpace": {"​", false},
	"NegativeThickSpace": {"​", false},
	"NegativeThinSpace": {"​", false},
	"NegativeVeryThinSpace": {"​", false},
	"NestedGreaterGreater": {"≫", false},
	"NestedLessLess": {"≪", false},
	"NewLine": {"\n", false},
	"Nfr": {"𝔑", false},
	"NoBreak": {"⁠", false},
	"NonBreakingSpace": {" ", false},
	"Nopf": {"ℕ", false},
	"Not": {"⫬", false},
	"NotCongruent": {"≢", false},
	"NotCupCap": {"≭", false},
	"NotDoubleVerticalBar": {"∦", false},
	"NotElement": {"∉", false},
	"NotEqual": {"≠", false},
	"NotExists": {"∄", false},
	"NotGreater": {"≯", false},
	"NotGreaterEqual": {"≱", false},
	"NotGreaterLess": {"≹", false},
	"NotGreaterTilde": {"≵", false},
	"NotLeftTriangle": {"⋪", false},
	"NotLeftTriangleEqual": {"⋬", false},
	"NotLess": {"≮", false},
	"NotLessEqual": {"≰", false},
	"NotLessGreater": {"≸", false},
	"NotLessTilde": {"≴", false},
	"NotPrecedes": {"⊀", false},
	"NotPrecedesSlantEqual": {"⋠", false},
	"NotReverseElement": {"∌", false},
	"NotRightTriangle": {"⋫", false},
	"NotRightTriangleEqual": {"⋭", false},
	"NotSquareSubsetEqual": {"⋢", false},
	"NotSquareSupersetEqual": {"⋣", false},
	"NotSubsetEqual": {"⊈", false},
	"NotSucceeds": {"⊁", false},
	"NotSucceedsSlantEqual": {"⋡", false},
	"NotSupersetEqual": {"⊉", false},
	"NotTilde": {"≁", false},
	"NotTildeEqual": {"≄", false},
	"NotTildeFullEqual": {"≇", false},
	"NotTildeTilde": {"≉", false},
	"NotVerticalBar": {"∤", false},
	"Nscr": {"𝒩", false},
	"Nu": {"Ν", false},
	"OElig": {"Œ", false},
	"Ocy": {"О", false},
	"Odblac": {"Ő", false},
	"Ofr": {"𝔒", false},
	"Omacr": {"Ō", false},
	"Omega": {"Ω", false},
	"Omicron": {"Ο", false},
	"Oopf": {"𝕆", false},
	"OpenCurlyDoubleQuote": {"“", false},
	"OpenCurlyQuote": {"‘", false},
	"Or": {"⩔", false},
	"Oscr": {"𝒪", false},
	"Otimes": {"⨷", false},
	"OverBar": {"‾", false},
	"OverBrace": {"⏞", false},
	"OverBracket": {"⎴", false},
	"OverParenthesis": {"⏜", false},
	"PartialD": {"∂", false},
	"Pcy": {"П", false},
	"Pfr": {"𝔓", false},
	"Phi": {"Φ", false},
	"Pi": {"Π", false},
	"PlusMinus": {"±", false},
	"Poincareplane": {"ℌ", false},
	"Popf": {"ℙ", false},
	"Pr": {"⪻", false},
	"Precedes": {"≺", false},
	"PrecedesEqual": {"⪯", false},
	"PrecedesSlantEqual": {"≼", false},
	"PrecedesTilde": {"≾", false},
	"Prime": {"″", false},
	"Product": {"∏", false},
	"Proportion": {"∷", false},
	"Proportional": {"∝", false},
	"Pscr": {"𝒫", false},
	"Psi": {"Ψ", false},
	"Qfr": {"𝔔", false},
	"Qopf": {"ℚ", false},
	"Qscr": {"𝒬", false},
	"RBarr": {"⤐", false},
	"Racute": {"Ŕ", false},
	"Rang": {"⟫", false},
	"Rarr": {"↠", false},
	"Rarrtl": {"⤖", false},
	"Rcaron": {"Ř", false},
	"Rcedil": {"Ŗ", false},
	"Rcy": {"Р", false},
	"Re": {"ℜ", false},
	"ReverseElement": {"∋", false},
	"ReverseEquilibrium": {"⇋", false},
	"ReverseUpEquilibrium": {"⥯", false},
	"Rfr": {"ℜ", false},
	"Rho": {"Ρ", false},
	"RightAngleBracket": {"⟩", false},
	"RightArrow": {"→", false},
	"RightArrowBar": {"⇥", false},
	"RightArrowLeftArrow": {"⇄", false},
	"RightCeiling": {"⌉", false},
	"RightDoubleBracket": {"⟧", false},
	"RightDownTeeVector": {"⥝", false},
	"RightDownVector": {"⇂", false},
	"RightDownVectorBar": {"⥕", false},
	"RightFloor": {"⌋", false},
	"RightTee": {"⊢", false},
	"RightTeeArrow": {"↦", false},
	"RightTeeVector": {"⥛", false},
	"RightTriangle": {"⊳", false},
	"RightTriangleBar": {"⧐", false},
	"RightTriangleEqual": {"⊵", false},
	"RightUpDownVector": {"⥏", false},
	"RightUpTeeVector": {"⥜", false},
	"RightUpVector": {"↾", false},
	"RightUpVectorBar": {"⥔", false},
	"RightVector": {"⇀", false},
	"RightVectorBar": {"⥓", false},
	"Rightarrow": {"⇒", false},
	"Ropf": {"ℝ", false},
	"RoundImplies": {"⥰", false},
	"Rrightarrow": {"⇛", false},
	"Rscr": {"ℛ", false},
	"Rsh": {"↱", false},
	"RuleDelayed": {"⧴", false},
	"SHCHcy": {"Щ", false},
	"SHcy": {"Ш", false},
	"SOFTcy": {"Ь", false},
	"Sacute": {"Ś", false},
	"Sc": {"⪼", false},
	"Scaron": {"Š", false},
	"Scedil": {"Ş", false},
	"Scirc": {"Ŝ", false},
	"Scy": {"С", false},
	"Sfr": {"𝔖", false},
	"ShortDownArrow": {"↓", false},
	"ShortLeftArrow": {"←", false},
	"ShortRightArrow": {"→", false},
	"ShortUpArrow": {"↑", false},
	"Sigma": {"Σ", false},
	"SmallCircle": {"∘", false},
	"Sopf": {"𝕊", false},
	"Sqrt": {"√", false},
	"Square": {"□", false},
	"SquareIntersection": {"⊓", false},
	"SquareSubset": {"⊏", false},
	"SquareSubsetEqual": {"⊑", false},
	"SquareSuperset": {"⊐", false},
	"SquareSupersetEqual": {"⊒", false},
	"SquareUnion": {"⊔", false},
	"Sscr": {"𝒮", false},
	"Star": {"⋆", false},
	"Sub": {"⋐", false},
	"Subset": {"⋐", false},
	"SubsetEqual": {"⊆", false},
	"Succeeds": {"≻", false},
	"SucceedsEqual": {"⪰", false},
	"SucceedsSlantEqual": {"≽", false},
	"SucceedsTilde": {"≿", false},
	"SuchThat": {"∋", false},
	"Sum": {"∑", false},
	"Sup": {"⋑", false},
	"Superset": {"⊃", false},
	"SupersetEqual": {"⊇", false},
	"Supset": {"⋑", false},
	"TRADE": {"™", false},
	"TSHcy": {"Ћ", false},
	"TScy": {"Ц", false},
	"Tab": {"\t", false},
	"Tau": {"Τ", false},
	"Tcaron": {"Ť", false},
	"Tcedil": {"Ţ", false},
	"Tcy": {"Т", false},
	"Tfr": {"𝔗", false},
	"Therefore": {"∴", false},
	"Theta": {"Θ", false},
	"ThinSpace": {" ", false},
	"Tilde": {"∼", false},
	"TildeEqual": {"≃", false},
	"TildeFullEqual": {"≅", false},
	"TildeTilde": {"≈", false},
	"Topf": {"𝕋", false},
	"TripleDot": {"⃛", false},
	"Tscr": {"𝒯", false},
	"Tstrok": {"Ŧ", false},
	"Uarr": {"↟", false},
	"Uarrocir": {"⥉", false},
	"Ubrcy": {"Ў", false},
	"Ubreve": {"Ŭ", false},
	"Ucy": {"У", false},
	"Udblac": {"Ű", false},
	"Ufr": {"𝔘", false},
	"Umacr": {"Ū", false},
	"UnderBar": {"_", false},
	"UnderBrace": {"⏟", false},
	"UnderBracket": {"⎵", false},
	"UnderParenthesis": {"⏝", false},
	"Union": {"⋃", false},
	"UnionPlus": {"⊎", false},
	"Uogon": {"Ų", false},
	"Uopf": {"𝕌", false},
	"UpArrow": {"↑", false},
	"UpArrowBar": {"⤒", false},
	"UpArrowDownArrow": {"⇅", false},
	"UpDownArrow": {"↕", false},
	"UpEquilibrium": {"⥮", false},
	"UpTee": {"⊥", false},
	"UpTeeArrow": {"↥", false},
	"Uparrow": {"⇑", false},
	"Updownarrow": {"⇕", false},
	"UpperLeftArrow": {"↖", false},
	"UpperRightArrow": {"↗", false},
	"Upsi": {"ϒ", false},
	"Upsilon": {"Υ", false},
	"Uring": {"Ů", false},
	"Uscr": {"𝒰", false},
	"Utilde": {"Ũ", false},
	"VDash": {"⊫", false},
	"Vbar": {"⫫", false},
	"Vcy": {"В", false},
	"Vdash": {"⊩", false},
	"Vdashl": {"⫦", false},
	"Vee": {"⋁", false},
	"Verbar": {"‖", false},
	"Vert": {"‖", false},
	"VerticalBar": {"∣", false},
	"VerticalLine": {"|", false},
	"VerticalSeparator": {"❘", false},
	"VerticalTilde": {"≀", false},
	"VeryThinSpace": {" ", false},
	"Vfr": {"𝔙", false},
	"Vopf": {"𝕍", false},
	"Vscr": {"𝒱", false},
	"Vvdash": {"⊪", false},
	"Wcirc": {"Ŵ", false},
	"Wedge": {"⋀", false},
	"Wfr": {"𝔚", false},
	"Wopf": {"𝕎", false},
	"Wscr": {"𝒲", false},
	"Xfr": {"𝔛", false},
	"Xi": {"Ξ", false},
	"Xopf": {"𝕏", false},
	"Xscr": {"𝒳", false},
	"YAcy": {"Я", false},
	"YIcy": {"Ї", false},
	"YUcy": {"Ю", false},
	"Ycirc": {"Ŷ", false},
	"Ycy": {"Ы", false},
	"Yfr": {"𝔜", false},
	"Yopf": {"𝕐", false},
	"Yscr": {"𝒴", false},
	"Yuml": {"Ÿ", false},
	"ZHcy": {"Ж", false},
	"Zacute": {"Ź", false},
	"Zcaron": {"Ž", false},
	"Zcy": {"З", false},
	"Zdot": {"Ż", false},
	"ZeroWidthSpace": {"​", false},
	"Zeta": {"Ζ", false},
	"Zfr": {"ℨ", false},
	"Zopf": {"ℤ", false},
	"Zscr": {"𝒵", false},
	"abreve": {"ă", false},
	"ac": {"∾", false},
	"acd": {"∿", false},
	"acy": {"а", false},
	"af": {"⁡", false},
	"afr": {"𝔞", false},
	"alefsym": {"ℵ", false},
	"aleph": {"ℵ", false},
	"alpha": {"α", false},
	"amacr": {"ā", false},
	"amalg": {"⨿", false},
	"and": {"∧", false},
	"andand": {"⩕", false},
	"andd": {"⩜", false},
	"andslope": {"⩘", false},
	"andv": {"⩚", false},
	"ang": {"∠", false},
	"ange": {"⦤", false},
	"angle": {"∠", false},
	"angmsd": {"∡", false},
	"angmsdaa": {"⦨", false},
	"angmsdab": {"⦩", false},
	"angmsdac": {"⦪", false},
	"angmsdad": {"⦫", false},
	"angmsdae": {"⦬", false},
	"angmsdaf": {"⦭", false},
	"angmsdag": {"⦮", false},
	"angmsdah": {"⦯", false},
	"angrt": {"∟", false},
	"angrtvb": {"⊾", false},
	"angrtvbd": {"⦝", false},
	"angsph": {"∢", false},
	"angst": {"Å", false},
	"angzarr": {"⍼", false},
	"aogon": {"ą", false},
	"aopf": {"𝕒", false},
	"ap": {"≈", false},
	"apE": {"⩰", false},
	"apacir": {"⩯", false},
	"ape": {"≊", false},
	"apid": {"≋", false},
	"apos": {"'", false},
	"approx": {"≈", false},
	"approxeq": {"≊", false},
	"ascr": {"𝒶", false},
	"ast": {"*", false},
	"asymp": {"≈", false},
	"asympeq": {"≍", false},
	"awconint": {"∳", false},
	"awint": {"⨑", false},
	"bNot": {"⫭", false},
	"backcong": {"≌", false},
	"backepsilon": {"϶", false},
	"backprime": {"‵", false},
	"backsim": {"∽", false},
	"backsimeq": {"⋍", false},
	"barvee": {"⊽", false},
	"barwed": {"⌅", false},
	"barwedge": {"⌅", false},
	"bbrk": {"⎵", false},
	"bbrktbrk": {"⎶", false},
	"bcong": {"≌", false},
	"bcy": {"б", false},
	"bdquo": {"„", false},
	"becaus": {"∵", false},
	"because": {"∵", false},
	"bemptyv": {"⦰", false},
	"bepsi": {"϶", false},
	"bernou": {"ℬ", false},
	"beta": {"β", false},
	"beth": {"ℶ", false},
	"between": {"≬", false},
	"bfr": {"𝔟", false},
	"bigcap": {"⋂", false},
	"bigcirc": {"◯", false},
	"bigcup": {"⋃", false},
	"bigodot": {"⨀", false},
	"bigoplus": {"⨁", false},
	"bigotimes": {"⨂", false},
	"bigsqcup": {"⨆", false},
	"bigstar": {"★", false},
	"bigtriangledown": {"▽", false},
	"bigtriangleup": {"△", false},
	"biguplus": {"⨄", false},
	"bigvee": {"⋁", false},
	"bigwedge": {"⋀", false},
	"bkarow": {"⤍", false},
	"blacklozenge": {"⧫", false},
	"blacksquare": {"▪", false},
	"blacktriangle": {"▴", false},
	"blacktriangledown": {"▾", false},
	"blacktriangleleft": {"◂", false},
	"blacktriangleright": {"▸", false},
	"blank": {"␣", false},
	"blk12": {"▒", false},
	"blk14": {"░", false},
	"blk34": {"▓", false},
	"block": {"█", false},
	"bnot": {"⌐", false},
	"bopf": {"𝕓", false},
	"bot": {"⊥", false},
	"bottom": {"⊥", false},
	"bowtie": {"⋈", false},
	"boxDL": {"╗", false},
	"boxDR": {"╔", false},
	"boxDl": {"╖", false},
	"boxDr": {"╓", false},
	"boxH": {"═", false},
	"boxHD": {"╦", false},
	"boxHU": {"╩", false},
	"boxHd": {"╤", false},
	"boxHu": {"╧", false},
	"boxUL": {"╝", false},
	"boxUR": {"╚", false},
	"boxUl": {"╜", false},
	"boxUr": {"╙", false},
	"boxV": {"║", false},
	"boxVH": {"╬", false},
	"boxVL": {"╣", false},
	"boxVR": {"╠", false},
	"boxVh": {"╫", false},
	"boxVl": {"╢", false},
	"boxVr": {"╟", false},
	"boxbox": {"⧉", false},
	"boxdL": {"╕", false},
	"boxdR": {"╒", false},
	"boxdl": {"┐", false},
	"boxdr": {"┌", false},
	"boxh": {"─", false},
	"boxhD": {"╥", false},
	"boxhU": {"╨", false},
	"boxhd": {"┬", false},
	"boxhu": {"┴", false},
	"boxminus": {"⊟", false},
	"boxplus": {"⊞", false},
	"boxtimes": {"⊠", false},
	"boxuL": {"╛", false},
	"boxuR": {"╘", false},
	"boxul": {"┘", false},
	"boxur": {"└", false},
	"boxv": {"│", false},
	"boxvH": {"╪", false},
	"boxvL": {"╡", false},
	"boxvR": {"╞", false},
	"boxvh": {"┼", false},
	"boxvl": {"┤", false},
	"boxvr": {"├", false},
	"bprime": {"‵", false},
	"breve": {"˘", false},
	"bscr": {"𝒷", false},
	"bsemi": {"⁏", false},
	"bsim": {"∽", false},
	"bsime": {"⋍", false},
	"bsol": {"\\", false},
	"bsolb": {"⧅", false},
	"bsolhsub": {"⟈", false},
	"bull": {"•", false},
	"bullet": {"•", false},
	"bump": {"≎", false},
	"bumpE": {"⪮", false},
	"bumpe": {"≏", false},
	"bumpeq": {"≏", false},
	"cacute": {"ć", false},
	"cap": {"∩", false},
	"capand": {"⩄", false},
	"capbrcup": {"⩉", false},
	"capcap": {"⩋", false},
	"capcup": {"⩇", false},
	"capdot": {"⩀", false},
	"caret": {"⁁", false},
	"caron": {"ˇ", false},
	"ccaps": {"⩍", false},
	"ccaron": {"č", false},
	"ccirc": {"ĉ", false},
	"ccups": {"⩌", false},
	"ccupssm": {"⩐", false},
	"cdot": {"ċ", false},
	"cemptyv": {"⦲", false},
	"centerdot": {"·", false},
	"cfr": {"𝔠", false},
	"chcy": {"ч", false},
	"check": {"✓", false},
	"checkmark": {"✓", false},
	"chi": {"χ", false},
	"cir": {"○", false},
	"cirE": {"⧃", false},
	"circ": {"ˆ", false},
	"circeq": {"≗", false},
	"circlearrowleft": {"↺", false},
	"circlearrowright": {"↻", false},
	"circledR": {"®", false},
	"circledS": {"Ⓢ", false},
	"circledast": {"⊛", false},
	"circledcirc": {"⊚", false},
	"circleddash": {"⊝", false},
	"cire": {"≗", false},
	"cirfnint": {"⨐", false},
	"cirmid": {"⫯", false},
	"cirscir": {"⧂", false},
	"clubs": {"♣", false},
	"clubsuit": {"♣", false},
	"colon": {":", false},
	"colone": {"≔", false},
	"coloneq": {"≔", false},
	"comma": {",", false},
	"commat": {"@", false},
	"comp": {"∁", false},
	"compfn": {"∘", false},
	"complement": {"∁", false},
	"complexes": {"ℂ", false},
	"cong": {"≅", false},
	"congdot": {"⩭", false},
	"conint": {"∮", false},
	"copf": {"𝕔", false},
	"coprod": {"∐", false},
	"copysr": {"℗", false},
	"crarr": {"↵", false},
	"cross": {"✗", false},
	"cscr": {"𝒸", false},
	"csub": {"⫏", false},
	"csube": {"⫑", false},
	"csup": {"⫐", false},
	"csupe": {"⫒", false},
	"ctdot": {"⋯", false},
	"cudarrl": {"⤸", false},
	"cudarrr": {"⤵", false},
	"cuepr": {"⋞", false},
	"cuesc": {"⋟", false},
	"cularr": {"↶", false},
	"cularrp": {"⤽", false},
	"cup": {"∪", false},
	"cupbrcap": {"⩈", false},
	"cupcap": {"⩆", false},
	"cupcup": {"⩊", false},
	"cupdot": {"⊍", false},
	"cupor": {"⩅", false},
	"curarr": {"↷", false},
	"curarrm": {"⤼", false},
	"curlyeqprec": {"⋞", false},
	"curlyeqsucc": {"⋟", false},
	"curlyvee": {"⋎", false},
	"curlywedge": {"⋏", false},
	"curvearrowleft": {"↶", false},
	"curvearrowright": {"↷", false},
	"cuvee": {"⋎", false},
	"cuwed": {"⋏", false},
	"cwconint": {"∲", false},
	"cwint": {"∱", false},
	"cylcty": {"⌭", false},
	"dArr": {"⇓", false},
	"dHar": {"⥥", false},
	"dagger": {"†", false},
	"daleth": {"ℸ", false},
	"darr": {"↓", false},
	"dash": {"‐", false},
	"dashv": {"⊣", false},
	"dbkarow": {"⤏", false},
	"dblac": {"˝", false},
	"dcaron": {"ď", false},
	"dcy": {"д", false},
	"dd": {"ⅆ", false},
	"ddagger": {"‡", false},
	"ddarr": {"⇊", false},
	"ddotseq": {"⩷", false},
	"delta": {"δ", false},
	"demptyv": {"⦱", false},
	"dfisht": {"⥿", false},
	"dfr": {"𝔡", false},
	"dharl": {"⇃", false},
	"dharr": {"⇂", false},
	"diam": {"⋄", false},
	"diamond": {"⋄", false},
	"diamondsuit": {"♦", false},
	"diams": {"♦", false},
	"die": {"¨", false},
	"digamma": {"ϝ", false},
	"disin": {"⋲", false},
	"div": {"÷", false},
	"divideontimes": {"⋇", false},
	"divonx": {"⋇", false},
	"djcy": {"ђ", false},
	"dlcorn": {"⌞", false},
	"dlcrop": {"⌍", false},
	"dollar": {"$", false},
	"dopf": {"𝕕", false},
	"dot": {"˙", false},
	"doteq": {"≐", false},
	"doteqdot": {"≑", false},
	"dotminus": {"∸", false},
	"dotplus": {"∔", false},
	"dotsquare": {"⊡", false},
	"doublebarwedge": {"⌆", false},
	"downarrow": {"↓", false},
	"downdownarrows": {"⇊", false},
	"downharpoonleft": {"⇃", false},
	"downharpoonright": {"⇂", false},
	"drbkarow": {"⤐", false},
	"drcorn": {"⌟", false},
	"drcrop": {"⌌", false},
	"dscr": {"𝒹", false},
	"dscy": {"ѕ", false},
	"dsol": {"⧶", false},
	"dstrok": {"đ", false},
	"dtdot": {"⋱", false},
	"dtri": {"▿", false},
	"dtrif": {"▾", false},
	"duarr": {"⇵", false},
	"duhar": {"⥯", false},
	"dwangle": {"⦦", false},
	"dzcy": {"џ", false},
	"dzigrarr": {"⟿", false},
	"eDDot": {"⩷", false},
	"eDot": {"≑", false},
	"easter": {"⩮", false},
	"ecaron": {"ě", false},
	"ecir": {"≖", false},
	"ecolon": {"≕", false},
	"ecy": {"э", false},
	"edot": {"ė", false},
	"ee": {"ⅇ", false},
	"efDot": {"≒", false},
	"efr": {"𝔢", false},
	"eg": {"⪚", false},
	"egs": {"⪖", false},
	"egsdot": {"⪘", false},
	"el": {"⪙", false},
	"elinters": {"⏧", false},
	"ell": {"ℓ", false},
	"els": {"⪕", false},
	"elsdot": {"⪗", false},
	"emacr": {"ē", false},
	"empty": {"∅", false},
	"emptyset": {"∅", false},
	"emptyv": {"∅", false},
	"emsp": {" ", false},
	"emsp13": {" ", false},
	"emsp14": {" ", false},
	"eng": {"ŋ", false},
	"ensp": {" ", false},
	"eogon": {"ę", false},
	"eopf": {"𝕖", false},
	"epar": {"⋕", false},
	"eparsl": {"⧣", false},
	"eplus": {"⩱", false},
	"epsi": {"ε", false},
	"epsilon": {"ε", false},
	"epsiv": {"ϵ", false},
	"eqcirc": {"≖", false},
	"eqcolon": {"≕", false},
	"eqsim": {"≂", false},
	"eqslantgtr": {"⪖", false},
	"eqslantless": {"⪕", false},
	"equals": {"=", false},
	"equest": {"≟", false},
	"equiv": {"≡", false},
	"equivDD": {"⩸", false},
	"eqvparsl": {"⧥", false},
	"erDot": {"≓", false},
	"erarr": {"⥱", false},
	"escr": {"ℯ", false},
	"esdot": {"≐", false},
	"esim": {"≂", false},
	"eta": {"η", false},
	"euro": {"€", false},
	"excl": {"!", false},
	"exist": {"∃", false},
	"expectation": {"ℰ", false},
	"exponentiale": {"ⅇ", false},
	"fallingdotseq": {"≒", false},
	"fcy": {"ф", false},
	"female": {"♀", false},
	"ffilig": {"ﬃ", false},
	"fflig": {"ﬀ", false},
	"ffllig": {"ﬄ", false},
	"ffr": {"𝔣", false},
	"filig": {"ﬁ", false},
	"flat": {"♭", false},
	"fllig": {"ﬂ", false},
	"fltns": {"▱", false},
	"fnof": {"ƒ", false},
	"fopf": {"𝕗", false},
	"forall": {"∀", false},
	"fork": {"⋔", false},
	"forkv": {"⫙", false},
	"fpartint": {"⨍", false},
	"frac13": {"⅓", false},
	"frac15": {"⅕", false},
	"frac16": {"⅙", false},
	"frac18": {"⅛", false},
	"frac23": {"⅔", false},
	"frac25": {"⅖", false},
	"frac35": {"⅗", false},
	"frac38": {"⅜", false},
	"frac45": {"⅘", false},
	"frac56": {"⅚", false},
	"frac58": {"⅝", false},
	"frac78": {"⅞", false},
	"frasl": {"⁄", false},
	"frown": {"⌢", false},
	"fscr": {"𝒻", false},
	"gE": {"≧", false},
	"gEl": {"⪌", false},
	"gacute": {"ǵ", false},
	"gamma": {"γ", false},
	"gammad": {"ϝ", false},
	"gap": {"⪆", false},
	"gbreve": {"ğ", false},
	"gcirc": {"ĝ", false},
	"gcy": {"г", false},
	"gdot": {"ġ", false},
	"ge": {"≥", false},
	"gel": {"⋛", false},
	"geq": {"≥", false},
	"geqq": {"≧", false},
	"geqslant": {"⩾", false},
	"ges": {"⩾", false},
	"gescc": {"⪩", false},
	"gesdot": {"⪀", false},
	"gesdoto": {"⪂", false},
	"gesdotol": {"⪄", false},
	"gesles": {"⪔", false},
	"gfr": {"𝔤", false},
	"gg": {"≫", false},
	"ggg": {"⋙", false},
	"gimel": {"ℷ", false},
	"gjcy": {"ѓ", false},
	"gl": {"≷", false},
	"glE": {"⪒", false},
	"gla": {"⪥", false},
	"glj": {"⪤", false},
	"gnE": {"≩", false},
	"gnap": {"⪊", false},
	"gnapprox": {"⪊", false},
	"gne": {"⪈", false},
	"gneq": {"⪈", false},
	"gneqq": {"≩", false},
	"gnsim": {"⋧", false},
	"gopf": {"𝕘", false},
	"grave": {"`", false},
	"gscr": {"ℊ", false},
	"gsim": {"≳", false},
	"gsime": {"⪎", false},
	"gsiml": {"⪐", false},
	"gtcc": {"⪧", false},
	"gtcir": {"⩺", false},
	"gtdot": {"⋗", false},
	"gtlPar": {"⦕", false},
	"gtquest": {"⩼", false},
	"gtrapprox": {"⪆", false},
	"gtrarr": {"⥸", false},
	"gtrdot": {"⋗", false},
	"gtreqless": {"⋛", false},
	"gtreqqless": {"⪌", false},
	"gtrless": {"≷", false},
	"gtrsim": {"≳", false},
	"hArr": {"⇔", false},
	"hairsp": {" ", false},
	"half": {"½", false},
	"hamilt": {"ℋ", false},
	"hardcy": {"ъ", false},
	"harr": {"↔", false},
	"harrcir": {"⥈", false},
	"harrw": {"↭", false},
	"hbar": {"ℏ", false},
	"hcirc": {"ĥ", false},
	"hearts": {"♥", false},
	"heartsuit": {"♥", false},
	"hellip": {"…", false},
	"hercon": {"⊹", false},
	"hfr": {"𝔥", false},
	"hksearow": {"⤥", false},
	"hkswarow": {"⤦", false},
	"hoarr": {"⇿", false},
	"homtht": {"∻", false},
	"hookleftarrow": {"↩", false},
	"hookrightarrow": {"↪", false},
	"hopf": {"𝕙", false},
	"horbar": {"―", false},
	"hscr": {"𝒽", false},
	"hslash": {"ℏ", false},
	"hstrok": {"ħ", false},
	"hybull": {"⁃", false},
	"hyphen": {"‐", false},
	"ic": {"⁣", false},
	"icy": {"и", false},
	"iecy": {"е", false},
	"iff": {"⇔", false},
	"ifr": {"𝔦", false},
	"ii": {"ⅈ", false},
	"iiiint": {"⨌", false},
	"iiint": {"∭", false},
	"iinfin": {"⧜", false},
	"iiota": {"℩", false},
	"ijlig": {"ĳ", false},
	"imacr": {"ī", false},
	"image": {"ℑ", false},
	"imagline": {"ℐ", false},
	"imagpart": {"ℑ", false},
	"imath": {"ı", false},
	"imof": {"⊷", false},
	"imped": {"Ƶ", false},
	"in": {"∈", false},
	"incare": {"℅", false},
	"infin": {"∞", false},
	"infintie": {"⧝", false},
	"inodot": {"ı", false},
	"int": {"∫", false},
	"intcal": {"⊺", false},
	"integers": {"ℤ", false},
	"intercal": {"⊺", false},
	"intlarhk": {"⨗", false},
	"intprod": {"⨼", false},
	"iocy": {"ё", false},
	"iogon": {"į", false},
	"iopf": {"𝕚", false},
	"iota": {"ι", false},
	"iprod": {"⨼", false},
	"iscr": {"𝒾", false},
	"isin": {"∈", false},
	"isinE": {"⋹", false},
	"isindot": {"⋵", false},
	"isins": {"⋴", false},
	"isinsv": {"⋳", false},
	"isinv": {"∈", false},
	"it": {"⁢", false},
	"itilde": {"ĩ", false},
	"iukcy": {"і", false},
	"jcirc": {"ĵ", false},
	"jcy": {"й", false},
	"jfr": {"𝔧", false},
	"jmath": {"ȷ", false},
	"jopf": {"𝕛", false},
	"jscr": {"𝒿", false},
	"jsercy": {"ј", false},
	"jukcy": {"є", false},
	"kappa": {"κ", false},
	"kappav": {"ϰ", false},
	"kcedil": {"ķ", false},
	"kcy": {"к", false},
	"kfr": {"𝔨", false},
	"kgreen": {"ĸ", false},
	"khcy": {"х", false},
	"kjcy": {"ќ", false},
	"kopf": {"𝕜", false},
	"kscr": {"𝓀", false},
	"lAarr": {"⇚", false},
	"lArr": {"⇐", false},
	"lAtail": {"⤛", false},
	"lBarr": {"⤎", false},
	"lE": {"≦", false},
	"lEg": {"⪋", false},
	"lHar": {"⥢", false},
	"lacute": {"ĺ", false},
	"laemptyv": {"⦴", false},
	"lagran": {"ℒ", false},
	"lambda": {"λ", false},
	"lang": {"⟨", false},
	"langd": {"⦑", false},
	"langle": {"⟨", false},
	"lap": {"⪅", false},
	"larr": {"←", false},
	"larrb": {"⇤", false},
	"larrbfs": {"⤟", false},
	"larrfs": {"⤝", false},
	"larrhk": {"↩", false},
	"larrlp": {"↫", false},
	"larrpl": {"⤹", false},
	"larrsim": {"⥳", false},
	"larrtl": {"↢", false},
	"lat": {"⪫", false},
	"latail": {"⤙", false},
	"late": {"⪭", false},
	"lbarr": {"⤌", false},
	"lbbrk": {"❲", false},
	"lbrace": {"{", false},
	"lbrack": {"[", false},
	"lbrke": {"⦋", false},
	"lbrksld": {"⦏", false},
	"lbrkslu": {"⦍", false},
	"lcaron": {"ľ", false},
	"lcedil": {"ļ", false},
	"lceil": {"⌈", false},
	"lcub": {"{", false},
	"lcy": {"л", false},
	"ldca": {"⤶", false},
	"ldquo": {"“", false},
	"ldquor": {"„", false},
	"ldrdhar": {"⥧", false},
	"ldrushar": {"⥋", false},
	"ldsh": {"↲", false},
	"le": {"≤", false},
	"leftarrow": {"←", false},
	"leftarrowtail": {"↢", false},
	"leftharpoondown": {"↽", false},
	"leftharpoonup": {"↼", false},
	"leftleftarrows": {"⇇", false},
	"leftrightarrow": {"↔", false},
	"leftrightarrows": {"⇆", false},
	"leftrightharpoons": {"⇋", false},
	"leftrightsquigarrow": {"↭", false},
	"leftthreetimes": {"⋋", false},
	"leg": {"⋚", false},
	"leq": {"≤", false},
	"leqq": {"≦", false},
	"leqslant": {"⩽", false},
	"les": {"⩽", false},
	"lescc": {"⪨", false},
	"lesdot": {"⩿", false},
	"lesdoto": {"⪁", false},
	"lesdotor": {"⪃", false},
	"lesges": {"⪓", false},
	"lessapprox": {"⪅", false},
	"lessdot": {"⋖", false},
	"lesseqgtr": {"⋚", false},
	"lesseqqgtr": {"⪋", false},
	"lessgtr": {"≶", false},
	"lesssim": {"≲", false},
	"lfisht": {"⥼", false},
	"lfloor": {"⌊", false},
	"lfr": {"𝔩", false},
	"lg": {"≶", false},
	"lgE": {"⪑", false},
	"lhard": {"↽", false},
	"lharu": {"↼", false},
	"lharul": {"⥪", false},
	"lhblk": {"▄", false},
	"ljcy": {"љ", false},
	"ll": {"≪", false},
	"llarr": {"⇇", false},
	"llcorner": {"⌞", false},
	"llhard": {"⥫", false},
	"lltri": {"◺", false},
	"lmidot": {"ŀ", false},
	"lmoust": {"⎰", false},
	"lmoustache": {"⎰", false},
	"lnE": {"≨", false},
	"lnap": {"⪉", false},
	"lnapprox": {"⪉", false},
	"lne": {"⪇", false},
	"lneq": {"⪇", false},
	"lneqq": {"≨", false},
	"lnsim": {"⋦", false},
	"loang": {"⟬", false},
	"loarr": {"⇽", false},
	"lobrk": {"⟦", false},
	"longleftarrow": {"⟵", false},
	"longleftrightarrow": {"⟷", false},
	"longmapsto": {"⟼", false},
	"longrightarrow": {"⟶", false},
	"looparrowleft": {"↫", false},
	"looparrowright": {"↬", false},
	"lopar": {"⦅", false},
	"lopf": {"𝕝", false},
	"loplus": {"⨭", false},
	"lotimes": {"⨴", false},
	"lowast": {"∗", false},
	"lowbar": {"_", false},
	"loz": {"◊", false},
	"lozenge": {"◊", false},
	"lozf": {"⧫", false},
	"lpar": {"(", false},
	"lparlt": {"⦓", false},
	"lrarr": {"⇆", false},
	"lrcorner": {"⌟", false},
	"lrhar": {"⇋", false},
	"lrhard": {"⥭", false},
	"lrm": {"‎", false},
	"lrtri": {"⊿", false},
	"lsaquo": {"‹", false},
	"lscr": {"𝓁", false},
	"lsh": {"↰", false},
	"lsim": {"≲", false},
	"lsime": {"⪍", false},
	"lsimg": {"⪏", false},
	"lsqb": {"[", false},
	"lsquo": {"‘", false},
	"lsquor": {"‚", false},
	"lstrok": {"ł", false},
	"ltcc": {"⪦", false},
	"ltcir": {"⩹", false},
	"ltdot": {"⋖", false},
	"lthree": {"⋋", false},
	"ltimes": {"⋉", false},
	"ltlarr": {"⥶", false},
	"ltquest": {"⩻", false},
	"ltrPar": {"⦖", false},
	"ltri": {"◃", false},
	"ltrie": {"⊴", false},
	"ltrif": {"◂", false},
	"lurdshar": {"⥊", false},
	"luruhar": {"⥦", false},
	"mDDot": {"∺", false},
	"male": {"♂", false},
	"malt": {"✠", false},
	"maltese": {"✠", false},
	"map": {"↦", false},
	"mapsto": {"↦", false},
	"mapstodown": {"↧", false},
	"mapstoleft": {"↤", false},
	"mapstoup": {"↥", false},
	"marker": {"▮", false},
	"mcomma": {"⨩", false},
	"mcy": {"м", false},
	"mdash": {"—", false},
	"measuredangle": {"∡", false},
	"mfr": {"𝔪", false},
	"mho": {"℧", false},
	"mid": {"∣", false},
	"midast": {"*", false},
	"midcir": {"⫰", false},
	"minus": {"−", false},
	"minusb": {"⊟", false},
	"minusd": {"∸", false},
	"minusdu": {"⨪", false},
	"mlcp": {"⫛", false},
	"mldr": {"…", false},
	"mnplus": {"∓", false},
	"models": {"⊧", false},
	"mopf": {"𝕞", false},
	"mp": {"∓", false},
	"mscr": {"𝓂", false},
	"mstpos": {"∾", false},
	"mu": {"μ", false},
	"multimap": {"⊸", false},
	"mumap": {"⊸", false},
	"nLeftarrow": {"⇍", false},
	"nLeftrightarrow": {"⇎", false},
	"nRightarrow": {"⇏", false},
	"nVDash": {"⊯", false},
	"nVdash": {"⊮", false},
	"nabla": {"∇", false},
	"nacute": {"ń", false},
	"nap": {"≉", false},
	"napos": {"ŉ", false},
	"napprox": {"≉", false},
	"natur": {"♮", false},
	"natural": {"♮", false},
	"naturals": {"ℕ", false},
	"ncap": {"⩃", false},
	"ncaron": {"ň", false},
	"ncedil": {"ņ", false},
	"ncong": {"≇", false},
	"ncup": {"⩂", false},
	"ncy": {"н", false},
	"ndash": {"–", false},
	"ne": {"≠", false},
	"neArr": {"⇗", false},
	"nearhk": {"⤤", false},
	"nearr": {"↗", false},
	"nearrow": {"↗", false},
	"nequiv": {"≢", false},
	"nesear": {"⤨", false},
	"nexist": {"∄", false},
	"nexists": {"∄", false},
	"nfr": {"𝔫", false},
	"nge": {"≱", false},
	"ngeq": {"≱", false},
	"ngsim": {"≵", false},
	"ngt": {"≯", false},
	"ngtr": {"≯", false},
	"nhArr": {"⇎", false},
	"nharr": {"↮", false},
	"nhpar": {"⫲", false},
	"ni": {"∋", false},
	"nis": {"⋼", false},
	"nisd": {"⋺", false},
	"niv": {"∋", false},
	"njcy": {"њ", false},
	"nlArr": {"⇍", false},
	"nlarr": {"↚", false},
	"nldr": {"‥", false},
	"nle": {"≰", false},
	"nleftarrow": {"↚", false},
	"nleftrightarrow": {"↮", false},
	"nleq": {"≰", false},
	"nless": {"≮", false},
	"nlsim": {"≴", false},
	"nlt": {"≮", false},
	"nltri": {"⋪", false},
	"nltrie": {"⋬", false},
	"nmid": {"∤", false},
	"nopf": {"𝕟", false},
	"notin": {"∉", false},
	"notinva": {"∉", false},
	"notinvb": {"⋷", false},
	"notinvc": {"⋶", false},
	"notni": {"∌", false},
	"notniva": {"∌", false},
	"notnivb": {"⋾", false},
	"notnivc": {"⋽", false},
	"npar": {"∦", false},
	"nparallel": {"∦", false},
	"npolint": {"⨔", false},
	"npr": {"⊀", false},
	"nprcue": {"⋠", false},
	"nprec": {"⊀", false},
	"nrArr": {"⇏", false},
	"nrarr": {"↛", false},
	"nrightarrow": {"↛", false},
	"nrtri": {"⋫", false},
	"nrtrie": {"⋭", false},
	"nsc": {"⊁", false},
	"nsccue": {"⋡", false},
	"nscr": {"𝓃", false},
	"nshortmid": {"∤", false},
	"nshortparallel": {"∦", false},
	"nsim": {"≁", false},
	"nsime": {"≄", false},
	"nsimeq": {"≄", false},
	"nsmid": {"∤", false},
	"nspar": {"∦", false},
	"nsqsube": {"⋢", false},
	"nsqsupe": {"⋣", false},
	"nsub": {"⊄", false},
	"nsube": {"⊈", false},
	"nsubseteq": {"⊈", false},
	"nsucc": {"⊁", false},
	"nsup": {"⊅", false},
	"nsupe": {"⊉", false},
	"nsupseteq": {"⊉", false},
	"ntgl": {"≹", false},
	"ntlg": {"≸", false},
	"ntriangleleft": {"⋪", false},
	"ntrianglelefteq": {"⋬", false},
	"ntriangleright": {"⋫", false},
	"ntrianglerighteq": {"⋭", false},
	"nu": {"ν", false},
	"num": {"#", false},
	"numero": {"№", false},
	"numsp": {" ", false},
	"nvDash": {"⊭", false},
	"nvHarr": {"⤄", false},
	"nvdash": {"⊬", false},
	"nvinfin": {"⧞", false},
	"nvlArr": {"⤂", false},
	"nvrArr": {"⤃", false},
	"nwArr": {"⇖", false},
	"nwarhk": {"⤣", false},
	"nwarr": {"↖", false},
	"nwarrow": {"↖", false},
	"nwnear": {"⤧", false},
	"oS": {"Ⓢ", false},
	"oast": {"⊛", false},
	"ocir": {"⊚", false},
	"ocy": {"о", false},
	"odash": {"⊝", false},
	"odblac": {"ő", false},
	"odiv": {"⨸", false},
	"odot": {"⊙", false},
	"odsold": {"⦼", false},
	"oelig": {"œ", false},
	"ofcir": {"⦿", false},
	"ofr": {"𝔬", false},
	"ogon": {"˛", false},
	"ogt": {"⧁", false},
	"ohbar": {"⦵", false},
	"ohm": {"Ω", false},
	"oint": {"∮", false},
	"olarr": {"↺", false},
	"olcir": {"⦾", false},
	"olcross": {"⦻", false},
	"oline": {"‾", false},
	"olt": {"⧀", false},
	"omacr": {"ō", false},
	"omega": {"ω", false},
	"omicron": {"ο", false},
	"omid": {"⦶", false},
	"ominus": {"⊖", false},
	"oopf": {"𝕠", false},
	"opar": {"⦷", false},
	"operp": {"⦹", false},
	"oplus": {"⊕", false},
	"or": {"∨", false},
	"orarr": {"↻", false},
	"ord": {"⩝", false},
	"order": {"ℴ", false},
	"orderof": {"ℴ", false},
	"origof": {"⊶", false},
	"oror": {"⩖", false},
	"orslope": {"⩗", false},
	"orv": {"⩛", false},
	"oscr": {"ℴ", false},
	"osol": {"⊘", false},
	"otimes": {"⊗", false},
	"otimesas": {"⨶", false},
	"ovbar": {"⌽", false},
	"par": {"∥", false},
	"parallel": {"∥", false},
	"parsim": {"⫳", false},
	"parsl": {"⫽", false},
	"part": {"∂", false},
	"pcy": {"п", false},
	"percnt": {"%", false},
	"period": {".", false},
	"permil": {"‰", false},
	"perp": {"⊥", false},
	"pertenk": {"‱", false},
	"pfr": {"𝔭", false},
	"phi": {"φ", false},
	"phiv": {"ϕ", false},
	"phmmat": {"ℳ", false},
	"phone": {"☎", false},
	"pi": {"π", false},
	"pitchfork": {"⋔", false},
	"piv": {"ϖ", false},
	"planck": {"ℏ", false},
	"planckh": {"ℎ", false},
	"plankv": {"ℏ", false},
	"plus": {"+", false},
	"plusacir": {"⨣", false},
	"plusb": {"⊞", false},
	"pluscir": {"⨢", false},
	"plusdo": {"∔", false},
	"plusdu": {"⨥", false},
	"pluse": {"⩲", false},
	"plussim": {"⨦", false},
	"plustwo": {"⨧", false},
	"pm": {"±", false},
	"pointint": {"⨕", false},
	"popf": {"𝕡", false},
	"pr": {"≺", false},
	"prE": {"⪳", false},
	"prap": {"⪷", false},
	"prcue": {"≼", false},
	"pre": {"⪯", false},
	"prec": {"≺", false},
	"precapprox": {"⪷", false},
	"preccurlyeq": {"≼", false},
	"preceq": {"⪯", false},
	"precnapprox": {"⪹", false},
	"precneqq": {"⪵", false},
	"precnsim": {"⋨", false},
	"precsim": {"≾", false},
	"prime": {"′", false},
	"primes": {"ℙ", false},
	"prnE": {"⪵", false},
	"prnap": {"⪹", false},
	"prnsim": {"⋨", false},
	"prod": {"∏", false},
	"profalar": {"⌮", false},
	"profline": {"⌒", false},
	"profsurf": {"⌓", false},
	"prop": {"∝", false},
	"propto": {"∝", false},
	"prsim": {"≾", false},
	"prurel": {"⊰", false},
	"pscr": {"𝓅", false},
	"psi": {"ψ", false},
	"puncsp": {" ", false},
	"qfr": {"𝔮", false},
	"qint": {"⨌", false},
	"qopf": {"𝕢", false},
	"qprime": {"⁗", false},
	"qscr": {"𝓆", false},
	"quaternions": {"ℍ", false},
	"quatint": {"⨖", false},
	"quest": {"?", false},
	"questeq": {"≟", false},
	"rAarr": {"⇛", false},
	"rArr": {"⇒", false},
	"rAtail": {"⤜", false},
	"rBarr": {"⤏", false},
	"rHar": {"⥤", false},
	"racute": {"ŕ", false},
	"radic": {"√", false},
	"raemptyv": {"⦳", false},
	"rang": {"⟩", false},
	"rangd": {"⦒", false},
	"range": {"⦥", false},
	"rangle": {"⟩", false},
	"rarr": {"→", false},
	"rarrap": {"⥵", false},
	"rarrb": {"⇥", false},
	"rarrbfs": {"⤠", false},
	"rarrc": {"⤳", false},
	"rarrfs": {"⤞", false},
	"rarrhk": {"↪", false},
	"rarrlp": {"↬", false},
	"rarrpl": {"⥅", false},
	"rarrsim": {"⥴", false},
	"rarrtl": {"↣", false},
	"rarrw": {"↝", false},
	"ratail": {"⤚", false},
	"ratio": {"∶", false},
	"rationals": {"ℚ", false},
	"rbarr": {"⤍", false},
	"rbbrk": {"❳", false},
	"rbrace": {"}", false},
	"rbrack": {"]", false},
	"rbrke": {"⦌", false},
	"rbrksld": {"⦎", false},
	"rbrkslu": {"⦐", false},
	"rcaron": {"ř", false},
	"rcedil": {"ŗ", false},
	"rceil": {"⌉", false},
	"rcub": {"}", false},
	"rcy": {"р", false},
	"rdca": {"⤷", false},
	"rdldhar": {"⥩", false},
	"rdquo": {"”", false},
	"rdquor": {"”", false},
	"rdsh": {"↳", false},
	"real": {"ℜ", false},
	"realine": {"ℛ", false},
	"realpart": {"ℜ", false},
	"reals": {"ℝ", false},
	"rect": {"▭", false},
	"rfisht": {"⥽", false},
	"rfloor": {"⌋", false},
	"rfr": {"𝔯", false},
	"rhard": {"⇁", false},
	"rharu": {"⇀", false},
	"rharul": {"⥬", false},
	"rho": {"ρ", false},
	"rhov": {"ϱ", false},
	"rightarrow": {"→", false},
	"rightarrowtail": {"↣", false},
	"rightharpoondown": {"⇁", false},
	"rightharpoonup": {"⇀", false},
	"rightleftarrows": {"⇄", false},
	"rightleftharpoons": {"⇌", false},
	"rightrightarrows": {"⇉", false},
	"rightsquigarrow": {"↝", false},
	"rightthreetimes": {"⋌", false},
	"ring": {"˚", false},
	"risingdotseq": {"≓", false},
	"rlarr": {"⇄", false},
	"rlhar": {"⇌", false},
	"rlm": {"‏", false},
	"rmoust": {"⎱", false},
	"rmoustache": {"⎱", false},
	"rnmid": {"⫮", false},
	"roang": {"⟭", false},
	"roarr": {"⇾", false},
	"robrk": {"⟧", false},
	"ropar": {"⦆", false},
	"ropf": {"𝕣", false},
	"roplus": {"⨮", false},
	"rotimes": {"⨵", false},
	"rpar": {")", false},
	"rpargt": {"⦔", false},
	"rppolint": {"⨒", false},
	"rrarr": {"⇉", false},
	"rsaquo": {"›", false},
	"rscr": {"𝓇", false},
	"rsh": {"↱", false},
	"rsqb": {"]", false},
	"rsquo": {"’", false},
	"rsquor": {"’", false},
	"rthree": {"⋌", false},
	"rtimes": {"⋊", false},
	"rtri": {"▹", false},
	"rtrie": {"⊵", false},
	"rtrif": {"▸", false},
	"rtriltri": {"⧎", false},
	"ruluhar": {"⥨", false},
	"rx": {"℞", false},
	"sacute": {"ś", false},
	"sbquo": {"‚", false},
	"sc": {"≻", false},
	"scE": {"⪴", false},
	"scap": {"⪸", false},
	"scaron": {"š", false},
	"sccue": {"≽", false},
	"sce": {"⪰", false},
	"scedil": {"ş", false},
	"scirc": {"ŝ", false},
	"scnE": {"⪶", false},
	"scnap": {"⪺", false},
	"scnsim": {"⋩", false},
	"scpolint": {"⨓", false},
	"scsim": {"≿", false},
	"scy": {"с", false},
	"sdot": {"⋅", false},
	"sdotb": {"⊡", false},
	"sdote": {"⩦", false},
	"seArr": {"⇘", false},
	"searhk": {"⤥", false},
	"searr": {"↘", false},
	"searrow": {"↘", false},
	"semi": {";", false},
	"seswar": {"⤩", false},
	"setminus": {"∖", false},
	"setmn": {"∖", false},
	"sext": {"✶", false},
	"sfr": {"𝔰", false},
	"sfrown": {"⌢", false},
	"sharp": {"♯", false},
	"shchcy": {"щ", false},
	"shcy": {"ш", false},
	"shortmid": {"∣", false},
	"shortparallel": {"∥", false},
	"sigma": {"σ", false},
	"sigmaf": {"ς", false},
	"sigmav": {"ς", false},
	"sim": {"∼", false},
	"simdot": {"⩪", false},
	"sime": {"≃", false},
	"simeq": {"≃", false},
	"simg": {"⪞", false},
	"simgE": {"⪠", false},
	"siml": {"⪝", false},
	"simlE": {"⪟", false},
	"simne": {"≆", false},
	"simplus": {"⨤", false},
	"simrarr": {"⥲", false},
	"slarr": {"←", false},
	"smallsetminus": {"∖", false},
	"smashp": {"⨳", false},
	"smeparsl": {"⧤", false},
	"smid": {"∣", false},
	"smile": {"⌣", false},
	"smt": {"⪪", false},
	"smte": {"⪬", false},
	"softcy": {"ь", false},
	"sol": {"/", false},
	"solb": {"⧄", false},
	"solbar": {"⌿", false},
	"sopf": {"𝕤", false},
	"spades": {"♠", false},
	"spadesuit": {"♠", false},
	"spar": {"∥", false},
	"sqcap": {"⊓", false},
	"sqcup": {"⊔", false},
	"sqsub": {"⊏", false},
	"sqsube": {"⊑", false},
	"sqsubset": {"⊏", false},
	"sqsubseteq": {"⊑", false},
	"sqsup": {"⊐", false},
	"sqsupe": {"⊒", false},
	"sqsupset": {"⊐", false},
	"sqsupseteq": {"⊒", false},
	"squ": {"□", false},
	"square": {"□", false},
	"squarf": {"▪", false},
	"squf": {"▪", false},
	"srarr": {"→", false},
	"sscr": {"𝓈", false},
	"ssetmn": {"∖", false},
	"ssmile": {"⌣", false},
	"sstarf": {"⋆", false},
	"star": {"☆", false},
	"starf": {"★", false},
	"straightepsilon": {"ϵ", false},
	"straightphi": {"ϕ", false},
	"strns": {"¯", false},
	"sub": {"⊂", false},
	"subE": {"⫅", false},
	"subdot": {"⪽", false},
	"sube": {"⊆", false},
	"subedot": {"⫃", false},
	"submult": {"⫁", false},
	"subnE": {"⫋", false},
	"subne": {"⊊", false},
	"subplus": {"⪿", false},
	"subrarr": {"⥹", false},
	"subset": {"⊂", false},
	"subseteq": {"⊆", false},
	"subseteqq": {"⫅", false},
	"subsetneq": {"⊊", false},
	"subsetneqq": {"⫋", false},
	"subsim": {"⫇", false},
	"subsub": {"⫕", false},
	"subsup": {"⫓", false},
	"succ": {"≻", false},
	"succapprox": {"⪸", false},
	"succcurlyeq": {"≽", false},
	"succeq": {"⪰", false},
	"succnapprox": {"⪺", false},
	"succneqq": {"⪶", false},
	"succnsim": {"⋩", false},
	"succsim": {"≿", false},
	"sum": {"∑", false},
	"sung": {"♪", false},
	"sup": {"⊃", false},
	"supE": {"⫆", false},
	"supdot": {"⪾", false},
	"supdsub": {"⫘", false},
	"supe": {"⊇", false},
	"supedot": {"⫄", false},
	"suphsol": {"⟉", false},
	"suphsub": {"⫗", false},
	"suplarr": {"⥻", false},
	"supmult": {"⫂", false},
	"supnE": {"⫌", false},
	"supne": {"⊋", false},
	"supplus": {"⫀", false},
	"supset": {"⊃", false},
	"supseteq": {"⊇", false},
	"supseteqq": {"⫆", false},
	"supsetneq": {"⊋", false},
	"supsetneqq": {"⫌", false},
	"supsim": {"⫈", false},
	"supsub": {"⫔", false},
	"supsup": {"⫖", false},
	"swArr": {"⇙", false},
	"swarhk": {"⤦", false},
	"swarr": {"↙", false},
	"swarrow": {"↙", false},
	"swnwar": {"⤪", false},
	"target": {"⌖", false},
	"tau": {"τ", false},
	"tbrk": {"⎴", false},
	"tcaron": {"ť", false},
	"tcedil": {"ţ", false},
	"tcy": {"т", false},
	"tdot": {"⃛", false},
	"telrec": {"⌕", false},
	"tfr": {"𝔱", false},
	"there4": {"∴", false},
	"therefore": {"∴", false},
	"theta": {"θ", false},
	"thetasym": {"ϑ", false},
	"thetav": {"ϑ", false},
	"thickapprox": {"≈", false},
	"thicksim": {"∼", false},
	"thinsp": {" ", false},
	"thkap": {"≈", false},
	"thksim": {"∼", false},
	"tilde": {"˜", false},
	"timesb": {"⊠", false},
	"timesbar": {"⨱", false},
	"timesd": {"⨰", false},
	"tint": {"∭", false},
	"toea": {"⤨", false},
	"top": {"⊤", false},
	"topbot": {"⌶", false},
	"topcir": {"⫱", false},
	"topf": {"𝕥", false},
	"topfork": {"⫚", false},
	"tosa": {"⤩", false},
	"tprime": {"‴", false},
	"trade": {"™", false},
	"triangle": {"▵", false},
	"triangledown": {"▿", false},
	"triangleleft": {"◃", false},
	"trianglelefteq": {"⊴", false},
	"triangleq": {"≜", false},
	"triangleright": {"▹", false},
	"trianglerighteq": {"⊵", false},
	"tridot": {"◬", false},
	"trie": {"≜", false},
	"triminus": {"⨺", false},
	"triplus": {"⨹", false},
	"trisb": {"⧍", false},
	"tritime": {"⨻", false},
	"trpezium": {"⏢", false},
	"tscr": {"𝓉", false},
	"tscy": {"ц", false},
	"tshcy": {"ћ", false},
	"tstrok": {"ŧ", false},
	"twixt": {"≬", false},
	"twoheadleftarrow": {"↞", false},
	"twoheadrightarrow": {"↠", false},
	"uArr": {"⇑", false},
	"uHar": {"⥣", false},
	"uarr": {"↑", false},
	"ubrcy": {"ў", false},
	"ubreve": {"ŭ", false},
	"ucy": {"у", false},
	"udarr": {"⇅", false},
	"udblac": {"ű", false},
	"udhar": {"⥮", false},
	"ufisht": {"⥾", false},
	"ufr": {"𝔲", false},
	"uharl": {"↿", false},
	"uharr": {"↾", false},
	"uhblk": {"▀", false},
	"ulcorn": {"⌜", false},
	"ulcorner": {"⌜", false},
	"ulcrop": {"⌏", false},
	"ultri": {"◸", false},
	"umacr": {"ū", false},
	"uogon": {"ų", false},
	"uopf": {"𝕦", false},
	"uparrow": {"↑", false},
	"updownarrow": {"↕", false},
	"upharpoonleft": {"↿", false},
	"upharpoonright": {"↾", false},
	"uplus": {"⊎", false},
	"upsi": {"υ", false},
	"upsih": {"ϒ", false},
	"upsilon": {"υ", false},
	"upuparrows": {"⇈", false},
	"urcorn": {"⌝", false},
	"urcorner": {"⌝", false},
	"urcrop": {"⌎", false},
	"uring": {"ů", false},
	"urtri": {"◹", false},
	"uscr": {"𝓊", false},
	"utdot": {"⋰", false},
	"utilde": {"ũ", false},
	"utri": {"▵", false},
	"utrif": {"▴", false},
	"uuarr": {"⇈", false},
	"uwangle": {"⦧", false},
	"vArr": {"⇕", false},
	"vBar": {"⫨", false},
	"vBarv": {"⫩", false},
	"vDash": {"⊨", false},
	"vangrt": {"⦜", false},
	"varepsilon": {"ϵ", false},
	"varkappa": {"ϰ", false},
	"varnothing": {"∅", false},
	"varphi": {"ϕ", false},
	"varpi": {"ϖ", false},
	"varpropto": {"∝", false},
	"varr": {"↕", false},
	"varrho": {"ϱ", false},
	"varsigma": {"ς", false},
	"vartheta": {"ϑ", false},
	"vartriangleleft": {"⊲", false},
	"vartriangleright": {"⊳", false},
	"vcy": {"в", false},
	"vdash": {"⊢", false},
	"vee": {"∨", false},
	"veebar": {"⊻", false},
	"veeeq": {"≚", false},
	"vellip": {"⋮", false},
	"verbar": {"|", false},
	"vert": {"|", false},
	"vfr": {"𝔳", false},
	"vltri": {"⊲", false},
	"vopf": {"𝕧", false},
	"vprop": {"∝", false},
	"vrtri": {"⊳", false},
	"vscr": {"𝓋", false},
	"vzigzag": {"⦚", false},
	"wcirc": {"ŵ", false},
	"wedbar": {"⩟", false},
	"wedge": {"∧", false},
	"wedgeq": {"≙", false},
	"weierp": {"℘", false},
	"wfr": {"𝔴", false},
	"wopf": {"𝕨", false},
	"wp": {"℘", false},
	"wr": {"≀", false},
	"wreath": {"≀", false},
	"wscr": {"𝓌", false},
	"xcap": {"⋂", false},
	"xcirc": {"◯", false},
	"xcup": {"⋃", false},
	"xdtri": {"▽", false},
	"xfr": {"𝔵", false},
	"xhArr": {"⟺", false},
	"xharr": {"⟷", false},
	"xi": {"ξ", false},
	"xlArr": {"⟸", false},
	"xlarr": {"⟵", false},
	"xmap": {"⟼", false},
	"xnis": {"⋻", false},
	"xodot": {"⨀", false},
	"xopf": {"𝕩", false},
	"xoplus": {"⨁", false},
	"xotime": {"⨂", false},
	"xrArr": {"⟹", false},
	"xrarr": {"⟶", false},
	"xscr": {"𝓍", false},
	"xsqcup": {"⨆", false},
	"xuplus": {"⨄", false},
	"xutri": {"△", false},
	"xvee": {"⋁", false},
	"xwedge": {"⋀", false},
	"yacy": {"я", false},
	"ycirc": {"ŷ", false},
	"ycy": {"ы", false},
	"yfr": {"𝔶", false},
	"yicy": {"ї", false},
	"yopf": {"𝕪", false},
	"yscr": {"𝓎", false},
	"yucy": {"ю", false},
	"zacute": {"ź", false},
	"zcaron": {"ž", false},
	"zcy": {"з", false},
	"zdot": {"ż", false},
	"zeetrf": {"ℨ", false},
	"zeta": {"ζ", false},
	"zfr": {"𝔷", false},
	"zhcy": {"ж", false},
	"zigrarr": {"⇝", false},
	"zopf": {"𝕫", false},
	"zscr": {"𝓏", false},
	"zwj": {"‍", false},
	"zwnj": {"‌", false},

	// Two-codepoint references (base glyph plus a combining mark).
	"NotEqualTilde": {"≂̸", false},
	"NotGreaterFullEqual": {"≧̸", false},
	"NotGreaterGreater": {"≫̸", false},
	"NotGreaterSlantEqual": {"⩾̸", false},
	"NotHumpDownHump": {"≎̸", false},
	"NotHumpEqual": {"≏̸", false},
	"NotLeftTriangleBar": {"⧏̸", false},
	"NotLessLess": {"≪̸", false},
	"NotLessSlantEqual": {"⩽̸", false},
	"NotNestedGreaterGreater": {"⪢̸", false},
	"NotNestedLessLess": {"⪡̸", false},
	"NotPrecedesEqual": {"⪯̸", false},
	"NotRightTriangleBar": {"⧐̸", false},
	"NotSquareSubset": {"⊏̸", false},
	"NotSquareSuperset": {"⊐̸", false},
	"NotSubset": {"⊂⃒", false},
	"NotSucceedsEqual": {"⪰̸", false},
	"NotSucceedsTilde": {"≿̸", false},
	"NotSuperset": {"⊃⃒", false},
	"ThickSpace": {"  ", false},
	"acE": {"∾̳", false},
	"bne": {"=⃥", false},
	"bnequiv": {"≡⃥", false},
	"caps": {"∩︀", false},
	"cups": {"∪︀", false},
	"fjlig": {"fj", false},
	"gesl": {"⋛︀", false},
	"gvertneqq": {"≩︀", false},
	"gvnE": {"≩︀", false},
	"lates": {"⪭︀", false},
	"lesg": {"⋚︀", false},
	"lvertneqq": {"≨︀", false},
	"lvnE": {"≨︀", false},
	"nGg": {"⋙̸", false},
	"nGtv": {"≫̸", false},
	"nLl": {"⋘̸", false},
	"nLtv": {"≪̸", false},
	"nang": {"∠⃒", false},
	"napE": {"⩰̸", false},
	"napid": {"≋̸", false},
	"nbump": {"≎̸", false},
	"nbumpe": {"≏̸", false},
	"ncongdot": {"⩭̸", false},
	"nedot": {"≐̸", false},
	"nesim": {"≂̸", false},
	"ngE": {"≧̸", false},
	"ngeqq": {"≧̸", false},
	"ngeqslant": {"⩾̸", false},
	"nges": {"⩾̸", false},
	"nlE": {"≦̸", false},
	"nleqq": {"≦̸", false},
	"nleqslant": {"⩽̸", false},
	"nles": {"⩽̸", false},
	"notinE": {"⋹̸", false},
	"notindot": {"⋵̸", false},
	"nparsl": {"⫽⃥", false},
	"npart": {"∂̸", false},
	"npre": {"⪯̸", false},
	"npreceq": {"⪯̸", false},
	"nrarrc": {"⤳̸", false},
	"nrarrw": {"↝̸", false},
	"nsce": {"⪰̸", false},
	"nsubE": {"⫅̸", false},
	"nsubset": {"⊂⃒", false},
	"nsubseteqq": {"⫅̸", false},
	"nsucceq": {"⪰̸", false},
	"nsupE": {"⫆̸", false},
	"nsupset": {"⊃⃒", false},
	"nsupseteqq": {"⫆̸", false},
	"nvap": {"≍⃒", false},
	"nvge": {"≥⃒", false},
	"nvgt": {">⃒", false},
	"nvle": {"≤⃒", false},
	"nvlt": {"<⃒", false},
	"nvltrie": {"⊴⃒", false},
	"nvrtrie": {"⊵⃒", false},
	"nvsim": {"∼⃒", false},
	"race": {"∽̱", false},
	"smtes": {"⪬︀", false},
	"sqcaps": {"⊓︀", false},
	"sqcups": {"⊔︀", false},
	"varsubsetneq": {"⊊︀", false},
	"varsubsetneqq": {"⫋︀", false},
	"varsupsetneq": {"⊋︀", false},
	"varsupsetneqq": {"⫌︀", false},
	"vnsub": {"⊂⃒", false},
	"vnsup": {"⊃⃒", false},
	"vsubnE": {"⫋︀", false},
	"vsubne": {"⊊︀", false},
	"vsupnE": {"⫌︀", false},
	"vsupne": {"⊋︀", false},
}

// maxEntityNameLength bounds the longest name lookupNamed tries.
const maxEntityNameLength = 32
