package theme

// DefaultID is the theme used when the configured theme cannot be resolved.
const DefaultID = "termy"

// BuiltinIDs lists the builtin themes in presentation order.
var BuiltinIDs = []string{
	"termy",
	"tokyo-night",
	"catppuccin-mocha",
	"dracula",
	"gruvbox-dark",
	"nord",
	"solarized-dark",
	"one-dark",
	"monokai",
	"material-dark",
	"palenight",
	"tomorrow-night",
	"oceanic-next",
}

type builtinProvider struct{}

func (builtinProvider) Theme(id string) (Colors, bool) {
	canonical, ok := CanonicalID(id)
	if !ok {
		return Colors{}, false
	}
	colors, ok := builtins[canonical]
	return colors, ok
}

func (builtinProvider) ThemeIDs() []string {
	return BuiltinIDs
}

// Termy returns the default builtin palette.
func Termy() Colors {
	return builtins[DefaultID]
}

func rgb(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

var builtins = map[string]Colors{
	"termy": {
		ANSI: [16]RGB{
			rgb(0x0B, 0x10, 0x20), rgb(0xF1, 0xB8, 0xC5), rgb(0xA7, 0xE9, 0xA3), rgb(0xF2, 0xE3, 0xA5),
			rgb(0x9B, 0xB8, 0xF2), rgb(0xD9, 0xB8, 0xF1), rgb(0xA3, 0xE3, 0xE9), rgb(0xE7, 0xEB, 0xF5),
			rgb(0x3A, 0x44, 0x68), rgb(0xF7, 0x8F, 0xA7), rgb(0x7F, 0xDC, 0x78), rgb(0xF5, 0xD5, 0x6E),
			rgb(0x7F, 0xA3, 0xF7), rgb(0xC7, 0x8F, 0xF0), rgb(0x76, 0xD5, 0xDE), rgb(0xFF, 0xFF, 0xFF),
		},
		Foreground: rgb(0xE7, 0xEB, 0xF5),
		Background: rgb(0x0B, 0x10, 0x20),
		Cursor:     rgb(0xA7, 0xE9, 0xA3),
	},
	"tokyo-night": {
		ANSI: [16]RGB{
			rgb(0x15, 0x16, 0x1E), rgb(0xF7, 0x76, 0x8E), rgb(0x9E, 0xCE, 0x6A), rgb(0xE0, 0xAF, 0x68),
			rgb(0x7A, 0xA2, 0xF7), rgb(0xBB, 0x9A, 0xF7), rgb(0x7D, 0xCF, 0xFF), rgb(0xA9, 0xB1, 0xD6),
			rgb(0x41, 0x48, 0x68), rgb(0xF7, 0x76, 0x8E), rgb(0x9E, 0xCE, 0x6A), rgb(0xE0, 0xAF, 0x68),
			rgb(0x7A, 0xA2, 0xF7), rgb(0xBB, 0x9A, 0xF7), rgb(0x7D, 0xCF, 0xFF), rgb(0xC0, 0xCA, 0xF5),
		},
		Foreground: rgb(0xC0, 0xCA, 0xF5),
		Background: rgb(0x1A, 0x1B, 0x26),
		Cursor:     rgb(0xC0, 0xCA, 0xF5),
	},
	"catppuccin-mocha": {
		ANSI: [16]RGB{
			rgb(0x45, 0x47, 0x5A), rgb(0xF3, 0x8B, 0xA8), rgb(0xA6, 0xE3, 0xA1), rgb(0xF9, 0xE2, 0xAF),
			rgb(0x89, 0xB4, 0xFA), rgb(0xF5, 0xC2, 0xE7), rgb(0x94, 0xE2, 0xD5), rgb(0xBA, 0xC2, 0xDE),
			rgb(0x58, 0x5B, 0x70), rgb(0xF3, 0x8B, 0xA8), rgb(0xA6, 0xE3, 0xA1), rgb(0xF9, 0xE2, 0xAF),
			rgb(0x89, 0xB4, 0xFA), rgb(0xF5, 0xC2, 0xE7), rgb(0x94, 0xE2, 0xD5), rgb(0xA6, 0xAD, 0xC8),
		},
		Foreground: rgb(0xCD, 0xD6, 0xF4),
		Background: rgb(0x1E, 0x1E, 0x2E),
		Cursor:     rgb(0xF5, 0xE0, 0xDC),
	},
	"dracula": {
		ANSI: [16]RGB{
			rgb(0x21, 0x22, 0x2C), rgb(0xFF, 0x55, 0x55), rgb(0x50, 0xFA, 0x7B), rgb(0xF1, 0xFA, 0x8C),
			rgb(0xBD, 0x93, 0xF9), rgb(0xFF, 0x79, 0xC6), rgb(0x8B, 0xE9, 0xFD), rgb(0xF8, 0xF8, 0xF2),
			rgb(0x62, 0x72, 0xA4), rgb(0xFF, 0x6E, 0x6E), rgb(0x69, 0xFF, 0x94), rgb(0xFF, 0xFF, 0xA5),
			rgb(0xD6, 0xAC, 0xFF), rgb(0xFF, 0x92, 0xDF), rgb(0xA4, 0xFF, 0xFF), rgb(0xFF, 0xFF, 0xFF),
		},
		Foreground: rgb(0xF8, 0xF8, 0xF2),
		Background: rgb(0x28, 0x2A, 0x36),
		Cursor:     rgb(0xF8, 0xF8, 0xF2),
	},
	"gruvbox-dark": {
		ANSI: [16]RGB{
			rgb(0x28, 0x28, 0x28), rgb(0xCC, 0x24, 0x1D), rgb(0x98, 0x97, 0x1A), rgb(0xD7, 0x99, 0x21),
			rgb(0x45, 0x85, 0x88), rgb(0xB1, 0x62, 0x86), rgb(0x68, 0x9D, 0x6A), rgb(0xA8, 0x99, 0x84),
			rgb(0x92, 0x83, 0x74), rgb(0xFB, 0x49, 0x34), rgb(0xB8, 0xBB, 0x26), rgb(0xFA, 0xBD, 0x2F),
			rgb(0x83, 0xA5, 0x98), rgb(0xD3, 0x86, 0x9B), rgb(0x8E, 0xC0, 0x7C), rgb(0xEB, 0xDB, 0xB2),
		},
		Foreground: rgb(0xEB, 0xDB, 0xB2),
		Background: rgb(0x28, 0x28, 0x28),
		Cursor:     rgb(0xEB, 0xDB, 0xB2),
	},
	"nord": {
		ANSI: [16]RGB{
			rgb(0x3B, 0x42, 0x52), rgb(0xBF, 0x61, 0x6A), rgb(0xA3, 0xBE, 0x8C), rgb(0xEB, 0xCB, 0x8B),
			rgb(0x81, 0xA1, 0xC1), rgb(0xB4, 0x8E, 0xAD), rgb(0x88, 0xC0, 0xD0), rgb(0xE5, 0xE9, 0xF0),
			rgb(0x4C, 0x56, 0x6A), rgb(0xBF, 0x61, 0x6A), rgb(0xA3, 0xBE, 0x8C), rgb(0xEB, 0xCB, 0x8B),
			rgb(0x81, 0xA1, 0xC1), rgb(0xB4, 0x8E, 0xAD), rgb(0x8F, 0xBC, 0xBB), rgb(0xEC, 0xEF, 0xF4),
		},
		Foreground: rgb(0xD8, 0xDE, 0xE9),
		Background: rgb(0x2E, 0x34, 0x40),
		Cursor:     rgb(0xD8, 0xDE, 0xE9),
	},
	"solarized-dark": {
		ANSI: [16]RGB{
			rgb(0x07, 0x36, 0x42), rgb(0xDC, 0x32, 0x2F), rgb(0x85, 0x99, 0x00), rgb(0xB5, 0x89, 0x00),
			rgb(0x26, 0x8B, 0xD2), rgb(0xD3, 0x36, 0x82), rgb(0x2A, 0xA1, 0x98), rgb(0xEE, 0xE8, 0xD5),
			rgb(0x00, 0x2B, 0x36), rgb(0xCB, 0x4B, 0x16), rgb(0x58, 0x6E, 0x75), rgb(0x65, 0x7B, 0x83),
			rgb(0x83, 0x94, 0x96), rgb(0x6C, 0x71, 0xC4), rgb(0x93, 0xA1, 0xA1), rgb(0xFD, 0xF6, 0xE3),
		},
		Foreground: rgb(0x83, 0x94, 0x96),
		Background: rgb(0x00, 0x2B, 0x36),
		Cursor:     rgb(0x83, 0x94, 0x96),
	},
	"one-dark": {
		ANSI: [16]RGB{
			rgb(0x28, 0x2C, 0x34), rgb(0xE0, 0x6C, 0x75), rgb(0x98, 0xC3, 0x79), rgb(0xE5, 0xC0, 0x7B),
			rgb(0x61, 0xAF, 0xEF), rgb(0xC6, 0x78, 0xDD), rgb(0x56, 0xB6, 0xC2), rgb(0xAB, 0xB2, 0xBF),
			rgb(0x5C, 0x63, 0x70), rgb(0xE0, 0x6C, 0x75), rgb(0x98, 0xC3, 0x79), rgb(0xE5, 0xC0, 0x7B),
			rgb(0x61, 0xAF, 0xEF), rgb(0xC6, 0x78, 0xDD), rgb(0x56, 0xB6, 0xC2), rgb(0xFF, 0xFF, 0xFF),
		},
		Foreground: rgb(0xAB, 0xB2, 0xBF),
		Background: rgb(0x28, 0x2C, 0x34),
		Cursor:     rgb(0x52, 0x8B, 0xFF),
	},
	"monokai": {
		ANSI: [16]RGB{
			rgb(0x27, 0x28, 0x22), rgb(0xF9, 0x26, 0x72), rgb(0xA6, 0xE2, 0x2E), rgb(0xF4, 0xBF, 0x75),
			rgb(0x66, 0xD9, 0xEF), rgb(0xAE, 0x81, 0xFF), rgb(0xA1, 0xEF, 0xE4), rgb(0xF8, 0xF8, 0xF2),
			rgb(0x75, 0x71, 0x5E), rgb(0xF9, 0x26, 0x72), rgb(0xA6, 0xE2, 0x2E), rgb(0xF4, 0xBF, 0x75),
			rgb(0x66, 0xD9, 0xEF), rgb(0xAE, 0x81, 0xFF), rgb(0xA1, 0xEF, 0xE4), rgb(0xF9, 0xF8, 0xF5),
		},
		Foreground: rgb(0xF8, 0xF8, 0xF2),
		Background: rgb(0x27, 0x28, 0x22),
		Cursor:     rgb(0xF8, 0xF8, 0xF2),
	},
	"material-dark": {
		ANSI: [16]RGB{
			rgb(0x00, 0x00, 0x00), rgb(0xFF, 0x53, 0x70), rgb(0xC3, 0xE8, 0x8D), rgb(0xFF, 0xCB, 0x6B),
			rgb(0x82, 0xAA, 0xFF), rgb(0xC7, 0x92, 0xEA), rgb(0x89, 0xDD, 0xFF), rgb(0xFF, 0xFF, 0xFF),
			rgb(0x54, 0x6E, 0x7A), rgb(0xFF, 0x53, 0x70), rgb(0xC3, 0xE8, 0x8D), rgb(0xFF, 0xCB, 0x6B),
			rgb(0x82, 0xAA, 0xFF), rgb(0xC7, 0x92, 0xEA), rgb(0x89, 0xDD, 0xFF), rgb(0xFF, 0xFF, 0xFF),
		},
		Foreground: rgb(0xEE, 0xFF, 0xFF),
		Background: rgb(0x26, 0x32, 0x38),
		Cursor:     rgb(0xFF, 0xCC, 0x00),
	},
	"palenight": {
		ANSI: [16]RGB{
			rgb(0x29, 0x2D, 0x3E), rgb(0xF0, 0x71, 0x78), rgb(0xC3, 0xE8, 0x8D), rgb(0xFF, 0xCB, 0x6B),
			rgb(0x82, 0xAA, 0xFF), rgb(0xC7, 0x92, 0xEA), rgb(0x89, 0xDD, 0xFF), rgb(0x95, 0x9D, 0xCB),
			rgb(0x67, 0x6E, 0x95), rgb(0xF0, 0x71, 0x78), rgb(0xC3, 0xE8, 0x8D), rgb(0xFF, 0xCB, 0x6B),
			rgb(0x82, 0xAA, 0xFF), rgb(0xC7, 0x92, 0xEA), rgb(0x89, 0xDD, 0xFF), rgb(0xFF, 0xFF, 0xFF),
		},
		Foreground: rgb(0x95, 0x9D, 0xCB),
		Background: rgb(0x29, 0x2D, 0x3E),
		Cursor:     rgb(0x95, 0x9D, 0xCB),
	},
	"tomorrow-night": {
		ANSI: [16]RGB{
			rgb(0x1D, 0x1F, 0x21), rgb(0xCC, 0x66, 0x66), rgb(0xB5, 0xBD, 0x68), rgb(0xF0, 0xC6, 0x74),
			rgb(0x81, 0xA2, 0xBE), rgb(0xB2, 0x94, 0xBB), rgb(0x8A, 0xBE, 0xB7), rgb(0xC5, 0xC8, 0xC6),
			rgb(0x96, 0x98, 0x96), rgb(0xCC, 0x66, 0x66), rgb(0xB5, 0xBD, 0x68), rgb(0xF0, 0xC6, 0x74),
			rgb(0x81, 0xA2, 0xBE), rgb(0xB2, 0x94, 0xBB), rgb(0x8A, 0xBE, 0xB7), rgb(0xFF, 0xFF, 0xFF),
		},
		Foreground: rgb(0xC5, 0xC8, 0xC6),
		Background: rgb(0x1D, 0x1F, 0x21),
		Cursor:     rgb(0xC5, 0xC8, 0xC6),
	},
	"oceanic-next": {
		ANSI: [16]RGB{
			rgb(0x1B, 0x2B, 0x34), rgb(0xEC, 0x5F, 0x67), rgb(0x99, 0xC7, 0x94), rgb(0xFA, 0xC8, 0x63),
			rgb(0x66, 0x99, 0xCC), rgb(0xC5, 0x94, 0xC5), rgb(0x5F, 0xB3, 0xB3), rgb(0xC0, 0xC5, 0xCE),
			rgb(0x65, 0x73, 0x7E), rgb(0xEC, 0x5F, 0x67), rgb(0x99, 0xC7, 0x94), rgb(0xFA, 0xC8, 0x63),
			rgb(0x66, 0x99, 0xCC), rgb(0xC5, 0x94, 0xC5), rgb(0x5F, 0xB3, 0xB3), rgb(0xD8, 0xDE, 0xE9),
		},
		Foreground: rgb(0xC0, 0xC5, 0xCE),
		Background: rgb(0x1B, 0x2B, 0x34),
		Cursor:     rgb(0xC0, 0xC5, 0xCE),
	},
}
