// Package resolve derives the concrete build parameters of a profile: its
// effective preprocessor symbols and its output path.
//
// Everything here is pure. Callers resolve from the baseline captured at batch
// start, never from a previously resolved value, so symbols cannot leak from one
// profile into the next.
//
// Output paths are not sanitised. Profile and product names that contain path
// separators or characters the file system rejects are the caller's problem.
package resolve

import (
	"strings"

	"go.trai.ch/kiln/internal/core/domain"
)

// SymbolSeparator terminates every symbol in a define string.
const SymbolSeparator = ";"

const (
	// ClientSymbol is defined for profiles with the client flag.
	ClientSymbol = "GAME_CLIENT"
	// ServerSymbol is defined for profiles with the server flag.
	ServerSymbol = "GAME_SERVER"
)

// Symbols returns the define string for building p on top of baseline.
//
// The profile's extra symbols are appended in order, then ClientSymbol and
// ServerSymbol for the flags that are set, each followed by SymbolSeparator.
// Duplicates are kept.
func Symbols(baseline string, p *domain.Profile) string {
	var b strings.Builder
	b.WriteString(baseline)
	if baseline != "" && !strings.HasSuffix(baseline, SymbolSeparator) {
		b.WriteString(SymbolSeparator)
	}

	for _, sym := range p.DefineSymbols {
		sym = strings.TrimSpace(sym)
		if sym == "" {
			continue
		}
		b.WriteString(sym)
		b.WriteString(SymbolSeparator)
	}

	if p.Modes.Client {
		b.WriteString(ClientSymbol + SymbolSeparator)
	}
	if p.Modes.Server {
		b.WriteString(ServerSymbol + SymbolSeparator)
	}

	return b.String()
}

// SplitSymbols breaks a define string into its symbols, dropping blanks.
func SplitSymbols(s string) []string {
	parts := strings.Split(s, SymbolSeparator)
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
