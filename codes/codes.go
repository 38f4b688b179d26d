// Package codes holds the CESR derivation-code registries: the static
// tables mapping a short Base64-URL derivation code to the sizes the Matter
// engine needs to construct and project a primitive — hard-size, soft-size,
// full-size (fixed codes) and raw-size or lead (fixed and variable codes,
// respectively).
//
// Three disjoint tables are addressed by the code's own text: a small
// single-character-selector table, a fixed multi-character-selector table,
// and a variable table whose soft field carries a quadlet count. All three
// live behind the same two lookup functions, SizesOf and HardSizeOf, so
// callers never need to know which table a code lives in.
//
// The registry is process-wide constant data, built once behind a
// sync.Once so first-touch initialization is safe under concurrent access
// while remaining ordinary immutable map reads afterward.
package codes

import (
	"fmt"
	"sync"

	"github.com/cesrkit/cesr/errs"
)

// Category distinguishes fixed-size codes (raw length is implied by the
// code alone) from variable-size codes (raw length is carried in the code's
// soft field).
type Category uint8

const (
	// Fixed codes have a constant raw-size for a given code string.
	Fixed Category = iota
	// Variable codes encode their quadlet count in a soft field.
	Variable
)

// Entry is one row of a code table: everything the Matter engine needs to
// construct or project a primitive carrying this code.
type Entry struct {
	Code     string
	Alias    string
	Category Category
	HS       int // hard-size, in characters
	SS       int // soft-size, in characters
	FS       int // full-size, in characters; 0 for Variable (computed from raw length)
	RS       int // raw-size, in bytes; meaningless for Variable (see Lead)
	Lead     int // lead bytes prepended to raw before quadlet alignment; Variable only
}

// selector describes what every code sharing a given first character has in
// common: its hard-size and soft-size. This holds for the whole registry:
// registerSelector panics during table construction if two codes sharing a
// first character disagree.
type selector struct {
	HS int
	SS int
}

var (
	once          sync.Once
	codeTable     map[string]Entry
	selectorTable map[byte]selector
)

func initTables() {
	codeTable = make(map[string]Entry, 64)
	selectorTable = make(map[byte]selector, 16)

	addFixed := func(code, alias string, rs int) {
		hs := len(code)
		fs := hs + ceilDiv(rs*4, 3)
		codeTable[code] = Entry{Code: code, Alias: alias, Category: Fixed, HS: hs, SS: 0, FS: fs, RS: rs}
		registerSelector(code[0], hs, 0)
	}

	// Small table: one-character selector, hard-size 1, soft-size 0.
	addFixed("A", "Ed25519_Seed", 32)
	addFixed("B", "Ed25519N", 32)
	addFixed("D", "Ed25519", 32)
	addFixed("E", "Blake3_256", 32)
	addFixed("F", "Blake2b_256", 32)
	addFixed("G", "Blake2s_256", 32)
	addFixed("H", "SHA3_256", 32)
	addFixed("I", "SHA2_256", 32)
	addFixed("J", "ECDSA_256k1_Seed", 32)
	addFixed("K", "Ed448_Seed", 56)
	addFixed("L", "Ed448", 56)
	addFixed("M", "Short_Number", 2)
	addFixed("N", "Long_Number", 8)

	// Fixed table: two-character selector '0', hard-size 2, soft-size 0.
	addFixed("0A", "Ordinal_128", 16)
	addFixed("0B", "Ed25519_Sig", 64)
	addFixed("0C", "ECDSA_256k1_Sig", 64)
	addFixed("0D", "Ed448_Sig_Seed", 64)
	addFixed("0H", "Huge_Number", 16)
	addFixed("0V", "Version", 10)

	// Fixed table: four-character selector '1', hard-size 4, soft-size 0.
	addFixed("1AAB", "ECDSA_256k1", 33)
	addFixed("1AAC", "Ed448_Sig", 114)
	addFixed("1AAF", "DateTime_Raw", 24)

	// Fixed table: four-character selector '2', hard-size 4, soft-size 0.
	// Used for values in [2^128, 2^192) that overflow the 0H code.
	addFixed("2AAA", "Large_Number", 24)

	// Variable table: small, two-character selectors '4'/'5'/'6', hard-size
	// 2, soft-size 2. Second character picks the sub-family: 'A' Bexter,
	// 'B' Texter, 'C' Tagger. Selector digit (4/5/6) picks the lead
	// (0/1/2).
	addVariable("4A", "Bexter_L0", 0)
	addVariable("5A", "Bexter_L1", 1)
	addVariable("6A", "Bexter_L2", 2)
	addVariable("4B", "Texter_L0", 0)
	addVariable("5B", "Texter_L1", 1)
	addVariable("6B", "Texter_L2", 2)
	addVariable("4C", "Tagger_L0", 0)
	addVariable("5C", "Tagger_L1", 1)
	addVariable("6C", "Tagger_L2", 2)

	// Variable table: large, four-character selectors '7'/'8'/'9',
	// hard-size 4, soft-size 4. Same sub-family and lead scheme as above,
	// used once the small soft field (two Base64 digits, max 4095
	// quadlets) overflows.
	addVariableLarge("7AAA", "Bexter_Large_L0", 0)
	addVariableLarge("8AAA", "Bexter_Large_L1", 1)
	addVariableLarge("9AAA", "Bexter_Large_L2", 2)
	addVariableLarge("7BAA", "Texter_Large_L0", 0)
	addVariableLarge("8BAA", "Texter_Large_L1", 1)
	addVariableLarge("9BAA", "Texter_Large_L2", 2)
	addVariableLarge("7CAA", "Tagger_Large_L0", 0)
	addVariableLarge("8CAA", "Tagger_Large_L1", 1)
	addVariableLarge("9CAA", "Tagger_Large_L2", 2)
}

func addVariable(code, alias string, lead int) {
	hs, ss := 2, 2
	codeTable[code] = Entry{Code: code, Alias: alias, Category: Variable, HS: hs, SS: ss, FS: 0, Lead: lead}
	registerSelector(code[0], hs, ss)
}

func addVariableLarge(code, alias string, lead int) {
	hs, ss := 4, 4
	codeTable[code] = Entry{Code: code, Alias: alias, Category: Variable, HS: hs, SS: ss, FS: 0, Lead: lead}
	registerSelector(code[0], hs, ss)
}

func registerSelector(first byte, hs, ss int) {
	if existing, ok := selectorTable[first]; ok {
		if existing.HS != hs || existing.SS != ss {
			panic(fmt.Sprintf("codes: selector %q registered with conflicting hard/soft sizes", first))
		}
		return
	}
	selectorTable[first] = selector{HS: hs, SS: ss}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// ensureInit performs the one-time, concurrency-safe table build.
func ensureInit() {
	once.Do(initTables)
}

// SizesOf looks up a code's hard-size, soft-size, full-size and raw-size.
// FS is 0 and RS is meaningless for Variable codes; use Lookup for the
// Entry's Lead field in that case.
func SizesOf(code string) (hs, ss, fs, rs int, err error) {
	e, err := Lookup(code)
	if err != nil {
		return 0, 0, 0, 0, err
	}

	return e.HS, e.SS, e.FS, e.RS, nil
}

// Lookup returns the full registry Entry for a code, or ErrUnknownCode.
func Lookup(code string) (Entry, error) {
	ensureInit()

	e, ok := codeTable[code]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %q", errs.ErrUnknownCode, code)
	}

	return e, nil
}

// HardSizeOf returns the hard-size and soft-size shared by every code whose
// first character is selector, or ErrUnknownSelector.
func HardSizeOf(sel byte) (hs, ss int, err error) {
	ensureInit()

	s, ok := selectorTable[sel]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errs.ErrUnknownSelector, string(sel))
	}

	return s.HS, s.SS, nil
}

// VariableCode returns the registered code for a given sub-family alias
// prefix (e.g. "Bexter", "Texter", "Tagger") and lead (0, 1, or 2), in
// either the small or large variable table.
func VariableCode(family string, lead int, large bool) (string, error) {
	ensureInit()

	suffix := map[string]byte{"Bexter": 'A', "Texter": 'B', "Tagger": 'C'}[family]
	if suffix == 0 {
		return "", fmt.Errorf("%w: unknown variable family %q", errs.ErrUnknownCode, family)
	}

	var selectors []byte
	if large {
		selectors = []byte{'7', '8', '9'}
	} else {
		selectors = []byte{'4', '5', '6'}
	}

	if lead < 0 || lead > 2 {
		return "", fmt.Errorf("%w: lead %d out of range", errs.ErrInvalidSoft, lead)
	}

	var code string
	if large {
		code = string([]byte{selectors[lead], suffix, 'A', 'A'})
	} else {
		code = string([]byte{selectors[lead], suffix})
	}

	if _, ok := codeTable[code]; !ok {
		return "", fmt.Errorf("%w: %q", errs.ErrUnknownCode, code)
	}

	return code, nil
}

// All returns a snapshot of every registered Entry, for testing and
// introspection tools.
func All() []Entry {
	ensureInit()

	out := make([]Entry, 0, len(codeTable))
	for _, e := range codeTable {
		out = append(out, e)
	}

	return out
}
