//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

// Package dlx implements a small tokenizer for the DLX assembly
// language, driving internal/editor's colorizer. It ports the state
// machine of original_source/DLXLib/src/Tokenize.cpp, trimmed to what
// the editor's colorizer needs: token kind and byte span. It reports no
// parse errors: a word it can't classify becomes an Identifier token.
// The DLX virtual
// machine itself (register file, memory, instruction execution) is out
// of scope (spec.md Non-goals).
package dlx

import (
	"strconv"
	"strings"

	"github.com/AMS21/dlxedit/internal/editor"
)

var opcodes = map[string]bool{
	"ADD": true, "ADDI": true, "ADDU": true, "ADDUI": true,
	"SUB": true, "SUBI": true, "SUBU": true, "SUBUI": true,
	"MULT": true, "MULTU": true, "DIV": true, "DIVU": true,
	"AND": true, "ANDI": true, "OR": true, "ORI": true, "XOR": true, "XORI": true,
	"LHI": true, "SLL": true, "SRL": true, "SRA": true,
	"SLLI": true, "SRLI": true, "SRAI": true,
	"SEQ": true, "SNE": true, "SLT": true, "SGT": true, "SLE": true, "SGE": true,
	"SEQI": true, "SNEI": true, "SLTI": true, "SGTI": true, "SLEI": true, "SGEI": true,
	"BEQZ": true, "BNEZ": true, "J": true, "JR": true, "JAL": true, "JALR": true,
	"LB": true, "LBU": true, "SB": true, "LH": true, "LHU": true, "SH": true,
	"LW": true, "SW": true,
	"ADDF": true, "SUBF": true, "MULTF": true, "DIVF": true,
	"ADDD": true, "SUBD": true, "MULTD": true, "DIVD": true,
	"CVTF2D": true, "CVTF2I": true, "CVTD2F": true, "CVTD2I": true,
	"CVTI2F": true, "CVTI2D": true,
	"MOVF": true, "MOVD": true, "MOVFP2I": true, "MOVI2FP": true,
	"MOVD2I": true, "MOVI2D": true,
	"LF": true, "LD": true, "SF": true, "SD": true,
	"HALT": true, "TRAP": true, "NOP": true,
	"DUMP": true, "DUMPF": true, "DUMPD": true,
}

func isIntRegister(tok string) bool {
	if len(tok) < 2 || (tok[0] != 'R' && tok[0] != 'r') {
		return false
	}
	n, err := strconv.Atoi(tok[1:])
	return err == nil && n >= 0 && n <= 31
}

func isFloatRegister(tok string) bool {
	if len(tok) < 2 || (tok[0] != 'F' && tok[0] != 'f') {
		return false
	}
	n, err := strconv.Atoi(tok[1:])
	return err == nil && n >= 0 && n <= 31
}

func isStatusRegister(tok string) bool {
	u := strings.ToUpper(tok)
	return u == "FPSR"
}

func classify(tok string) editor.TokenKind {
	switch {
	case strings.HasPrefix(tok, "#"):
		return editor.TokenImmediate
	case isStatusRegister(tok):
		return editor.TokenRegisterStatus
	case isIntRegister(tok):
		return editor.TokenRegisterInt
	case isFloatRegister(tok):
		return editor.TokenRegisterFloat
	case opcodes[strings.ToUpper(tok)]:
		return editor.TokenOpCode
	case isNumericLiteral(tok):
		return editor.TokenNumber
	default:
		return editor.TokenIdentifier
	}
}

func isNumericLiteral(tok string) bool {
	t := tok
	if len(t) > 0 && (t[0] == '-' || t[0] == '+') {
		t = t[1:]
	}
	if t == "" {
		return false
	}
	_, err := strconv.ParseInt(t, 0, 64)
	return err == nil
}

func isSeparator(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\n', ':', ',', '(', ')':
		return true
	default:
		return false
	}
}

func isCommentStart(c byte) bool { return c == '/' || c == ';' }

// Tokenizer implements editor.Parser for DLX assembly source.
type Tokenizer struct{}

func New() *Tokenizer { return &Tokenizer{} }

// Tokenize scans source into a flat token stream, following
// Tokenize.cpp's state machine: whitespace/`:`/`,`/`(`/`)`/newline all
// end the current token, and a line comment (starting with `/` or `;`)
// swallows the rest of the line as one Comment token.
func (t *Tokenizer) Tokenize(source []byte) ([]editor.Token, []editor.ParseError) {
	var tokens []editor.Token
	var errs []editor.ParseError

	line := 1
	i := 0
	n := len(source)

	emitWord := func(start, end int) {
		if end <= start {
			return
		}
		word := string(source[start:end])
		tokens = append(tokens, editor.Token{Kind: classify(word), Start: start, End: end})
	}

	for i < n {
		c := source[i]
		switch {
		case c == '\n':
			tokens = append(tokens, editor.Token{Kind: editor.TokenNewline, Start: i, End: i + 1})
			line++
			i++
		case c == ' ' || c == '\t' || c == '\v':
			i++
		case isCommentStart(c):
			start := i
			for i < n && source[i] != '\n' {
				i++
			}
			tokens = append(tokens, editor.Token{Kind: editor.TokenComment, Start: start, End: i})
		case c == ':' || c == ',' || c == '(' || c == ')':
			tokens = append(tokens, editor.Token{Kind: editor.TokenPunctuation, Start: i, End: i + 1})
			i++
		default:
			start := i
			for i < n && !isSeparator(source[i]) && !isCommentStart(source[i]) {
				i++
			}
			emitWord(start, i)
		}
	}

	return tokens, errs
}
