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

package editor

import gt "github.com/AMS21/dlxedit/internal/types"

// TokenKind classifies a single token produced by a Parser.
type TokenKind int

const (
	TokenIdentifier TokenKind = iota
	TokenOpCode
	TokenRegisterInt
	TokenRegisterFloat
	TokenRegisterStatus
	TokenImmediate
	TokenNumber
	TokenComment
	TokenString
	TokenPunctuation
	TokenNewline
	TokenUnknown
)

// Token is one lexical unit in a parsed buffer, positioned by byte
// offset into the source bytes handed to Parser.Tokenize.
type Token struct {
	Kind  TokenKind
	Start int
	End   int
}

// ParseError is a single diagnostic, with a 1-based line number matching
// the convention used by error markers (spec.md §4.6).
type ParseError struct {
	Line    int
	Message string
}

// Parser is the external collaborator (spec.md §6) that turns source
// bytes into a token stream the colorizer paints with. Tokenize must be
// a pure function of its input: same bytes in, same tokens out.
type Parser interface {
	Tokenize(source []byte) ([]Token, []ParseError)
}

// PaletteIndexForToken maps a token kind to the palette entry the
// colorizer should paint it with.
func PaletteIndexForToken(k TokenKind) gt.PaletteIndex {
	switch k {
	case TokenOpCode:
		return gt.OpCode
	case TokenRegisterInt, TokenRegisterFloat, TokenRegisterStatus:
		return gt.Register
	case TokenImmediate, TokenNumber:
		return gt.IntegerLiteral
	case TokenComment:
		return gt.Comment
	default:
		return gt.Default
	}
}
