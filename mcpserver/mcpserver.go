// Package mcpserver exposes cipherclimb's solvers as Model Context
// Protocol tools, so an MCP-speaking client (e.g. Claude Desktop) can
// shift, score, and hill-climb ciphertext the same way the cipherclimb
// CLI does. Grounded in the teacher's mcp_main.go: same tool-per-cipher
// shape and stdio/HTTP transport split, rebuilt against the package's
// own internal/alphabet, internal/ngram, internal/climb and
// internal/key engines instead of the teacher's TrieNode-based one.
package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"cipherclimb/internal/alphabet"
	"cipherclimb/internal/climb"
	"cipherclimb/internal/key"
	"cipherclimb/internal/ngram"
	"cipherclimb/internal/preprocess"
)

// Server holds the language model shared across tool invocations. A
// Server built by New with a nil model still serves caesar_shift;
// climb_solve and autoshift_solve report an error until a model is loaded.
type Server struct {
	plainEncoding *alphabet.Encoding
	model         *ngram.Model
}

// New builds a Server. model may be nil, in which case only
// caesar_shift is registered.
func New(model *ngram.Model) (*Server, error) {
	enc, err := alphabet.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		return nil, fmt.Errorf("mcpserver: %w", err)
	}
	s := &Server{plainEncoding: enc}
	if model != nil {
		encoded, err := model.Encode(enc)
		if err != nil {
			return nil, fmt.Errorf("mcpserver: %w", err)
		}
		s.model = encoded
	}
	return s, nil
}

// Register adds every available tool to mcpServer.
func (s *Server) Register(mcpServer *mcp.Server) {
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name:        "caesar_shift",
		Description: "Performs every nontrivial Caesar shift of the input text.",
	}, s.handleCaesar)

	if s.model != nil {
		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        "autoshift_solve",
			Description: "Finds the best-scoring Caesar shift of the input text under the loaded n-gram language model.",
		}, s.handleAutoshift)

		mcp.AddTool(mcpServer, &mcp.Tool{
			Name:        "climb_solve",
			Description: "Hill-climbs a substitution key against the loaded n-gram language model, optionally pinned by a known-plaintext crib.",
		}, s.handleClimb)
	}
}

// CaesarInput is the input for caesar_shift.
type CaesarInput struct {
	Text string `json:"text" jsonschema:"The text to shift through every nontrivial Caesar rotation"`
}

// CaesarOutput is the output for caesar_shift.
type CaesarOutput struct {
	Shifts []CaesarShiftOutput `json:"shifts" jsonschema:"Every nontrivial Caesar shift of the input text"`
}

// CaesarShiftOutput is a single shift result.
type CaesarShiftOutput struct {
	Shift       int    `json:"shift" jsonschema:"The shift amount"`
	ShiftedText string `json:"shiftedText" jsonschema:"The text shifted by this amount"`
}

func (s *Server) handleCaesar(ctx context.Context, req *mcp.CallToolRequest, input CaesarInput) (*mcp.CallToolResult, CaesarOutput, error) {
	if input.Text == "" {
		return nil, CaesarOutput{}, fmt.Errorf("text is required")
	}

	text := preprocess.Latin().Process(input.Text)
	symbols, err := s.plainEncoding.EncodeString(text)
	if err != nil {
		return nil, CaesarOutput{}, fmt.Errorf("text contains symbols outside A-Z: %w", err)
	}

	size := s.plainEncoding.Len()
	output := CaesarOutput{Shifts: make([]CaesarShiftOutput, 0, size-1)}
	var textBuilder strings.Builder
	for shift := 1; shift < size; shift++ {
		shifted := make([]alphabet.Symbol, len(symbols))
		for i, sym := range symbols {
			shifted[i] = alphabet.Symbol((int(sym) + shift) % size)
		}
		decoded, err := s.plainEncoding.DecodeString(shifted)
		if err != nil {
			return nil, CaesarOutput{}, fmt.Errorf("mcpserver: %w", err)
		}
		output.Shifts = append(output.Shifts, CaesarShiftOutput{Shift: shift, ShiftedText: decoded})
		fmt.Fprintf(&textBuilder, "%2d: %s\n", shift, decoded)
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: textBuilder.String()}},
	}, output, nil
}

// AutoshiftInput is the input for autoshift_solve.
type AutoshiftInput struct {
	Text string `json:"text" jsonschema:"The text to brute-force the best Caesar shift for"`
}

// AutoshiftOutput is the output for autoshift_solve.
type AutoshiftOutput struct {
	Shift       int     `json:"shift" jsonschema:"The best-scoring shift amount"`
	Score       float64 `json:"score" jsonschema:"The n-gram log-score of the best shift"`
	ShiftedText string  `json:"shiftedText" jsonschema:"The text shifted by the best shift"`
}

func (s *Server) handleAutoshift(ctx context.Context, req *mcp.CallToolRequest, input AutoshiftInput) (*mcp.CallToolResult, AutoshiftOutput, error) {
	if input.Text == "" {
		return nil, AutoshiftOutput{}, fmt.Errorf("text is required")
	}
	if s.model == nil {
		return nil, AutoshiftOutput{}, fmt.Errorf("no n-gram model loaded")
	}

	text := preprocess.Latin().Process(input.Text)
	symbols, err := s.plainEncoding.EncodeString(text)
	if err != nil {
		return nil, AutoshiftOutput{}, fmt.Errorf("text contains symbols outside A-Z: %w", err)
	}

	size := s.plainEncoding.Len()
	bestShift := 0
	bestScore := float64(0)
	haveBest := false
	for shift := 1; shift < size; shift++ {
		shifted := make([]alphabet.Symbol, len(symbols))
		for i, sym := range symbols {
			shifted[i] = alphabet.Symbol((int(sym) + shift) % size)
		}
		score := s.model.Score(shifted)
		if !haveBest || score > bestScore {
			bestScore = score
			bestShift = shift
			haveBest = true
		}
	}

	decodedSymbols := make([]alphabet.Symbol, len(symbols))
	for i, sym := range symbols {
		decodedSymbols[i] = alphabet.Symbol((int(sym) + bestShift) % size)
	}
	decoded, err := s.plainEncoding.DecodeString(decodedSymbols)
	if err != nil {
		return nil, AutoshiftOutput{}, fmt.Errorf("mcpserver: %w", err)
	}

	output := AutoshiftOutput{Shift: bestShift, Score: bestScore, ShiftedText: decoded}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("shift %d (score %.4f): %s", bestShift, bestScore, decoded)}},
	}, output, nil
}

// ClimbInput is the input for climb_solve.
type ClimbInput struct {
	CipherText     string  `json:"cipherText" jsonschema:"The substitution cipher text to solve"`
	CipherAlphabet string  `json:"cipherAlphabet,omitempty" jsonschema:"Explicit cipher alphabet string, for ciphers whose symbol space genuinely differs from the 26-letter plaintext alphabet (e.g. Zodiac Z408's 53-glyph alphabet); defaults to the plaintext alphabet expanded by homophoneRatio"`
	Cycles         int     `json:"cycles,omitempty" jsonschema:"Number of outer sweeps to run (default: 1000)"`
	HomophoneRatio float64 `json:"homophoneRatio,omitempty" jsonschema:"Fraction of extra cipher symbols per plaintext symbol (default: 0); ignored when cipherAlphabet is set"`
	CribOffset     int     `json:"cribOffset,omitempty" jsonschema:"Ciphertext offset for a known-plaintext crib (-1 disables, the default)"`
	CribText       string  `json:"cribText,omitempty" jsonschema:"Known plaintext to pin at cribOffset"`
}

// ClimbOutput is the output for climb_solve.
type ClimbOutput struct {
	Energy         float64 `json:"energy" jsonschema:"The n-gram log-score of the best candidate found"`
	DecipheredText string  `json:"decipheredText" jsonschema:"The best candidate decryption found"`
}

func (s *Server) handleClimb(ctx context.Context, req *mcp.CallToolRequest, input ClimbInput) (*mcp.CallToolResult, ClimbOutput, error) {
	if input.CipherText == "" {
		return nil, ClimbOutput{}, fmt.Errorf("cipherText is required")
	}
	if s.model == nil {
		return nil, ClimbOutput{}, fmt.Errorf("no n-gram model loaded")
	}

	cycles := input.Cycles
	if cycles <= 0 {
		cycles = 1000
	}
	cribOffset := input.CribOffset
	if cribOffset == 0 && input.CribText == "" {
		cribOffset = -1
	}

	cipherEncoding := s.plainEncoding
	cipherPre := preprocess.Latin()
	homophoneRatio := input.HomophoneRatio
	if input.CipherAlphabet != "" {
		enc, err := alphabet.NewEncoding(input.CipherAlphabet)
		if err != nil {
			return nil, ClimbOutput{}, fmt.Errorf("cipherAlphabet: %w", err)
		}
		cipherEncoding = enc
		cipherPre = preprocess.New([]rune(input.CipherAlphabet))
		homophoneRatio = 0
	}

	text := cipherPre.Process(input.CipherText)
	cipherBuf, err := cipherEncoding.EncodeString(text)
	if err != nil {
		return nil, ClimbOutput{}, fmt.Errorf("cipherText contains symbols outside the cipher alphabet: %w", err)
	}

	c, err := climb.New(cipherBuf, cipherEncoding, s.plainEncoding, homophoneRatio)
	if err != nil {
		return nil, ClimbOutput{}, fmt.Errorf("mcpserver: %w", err)
	}

	if cribOffset >= 0 {
		if err := c.CribString(cribOffset, input.CribText); err != nil {
			return nil, ClimbOutput{}, fmt.Errorf("crib error: %w", err)
		}
	}

	freq := make([]float64, c.PlainAlphabet.Len())
	for i := range freq {
		freq[i] = 1.0 / float64(len(freq))
	}

	cfg := &climb.Config{
		Cycle:  cycles,
		Energy: func(decoded []alphabet.Symbol) float64 { return s.model.Score(decoded) },
		Accept: climb.LavyAccept,
		RandomKey: func(c *climb.Climber) {
			k, err := key.RandomSurjective(c.CipherAlphabet, c.PlainAlphabet, freq)
			if err != nil {
				k = key.Random(c.CipherAlphabet, c.PlainAlphabet)
			}
			c.RunKey.CopyFrom(k)
		},
		DeriveKey: func(c *climb.Climber) {
			c.RunKey.CopyFrom(key.Random(c.CipherAlphabet, c.PlainAlphabet))
		},
		MutateKey: func(c *climb.Climber) {
			i := c.Crib.Sample()
			j := c.Crib.Sample()
			c.RunKey.Swap(i, j)
		},
		Report: func(c *climb.Climber, cycle, accepted, rejected int) {},
		Crib:   func(c *climb.Climber) {},
	}

	c.Climb(cfg)

	decodedBuf := make([]alphabet.Symbol, len(c.CipherBuf))
	c.TopKey.Decode(c.CipherBuf, decodedBuf)
	decoded, err := s.plainEncoding.DecodeString(decodedBuf)
	if err != nil {
		return nil, ClimbOutput{}, fmt.Errorf("mcpserver: %w", err)
	}

	output := ClimbOutput{Energy: c.TopEnergy, DecipheredText: decoded}
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: fmt.Sprintf("energy %.4f: %s", c.TopEnergy, decoded)}},
	}, output, nil
}
