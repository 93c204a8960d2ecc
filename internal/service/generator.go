package service

import (
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/password"
)

// GeneratorService handles password generation and strength evaluation
// business logic.
type GeneratorService struct {
	gen *password.Generator
}

// NewGeneratorService creates a GeneratorService backed by crypto/rand.
func NewGeneratorService() *GeneratorService {
	return &GeneratorService{gen: password.NewGenerator()}
}

// Generate produces a password based on the given request and attaches the
// strength of the result.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := password.Options{
		Length:           req.Length,
		Uppercase:        boolOrDefault(req.Uppercase, true),
		Lowercase:        boolOrDefault(req.Lowercase, true),
		Numbers:          boolOrDefault(req.Numbers, true),
		Symbols:          boolOrDefault(req.Symbols, true),
		ExcludeSimilar:   req.ExcludeSimilar,
		PreventRepeating: req.PreventRepeating,
	}

	if opts.Length == 0 {
		opts.Length = 16
	}

	pw, err := s.gen.Generate(opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}

	return model.GenerateResponse{
		Password: pw,
		Length:   len(pw),
		Strength: strengthInfo(password.Evaluate(pw)),
	}, nil
}

// Strength evaluates an arbitrary password, not only generator output.
func (s *GeneratorService) Strength(req model.StrengthRequest) model.StrengthInfo {
	return strengthInfo(password.Evaluate(req.Password))
}

// Charset exposes the effective alphabet for a set of class flags so callers
// can inspect (or memoize by) their options.
func (s *GeneratorService) Charset(classes password.Classes, excludeSimilar bool) model.CharsetResponse {
	charset := password.BuildCharset(classes, excludeSimilar)
	return model.CharsetResponse{
		Charset: charset,
		Size:    len(charset),
	}
}

func strengthInfo(st password.Strength) model.StrengthInfo {
	return model.StrengthInfo{
		Score:   int(st.Score),
		Label:   st.Label,
		Entropy: st.Entropy,
	}
}

// boolOrDefault returns the dereferenced pointer value, or the fallback if nil.
func boolOrDefault(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}
