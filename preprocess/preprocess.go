// Package preprocess validates and cleans filler text before it is
// substituted into a prompt.
//
// A Preprocessor runs a pipeline of steps selected by a Config. Cleaning
// steps transform the text; checking steps stop the pipeline early, and the
// overall result reports whether the text passed every enabled check.
package preprocess

import "errors"

// Preprocessor applies a configured pipeline of cleaning and validation
// steps to text.
type Preprocessor struct {
	cfg      Config
	pipeline []Step
}

// New builds a Preprocessor from cfg. The configuration must be valid and
// must enable at least one step.
func New(cfg Config) (*Preprocessor, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pipeline := buildPipeline(cfg)
	if len(pipeline) == 0 {
		return nil, errors.New("preprocessing pipeline is empty: enable at least one step")
	}

	return &Preprocessor{cfg: cfg, pipeline: pipeline}, nil
}

// buildPipeline assembles the enabled steps in their fixed order.
func buildPipeline(cfg Config) []Step {
	var pipeline []Step
	if cfg.Strip {
		pipeline = append(pipeline, stripStep)
	}
	if cfg.CheckEmpty {
		pipeline = append(pipeline, checkEmptyStep)
	}
	if cfg.CheckLetters {
		pipeline = append(pipeline, checkLettersStep(cfg.PercentageLetters))
	}
	if cfg.SpacesOnly {
		pipeline = append(pipeline, spacesOnlyStep)
	}
	if cfg.MaxConsecutiveSpaces > 0 {
		pipeline = append(pipeline, maxConsecutiveSpacesStep(cfg.MaxConsecutiveSpaces))
	}
	if cfg.ASCIIOnly {
		pipeline = append(pipeline, asciiOnlyStep)
	}
	if cfg.Normalize != "" {
		pipeline = append(pipeline, normalizeStep(cfg.Normalize))
	}
	if cfg.MinLength > -1 {
		pipeline = append(pipeline, minLengthStep(cfg.MinLength))
	}
	if cfg.Truncate && cfg.MaxLength > -1 {
		pipeline = append(pipeline, truncateStep(cfg.MaxLength))
	}
	return pipeline
}

// Config returns the configuration the Preprocessor was built from.
func (p *Preprocessor) Config() Config {
	return p.cfg
}

// Preprocess runs the pipeline over text. It returns false as soon as any
// check fails, together with the text as transformed up to that step; no
// further steps run. When every step passes it returns true and the fully
// processed text.
func (p *Preprocessor) Preprocess(text string) (bool, string) {
	for _, step := range p.pipeline {
		ok, next := step(text)
		text = next
		if !ok {
			return false, text
		}
	}
	return true, text
}

// Pipeline returns the current step list. Callers may inspect it, or build
// a modified list and install it with SetPipeline.
func (p *Preprocessor) Pipeline() []Step {
	return p.pipeline
}

// SetPipeline replaces the step list. Custom steps must follow the Step
// contract: return the transformed text and false to stop processing.
func (p *Preprocessor) SetPipeline(pipeline []Step) {
	p.pipeline = pipeline
}
