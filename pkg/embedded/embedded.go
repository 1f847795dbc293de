package embedded

import (
	_ "embed"
)

// Prompt documents. The directive text is versioned static content;
// per-request values are interpolated by internal/setup at render time.
//
//go:embed data/prompts/system_preamble.txt
var SystemPreambleTxt []byte

//go:embed data/prompts/guidance_rules.txt
var GuidanceRulesTxt []byte

// Category example setups. One complete .svm text per vehicle category,
// injected into the prompt as a structural guide, never parsed.
//
//go:embed data/templates/hypercar.svm
var HypercarTemplateSvm []byte

//go:embed data/templates/lmp2.svm
var LMP2TemplateSvm []byte

//go:embed data/templates/gt3.svm
var GT3TemplateSvm []byte

//go:embed data/templates/gte.svm
var GTETemplateSvm []byte
