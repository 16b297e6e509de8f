package config

import (
	_ "embed"
)

//go:embed schema/answers.cue
var answersSchemaCUE []byte
