package templates

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultLibraryName is used when no crate name can be derived.
const DefaultLibraryName = "rust"

// Cargo package names: ASCII letters, digits, '-' and '_', starting with a letter or '_'.
var crateNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)

// ValidateLibraryName checks if a name is usable as a Cargo package name.
func ValidateLibraryName(name string) error {
	if name == "" {
		return fmt.Errorf("library name cannot be empty")
	}
	if !crateNameRegex.MatchString(name) {
		return fmt.Errorf("invalid library name %q: must start with a letter or underscore and contain only ASCII letters, digits, '-' and '_'", name)
	}
	if isReservedWord(name) {
		return fmt.Errorf("invalid library name %q: cannot use a Rust keyword", name)
	}
	return nil
}

// ValidateProjectName checks the Godot display name.
func ValidateProjectName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("project name cannot be empty")
	}
	if strings.ContainsAny(name, "\r\n") {
		return fmt.Errorf("project name %q cannot span multiple lines", name)
	}
	return nil
}

// DeriveLibraryName turns a project display name into a crate name:
// accents are stripped, letters lowercased and separators become '_'.
// Returns DefaultLibraryName when nothing usable remains.
func DeriveLibraryName(projectName string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, projectName)
	if err != nil {
		folded = projectName
	}
	folded = cases.Lower(language.Und).String(folded)

	result := make([]byte, 0, len(folded))
	lastSep := true
	for i := 0; i < len(folded); i++ {
		c := folded[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9':
			result = append(result, c)
			lastSep = false
		case c == ' ' || c == '-' || c == '.' || c == '_':
			if !lastSep {
				result = append(result, '_')
				lastSep = true
			}
		}
	}

	name := strings.TrimSuffix(string(result), "_")
	if name == "" {
		return DefaultLibraryName
	}
	if name[0] >= '0' && name[0] <= '9' {
		name = "_" + name
	}
	if isReservedWord(name) {
		name += "_ext"
	}
	return name
}

// isReservedWord reports whether name is a Rust keyword.
func isReservedWord(name string) bool {
	reserved := map[string]bool{
		"as": true, "break": true, "const": true, "continue": true,
		"crate": true, "else": true, "enum": true, "extern": true,
		"false": true, "fn": true, "for": true, "if": true,
		"impl": true, "in": true, "let": true, "loop": true,
		"match": true, "mod": true, "move": true, "mut": true,
		"pub": true, "ref": true, "return": true, "self": true,
		"Self": true, "static": true, "struct": true, "super": true,
		"trait": true, "true": true, "type": true, "unsafe": true,
		"use": true, "where": true, "while": true, "async": true,
		"await": true, "dyn": true, "_": true,
	}
	return reserved[name]
}
