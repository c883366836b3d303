package feed

import (
	"strings"
)

// Property is a single content line of an event block, e.g.
//
//	DTSTART;VALUE=DATE-TIME:20140920T103000
//
// Value is kept exactly as it appears in the feed; iCalendar escapes such as
// "\," are not decoded.
type Property struct {
	Name   string
	Params map[string]string
	Value  string
}

// Param returns the value of the named parameter, or "" if absent.
func (p Property) Param(name string) string {
	return p.Params[strings.ToUpper(name)]
}

// Block is one parsed VEVENT.
type Block struct {
	Properties []Property
}

// Get returns the first property with the given name.
func (b *Block) Get(name string) (Property, bool) {
	name = strings.ToUpper(name)
	for _, p := range b.Properties {
		if p.Name == name {
			return p, true
		}
	}
	return Property{}, false
}

// ParseBlock parses the raw text of an event block into its content lines.
// Folded lines (continuations starting with a space or tab) are joined first.
// Lines without a name/value separator are ignored.
func ParseBlock(raw string) *Block {
	block := &Block{Properties: make([]Property, 0)}

	for _, line := range unfold(raw) {
		if prop, ok := parseContentLine(line); ok {
			block.Properties = append(block.Properties, prop)
		}
	}

	return block
}

func unfold(raw string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		if (line[0] == ' ' || line[0] == '\t') && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// parseContentLine splits NAME;PARAM=VALUE;...:VALUE. A colon inside a quoted
// parameter value does not end the name part.
func parseContentLine(line string) (Property, bool) {
	sep := -1
	inQuote := false
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '"':
			inQuote = !inQuote
		case ':':
			if !inQuote {
				sep = i
			}
		}
		if sep != -1 {
			break
		}
	}
	if sep <= 0 {
		return Property{}, false
	}

	parts := strings.Split(line[:sep], ";")
	prop := Property{
		Name:   strings.ToUpper(strings.TrimSpace(parts[0])),
		Params: make(map[string]string, len(parts)-1),
		Value:  line[sep+1:],
	}
	for _, param := range parts[1:] {
		key, value, found := strings.Cut(param, "=")
		if !found {
			continue
		}
		prop.Params[strings.ToUpper(strings.TrimSpace(key))] = strings.Trim(value, `"`)
	}

	return prop, prop.Name != ""
}
