package command

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var yamlFence = regexp.MustCompile("```yaml\n([\\s\\S]*?)\n```")

// Split strips prefix from content and splits the rest at the first
// whitespace into a command name and its arguments. ok is false when content
// does not start with prefix or has no whitespace after the name.
func Split(content, prefix string) (name, args string, ok bool) {
	rest, found := strings.CutPrefix(content, prefix)
	if !found {
		return "", "", false
	}

	i := strings.IndexFunc(rest, unicode.IsSpace)
	if i < 0 {
		return "", "", false
	}
	_, size := utf8.DecodeRuneInString(rest[i:])
	return rest[:i], rest[i+size:], true
}

// ExtractYAML returns the body of the first ```yaml fence in args, or args
// itself when there is none.
func ExtractYAML(args string) string {
	if m := yamlFence.FindStringSubmatch(args); m != nil {
		return m[1]
	}
	return args
}
