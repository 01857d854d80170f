package command

import "strings"

// ParseResult holds the parsed command name and arguments from a text line.
type ParseResult struct {
	// Command is the first word of the input, lowercased.
	Command string
	// Args are the remaining words after the command.
	Args []string
	// RawArgs is the raw text after the command, so multi-word names such as
	// "Common Health Potion" survive.
	RawArgs string
}

// Parse splits a text line into a command and arguments.
//
// Postcondition: Returns a ParseResult. If line is blank, Command is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ParseResult{}
	}

	res := ParseResult{Command: strings.ToLower(fields[0])}
	if len(fields) == 1 {
		return res
	}
	res.Args = fields[1:]
	res.RawArgs = strings.TrimSpace(strings.TrimSpace(line)[len(fields[0]):])
	return res
}
