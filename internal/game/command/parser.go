package command

import (
	"errors"
	"strings"
)

// ErrUnknownCommand is reported when the first token is not in the vocabulary.
var ErrUnknownCommand = errors.New("command: unknown command")

// Command is one classified line of input. A Command is immutable: Args
// returns a copy.
type Command struct {
	// Verb is the canonical verb. Empty when Recognized is false.
	Verb string
	// Handler is the handler of the matched definition.
	Handler string
	// Recognized is false when the first token matched no verb.
	Recognized bool
	args       []string
}

// Args returns a copy of the argument tokens. For an unrecognized command
// these are all input tokens, including the unmatched first one.
func (c Command) Args() []string {
	out := make([]string, len(c.args))
	copy(out, c.args)
	return out
}

// Text returns the arguments joined by single spaces.
func (c Command) Text() string {
	return strings.Join(c.args, " ")
}

// Tokenize splits line on whitespace.
//
// Postcondition: an empty or all-space line yields an empty slice.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Classify matches the first token against the vocabulary by exact,
// case-sensitive comparison.
//
// Postcondition: On a match Verb is the canonical verb and Args the remaining
// tokens; otherwise Recognized is false and Args holds every token.
func (r *Registry) Classify(tokens []string) Command {
	if len(tokens) == 0 {
		return Command{}
	}
	def, ok := r.Resolve(tokens[0])
	if !ok {
		args := make([]string, len(tokens))
		copy(args, tokens)
		return Command{args: args}
	}
	args := make([]string, len(tokens)-1)
	copy(args, tokens[1:])
	return Command{Verb: def.Name, Handler: def.Handler, Recognized: true, args: args}
}

// Parse tokenizes and classifies line.
func (r *Registry) Parse(line string) Command {
	return r.Classify(Tokenize(line))
}
