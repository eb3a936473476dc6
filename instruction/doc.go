// Package instruction parses and represents the path an agent follows across
// a cube net: a string of step counts interleaved with 'L' and 'R' turns,
// such as "10R5L5R10L4R5L5".
//
// Each maximal run of digits becomes a Move instruction and every 'L' or 'R'
// becomes a Turn instruction, in input order. A single trailing newline is
// accepted; any other character, whitespace included, is a syntax error.
//
// The grammar is declared with participle struct tags over a small regular
// lexer; see grammar.go.
package instruction
