// Package command defines nvh's command table and the lexer that splits a
// flat argument list into command invocations.
//
// Commands and their values share one undelimited token stream, so a
// command's values end either when it has collected its maximum number of
// values or when the next token names another command:
//
//	nvh fan 0 75 clock 1500
//	    └─fan [0 75]─┘ └clock [1500]┘
//
// Lexing is separate from dispatch. Lex produces an ordered list of steps;
// the engine package walks that list and runs each invocation.
package command
