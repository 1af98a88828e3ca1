package config

// Config holds the static settings of a session.
type Config struct {
	WordsFile string // Word list, one candidate per line
	DebugLog  string // Trace log written when debug mode is on
}

// Default returns the built-in configuration. The word list is read from
// the working directory.
func Default() Config {
	return Config{
		WordsFile: "words.txt",
		DebugLog:  "hangman-debug.log",
	}
}
