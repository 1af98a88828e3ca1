// Package words supplies the secret word for a session.
//
// The list is a plain text file, one candidate per line. Surrounding
// whitespace is trimmed and blank lines are skipped; no case folding is
// applied.
package words

import (
	"bufio"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"
)

// ErrNoWords is returned when the list holds no usable word.
var ErrNoWords = errors.New("no words available in the list")

// Load reads every non-blank line of the file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var list []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		list = append(list, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", path, err)
	}
	return list, nil
}

// Choose returns one entry of list, uniformly at random.
func Choose(list []string, rng *rand.Rand) (string, error) {
	if len(list) == 0 {
		return "", ErrNoWords
	}
	return list[rng.IntN(len(list))], nil
}

// Pick loads the list at path and chooses a word from it.
func Pick(path string) (string, error) {
	list, err := Load(path)
	if err != nil {
		return "", err
	}
	seed := uint64(time.Now().UnixNano())
	word, err := Choose(list, rand.New(rand.NewPCG(seed, seed>>1)))
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return word, nil
}
