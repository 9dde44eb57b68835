// Package naming generates names and descriptions for designed items.
// Rich items tend to get a freshly synthesized fantasy word; weaker ones
// draw from a curated word list.
package naming

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/NickMcConnell/FAangband-sub006/internal/domain"
	"github.com/NickMcConnell/FAangband-sub006/internal/rng"
)

//go:embed data/words.json
var defaultWords []byte

// Namer produces display names and one-line descriptions for finished
// items.
type Namer interface {
	// ItemName names a finished item. The final-to-maximum potential
	// ratio steers the style: a high ratio favors a synthesized word,
	// a low one favors the curated list.
	ItemName(art *domain.Artifact, src rng.Source, finalPotential, maxPotential int) string

	// Describe returns the one-line summary for a finished item.
	Describe(art *domain.Artifact, power int) string

	// Reload re-reads the word list configuration.
	Reload() error
}

type namer struct {
	mu sync.RWMutex

	words     []string
	wordsPath string

	caser cases.Caser
}

// NewNamer creates a namer. An empty path keeps the embedded word list;
// a path loads a replacement list and Reload re-reads it.
func NewNamer(wordsPath string) (Namer, error) {
	n := &namer{
		wordsPath: wordsPath,
		caser:     cases.Title(language.English),
	}
	if err := n.Reload(); err != nil {
		return nil, err
	}
	return n, nil
}

type wordsConfig struct {
	Version string   `json:"version"`
	Schema  string   `json:"schema"`
	Words   []string `json:"words"`
}

// SchemaNameWords is the schema identifier the word list file must carry.
const SchemaNameWords = "name-words"

// Reload reloads the word list configuration.
func (n *namer) Reload() error {
	n.mu.Lock()
	defer n.mu.Unlock()

	data := defaultWords
	if n.wordsPath != "" {
		loaded, err := os.ReadFile(n.wordsPath)
		if err != nil {
			return fmt.Errorf("failed to load word list: %w", err)
		}
		data = loaded
	}

	var cfg wordsConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse word list: %w", err)
	}
	if cfg.Version == "" {
		return fmt.Errorf("word list missing version field")
	}
	if cfg.Schema != SchemaNameWords {
		return fmt.Errorf("invalid schema in word list: expected %q, got %q", SchemaNameWords, cfg.Schema)
	}
	if len(cfg.Words) == 0 {
		return fmt.Errorf("word list is empty")
	}

	n.words = cfg.Words
	return nil
}

// ItemName names a finished item.
func (n *namer) ItemName(art *domain.Artifact, src rng.Source, finalPotential, maxPotential int) string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	ratio := 0.0
	if maxPotential > 0 {
		ratio = float64(finalPotential) / float64(maxPotential)
	}

	var word string
	if src.Float() < ratio {
		word = synthesizeWord(src)
	} else {
		word = n.words[rng.RandInt0(src, len(n.words))]
	}
	word = n.caser.String(word)

	if art.Cursed() {
		return fmt.Sprintf("'%s'", word)
	}
	return "of " + word
}

// Describe returns the one-line summary for a finished item.
func (n *namer) Describe(art *domain.Artifact, power int) string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return fmt.Sprintf("Random %s of power %d", n.caser.String(art.Kind.Category.String()), power)
}

// Syllable fragments for word synthesis.
var (
	wordOpeners = []string{
		"b", "c", "d", "f", "g", "gl", "gr", "k", "l", "m",
		"n", "r", "s", "th", "tr", "v", "z", "",
	}
	wordVowels = []string{
		"a", "e", "i", "o", "u", "ae", "ia", "au", "ui",
	}
	wordClosers = []string{
		"d", "dh", "l", "ldor", "m", "n", "nd", "ng", "r",
		"rion", "s", "th", "",
	}
)

// synthesizeWord builds a pronounceable fantasy word from two or three
// syllables.
func synthesizeWord(src rng.Source) string {
	var b strings.Builder
	syllables := 2 + rng.RandInt0(src, 2)
	for i := 0; i < syllables; i++ {
		b.WriteString(wordOpeners[rng.RandInt0(src, len(wordOpeners))])
		b.WriteString(wordVowels[rng.RandInt0(src, len(wordVowels))])
	}
	b.WriteString(wordClosers[rng.RandInt0(src, len(wordClosers))])
	if b.Len() < 4 {
		b.WriteString(wordVowels[rng.RandInt0(src, len(wordVowels))])
		b.WriteString("n")
	}
	return b.String()
}
