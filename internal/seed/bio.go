package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/hetulpatel/socialnetwork/internal/logging"
	"github.com/hetulpatel/socialnetwork/internal/models"
)

const bioWords = 10

// BioWriter produces the free-text biography of a generated person.
type BioWriter interface {
	Bio(ctx context.Context, p models.Person) (string, error)
}

// FakerBios writes a random ten word sentence.
type FakerBios struct {
	faker *gofakeit.Faker
}

func NewFakerBios(f *gofakeit.Faker) *FakerBios {
	return &FakerBios{faker: f}
}

func (b *FakerBios) Bio(_ context.Context, _ models.Person) (string, error) {
	return b.faker.Sentence(bioWords), nil
}

// Completer is the subset of the LLM client used for bios.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const bioSystemPrompt = "You write short, friendly, fictional social network biographies. " +
	"Reply with a single sentence of at most ten words and nothing else."

// LLMBios asks a chat model for each bio and falls back when the model
// errors or returns nothing usable.
type LLMBios struct {
	client   Completer
	fallback BioWriter
	log      *logging.Logger
}

func NewLLMBios(client Completer, fallback BioWriter) *LLMBios {
	return &LLMBios{client: client, fallback: fallback, log: logging.New("seed-bio")}
}

func (b *LLMBios) Bio(ctx context.Context, p models.Person) (string, error) {
	prompt := fmt.Sprintf("Write a bio for %s from %s, %s.", p.Name, p.City, p.Province)
	if p.Age != nil {
		prompt = fmt.Sprintf("Write a bio for %s, age %d, from %s, %s.", p.Name, *p.Age, p.City, p.Province)
	}
	text, err := b.client.Complete(ctx, bioSystemPrompt, prompt)
	if err == nil {
		text = cleanBio(text)
	}
	if err != nil || text == "" {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		b.log.Debugf("falling back to faker bio for %s: %v", p.Name, err)
		return b.fallback.Bio(ctx, p)
	}
	return text, nil
}

// cleanBio keeps the first line, strips wrapping quotes and caps the length.
func cleanBio(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	s = strings.Trim(s, "\"' ")
	words := strings.Fields(s)
	if len(words) > bioWords {
		words = words[:bioWords]
	}
	return strings.Join(words, " ")
}
