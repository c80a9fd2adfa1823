// Package prompt composes the instruction text sent to the LLM. Composition
// is deterministic: the same niche, product, profile and output mode always
// produce byte-identical prompt text.
package prompt

import (
	"fmt"
	"strings"

	"github.com/legiit/coldmail-backend/internal/entity"
)

// personaBlock fixes the copywriting voice. These are instructions to the
// model, not locally enforced constraints; compliance is probabilistic.
const personaBlock = `Write in Chris M. Walker's direct response copywriting style:
- Attention-grabbing subject lines
- Problem-focused opening that names a pain the reader already feels
- Clear value proposition in plain language
- Social proof elements
- Strong call-to-action
- Personalized, confident tone
- Keep sentences short. No sentence longer than 20 words.
- Never claim first-person experience you do not have (no "when I ran my own clinic" style claims).`

// forbiddenWords is embedded into every prompt as a hard stylistic
// constraint for the model. There is no local post-filter for these.
var forbiddenWords = []string{
	"unlock",
	"unleash",
	"elevate",
	"game-changer",
	"revolutionize",
	"seamless",
	"synergy",
	"leverage",
	"empower",
	"skyrocket",
	"cutting-edge",
	"delve",
}

const businessContext = `Business context: Legiit is a digital marketing platform trusted by tens of thousands of businesses and freelancers. The emails promote a specific Legiit product to decision makers in the target niche. The goal of every email is a reply or a click, not a sale on the spot.`

// Composer builds generation prompts. EmailCount and SubjectCount control
// the requested batch shape (5 and 5 in the shipped configuration).
type Composer struct {
	emailCount   int
	subjectCount int
}

func NewComposer(emailCount, subjectCount int) *Composer {
	return &Composer{
		emailCount:   emailCount,
		subjectCount: subjectCount,
	}
}

// Compose builds the full prompt document for one generation request.
func (c *Composer) Compose(niche, product string, profile entity.ProductProfile, mode entity.OutputMode) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Generate %d high-converting cold emails for %s to promote %s.\n\n", c.emailCount, niche, product)

	b.WriteString(personaBlock)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Never use any of these words or their variants: %s.\n\n", strings.Join(forbiddenWords, ", "))

	b.WriteString(businessContext)
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "Product knowledge:\n%s\n\n", profile.DescriptionText)

	fmt.Fprintf(&b, "Each email should be different but maintain consistent quality and conversion focus. Every email must speak directly to %s.\n\n", niche)

	b.WriteString(c.outputContract(mode))

	return b.String()
}

// outputContract returns the output-format specification for the given
// mode. The extractor downstream relies on the model following exactly one
// of these contracts, so composer and extractor must be configured with the
// same mode.
func (c *Composer) outputContract(mode entity.OutputMode) string {
	switch mode {
	case entity.ModeSingleSubject:
		return `IMPORTANT: Return ONLY a valid JSON object with this exact structure. Do not include any text before or after the JSON:

{
  "emails": [
    {
      "subject": "Subject line here",
      "body": "Email body here with proper line breaks as \n"
    }
  ]
}

Make sure all quotes within the email content are properly escaped with backslashes.`

	case entity.ModePlainText:
		return `IMPORTANT: Return the emails as plain text. Separate emails with a line containing only ***. Start each email with a line "Subject: <subject line>", followed by a line "Body:" and then the email body. Do not add any other commentary.`

	default: // ModeFiveSubjects
		return fmt.Sprintf(`IMPORTANT: Return ONLY a valid JSON object with this exact structure. Do not include any text before or after the JSON:

{
  "emails": [
    {
      "subjects": ["Subject option 1", "Subject option 2", "Subject option 3", "Subject option 4", "Subject option 5"],
      "body": "Email body here with proper line breaks as \n"
    }
  ]
}

Every email object must contain exactly %d subject line options. Make sure all quotes within the email content are properly escaped with backslashes.`, c.subjectCount)
	}
}

// ForbiddenWords exposes the stylistic ban list for documentation and tests.
func ForbiddenWords() []string {
	out := make([]string, len(forbiddenWords))
	copy(out, forbiddenWords)
	return out
}
