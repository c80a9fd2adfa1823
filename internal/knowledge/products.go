// Package knowledge holds the static product knowledge base: a read-only
// mapping from product names to the long-form description text embedded
// into generation prompts. Built once at process start, never mutated.
package knowledge

import (
	"fmt"
	"strings"

	"github.com/legiit/coldmail-backend/internal/entity"
)

// Base is the product knowledge base. Lookup is total: unknown products get
// a generic profile built from the literal name, never an error.
type Base struct {
	profiles map[string]entity.ProductProfile
	aliases  map[string]string
}

// NewBase constructs the knowledge base with the built-in product catalog.
func NewBase() *Base {
	b := &Base{
		profiles: make(map[string]entity.ProductProfile, len(catalog)),
		aliases:  make(map[string]string, len(aliases)),
	}
	for _, p := range catalog {
		b.profiles[normalize(p.ProductKey)] = p
	}
	for alias, key := range aliases {
		b.aliases[normalize(alias)] = normalize(key)
	}
	return b
}

// Lookup resolves a product name to its profile. Matching is
// case-insensitive and accepts short aliases ("dashboard" for
// "Legiit Dashboard"). Unknown names produce a fallback profile so the
// composer always has description text to work with.
func (b *Base) Lookup(productName string) entity.ProductProfile {
	name := normalize(productName)

	if p, ok := b.profiles[name]; ok {
		return p
	}
	if key, ok := b.aliases[name]; ok {
		return b.profiles[key]
	}

	return entity.ProductProfile{
		ProductKey: productName,
		DescriptionText: fmt.Sprintf(
			"%s is a Legiit product that helps businesses grow through better digital marketing. "+
				"It saves time on repetitive marketing work, improves the quality of outreach and SEO output, "+
				"and costs a fraction of hiring an agency for the same result.",
			strings.TrimSpace(productName)),
	}
}

func normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

var catalog = []entity.ProductProfile{
	{
		ProductKey: "Legiit Marketplace",
		DescriptionText: "Legiit Marketplace is a curated freelance marketplace for SEO and digital marketing services. " +
			"Every seller is vetted and reviewed, so buyers get agency-quality link building, content, web design and " +
			"technical SEO without agency retainers. Pain points solved: unreliable freelancers, overpriced agencies, " +
			"and no way to verify work quality before paying. Competitive advantages: money-back guarantee on every " +
			"order, verified checkout-level reviews, and a service quality score on every listing.",
	},
	{
		ProductKey: "Legiit Dashboard",
		DescriptionText: "Legiit Dashboard is an all-in-one client and project management hub for agencies and " +
			"freelancers. It tracks orders, messages, rank movement and deliverables in a single view, replacing a " +
			"patchwork of spreadsheets and five separate SaaS subscriptions. Pain points solved: scattered client " +
			"communication, missed deadlines, and hours lost to manual reporting. Competitive advantages: built " +
			"directly into the marketplace where the work happens, white-label client reports, and no per-seat pricing.",
	},
	{
		ProductKey: "Legiit Leads",
		DescriptionText: "Legiit Leads finds and qualifies local-business prospects that actually need marketing " +
			"services, complete with contact data and a gap analysis of their current web presence. Pain points " +
			"solved: cold lists that never convert, hours of manual prospecting, and guessing what to pitch. " +
			"Competitive advantages: leads are scored by need, enriched with site audit data, and delivered ready " +
			"to contact.",
	},
	{
		ProductKey: "Audiit.io",
		DescriptionText: "Audiit.io generates white-label SEO audit reports in minutes: on-page issues, speed, " +
			"backlinks and competitor comparisons in a report you can put your own logo on. Pain points solved: " +
			"audits that take a full day to assemble and still look homemade. Competitive advantages: one-click " +
			"branded PDF output, plain-English findings a business owner understands, and pricing built for sending " +
			"audits at prospecting volume.",
	},
	{
		ProductKey: "Brand Signal",
		DescriptionText: "Brand Signal builds branded web 2.0 properties and social signals that strengthen a " +
			"business's entity in Google's eyes. Pain points solved: thin brand presence that keeps local businesses " +
			"off the map pack, and hand-building profiles across dozens of platforms. Competitive advantages: " +
			"done-for-you property creation, consistent NAP data across every property, and measurable entity " +
			"strength reporting.",
	},
}

// Short aliases accepted alongside full product names.
var aliases = map[string]string{
	"marketplace": "Legiit Marketplace",
	"dashboard":   "Legiit Dashboard",
	"leads":       "Legiit Leads",
	"audiit":      "Audiit.io",
	"signal":      "Brand Signal",
}
