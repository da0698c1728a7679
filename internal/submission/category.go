package submission

import (
	"regexp"
	"strings"

	"websubmit/portal/internal/domain"

	log "github.com/sirupsen/logrus"
)

// CategoryPlaceholder marks the category inside a reference number pattern
const CategoryPlaceholder = "<CATEG>"

// ResolveCategory extracts the document category from a reference number. The pattern
// is a regular expression anchored at the start of refnum in which CategoryPlaceholder
// stands for the category, e.g. "TEST-<CATEG>-.*".
func ResolveCategory(pattern, refnum string) string {
	expr := strings.ReplaceAll(pattern, CategoryPlaceholder, "([^-]*)")
	re, err := regexp.Compile(`^(?:` + expr + `)`)
	if err != nil {
		log.Warnf("⚠️ Invalid category pattern %q: %v", pattern, err)
		return domain.UnknownCategory
	}

	m := re.FindStringSubmatch(refnum)
	if len(m) < 2 {
		return domain.UnknownCategory
	}
	return m[1]
}
