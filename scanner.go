package linkpreview

// Ensure Scanner implements LinkScanner at compile time.
var _ LinkScanner = (*Scanner)(nil)

// Scanner finds preview-eligible links in message text. Detection is
// delegated to a LinkDetector; each detected span is kept only if the
// EligibilityChecker passes it.
type Scanner struct {
	detector LinkDetector
	checker  EligibilityChecker
}

// NewScanner creates a Scanner from a detector and an eligibility checker.
func NewScanner(detector LinkDetector, checker EligibilityChecker) *Scanner {
	return &Scanner{detector: detector, checker: checker}
}

// FindEligibleLinks returns every eligible link in text, in order of
// appearance. It returns nil when the text contains no eligible links.
func (s *Scanner) FindEligibleLinks(text string) []Link {
	detected := s.detector.DetectURLs(text)
	if len(detected) == 0 {
		return nil
	}

	var links []Link
	for _, link := range detected {
		if s.checker.IsEligible(link.URL) {
			links = append(links, link)
		}
	}

	return links
}
