package focus

import (
	"strconv"
	"strings"
)

// wrapperSegments are envelope keys servers prepend to field paths.
var wrapperSegments = map[string]struct{}{
	"body":       {},
	"request":    {},
	"payload":    {},
	"data":       {},
	"attributes": {},
}

// FieldPathCandidates turns a server error path (JSON pointer, JSONPath or
// bracketed form) into dotted field identifiers, most specific first:
// "/body/owner/emails/0" yields "body.owner.emails.0", "owner.emails.0",
// "body.owner.emails", "owner.emails".
func FieldPathCandidates(raw string) []string {
	segments := parsePathSegments(raw)
	if len(segments) == 0 {
		return nil
	}

	var out []string
	seen := make(map[string]struct{}, 4)
	add := func(candidate []string) {
		if len(candidate) == 0 {
			return
		}
		key := strings.Join(candidate, ".")
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		out = append(out, key)
	}

	noWrappers := dropWrapperSegments(segments)
	add(segments)
	add(noWrappers)
	add(stripNumericSegments(segments))
	add(stripNumericSegments(noWrappers))
	return out
}

// lookupNormalized resolves raw against refs using FieldPathCandidates,
// falling back to the longest matching prefix of each candidate.
func lookupNormalized(raw string, refs Refs) (string, Ref, bool) {
	best := ""
	for _, candidate := range FieldPathCandidates(raw) {
		if match := longestMatchingPath(candidate, refs); match != "" {
			if strings.Count(match, ".") > strings.Count(best, ".") || best == "" {
				best = match
			}
		}
	}
	if best == "" {
		return "", nil, false
	}
	return best, refs[best], true
}

func parsePathSegments(path string) []string {
	clean := strings.TrimSpace(path)
	if clean == "" {
		return nil
	}
	for strings.HasPrefix(clean, "#") || strings.HasPrefix(clean, "/") || strings.HasPrefix(clean, ".") || strings.HasPrefix(clean, "$") {
		clean = clean[1:]
	}

	clean = strings.NewReplacer("[", ".", "]", "").Replace(clean)
	clean = strings.Trim(clean, "./")
	if clean == "" {
		return nil
	}

	parts := strings.FieldsFunc(clean, func(r rune) bool {
		return r == '.' || r == '/'
	})
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		segment := strings.TrimSpace(part)
		if segment == "" {
			continue
		}
		segment = strings.ReplaceAll(segment, "~1", "/")
		segment = strings.ReplaceAll(segment, "~0", "~")
		out = append(out, segment)
	}
	return out
}

func dropWrapperSegments(segments []string) []string {
	out := segments
	for len(out) > 0 {
		if _, ok := wrapperSegments[strings.ToLower(out[0])]; !ok {
			break
		}
		out = out[1:]
	}
	return out
}

func stripNumericSegments(segments []string) []string {
	out := make([]string, 0, len(segments))
	for _, segment := range segments {
		if _, err := strconv.Atoi(segment); err == nil {
			continue
		}
		out = append(out, segment)
	}
	return out
}

func longestMatchingPath(dotted string, refs Refs) string {
	segments := strings.Split(dotted, ".")
	for end := len(segments); end > 0; end-- {
		candidate := strings.Join(segments[:end], ".")
		if _, ok := refs[candidate]; ok {
			return candidate
		}
	}
	return ""
}
