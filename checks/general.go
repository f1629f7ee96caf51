package checks

import (
	"strconv"
	"strings"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
)

// placeholderDescriptions are descriptions that carry no information.
var placeholderDescriptions = map[string]struct{}{
	"no description": {},
	"none":           {},
	"placeholder":    {},
}

func init() {
	registry.MustRegister(registry.Rule{
		Name:       "check_name_slashes",
		Target:     TypeContainer,
		Importance: message.ImportanceCritical,
		Summary:    "Object names must not contain slashes; they collide with path separators in the file format.",
		Check:      checkNameSlashes,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_name_colons",
		Target:     TypeContainer,
		Importance: message.ImportanceBestPracticeSuggestion,
		Summary:    "Object names should not contain colons.",
		Check:      checkNameColons,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_description",
		Target:     TypeContainer,
		Importance: message.ImportanceBestPracticeSuggestion,
		Summary:    "Every object should carry a real description.",
		Predicate:  `"description" in object`,
		Check:      checkDescription,
	})
}

func checkNameSlashes(n graph.Node) ([]message.Message, error) {
	if strings.ContainsAny(n.Name(), `/\`) {
		return []message.Message{message.New("object name contains slashes")}, nil
	}
	return nil, nil
}

func checkNameColons(n graph.Node) ([]message.Message, error) {
	if strings.Contains(n.Name(), ":") {
		return []message.Message{message.New("object name contains colons")}, nil
	}
	return nil, nil
}

func checkDescription(n graph.Node) ([]message.Message, error) {
	description, _ := attrString(n, "description")
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return []message.Message{message.New("description is missing")}, nil
	}
	key := strings.ToLower(strings.TrimRight(trimmed, "."))
	if _, ok := placeholderDescriptions[key]; ok {
		return []message.Message{message.New("description (" + strconv.Quote(trimmed) + ") is a placeholder")}, nil
	}
	return nil, nil
}
