package checks

import (
	"fmt"

	"github.com/scidata-tools/inspect/graph"
	"github.com/scidata-tools/inspect/message"
	"github.com/scidata-tools/inspect/registry"
)

func init() {
	registry.MustRegister(registry.Rule{
		Name:       "check_constant_data",
		Target:     TypeDataset,
		Importance: message.ImportanceBestPracticeSuggestion,
		Summary:    "A dataset whose values are all identical is probably a mistake or better stored as a scalar.",
		Predicate:  `"data" in object`,
		Check:      checkConstantData,
	})
	registry.MustRegister(registry.Rule{
		Name:       "check_boolean_encodable",
		Target:     TypeDataset,
		Importance: message.ImportanceBestPracticeSuggestion,
		Summary:    "A dataset with exactly two distinct values is better stored as booleans.",
		Predicate:  `"data" in object`,
		Check:      checkBooleanEncodable,
	})
}

func checkConstantData(n graph.Node) ([]message.Message, error) {
	data, ok := attrFloats(n, "data")
	if !ok || len(data) < 2 {
		return nil, nil
	}
	uniq := uniqueValues(data)
	if len(uniq) == 1 {
		return []message.Message{message.New(fmt.Sprintf(
			"data has all values equal to %g", uniq[0]))}, nil
	}
	return nil, nil
}

func checkBooleanEncodable(n graph.Node) ([]message.Message, error) {
	data, ok := attrFloats(n, "data")
	if !ok || len(data) < 2 {
		return nil, nil
	}
	uniq := uniqueValues(data)
	if len(uniq) != 2 {
		return nil, nil
	}
	if dtype, _ := attrString(n, "dtype"); dtype == "bool" {
		return nil, nil
	}
	return []message.Message{message.New(fmt.Sprintf(
		"data has only the unique values %g and %g; consider storing it as boolean",
		uniq[0], uniq[1]))}, nil
}
