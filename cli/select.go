package cli

import (
	"strings"

	"github.com/manifoldco/promptui"

	"github.com/latticetree/rbtree/orderedset"
	"github.com/latticetree/rbtree/sortable"
)

// MultiSelect displays an interactive multi-selection menu where users can choose multiple items.
// The user can search/filter choices by typing, select items one at a time, and choose "[Done]" when finished.
// Returns the selected items in their original order from the choices slice.
// Returns nil if no choices are provided.
func MultiSelect(label string, choices ...string) ([]string, error) {
	if len(choices) == 0 {
		return nil, nil
	}

	remaining := orderedset.New[sortable.String]()
	for _, c := range choices {
		remaining.Add(sortable.String(c))
	}

	selected := orderedset.New[sortable.String]()

	for remaining.Len() > 0 {
		names := sortedNames(remaining)
		items := append([]string{"[Done]"}, names...)

		sel := &promptui.Select{
			Label: label,
			Items: items,
			Searcher: func(input string, index int) bool {
				if index == 0 || len(input) == 0 {
					return false
				}

				return strings.HasPrefix(items[index], input)
			},
		}

		idx, value, err := sel.Run()
		if err != nil {
			return nil, err
		}

		if idx == 0 {
			break
		}

		selected.Add(sortable.String(value))
		remaining.Remove(sortable.String(value))
	}

	var choicesOut []string

	for _, c := range choices {
		if selected.Contains(sortable.String(c)) {
			choicesOut = append(choicesOut, c)
		}
	}

	return choicesOut, nil
}

// SelectMenu displays a single-selection menu and returns the chosen index
// and item text.
func SelectMenu(label string, items ...string) (int, string, error) {
	sel := &promptui.Select{
		Label: label,
		Items: items,
	}

	return sel.Run()
}

// sortedNames returns remaining's members as plain strings, already in
// ascending order courtesy of the underlying tree's in-order traversal.
func sortedNames(s *orderedset.Set[sortable.String]) []string {
	names := s.Entries()

	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, string(n))
	}

	return out
}
