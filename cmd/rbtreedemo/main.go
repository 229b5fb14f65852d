// Command rbtreedemo is an interactive terminal session over orderedset,
// the sorted-integer-set built on the rbtree intrusive core. It exists to
// let a reader insert, remove, and look up keys one at a time and watch the
// in-order traversal stay sorted, without writing a test.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/manifoldco/promptui"

	"github.com/latticetree/rbtree/cli"
	"github.com/latticetree/rbtree/orderedset"
	"github.com/latticetree/rbtree/sortable"
)

const (
	actionInsert = "Insert a key"
	actionRemove = "Remove a key"
	actionLookup = "Look up a key"
	actionList   = "List all keys (in order)"
	actionMinMax = "Show min/max"
	actionQuit   = "Quit"
)

func main() {
	fmt.Print(cli.BannerAutoWidth("rbtree demo — a sorted set of integers", cli.AlignCenter))

	set := orderedset.New[sortable.Int]()

	for {
		fmt.Println()

		_, action, err := cli.SelectMenu("Choose an action",
			actionInsert, actionRemove, actionLookup, actionList, actionMinMax, actionQuit)
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return
			}

			fmt.Fprintln(os.Stderr, "menu error:", err)

			return
		}

		switch action {
		case actionInsert:
			runInsert(set)
		case actionRemove:
			runRemove(set)
		case actionLookup:
			runLookup(set)
		case actionList:
			runList(set)
		case actionMinMax:
			runMinMax(set)
		case actionQuit:
			return
		}
	}
}

func runInsert(set *orderedset.Set[sortable.Int]) {
	key, err := cli.PromptInt("Key to insert")
	if err != nil {
		return
	}

	if set.Add(sortable.Int(key)) {
		fmt.Printf("inserted %d (size now %d)\n", key, set.Len())
	} else {
		fmt.Printf("%d is already a member\n", key)
	}
}

func runRemove(set *orderedset.Set[sortable.Int]) {
	key, err := cli.PromptInt("Key to remove")
	if err != nil {
		return
	}

	if set.Remove(sortable.Int(key)) {
		fmt.Printf("removed %d (size now %d)\n", key, set.Len())
	} else {
		fmt.Printf("%d was not a member\n", key)
	}
}

func runLookup(set *orderedset.Set[sortable.Int]) {
	key, err := cli.PromptInt("Key to look up")
	if err != nil {
		return
	}

	fmt.Printf("%d is a member: %v\n", key, set.Contains(sortable.Int(key)))
}

func runList(set *orderedset.Set[sortable.Int]) {
	fmt.Print(cli.DividerAutoWidth())

	if set.Len() == 0 {
		fmt.Println("(empty)")

		return
	}

	for key := range set.Seq() {
		fmt.Printf("%d ", int(key))
	}

	fmt.Println()
}

func runMinMax(set *orderedset.Set[sortable.Int]) {
	if lo, ok := set.Min(); ok {
		fmt.Printf("min: %d\n", int(lo))
	} else {
		fmt.Println("min: (empty)")
	}

	if hi, ok := set.Max(); ok {
		fmt.Printf("max: %d\n", int(hi))
	} else {
		fmt.Println("max: (empty)")
	}
}
